package cluster

import (
	"context"
	"errors"
	"sort"

	"github.com/dtwclust/dtwclust/centroid"
	"github.com/dtwclust/dtwclust/distance"
	"github.com/dtwclust/dtwclust/kmeans"
	"github.com/dtwclust/dtwclust/merge"
	"github.com/dtwclust/dtwclust/outlier"
	"github.com/dtwclust/dtwclust/quality"
	"github.com/dtwclust/dtwclust/sweep"
	"github.com/dtwclust/dtwclust/tsdata"
)

// Run clusters ds per cfg, recursively refining any group whose spread
// classifies as Reclusterize, up to cfg.MaxRecursion levels deep. It
// implements the top-level driver (C10): one multi-k sweep (C9), tagged
// by quality (C6), merged for near-duplicate centroids (C7), stripped of
// 3-sigma outliers (C8), with any surviving Reclusterize group recursed
// on with tightened parameters.
//
// Run never returns a partial partition: any error aborts the whole call.
func Run(ctx context.Context, ds tsdata.Dataset, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	if err := ds.Validate(); err != nil {
		return Result{}, errorf("Run", "dataset invalid", ErrInvalidShape)
	}
	if len(ds.Items) < cfg.KMin {
		return Result{}, errorf("Run", "items=%d KMin=%d", ErrDegenerateInput, len(ds.Items), cfg.KMin)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = nopLogger{}
	}

	items := ds.SortedByID()
	ids := make([]string, len(items))
	seqs := make([]tsdata.Sequence, len(items))
	for i, it := range items {
		ids[i] = it.ID
		seqs[i] = it.Seq
	}

	accepted, outliers, err := runLevel(ctx, ids, seqs, cfg, 0, cfg.Seed, logger)
	if err != nil {
		return Result{}, err
	}

	accepted = sortAccepted(accepted)

	result := Result{
		Assignments: make(map[string]int, len(ds.Items)),
		Outliers:    sortedCopy(outliers),
		Centroids:   make([]tsdata.Sequence, len(accepted)),
		Stats:       make([]ClusterStats, len(accepted)),
	}
	for i, c := range accepted {
		result.Centroids[i] = c.Centroid
		result.Stats[i] = ClusterStats{
			Size:           len(c.IDs),
			Sigma:          c.Sigma,
			Classification: c.Class,
		}
		for _, id := range c.IDs {
			result.Assignments[id] = i
		}
	}

	return result, nil
}

// refCluster is the recursion driver's working view of a cluster: enough
// to recompute quality, merge, strip, and - if it survives as
// Reclusterize - hand its membership down to the next recursion level.
type refCluster struct {
	Centroid tsdata.Sequence
	IDs      []string
	Seqs     []tsdata.Sequence
	Sigma    float64
	Class    quality.Classification
}

// runLevel executes one level of C10: sweep -> classify -> merge ->
// strip -> partition -> recurse. depth is the level already spent
// (0 at the top-level call); recursion is permitted only while
// depth < cfg.MaxRecursion.
func runLevel(ctx context.Context, ids []string, seqs []tsdata.Sequence, cfg Config, depth int, seed int64, logger Logger) ([]refCluster, []string, error) {
	distCfg := distCfgFrom(cfg)
	strategy, baryIter := centroidStrategyFrom(cfg)

	sweepCfg := sweep.Config{
		KMin:             cfg.KMin,
		KMax:             cfg.KMax,
		DistCfg:          distCfg,
		CentroidStrategy: strategy,
		BarycenterIter:   baryIter,
		MaxIter:          cfg.MaxIter,
		Seed:             seed,
	}
	swept, err := sweep.Run(ctx, seqs, sweepCfg)
	if err != nil {
		// kmeans surfaces persistent-emptiness-after-re-seed as its own
		// sentinel; translate it to this package's equivalent so callers
		// who only know the cluster package's error taxonomy still see it.
		if errors.Is(err, kmeans.ErrInternalInvariant) {
			return nil, nil, errorf("runLevel", "depth=%d sweep: %v", ErrInternalInvariant, depth, err)
		}
		return nil, nil, errorf("runLevel", "depth=%d sweep", err, depth)
	}
	logger.Logf("cluster: depth=%d chose k=%d score=%v", depth, swept.K, swept.Score)

	qualityCfg := quality.Config{SigmaGood: cfg.SigmaGood, SigmaOutline: cfg.SigmaOutline, DistCfg: distCfg}

	groups, outliers := groupAndClassify(ids, seqs, swept.Fit, qualityCfg, cfg.MinCluster)

	var reclusterize, mergeable []refCluster
	for _, g := range groups {
		if g.Class == quality.Reclusterize {
			reclusterize = append(reclusterize, g)
		} else {
			mergeable = append(mergeable, g)
		}
	}

	mergeCfg := merge.Config{
		DistCfg:            distCfg,
		CentroidStrategy:   strategy,
		BarycenterIter:     baryIter,
		DuplicateThreshold: cfg.DuplicateThreshold,
	}
	mergedClusters, err := merge.Merge(toMergeClusters(mergeable), mergeCfg)
	if err != nil {
		return nil, nil, errorf("runLevel", "depth=%d merge", err, depth)
	}

	var stripCandidates []refCluster
	for _, mc := range mergedClusters {
		sigma, err := quality.Sigma(mc.Members, mc.Centroid, distCfg)
		if err != nil {
			return nil, nil, errorf("runLevel", "depth=%d post-merge sigma", err, depth)
		}
		rc := refCluster{Centroid: mc.Centroid, IDs: mc.MemberIDs, Seqs: mc.Members, Sigma: sigma, Class: quality.Classify(sigma, qualityCfg)}
		if rc.Class == quality.Reclusterize {
			reclusterize = append(reclusterize, rc)
		} else {
			stripCandidates = append(stripCandidates, rc)
		}
	}

	outlierCfg := outlier.Config{DistCfg: distCfg, CentroidStrategy: strategy, BarycenterIter: baryIter, Quality: qualityCfg}

	var accepted []refCluster
	for _, rc := range stripCandidates {
		updated, removed, class, err := outlier.Strip(outlier.Cluster{Centroid: rc.Centroid, MemberIDs: rc.IDs, Members: rc.Seqs}, outlierCfg)
		if err != nil {
			return nil, nil, errorf("runLevel", "depth=%d strip", err, depth)
		}
		outliers = append(outliers, removed...)

		sigma, err := quality.Sigma(updated.Members, updated.Centroid, distCfg)
		if err != nil {
			return nil, nil, errorf("runLevel", "depth=%d post-strip sigma", err, depth)
		}

		final := refCluster{Centroid: updated.Centroid, IDs: updated.MemberIDs, Seqs: updated.Members, Sigma: sigma, Class: class}
		if class == quality.Reclusterize {
			reclusterize = append(reclusterize, final)
		} else {
			accepted = append(accepted, final)
		}
	}

	if len(reclusterize) == 0 || depth >= cfg.MaxRecursion {
		for _, rc := range reclusterize {
			outliers = append(outliers, rc.IDs...)
		}
		return accepted, outliers, nil
	}

	for branch, rc := range reclusterize {
		tightened := tightenConfig(cfg, len(rc.IDs))
		branchSeed := deriveSeed(seed, uint64(depth), uint64(branch))

		subAccepted, subOutliers, err := runLevel(ctx, rc.IDs, rc.Seqs, tightened, depth+1, branchSeed, logger)
		if err != nil {
			return nil, nil, errorf("runLevel", "depth=%d branch=%d recurse", err, depth, branch)
		}
		accepted = append(accepted, subAccepted...)
		outliers = append(outliers, subOutliers...)
	}

	return accepted, outliers, nil
}

// groupAndClassify partitions (ids, seqs) by swept's assignment, collapses
// any empty or below-MinCluster group straight into the outlier pool, and
// computes sigma/classification for every surviving group.
func groupAndClassify(ids []string, seqs []tsdata.Sequence, fit kmeans.Result, qualityCfg quality.Config, minCluster int) ([]refCluster, []string) {
	groupIdx := make([][]int, len(fit.Centroids))
	for i, c := range fit.Assignments {
		groupIdx[c] = append(groupIdx[c], i)
	}

	var groups []refCluster
	var outliers []string
	for c, idxs := range groupIdx {
		if len(idxs) < minCluster {
			for _, i := range idxs {
				outliers = append(outliers, ids[i])
			}
			continue
		}

		groupIDs := make([]string, len(idxs))
		groupSeqs := make([]tsdata.Sequence, len(idxs))
		for j, i := range idxs {
			groupIDs[j] = ids[i]
			groupSeqs[j] = seqs[i]
		}

		sigma, err := quality.Sigma(groupSeqs, fit.Centroids[c], qualityCfg.DistCfg)
		if err != nil {
			// Sigma only fails on an empty member slice, already excluded
			// above by the MinCluster guard (MinCluster >= 1).
			continue
		}

		groups = append(groups, refCluster{
			Centroid: fit.Centroids[c],
			IDs:      groupIDs,
			Seqs:     groupSeqs,
			Sigma:    sigma,
			Class:    quality.Classify(sigma, qualityCfg),
		})
	}

	return groups, outliers
}

func toMergeClusters(groups []refCluster) []merge.Cluster {
	out := make([]merge.Cluster, len(groups))
	for i, g := range groups {
		out[i] = merge.Cluster{Centroid: g.Centroid, MemberIDs: g.IDs, Members: g.Seqs, Sigma: g.Sigma}
	}
	return out
}

func distCfgFrom(cfg Config) distance.Config {
	switch cfg.Distance {
	case DtwFull:
		return distance.Config{Tag: distance.DtwFull}
	case DtwBanded:
		return distance.Config{Tag: distance.DtwBanded, Window: cfg.Window}
	default:
		return distance.Config{Tag: distance.Euclidean}
	}
}

// centroidStrategyFrom resolves the centroid policy: DBA is enabled only
// when the caller asked for barycenter iterations AND picked a DTW-family
// distance, per spec.md's Configuration entry for barycenter_iter.
func centroidStrategyFrom(cfg Config) (centroid.Strategy, int) {
	if cfg.BarycenterIter > 0 && cfg.Distance != Euclidean {
		return centroid.DBAStrategy, cfg.BarycenterIter
	}
	return centroid.EuclideanMeanStrategy, 0
}

// tightenConfig derives the recursion-branch Config per spec.md §4.10
// step 7: cap KMax at the floor of members/MinCluster, and hand down one
// fewer level of recursion budget implicitly (the caller increments
// depth, not MaxRecursion itself, so MaxRecursion is left unchanged and
// compared against the running depth).
func tightenConfig(cfg Config, members int) Config {
	floor := members / cfg.MinCluster
	if floor < 1 {
		floor = 1
	}
	next := cfg
	next.KMax = floor
	if next.KMin > next.KMax {
		next.KMin = next.KMax
	}
	return next
}

// deriveSeed mixes a parent seed with a depth/branch stream id into a new
// 64-bit seed via a SplitMix64-style avalanche mix, so sibling recursion
// branches draw from decorrelated but fully deterministic PRNG streams.
func deriveSeed(parent int64, depth, branch uint64) int64 {
	x := uint64(parent) ^ (depth*0x9e3779b97f4a7c15 + branch + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// sortAccepted orders final clusters deterministically by ascending
// lexicographically-smallest member id, so Result.Centroids/Stats
// ordering is reproducible across runs regardless of map/goroutine
// scheduling upstream.
func sortAccepted(clusters []refCluster) []refCluster {
	out := append([]refCluster(nil), clusters...)
	sort.SliceStable(out, func(i, j int) bool {
		return minOf(out[i].IDs) < minOf(out[j].IDs)
	})
	return out
}

func minOf(ids []string) string {
	if len(ids) == 0 {
		return ""
	}
	min := ids[0]
	for _, id := range ids[1:] {
		if id < min {
			min = id
		}
	}
	return min
}

func sortedCopy(ids []string) []string {
	out := append([]string(nil), ids...)
	sort.Strings(out)
	return out
}
