package outlier

import (
	"github.com/dtwclust/dtwclust/centroid"
	"github.com/dtwclust/dtwclust/distance"
	"github.com/dtwclust/dtwclust/quality"
	"github.com/dtwclust/dtwclust/tsdata"
)

// Cluster is the minimal view outlier needs: a centroid and its member
// ids/sequences, index-aligned.
type Cluster struct {
	Centroid  tsdata.Sequence
	MemberIDs []string
	Members   []tsdata.Sequence
}

// Config parameterizes a strip pass.
type Config struct {
	DistCfg          distance.Config
	CentroidStrategy centroid.Strategy
	BarycenterIter   int
	Quality          quality.Config
}

// Strip removes every member of c whose deviation from c.Centroid exceeds
// 3*sigma, recomputes c's centroid and sigma over the survivors, and
// reclassifies once. It returns the updated cluster, the ids removed to
// the outlier pool, and the new classification.
//
// If every member would be removed, Strip is a no-op: an empty cluster
// has no centroid to recompute against, and the engine never produces a
// cluster with zero members outright.
func Strip(c Cluster, cfg Config) (updated Cluster, removedIDs []string, class quality.Classification, err error) {
	if len(c.Members) == 0 {
		return Cluster{}, nil, 0, errorf("Strip", "", ErrEmptyCluster)
	}

	sigma, err := quality.Sigma(c.Members, c.Centroid, cfg.DistCfg)
	if err != nil {
		return Cluster{}, nil, 0, errorf("Strip", "sigma", err)
	}
	threshold := 3 * sigma

	devs, err := quality.Deviations(c.Members, c.Centroid, cfg.DistCfg)
	if err != nil {
		return Cluster{}, nil, 0, errorf("Strip", "deviations", err)
	}

	keepIdx := make([]int, 0, len(c.Members))
	for i, d := range devs {
		if d > threshold {
			removedIDs = append(removedIDs, c.MemberIDs[i])
			continue
		}
		keepIdx = append(keepIdx, i)
	}

	if len(keepIdx) == 0 {
		// Degenerate: every member exceeds 3*sigma (possible only when
		// sigma itself is ~0 and a handful of members sit exactly on
		// it). Keep the cluster intact rather than emptying it.
		return c, nil, quality.Classify(sigma, cfg.Quality), nil
	}
	if len(removedIDs) == 0 {
		return c, nil, quality.Classify(sigma, cfg.Quality), nil
	}

	keptIDs := make([]string, len(keepIdx))
	keptMembers := make([]tsdata.Sequence, len(keepIdx))
	for i, idx := range keepIdx {
		keptIDs[i] = c.MemberIDs[idx]
		keptMembers[i] = c.Members[idx]
	}

	var newCentroid tsdata.Sequence
	switch cfg.CentroidStrategy {
	case centroid.DBAStrategy:
		newCentroid, err = centroid.DBA(keptMembers, c.Centroid, cfg.BarycenterIter)
	default:
		newCentroid, err = centroid.EuclideanMean(keptMembers)
	}
	if err != nil {
		return Cluster{}, nil, 0, errorf("Strip", "recompute centroid", err)
	}

	newSigma, err := quality.Sigma(keptMembers, newCentroid, cfg.DistCfg)
	if err != nil {
		return Cluster{}, nil, 0, errorf("Strip", "recompute sigma", err)
	}

	updated = Cluster{
		Centroid:  newCentroid,
		MemberIDs: keptIDs,
		Members:   keptMembers,
	}
	return updated, removedIDs, quality.Classify(newSigma, cfg.Quality), nil
}
