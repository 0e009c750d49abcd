package merge

import (
	"sort"

	"github.com/dtwclust/dtwclust/centroid"
	"github.com/dtwclust/dtwclust/distance"
	"github.com/dtwclust/dtwclust/quality"
	"github.com/dtwclust/dtwclust/tsdata"
)

// Cluster is the minimal view merge needs: a centroid, its member ids and
// sequences (index-aligned), and its current spread.
type Cluster struct {
	Centroid  tsdata.Sequence
	MemberIDs []string
	Members   []tsdata.Sequence
	Sigma     float64
}

// Config parameterizes a merge pass.
type Config struct {
	DistCfg            distance.Config
	CentroidStrategy   centroid.Strategy
	BarycenterIter     int
	DuplicateThreshold float64
}

// Validate checks DuplicateThreshold >= 0. A threshold of exactly 0 is
// legal and simply means no pair of centroids is ever close enough to
// merge (centroid distance is never negative).
func (cfg Config) Validate() error {
	if cfg.DuplicateThreshold < 0 {
		return errorf("Validate", "DuplicateThreshold=%v", ErrInvalidConfig, cfg.DuplicateThreshold)
	}
	return nil
}

// Merge repeatedly scans clusters in deterministic order and unions any
// pair whose centroid distance falls below cfg.DuplicateThreshold, until a
// full pass produces no merges.
func Merge(clusters []Cluster, cfg Config) ([]Cluster, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	current := append([]Cluster(nil), clusters...)

	for {
		current = sortClusters(current)
		merged := false

		for i := 0; i < len(current); i++ {
			for j := i + 1; j < len(current); j++ {
				d, err := distance.Distance(current[i].Centroid, current[j].Centroid, cfg.DistCfg)
				if err != nil {
					return nil, errorf("Merge", "centroid distance", err)
				}
				if d >= cfg.DuplicateThreshold {
					continue
				}

				union, err := unionClusters(current[i], current[j], cfg)
				if err != nil {
					return nil, errorf("Merge", "union", err)
				}
				current[i] = union
				current = append(current[:j], current[j+1:]...)
				merged = true
				j-- // re-scan from the same position in the shortened slice
			}
		}

		if !merged {
			break
		}
	}

	return current, nil
}

// unionClusters combines a and b's membership, recomputes the centroid
// with cfg's strategy, and recomputes sigma.
func unionClusters(a, b Cluster, cfg Config) (Cluster, error) {
	memberIDs := append(append([]string(nil), a.MemberIDs...), b.MemberIDs...)
	members := append(append([]tsdata.Sequence(nil), a.Members...), b.Members...)

	var newCentroid tsdata.Sequence
	var err error
	switch cfg.CentroidStrategy {
	case centroid.DBAStrategy:
		newCentroid, err = centroid.DBA(members, a.Centroid, cfg.BarycenterIter)
	default:
		newCentroid, err = centroid.EuclideanMean(members)
	}
	if err != nil {
		return Cluster{}, err
	}

	sigma, err := quality.Sigma(members, newCentroid, cfg.DistCfg)
	if err != nil {
		return Cluster{}, err
	}

	return Cluster{
		Centroid:  newCentroid,
		MemberIDs: memberIDs,
		Members:   members,
		Sigma:     sigma,
	}, nil
}

// sortClusters orders clusters ascending by size, then by their
// lexicographically smallest member id, for a stable deterministic scan
// order across runs and across merge passes.
func sortClusters(clusters []Cluster) []Cluster {
	out := append([]Cluster(nil), clusters...)
	sort.SliceStable(out, func(i, j int) bool {
		if len(out[i].MemberIDs) != len(out[j].MemberIDs) {
			return len(out[i].MemberIDs) < len(out[j].MemberIDs)
		}
		return minID(out[i].MemberIDs) < minID(out[j].MemberIDs)
	})
	return out
}

func minID(ids []string) string {
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
