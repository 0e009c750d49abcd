package kmeans

import (
	"context"
	"strconv"
	"strings"

	"github.com/dtwclust/dtwclust/centroid"
	"github.com/dtwclust/dtwclust/distance"
	"github.com/dtwclust/dtwclust/internal/parallel"
	"github.com/dtwclust/dtwclust/tsdata"
)

// Fit runs K-Means over members starting from init (len(init)==cfg.K),
// until convergence or cfg.MaxIter iterations elapse.
func Fit(ctx context.Context, members []tsdata.Sequence, init []tsdata.Sequence, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	if len(init) != cfg.K {
		return Result{}, errorf("Fit", "len(init)=%d K=%d", ErrInvalidConfig, len(init), cfg.K)
	}
	if len(members) < cfg.K {
		return Result{}, errorf("Fit", "members=%d K=%d", ErrDegenerateInput, len(members), cfg.K)
	}
	if distinct := countDistinct(members); distinct < cfg.K {
		return Result{}, errorf("Fit", "distinct=%d K=%d", ErrDegenerateInput, distinct, cfg.K)
	}

	centroids := make([]tsdata.Sequence, cfg.K)
	copy(centroids, init)

	assignments := make([]int, len(members))
	for i := range assignments {
		assignments[i] = -1
	}

	reseeded := make([]bool, cfg.K)

	state := Seeded
	iter := 0
	for ; iter < cfg.MaxIter; iter++ {
		state = Assigning
		newAssignments := make([]int, len(members))
		if err := parallel.Map(ctx, len(members), func(_ context.Context, i int) error {
			best, bestDist := 0, 0.0
			for c := 0; c < cfg.K; c++ {
				d, err := distance.Distance(members[i], centroids[c], cfg.DistCfg)
				if err != nil {
					return err
				}
				if c == 0 || d < bestDist {
					best, bestDist = c, d
				}
			}
			newAssignments[i] = best
			return nil
		}); err != nil {
			return Result{}, errorf("Fit", "assigning iter=%d", err, iter)
		}

		changed := assignmentsDiffer(assignments, newAssignments)
		assignments = newAssignments

		state = Updating
		newCentroids, nowReseeded, err := updateCentroids(members, assignments, centroids, cfg, reseeded)
		if err != nil {
			return Result{}, errorf("Fit", "updating iter=%d", err, iter)
		}
		reseeded = nowReseeded

		maxDisplacementSq, err := maxDisplacementSquared(centroids, newCentroids, cfg.DistCfg)
		if err != nil {
			return Result{}, errorf("Fit", "displacement iter=%d", err, iter)
		}
		centroids = newCentroids

		if !changed && iter > 0 {
			state = Converged
			iter++
			break
		}
		if maxDisplacementSq < convergenceEpsilonSq {
			state = Converged
			iter++
			break
		}
	}
	if state != Converged {
		state = Exhausted
	}

	return Result{
		Centroids:   centroids,
		Assignments: assignments,
		State:       state,
		Iterations:  iter,
	}, nil
}

func assignmentsDiffer(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return true
		}
	}
	return false
}

// countDistinct returns the number of distinct sequences in members,
// compared by exact value over their dense representation. Fit needs
// this to detect a member pool with fewer than K distinct sequences,
// which kmeanspp.Init would otherwise paper over by falling back to
// uniform sampling once every distance-based weight collapses to zero.
func countDistinct(members []tsdata.Sequence) int {
	seen := make(map[string]struct{}, len(members))
	for _, m := range members {
		seen[sequenceKey(m)] = struct{}{}
	}
	return len(seen)
}

// sequenceKey renders a sequence's dense values into a string exact
// enough to use as a map key for equality comparison (floats are not
// comparable via == across representations, but their exact bit values
// are reproducible via strconv's round-trip 'g' format).
func sequenceKey(s tsdata.Sequence) string {
	dense := s.ToDense()
	parts := make([]string, len(dense))
	for i, v := range dense {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

// updateCentroids rebuilds each cluster's centroid from its current
// members. A cluster with no members is re-seeded, at most once per
// iteration, to the member currently farthest (by DistCfg) from any
// existing centroid.
//
// reseededPrev marks, per cluster index, whether that cluster was
// re-seeded in the PREVIOUS call (i.e. the iteration just before this
// one). If a cluster is empty again here despite having been re-seeded
// last time, the re-seed did not resolve the emptiness on the very next
// assignment pass — persistent emptiness per spec.md §7, reported as
// ErrInternalInvariant rather than re-seeded forever. The returned
// []bool becomes the next call's reseededPrev.
func updateCentroids(members []tsdata.Sequence, assignments []int, old []tsdata.Sequence, cfg Config, reseededPrev []bool) ([]tsdata.Sequence, []bool, error) {
	groups := make([][]int, cfg.K)
	for i, c := range assignments {
		groups[c] = append(groups[c], i)
	}

	out := make([]tsdata.Sequence, cfg.K)
	reseededNow := make([]bool, cfg.K)
	for c := 0; c < cfg.K; c++ {
		if len(groups[c]) == 0 {
			if reseededPrev[c] {
				return nil, nil, errorf("updateCentroids", "cluster=%d empty after re-seed", ErrInternalInvariant, c)
			}
			farthest, err := farthestMember(members, old, cfg.DistCfg)
			if err != nil {
				return nil, nil, err
			}
			out[c] = farthest
			reseededNow[c] = true
			continue
		}

		memberSeqs := make([]tsdata.Sequence, len(groups[c]))
		for i, idx := range groups[c] {
			memberSeqs[i] = members[idx]
		}

		switch cfg.CentroidStrategy {
		case centroid.DBAStrategy:
			updated, err := centroid.DBA(memberSeqs, old[c], cfg.BarycenterIter)
			if err != nil {
				return nil, nil, err
			}
			out[c] = updated
		default:
			updated, err := centroid.EuclideanMean(memberSeqs)
			if err != nil {
				return nil, nil, err
			}
			out[c] = updated
		}
	}
	return out, reseededNow, nil
}

// farthestMember returns the member with the largest distance to its
// nearest centroid in centroids.
func farthestMember(members, centroids []tsdata.Sequence, distCfg distance.Config) (tsdata.Sequence, error) {
	var best tsdata.Sequence
	bestDist := -1.0
	for _, m := range members {
		nearest := -1.0
		for _, c := range centroids {
			d, err := distance.Distance(m, c, distCfg)
			if err != nil {
				return tsdata.Sequence{}, err
			}
			if nearest < 0 || d < nearest {
				nearest = d
			}
		}
		if nearest > bestDist {
			bestDist = nearest
			best = m
		}
	}
	return best, nil
}

func maxDisplacementSquared(old, next []tsdata.Sequence, distCfg distance.Config) (float64, error) {
	max := 0.0
	for c := range old {
		d, err := distance.Distance(old[c], next[c], distCfg)
		if err != nil {
			return 0, err
		}
		sq := d * d
		if sq > max {
			max = sq
		}
	}
	return max, nil
}
