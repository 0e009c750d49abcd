package kmeanspp

import (
	"context"
	"math/rand"

	"github.com/dtwclust/dtwclust/distance"
	"github.com/dtwclust/dtwclust/internal/parallel"
	"github.com/dtwclust/dtwclust/tsdata"
)

// Init chooses k initial centroids from members via K-Means++, seeded
// from seed. The first centroid is drawn uniformly; each subsequent
// centroid is sampled with probability proportional to the squared
// distance (under distCfg) from every member to its nearest
// already-chosen centroid. Members already chosen contribute zero
// distance and so zero sampling weight.
//
// If every remaining member has zero weight (all candidates are exact
// duplicates of an already-chosen centroid), the next centroid is drawn
// uniformly at random among all members instead — squared-distance
// sampling has nothing left to discriminate on, and the alternative
// (erroring out on a well-formed dataset) would be worse.
func Init(ctx context.Context, members []tsdata.Sequence, k int, distCfg distance.Config, seed int64) ([]tsdata.Sequence, error) {
	if k <= 0 {
		return nil, errorf("Init", "k=%d", ErrInvalidK, k)
	}
	if len(members) < k {
		return nil, errorf("Init", "members=%d k=%d", ErrNotEnoughMembers, len(members), k)
	}

	rng := rand.New(rand.NewSource(seed))
	centroids := make([]tsdata.Sequence, 0, k)

	first := members[rng.Intn(len(members))]
	centroids = append(centroids, first)

	minDistSq := make([]float64, len(members))
	for i := range minDistSq {
		minDistSq[i] = -1 // -1 marks "not yet computed"
	}

	for len(centroids) < k {
		latest := centroids[len(centroids)-1]

		if err := parallel.Map(ctx, len(members), func(_ context.Context, j int) error {
			d, err := distance.Distance(members[j], latest, distCfg)
			if err != nil {
				return err
			}
			sq := d * d
			if minDistSq[j] < 0 || sq < minDistSq[j] {
				minDistSq[j] = sq
			}
			return nil
		}); err != nil {
			return nil, errorf("Init", "distance scan", err)
		}

		idx := weightedSample(rng, minDistSq)
		centroids = append(centroids, members[idx])
	}

	return centroids, nil
}

// weightedSample draws an index from [0,len(weights)) with probability
// proportional to weights[i]. If every weight is zero, it falls back to a
// uniform draw over all indices.
func weightedSample(rng *rand.Rand, weights []float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return rng.Intn(len(weights))
	}

	threshold := rng.Float64() * total
	var cum float64
	for i, w := range weights {
		cum += w
		if cum >= threshold {
			return i
		}
	}
	return len(weights) - 1 // floating-point rounding guard
}
