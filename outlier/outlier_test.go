package outlier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtwclust/dtwclust/centroid"
	"github.com/dtwclust/dtwclust/distance"
	"github.com/dtwclust/dtwclust/outlier"
	"github.com/dtwclust/dtwclust/quality"
	"github.com/dtwclust/dtwclust/tsdata"
)

func TestStrip_RemovesFarOutlier(t *testing.T) {
	centroidSeq := tsdata.NewDense([]float64{0})
	var ids []string
	var members []tsdata.Sequence
	for i := 0; i < 20; i++ {
		ids = append(ids, string(rune('a'+i)))
		members = append(members, tsdata.NewDense([]float64{0.01 * float64(i%2)}))
	}
	ids = append(ids, "outlier")
	members = append(members, tsdata.NewDense([]float64{1000}))

	c := outlier.Cluster{Centroid: centroidSeq, MemberIDs: ids, Members: members}
	cfg := outlier.Config{
		DistCfg:          distance.Config{Tag: distance.Euclidean},
		CentroidStrategy: centroid.EuclideanMeanStrategy,
		Quality:          quality.Config{SigmaGood: 1, SigmaOutline: 2},
	}

	updated, removed, class, err := outlier.Strip(c, cfg)
	require.NoError(t, err)
	assert.Contains(t, removed, "outlier")
	assert.NotContains(t, updated.MemberIDs, "outlier")
	assert.Equal(t, quality.Good, class)
}

func TestStrip_NoOutliersIsNoOp(t *testing.T) {
	members := []tsdata.Sequence{
		tsdata.NewDense([]float64{0}),
		tsdata.NewDense([]float64{0.01}),
	}
	c := outlier.Cluster{
		Centroid:  tsdata.NewDense([]float64{0}),
		MemberIDs: []string{"a", "b"},
		Members:   members,
	}
	cfg := outlier.Config{
		DistCfg:          distance.Config{Tag: distance.Euclidean},
		CentroidStrategy: centroid.EuclideanMeanStrategy,
		Quality:          quality.Config{SigmaGood: 1, SigmaOutline: 2},
	}

	updated, removed, _, err := outlier.Strip(c, cfg)
	require.NoError(t, err)
	assert.Empty(t, removed)
	assert.Equal(t, c.MemberIDs, updated.MemberIDs)
}

func TestStrip_EmptyCluster(t *testing.T) {
	cfg := outlier.Config{DistCfg: distance.Config{Tag: distance.Euclidean}}
	_, _, _, err := outlier.Strip(outlier.Cluster{}, cfg)
	assert.ErrorIs(t, err, outlier.ErrEmptyCluster)
}
