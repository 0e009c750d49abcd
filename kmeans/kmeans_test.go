package kmeans_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtwclust/dtwclust/centroid"
	"github.com/dtwclust/dtwclust/distance"
	"github.com/dtwclust/dtwclust/kmeans"
	"github.com/dtwclust/dtwclust/tsdata"
)

func twoWellSeparatedBlobs() []tsdata.Sequence {
	return []tsdata.Sequence{
		tsdata.NewDense([]float64{0, 0}),
		tsdata.NewDense([]float64{0.1, 0}),
		tsdata.NewDense([]float64{0, 0.1}),
		tsdata.NewDense([]float64{10, 10}),
		tsdata.NewDense([]float64{10.1, 10}),
		tsdata.NewDense([]float64{10, 10.1}),
	}
}

func baseConfig() kmeans.Config {
	return kmeans.Config{
		K:                2,
		DistCfg:          distance.Config{Tag: distance.Euclidean},
		CentroidStrategy: centroid.EuclideanMeanStrategy,
		MaxIter:          20,
	}
}

func TestFit_SeparatesTwoBlobs(t *testing.T) {
	members := twoWellSeparatedBlobs()
	init := []tsdata.Sequence{members[0], members[3]}

	result, err := kmeans.Fit(context.Background(), members, init, baseConfig())
	require.NoError(t, err)
	assert.Equal(t, kmeans.Converged, result.State)

	first := result.Assignments[0]
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, result.Assignments[i], "first blob must share a cluster")
	}
	second := result.Assignments[3]
	assert.NotEqual(t, first, second)
	for i := 3; i < 6; i++ {
		assert.Equal(t, second, result.Assignments[i], "second blob must share a cluster")
	}
}

func TestFit_InvalidInitLength(t *testing.T) {
	members := twoWellSeparatedBlobs()
	init := []tsdata.Sequence{members[0]}
	_, err := kmeans.Fit(context.Background(), members, init, baseConfig())
	assert.ErrorIs(t, err, kmeans.ErrInvalidConfig)
}

func TestFit_DegenerateFewerMembersThanK(t *testing.T) {
	members := []tsdata.Sequence{tsdata.NewDense([]float64{0, 0})}
	init := []tsdata.Sequence{members[0], members[0]}
	cfg := baseConfig()
	_, err := kmeans.Fit(context.Background(), members, init, cfg)
	assert.ErrorIs(t, err, kmeans.ErrDegenerateInput)
}

func TestFit_DegenerateFewerDistinctThanK(t *testing.T) {
	same := tsdata.NewDense([]float64{1, 1})
	members := []tsdata.Sequence{same, same, same}
	init := []tsdata.Sequence{same, same, same}
	cfg := baseConfig()
	cfg.K = 3
	_, err := kmeans.Fit(context.Background(), members, init, cfg)
	assert.ErrorIs(t, err, kmeans.ErrDegenerateInput)
}

func TestConfig_Validate_BadK(t *testing.T) {
	cfg := baseConfig()
	cfg.K = 0
	assert.ErrorIs(t, cfg.Validate(), kmeans.ErrInvalidConfig)
}

func TestConfig_Validate_DBANeedsBarycenterIter(t *testing.T) {
	cfg := baseConfig()
	cfg.CentroidStrategy = centroid.DBAStrategy
	cfg.BarycenterIter = 0
	assert.ErrorIs(t, cfg.Validate(), kmeans.ErrInvalidConfig)
}
