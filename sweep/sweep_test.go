package sweep_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtwclust/dtwclust/centroid"
	"github.com/dtwclust/dtwclust/distance"
	"github.com/dtwclust/dtwclust/sweep"
	"github.com/dtwclust/dtwclust/tsdata"
)

func threeFlatLevels() []tsdata.Sequence {
	var out []tsdata.Sequence
	levels := []float64{0, 1, 2}
	noise := []float64{-0.01, 0, 0.01, 0.005, -0.005}
	for _, lvl := range levels {
		for i := 0; i < 10; i++ {
			out = append(out, tsdata.NewDense([]float64{lvl + noise[i%len(noise)], lvl, lvl}))
		}
	}
	return out
}

func TestRun_PicksThreeForThreeFlatLevels(t *testing.T) {
	members := threeFlatLevels()
	cfg := sweep.Config{
		KMin:             2,
		KMax:             5,
		DistCfg:          distance.Config{Tag: distance.Euclidean},
		CentroidStrategy: centroid.EuclideanMeanStrategy,
		MaxIter:          25,
		Seed:             0,
	}

	result, err := sweep.Run(context.Background(), members, cfg)
	require.NoError(t, err)
	assert.Equal(t, 3, result.K)
}

func TestConfig_Validate(t *testing.T) {
	cfg := sweep.Config{KMin: 0, KMax: 3}
	assert.ErrorIs(t, cfg.Validate(), sweep.ErrInvalidConfig)

	cfg2 := sweep.Config{KMin: 4, KMax: 2}
	assert.ErrorIs(t, cfg2.Validate(), sweep.ErrInvalidConfig)
}
