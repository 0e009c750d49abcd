package distance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dtwclust/dtwclust/distance"
	"github.com/dtwclust/dtwclust/tsdata"
)

func TestDistance_Euclidean(t *testing.T) {
	a := tsdata.NewDense([]float64{0, 0, 0})
	b := tsdata.NewDense([]float64{3, 4, 0})

	d, err := distance.Distance(a, b, distance.Config{Tag: distance.Euclidean})
	assert.NoError(t, err)
	assert.InDelta(t, 5.0, d, 1e-9)
}

func TestDistance_DtwFull(t *testing.T) {
	a := tsdata.NewDense([]float64{0, 0, 0})
	b := tsdata.NewDense([]float64{3, 0, 0})

	d, err := distance.Distance(a, b, distance.Config{Tag: distance.DtwFull})
	assert.NoError(t, err)
	assert.InDelta(t, 3.0, d, 1e-9)
}

func TestDistance_DtwBanded_RequiresWindow(t *testing.T) {
	a := tsdata.NewDense([]float64{0, 1})
	b := tsdata.NewDense([]float64{0, 1})

	_, err := distance.Distance(a, b, distance.Config{Tag: distance.DtwBanded, Window: 0})
	assert.ErrorIs(t, err, distance.ErrBadWindow)
}

func TestDistance_BandedGEFull(t *testing.T) {
	a := tsdata.NewDense([]float64{0, 2, 4, 3, 1, 0, -2})
	b := tsdata.NewDense([]float64{0, 1, 3, 4, 3, 1, 0, -1, -2})

	full, err := distance.Distance(a, b, distance.Config{Tag: distance.DtwFull})
	assert.NoError(t, err)

	banded, err := distance.Distance(a, b, distance.Config{Tag: distance.DtwBanded, Window: 2})
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, banded, full)
}

func TestDistance_DimensionMismatch(t *testing.T) {
	a := tsdata.NewDense([]float64{0, 1, 2})
	b := tsdata.NewDense([]float64{0, 1})

	_, err := distance.Distance(a, b, distance.Config{Tag: distance.Euclidean})
	assert.ErrorIs(t, err, distance.ErrDimensionMismatch)
}

func TestDistance_UnknownTag(t *testing.T) {
	a := tsdata.NewDense([]float64{0})
	b := tsdata.NewDense([]float64{0})

	_, err := distance.Distance(a, b, distance.Config{Tag: distance.Tag(99)})
	assert.ErrorIs(t, err, distance.ErrUnknownTag)
}
