package fixtures_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtwclust/dtwclust/fixtures"
)

func TestBuildSine_Deterministic(t *testing.T) {
	a, err := fixtures.BuildSine(24, 1, 0, 1, 0.05, 42)
	require.NoError(t, err)
	b, err := fixtures.BuildSine(24, 1, 0, 1, 0.05, 42)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBuildSine_PhaseShiftDiffers(t *testing.T) {
	a, err := fixtures.BuildSine(24, 1, 0, 1, 0, 0)
	require.NoError(t, err)
	b, err := fixtures.BuildSine(24, 1, 3.14159/4, 1, 0, 0)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestBuildSine_RejectsBadSize(t *testing.T) {
	_, err := fixtures.BuildSine(0, 1, 0, 1, 0, 0)
	assert.ErrorIs(t, err, fixtures.ErrBadSize)
}

func TestBuildFlatLevel(t *testing.T) {
	seq, err := fixtures.BuildFlatLevel(10, 2.0, 0, 1)
	require.NoError(t, err)
	require.Len(t, seq, 10)
	for _, v := range seq {
		assert.Equal(t, 2.0, v)
	}
}

func TestBuildGroup_DistinctMembers(t *testing.T) {
	group, err := fixtures.BuildGroup(5, 0, func(seed int64) ([]float64, error) {
		return fixtures.BuildFlatLevel(8, 1.0, 0.2, seed)
	})
	require.NoError(t, err)
	require.Len(t, group, 5)
	assert.NotEqual(t, group[0], group[1])
}

func TestInjectOutliers_MovesPointFarFromGroup(t *testing.T) {
	base, err := fixtures.BuildFlatLevel(10, 0, 0.01, 1)
	require.NoError(t, err)
	group, err := fixtures.BuildGroup(5, 1, func(seed int64) ([]float64, error) {
		return fixtures.BuildFlatLevel(10, 0, 0.01, seed)
	})
	require.NoError(t, err)

	fixtures.InjectOutliers(group, []int{2}, base, 10)

	var sum float64
	for _, v := range group[2] {
		sum += v
	}
	assert.Greater(t, sum, 0.0, "outlier-shifted member should be displaced well above the rest of the group")
}

func TestBuildDataset_AssignsPrefixedIDs(t *testing.T) {
	groupA, err := fixtures.BuildGroup(3, 0, func(seed int64) ([]float64, error) {
		return fixtures.BuildFlatLevel(5, 0, 0, seed)
	})
	require.NoError(t, err)
	groupB, err := fixtures.BuildGroup(2, 10, func(seed int64) ([]float64, error) {
		return fixtures.BuildFlatLevel(5, 1, 0, seed)
	})
	require.NoError(t, err)

	ds := fixtures.BuildDataset(
		fixtures.Labelled{Prefix: "a", Seqs: groupA},
		fixtures.Labelled{Prefix: "b", Seqs: groupB},
	)

	require.NoError(t, ds.Validate())
	assert.Len(t, ds.Items, 5)
	ids := make(map[string]bool)
	for _, it := range ds.Items {
		ids[it.ID] = true
	}
	assert.True(t, ids["a-0"])
	assert.True(t, ids["b-1"])
}
