package cluster_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtwclust/dtwclust/cluster"
	"github.com/dtwclust/dtwclust/fixtures"
	"github.com/dtwclust/dtwclust/quality"
)

func baseConfig() cluster.Config {
	return cluster.Config{
		Distance:           cluster.DtwBanded,
		Window:             3,
		KMin:               2,
		KMax:               2,
		MaxIter:            25,
		BarycenterIter:     10,
		SigmaGood:          0.5,
		SigmaOutline:       1.5,
		DuplicateThreshold: 0.2,
		MinCluster:         2,
		MaxRecursion:       1,
		Seed:               0,
	}
}

func TestRun_TwoSinusoids_PartitionAndSize(t *testing.T) {
	groupA, err := fixtures.BuildGroup(50, 0, func(seed int64) ([]float64, error) {
		return fixtures.BuildSine(24, 1, 0, 1, 0.05, seed)
	})
	require.NoError(t, err)
	groupB, err := fixtures.BuildGroup(50, 1000, func(seed int64) ([]float64, error) {
		return fixtures.BuildSine(24, 1, 3.14159265/4, 1, 0.05, seed)
	})
	require.NoError(t, err)

	ds := fixtures.BuildDataset(
		fixtures.Labelled{Prefix: "sinA", Seqs: groupA},
		fixtures.Labelled{Prefix: "sinB", Seqs: groupB},
	)

	cfg := baseConfig()
	result, err := cluster.Run(context.Background(), ds, cfg)
	require.NoError(t, err)

	seen := make(map[string]bool, len(ds.Items))
	for id := range result.Assignments {
		assert.False(t, seen[id], "id %q assigned twice", id)
		seen[id] = true
	}
	for _, id := range result.Outliers {
		assert.False(t, seen[id], "id %q both assigned and outlier", id)
		seen[id] = true
	}
	assert.Equal(t, len(ds.Items), len(seen), "every input id must be assigned or marked an outlier")

	for _, stat := range result.Stats {
		assert.GreaterOrEqual(t, stat.Size, cfg.MinCluster)
	}
}

func TestRun_ThreeFlatLevels_Euclidean(t *testing.T) {
	levels := []float64{0, 1, 2}
	var groups []fixtures.Labelled
	for i, lvl := range levels {
		seqs, err := fixtures.BuildGroup(30, int64(i*100), func(seed int64) ([]float64, error) {
			return fixtures.BuildFlatLevel(10, lvl, 0.01, seed)
		})
		require.NoError(t, err)
		groups = append(groups, fixtures.Labelled{Prefix: "lvl" + string(rune('A'+i)), Seqs: seqs})
	}
	ds := fixtures.BuildDataset(groups...)

	cfg := cluster.Config{
		Distance:           cluster.Euclidean,
		KMin:               2,
		KMax:               5,
		MaxIter:            25,
		SigmaGood:          0.3,
		SigmaOutline:       0.8,
		DuplicateThreshold: 0.05,
		MinCluster:         2,
		MaxRecursion:       1,
		Seed:               7,
	}

	result, err := cluster.Run(context.Background(), ds, cfg)
	require.NoError(t, err)

	assert.Equal(t, len(ds.Items), len(result.Assignments)+len(result.Outliers))

	for _, stat := range result.Stats {
		switch stat.Classification {
		case quality.Good:
			assert.Less(t, stat.Sigma, cfg.SigmaGood)
		case quality.Outline:
			assert.GreaterOrEqual(t, stat.Sigma, cfg.SigmaGood)
			assert.Less(t, stat.Sigma, cfg.SigmaOutline)
		}
	}
}

func TestRun_Determinism(t *testing.T) {
	groupA, err := fixtures.BuildGroup(20, 0, func(seed int64) ([]float64, error) {
		return fixtures.BuildFlatLevel(8, 0, 0.05, seed)
	})
	require.NoError(t, err)
	groupB, err := fixtures.BuildGroup(20, 500, func(seed int64) ([]float64, error) {
		return fixtures.BuildFlatLevel(8, 3, 0.05, seed)
	})
	require.NoError(t, err)
	ds := fixtures.BuildDataset(
		fixtures.Labelled{Prefix: "p", Seqs: groupA},
		fixtures.Labelled{Prefix: "q", Seqs: groupB},
	)

	cfg := cluster.Config{
		Distance:           cluster.Euclidean,
		KMin:               2,
		KMax:               2,
		MaxIter:            25,
		SigmaGood:          0.5,
		SigmaOutline:       1.5,
		DuplicateThreshold: 0.2,
		MinCluster:         2,
		MaxRecursion:       1,
		Seed:               42,
	}

	r1, err := cluster.Run(context.Background(), ds, cfg)
	require.NoError(t, err)
	r2, err := cluster.Run(context.Background(), ds, cfg)
	require.NoError(t, err)

	assert.Equal(t, r1.Assignments, r2.Assignments)
	assert.Equal(t, r1.Outliers, r2.Outliers)
	assert.Equal(t, r1.Centroids, r2.Centroids)
	assert.Equal(t, r1.Stats, r2.Stats)
}

func TestRun_DuplicateCentroidMerge(t *testing.T) {
	dupA, err := fixtures.BuildGroup(50, 0, func(seed int64) ([]float64, error) {
		return fixtures.BuildFlatLevel(6, 5.0, 0.01, seed)
	})
	require.NoError(t, err)
	dupB, err := fixtures.BuildGroup(50, 500, func(seed int64) ([]float64, error) {
		return fixtures.BuildFlatLevel(6, 5.0, 0.01, seed)
	})
	require.NoError(t, err)
	distinct, err := fixtures.BuildGroup(20, 1000, func(seed int64) ([]float64, error) {
		return fixtures.BuildFlatLevel(6, 50.0, 0.01, seed)
	})
	require.NoError(t, err)

	ds := fixtures.BuildDataset(
		fixtures.Labelled{Prefix: "d1", Seqs: dupA},
		fixtures.Labelled{Prefix: "d2", Seqs: dupB},
		fixtures.Labelled{Prefix: "g3", Seqs: distinct},
	)

	cfg := cluster.Config{
		Distance:           cluster.Euclidean,
		KMin:               3,
		KMax:               3,
		MaxIter:            25,
		SigmaGood:          1.0,
		SigmaOutline:       3.0,
		DuplicateThreshold: 0.2,
		MinCluster:         2,
		MaxRecursion:       1,
		Seed:               3,
	}

	result, err := cluster.Run(context.Background(), ds, cfg)
	require.NoError(t, err)

	sizes := make([]int, 0, len(result.Stats))
	for _, s := range result.Stats {
		sizes = append(sizes, s.Size)
	}
	total := 0
	for _, s := range sizes {
		total += s
	}
	assert.Equal(t, 120, total+len(result.Outliers))
	assert.Equal(t, []int{100, 20}, sizes, "the two identical groups must merge into one cluster")
}

func TestRun_StripsThreeSigmaOutliersEndToEnd(t *testing.T) {
	tight, err := fixtures.BuildGroup(103, 0, func(seed int64) ([]float64, error) {
		return fixtures.BuildFlatLevel(10, 0, 0.01, seed)
	})
	require.NoError(t, err)

	base, err := fixtures.BuildFlatLevel(10, 0, 0, 0)
	require.NoError(t, err)
	fixtures.InjectOutliers(tight, []int{0, 1, 2}, base, 1.0)

	ds := fixtures.BuildDataset(fixtures.Labelled{Prefix: "pt", Seqs: tight})

	cfg := cluster.Config{
		Distance:           cluster.Euclidean,
		KMin:               1,
		KMax:               1,
		MaxIter:            25,
		SigmaGood:          0.3,
		SigmaOutline:       1.0,
		DuplicateThreshold: 0.1,
		MinCluster:         2,
		MaxRecursion:       1,
		Seed:               0,
	}

	result, err := cluster.Run(context.Background(), ds, cfg)
	require.NoError(t, err)

	require.Len(t, result.Stats, 1)
	assert.Equal(t, 100, result.Stats[0].Size)
	assert.Equal(t, quality.Good, result.Stats[0].Classification)

	wantOutliers := []string{"pt-0", "pt-1", "pt-2"}
	assert.ElementsMatch(t, wantOutliers, result.Outliers)
	assert.Equal(t, len(ds.Items), len(result.Assignments)+len(result.Outliers))
}

func TestRun_RecursesOnScatteredGroupIntoTwoGoodSubClusters(t *testing.T) {
	// A single blob per spec.md §8.1/§8.5's "deliberately wide group":
	// forcing KMax=1 at the top level means the sweep can only return one
	// cluster spanning both widely separated sub-groups, which must
	// classify as Reclusterize. The only way two Good clusters of the
	// expected size can come out of Run is via the recursive branch
	// (cluster/run.go's runLevel calling itself at depth+1).
	blobA, err := fixtures.BuildGroup(20, 0, func(seed int64) ([]float64, error) {
		return fixtures.BuildFlatLevel(5, 0, 0.01, seed)
	})
	require.NoError(t, err)
	blobB, err := fixtures.BuildGroup(20, 500, func(seed int64) ([]float64, error) {
		return fixtures.BuildFlatLevel(5, 20, 0.01, seed)
	})
	require.NoError(t, err)

	ds := fixtures.BuildDataset(
		fixtures.Labelled{Prefix: "a", Seqs: blobA},
		fixtures.Labelled{Prefix: "b", Seqs: blobB},
	)

	cfg := cluster.Config{
		Distance:           cluster.Euclidean,
		KMin:               1,
		KMax:               1,
		MaxIter:            25,
		SigmaGood:          2,
		SigmaOutline:       5,
		DuplicateThreshold: 0.5,
		MinCluster:         20,
		MaxRecursion:       1,
		Seed:               0,
	}

	result, err := cluster.Run(context.Background(), ds, cfg)
	require.NoError(t, err)

	require.Len(t, result.Stats, 2, "the scattered top-level group must recurse into two sub-clusters")
	for _, stat := range result.Stats {
		assert.Equal(t, 20, stat.Size)
		assert.Equal(t, quality.Good, stat.Classification)
	}
	assert.Empty(t, result.Outliers)
	assert.Equal(t, len(ds.Items), len(result.Assignments))
}

func TestRun_RejectsInvalidConfig(t *testing.T) {
	ds := fixtures.BuildDataset(fixtures.Labelled{Prefix: "x", Seqs: [][]float64{{1, 2, 3}}})
	cfg := baseConfig()
	cfg.KMin = 0
	_, err := cluster.Run(context.Background(), ds, cfg)
	assert.ErrorIs(t, err, cluster.ErrInvalidConfig)
}

func TestRun_RejectsFewerItemsThanKMin(t *testing.T) {
	ds := fixtures.BuildDataset(fixtures.Labelled{Prefix: "x", Seqs: [][]float64{{1, 2, 3}}})
	cfg := baseConfig()
	cfg.KMin = 5
	cfg.KMax = 5
	_, err := cluster.Run(context.Background(), ds, cfg)
	assert.ErrorIs(t, err, cluster.ErrDegenerateInput)
}
