package sweep

import (
	"context"

	"github.com/dtwclust/dtwclust/centroid"
	"github.com/dtwclust/dtwclust/distance"
	"github.com/dtwclust/dtwclust/kmeans"
	"github.com/dtwclust/dtwclust/kmeanspp"
	"github.com/dtwclust/dtwclust/quality"
	"github.com/dtwclust/dtwclust/tsdata"
)

// Config parameterizes a sweep over k in [KMin, KMax].
type Config struct {
	KMin, KMax       int
	DistCfg          distance.Config
	CentroidStrategy centroid.Strategy
	BarycenterIter   int
	MaxIter          int
	Seed             int64
}

// Validate checks 1 <= KMin <= KMax.
func (cfg Config) Validate() error {
	if cfg.KMin < 1 {
		return errorf("Validate", "KMin=%d", ErrInvalidConfig, cfg.KMin)
	}
	if cfg.KMax < cfg.KMin {
		return errorf("Validate", "KMax=%d < KMin=%d", ErrInvalidConfig, cfg.KMax, cfg.KMin)
	}
	return nil
}

// Result is the winning clustering from a sweep, plus the k it was run
// at and its score (lower is better).
type Result struct {
	K     int
	Fit   kmeans.Result
	Score float64
}

// Run invokes kmeanspp.Init + kmeans.Fit for every k in [cfg.KMin,
// cfg.KMax], scores each by the size-weighted mean per-cluster sigma,
// and returns the minimum-scoring run. Ties are broken toward the
// smaller k by only replacing the incumbent on a strictly lower score.
func Run(ctx context.Context, members []tsdata.Sequence, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	var best Result
	haveBest := false

	for k := cfg.KMin; k <= cfg.KMax; k++ {
		init, err := kmeanspp.Init(ctx, members, k, cfg.DistCfg, cfg.Seed)
		if err != nil {
			return Result{}, errorf("Run", "k=%d init", err, k)
		}

		fitCfg := kmeans.Config{
			K:                k,
			DistCfg:          cfg.DistCfg,
			CentroidStrategy: cfg.CentroidStrategy,
			BarycenterIter:   cfg.BarycenterIter,
			MaxIter:          cfg.MaxIter,
		}
		result, err := kmeans.Fit(ctx, members, init, fitCfg)
		if err != nil {
			return Result{}, errorf("Run", "k=%d fit", err, k)
		}

		score, err := score(members, result, cfg.DistCfg)
		if err != nil {
			return Result{}, errorf("Run", "k=%d score", err, k)
		}

		if !haveBest || score < best.Score {
			best = Result{K: k, Fit: result, Score: score}
			haveBest = true
		}
	}

	return best, nil
}

// score computes the size-weighted mean per-cluster sigma:
// sum(size_c * sigma_c) / len(members).
func score(members []tsdata.Sequence, result kmeans.Result, distCfg distance.Config) (float64, error) {
	groups := make([][]tsdata.Sequence, len(result.Centroids))
	for i, c := range result.Assignments {
		groups[c] = append(groups[c], members[i])
	}

	var weighted float64
	for c, grp := range groups {
		if len(grp) == 0 {
			continue
		}
		sigma, err := quality.Sigma(grp, result.Centroids[c], distCfg)
		if err != nil {
			return 0, err
		}
		weighted += float64(len(grp)) * sigma
	}

	return weighted / float64(len(members)), nil
}
