package cluster

import (
	"github.com/dtwclust/dtwclust/quality"
	"github.com/dtwclust/dtwclust/tsdata"
)

// DistanceTag selects the pairwise distance the engine clusters under.
type DistanceTag int

const (
	// Euclidean is the L2 norm over aligned dense indices.
	Euclidean DistanceTag = iota
	// DtwFull is unconstrained Dynamic Time Warping.
	DtwFull
	// DtwBanded is Dynamic Time Warping constrained to a Sakoe-Chiba
	// band; Config.Window gives the band radius.
	DtwBanded
)

// Config is a single record enumerating every parameter the engine
// needs, per the glossary's Configuration entry.
type Config struct {
	Distance DistanceTag
	Window   int // Sakoe-Chiba radius; only consulted when Distance==DtwBanded

	KMin, KMax int

	MaxIter        int // K-Means outer-loop cap, default 25
	BarycenterIter int // 0 => Euclidean mean centroid; >0 with a DTW distance enables DBA

	SigmaGood, SigmaOutline float64
	DuplicateThreshold      float64
	MinCluster              int
	MaxRecursion            int

	Seed int64

	// Logger receives informational diagnostics. Nil is safe: Run
	// no-ops on logging when absent.
	Logger Logger
}

// DefaultConfig returns a Config with the spec's documented defaults
// (MaxIter=25) and zero values everywhere else. Callers must still set
// KMin/KMax, SigmaGood/SigmaOutline, DuplicateThreshold, MinCluster,
// MaxRecursion, and Seed before calling Run — there is no sensible
// universal default for any of those, since they are dataset-dependent.
func DefaultConfig() Config {
	return Config{
		Distance: Euclidean,
		MaxIter:  25,
	}
}

// Validate checks that every numeric field lies in its documented
// range. It does not (and cannot) check that the configured thresholds
// are a good fit for a particular dataset.
func (c Config) Validate() error {
	switch c.Distance {
	case Euclidean, DtwFull, DtwBanded:
	default:
		return errorf("Validate", "Distance=%d", ErrInvalidConfig, c.Distance)
	}
	if c.Distance == DtwBanded && c.Window < 1 {
		return errorf("Validate", "Window=%d", ErrInvalidConfig, c.Window)
	}
	if c.KMin < 1 {
		return errorf("Validate", "KMin=%d", ErrInvalidConfig, c.KMin)
	}
	if c.KMax < c.KMin {
		return errorf("Validate", "KMax=%d < KMin=%d", ErrInvalidConfig, c.KMax, c.KMin)
	}
	if c.MaxIter < 1 {
		return errorf("Validate", "MaxIter=%d", ErrInvalidConfig, c.MaxIter)
	}
	if c.BarycenterIter < 0 {
		return errorf("Validate", "BarycenterIter=%d", ErrInvalidConfig, c.BarycenterIter)
	}
	if c.SigmaGood <= 0 {
		return errorf("Validate", "SigmaGood=%v", ErrInvalidConfig, c.SigmaGood)
	}
	if c.SigmaOutline < c.SigmaGood {
		return errorf("Validate", "SigmaOutline=%v < SigmaGood=%v", ErrInvalidConfig, c.SigmaOutline, c.SigmaGood)
	}
	if c.DuplicateThreshold < 0 {
		return errorf("Validate", "DuplicateThreshold=%v", ErrInvalidConfig, c.DuplicateThreshold)
	}
	if c.MinCluster < 1 {
		return errorf("Validate", "MinCluster=%d", ErrInvalidConfig, c.MinCluster)
	}
	if c.MaxRecursion < 0 {
		return errorf("Validate", "MaxRecursion=%d", ErrInvalidConfig, c.MaxRecursion)
	}
	return nil
}

// ClusterStats reports a single cluster's size, spread, and
// classification, index-aligned with Result.Centroids.
type ClusterStats struct {
	Size           int
	Sigma          float64
	Classification quality.Classification
}

// Result is the outcome of a Run call.
type Result struct {
	// Assignments maps item id -> cluster index. Outlier pool members
	// are absent.
	Assignments map[string]int
	// Outliers lists item ids in the outlier pool.
	Outliers []string
	// Centroids are the surviving clusters' representative sequences.
	Centroids []tsdata.Sequence
	// Stats is index-aligned with Centroids.
	Stats []ClusterStats
}
