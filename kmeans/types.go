package kmeans

import (
	"github.com/dtwclust/dtwclust/centroid"
	"github.com/dtwclust/dtwclust/distance"
	"github.com/dtwclust/dtwclust/tsdata"
)

// State names a phase of the K-Means state machine.
type State int

const (
	// Seeded is the initial state: centroids exist, no assignment yet.
	Seeded State = iota
	// Assigning attributes each member to its nearest centroid.
	Assigning
	// Updating rebuilds each cluster's centroid from its members.
	Updating
	// Converged is terminal: assignments stabilized or displacement
	// fell below the convergence threshold.
	Converged
	// Exhausted is terminal: MaxIter iterations elapsed without
	// declaring convergence.
	Exhausted
)

// String renders a State for logging.
func (s State) String() string {
	switch s {
	case Seeded:
		return "Seeded"
	case Assigning:
		return "Assigning"
	case Updating:
		return "Updating"
	case Converged:
		return "Converged"
	case Exhausted:
		return "Exhausted"
	default:
		return "Unknown"
	}
}

// convergenceEpsilonSq is the squared-displacement convergence
// threshold (1e-6 in squared units, per spec).
const convergenceEpsilonSq = 1e-6

// Config parameterizes a single K-Means fit.
type Config struct {
	K                int
	DistCfg          distance.Config
	CentroidStrategy centroid.Strategy
	BarycenterIter   int // only consulted when CentroidStrategy==centroid.DBAStrategy
	MaxIter          int
}

// Validate checks that cfg holds a coherent combination.
func (cfg Config) Validate() error {
	if cfg.K < 1 {
		return errorf("Validate", "K=%d", ErrInvalidConfig, cfg.K)
	}
	if cfg.MaxIter < 1 {
		return errorf("Validate", "MaxIter=%d", ErrInvalidConfig, cfg.MaxIter)
	}
	if err := cfg.DistCfg.Validate(); err != nil {
		return errorf("Validate", "DistCfg", err)
	}
	if cfg.CentroidStrategy == centroid.DBAStrategy && cfg.BarycenterIter < 1 {
		return errorf("Validate", "BarycenterIter=%d", ErrInvalidConfig, cfg.BarycenterIter)
	}
	return nil
}

// Result is the outcome of a Fit call.
//
// Assignments is index-aligned with the member slice passed to Fit:
// Assignments[i] is the cluster index (into Centroids) that member i
// belongs to.
type Result struct {
	Centroids   []tsdata.Sequence
	Assignments []int
	State       State
	Iterations  int
}
