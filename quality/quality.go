package quality

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/dtwclust/dtwclust/distance"
	"github.com/dtwclust/dtwclust/tsdata"
)

// Classification is a cluster's quality tag.
type Classification int

const (
	// Good clusters have sigma < Config.SigmaGood.
	Good Classification = iota
	// Outline clusters have SigmaGood <= sigma < SigmaOutline.
	Outline
	// Reclusterize clusters have sigma >= Config.SigmaOutline and are
	// candidates for recursive refinement.
	Reclusterize
)

// String renders a Classification for logging.
func (c Classification) String() string {
	switch c {
	case Good:
		return "Good"
	case Outline:
		return "Outline"
	case Reclusterize:
		return "Reclusterize"
	default:
		return "Unknown"
	}
}

// Config holds the classification thresholds and the distance used to
// measure member deviation from a centroid.
type Config struct {
	SigmaGood    float64
	SigmaOutline float64
	DistCfg      distance.Config
}

// Validate checks 0 < SigmaGood <= SigmaOutline.
func (cfg Config) Validate() error {
	if cfg.SigmaGood <= 0 {
		return errorf("Validate", "SigmaGood=%v", ErrInvalidConfig, cfg.SigmaGood)
	}
	if cfg.SigmaOutline < cfg.SigmaGood {
		return errorf("Validate", "SigmaOutline=%v < SigmaGood=%v", ErrInvalidConfig, cfg.SigmaOutline, cfg.SigmaGood)
	}
	return nil
}

// Sigma returns the root-mean-square deviation of members from centroid:
// sqrt(sum(delta_i^2) / |members|). Deviations are computed in member
// index order into a pre-sized buffer before reduction, so the result
// does not depend on any upstream scheduling order.
func Sigma(members []tsdata.Sequence, centroid tsdata.Sequence, distCfg distance.Config) (float64, error) {
	if len(members) == 0 {
		return 0, errorf("Sigma", "members=0", ErrNoMembers)
	}

	sq := make([]float64, len(members))
	for i, m := range members {
		d, err := distance.Distance(m, centroid, distCfg)
		if err != nil {
			return 0, errorf("Sigma", "member=%d", err, i)
		}
		sq[i] = d * d
	}

	return math.Sqrt(floats.Sum(sq) / float64(len(sq))), nil
}

// Deviations returns, index-aligned with members, each member's distance
// to centroid under distCfg. Package outlier uses this to find members
// whose deviation exceeds 3*sigma.
func Deviations(members []tsdata.Sequence, centroid tsdata.Sequence, distCfg distance.Config) ([]float64, error) {
	out := make([]float64, len(members))
	for i, m := range members {
		d, err := distance.Distance(m, centroid, distCfg)
		if err != nil {
			return nil, errorf("Deviations", "member=%d", err, i)
		}
		out[i] = d
	}
	return out, nil
}

// Classify maps a sigma value to a Classification per cfg's thresholds.
func Classify(sigma float64, cfg Config) Classification {
	switch {
	case sigma < cfg.SigmaGood:
		return Good
	case sigma < cfg.SigmaOutline:
		return Outline
	default:
		return Reclusterize
	}
}
