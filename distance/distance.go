package distance

import (
	"gonum.org/v1/gonum/floats"

	"github.com/dtwclust/dtwclust/dtw"
	"github.com/dtwclust/dtwclust/tsdata"
)

// Tag selects the distance kernel a Config dispatches to.
type Tag int

const (
	// Euclidean is the L2 norm over aligned dense indices.
	Euclidean Tag = iota
	// DtwFull is unconstrained Dynamic Time Warping.
	DtwFull
	// DtwBanded is Dynamic Time Warping constrained to a Sakoe-Chiba band.
	DtwBanded
)

// Config selects a distance kernel and its parameters. Window is only
// consulted when Tag==DtwBanded, and must be >= 1.
type Config struct {
	Tag    Tag
	Window int
}

// Validate checks that cfg names a known Tag with coherent parameters.
func (cfg Config) Validate() error {
	switch cfg.Tag {
	case Euclidean, DtwFull:
		return nil
	case DtwBanded:
		if cfg.Window < 1 {
			return errorf("Validate", "window=%d", ErrBadWindow, cfg.Window)
		}
		return nil
	default:
		return errorf("Validate", "tag=%d", ErrUnknownTag, cfg.Tag)
	}
}

// Distance computes the scalar distance between a and b per cfg. For
// DTW-family tags, the alignment path is never requested: the dispatcher
// only ever needs the scalar, so DTW runs in its cheaper Rolling memory
// mode.
func Distance(a, b tsdata.Sequence, cfg Config) (float64, error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}
	if a.D != b.D {
		return 0, errorf("Distance", "a.D=%d b.D=%d", ErrDimensionMismatch, a.D, b.D)
	}

	switch cfg.Tag {
	case Euclidean:
		da, db := a.ToDense(), b.ToDense()
		return floats.Distance(da, db, 2), nil

	case DtwFull:
		opts := dtw.DefaultOptions()
		dist, _, err := dtw.DTW(a.ToDense(), b.ToDense(), &opts)
		if err != nil {
			return 0, errorf("Distance", "DtwFull", err)
		}
		return dist, nil

	case DtwBanded:
		opts := dtw.DefaultOptions()
		opts.Window = cfg.Window
		dist, _, err := dtw.DTW(a.ToDense(), b.ToDense(), &opts)
		if err != nil {
			return 0, errorf("Distance", "DtwBanded window=%d", err, cfg.Window)
		}
		return dist, nil

	default:
		return 0, errorf("Distance", "tag=%d", ErrUnknownTag, cfg.Tag)
	}
}
