package distance

import (
	"errors"
	"fmt"
)

// Sentinel errors for distance dispatch.
var (
	// ErrUnknownTag indicates a Tag value outside the known set.
	ErrUnknownTag = errors.New("distance: unknown tag")

	// ErrBadWindow indicates DtwBanded was requested with window < 1.
	ErrBadWindow = errors.New("distance: DtwBanded requires window >= 1")

	// ErrDimensionMismatch indicates the two sequences have different D.
	ErrDimensionMismatch = errors.New("distance: sequences have mismatched dimension")
)

func errorf(method, format string, err error, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("distance.%s: %s: %w", method, msg, err)
}
