package kmeans

import (
	"errors"
	"fmt"
)

// Sentinel errors for K-Means fitting.
var (
	// ErrInvalidConfig indicates a malformed Config.
	ErrInvalidConfig = errors.New("kmeans: invalid config")

	// ErrDegenerateInput indicates the member pool or initial centroid
	// set is too small to fit against (e.g. fewer members than centroids).
	ErrDegenerateInput = errors.New("kmeans: degenerate input")

	// ErrInternalInvariant indicates a cluster re-seeded in the previous
	// iteration (per the empty-cluster recovery rule) came back empty
	// again on the very next assignment pass. The engine guarantees this
	// cannot happen in normal operation; surfacing it rather than
	// re-seeding forever catches a genuine bug instead of looping.
	ErrInternalInvariant = errors.New("kmeans: internal invariant violated")
)

func errorf(method, format string, err error, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("kmeans.%s: %s: %w", method, msg, err)
}
