package cluster

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per taxonomy kind named by the engine's error
// handling design: InvalidConfig, InvalidShape, DegenerateInput,
// InternalInvariant.
var (
	// ErrInvalidConfig indicates a Config field is out of range.
	ErrInvalidConfig = errors.New("cluster: invalid config")

	// ErrInvalidShape indicates the dataset is empty or malformed.
	ErrInvalidShape = errors.New("cluster: invalid dataset shape")

	// ErrDegenerateInput indicates there are fewer items than KMin.
	ErrDegenerateInput = errors.New("cluster: degenerate input")

	// ErrInternalInvariant indicates an invariant the engine itself
	// guarantees was violated; it should never surface in practice.
	ErrInternalInvariant = errors.New("cluster: internal invariant violated")
)

func errorf(method, format string, err error, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("cluster.%s: %s: %w", method, msg, err)
}
