package quality

import (
	"errors"
	"fmt"
)

// Sentinel errors for quality computation.
var (
	// ErrInvalidConfig indicates a malformed threshold configuration.
	ErrInvalidConfig = errors.New("quality: invalid config")

	// ErrNoMembers indicates sigma was requested over an empty cluster.
	ErrNoMembers = errors.New("quality: no members supplied")
)

func errorf(method, format string, err error, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("quality.%s: %s: %w", method, msg, err)
}
