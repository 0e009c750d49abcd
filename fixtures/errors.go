package fixtures

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a requested sequence length n < 1.
var ErrBadSize = errors.New("fixtures: invalid size/length")

func errorf(method, format string, err error, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("fixtures.%s: %s: %w", method, msg, err)
}
