package sweep

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig indicates a malformed sweep range.
var ErrInvalidConfig = errors.New("sweep: invalid config")

func errorf(method, format string, err error, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("sweep.%s: %s: %w", method, msg, err)
}
