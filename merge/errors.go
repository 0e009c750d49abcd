package merge

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig indicates a negative duplicate threshold.
var ErrInvalidConfig = errors.New("merge: invalid config")

func errorf(method, format string, err error, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("merge.%s: %s: %w", method, msg, err)
}
