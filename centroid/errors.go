package centroid

import (
	"errors"
	"fmt"
)

// ErrNoMembers indicates a centroid was requested over an empty member set.
var ErrNoMembers = errors.New("centroid: no members supplied")

func errorf(method, format string, err error, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("centroid.%s: %s: %w", method, msg, err)
}
