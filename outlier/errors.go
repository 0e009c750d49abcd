package outlier

import (
	"errors"
	"fmt"
)

// ErrEmptyCluster indicates Strip was called on a cluster with no members.
var ErrEmptyCluster = errors.New("outlier: cluster has no members")

func errorf(method, format string, err error, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("outlier.%s: %s: %w", method, msg, err)
}
