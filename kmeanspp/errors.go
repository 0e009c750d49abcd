package kmeanspp

import (
	"errors"
	"fmt"
)

// Sentinel errors for K-Means++ seeding.
var (
	// ErrInvalidK indicates k <= 0.
	ErrInvalidK = errors.New("kmeanspp: k must be >= 1")

	// ErrNotEnoughMembers indicates fewer members than the requested k.
	ErrNotEnoughMembers = errors.New("kmeanspp: fewer members than k")
)

func errorf(method, format string, err error, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("kmeanspp.%s: %s: %w", method, msg, err)
}
