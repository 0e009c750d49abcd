package tsdata

import (
	"errors"
	"fmt"
)

// Sentinel errors for tsdata validation. Callers branch with errors.Is;
// messages are never matched as strings.
var (
	// ErrEmptyDataset indicates a Dataset with zero items.
	ErrEmptyDataset = errors.New("tsdata: dataset has no items")

	// ErrEmptySequence indicates a Sequence of nominal length zero.
	ErrEmptySequence = errors.New("tsdata: sequence must be non-empty")

	// ErrDimensionMismatch indicates two or more sequences disagree on D.
	ErrDimensionMismatch = errors.New("tsdata: inconsistent sequence length")

	// ErrNonFiniteValue indicates a NaN or +/-Inf value in a sequence.
	ErrNonFiniteValue = errors.New("tsdata: non-finite value in sequence")

	// ErrDuplicateID indicates two items in a Dataset share the same ID.
	ErrDuplicateID = errors.New("tsdata: duplicate item id")

	// ErrEmptyID indicates an item with an empty string ID.
	ErrEmptyID = errors.New("tsdata: item id is empty")
)

// errorf wraps err with a short method-name prefix, mirroring the
// teacher's builderErrorf convention: a deterministic "<method>: <msg>"
// prefix while preserving the sentinel for errors.Is via %w.
func errorf(method, format string, err error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
