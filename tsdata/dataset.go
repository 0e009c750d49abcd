package tsdata

import "sort"

// Item is a stable (id, sequence) pair. IDs are supplied by the caller and
// are preserved verbatim through assignment, merging, and outlier
// separation; the engine never renames or reorders them implicitly.
type Item struct {
	ID  string
	Seq Sequence
}

// Dataset is an ordered collection of Items sharing a common nominal
// dimensionality D.
type Dataset struct {
	Items []Item
	D     int
}

// NewDataset builds a Dataset from items, taking D from the first item.
// It does not validate; call Validate explicitly before clustering.
func NewDataset(items []Item) Dataset {
	d := 0
	if len(items) > 0 {
		d = items[0].Seq.D
	}
	return Dataset{Items: items, D: d}
}

// Validate checks the invariants the engine requires before it will accept
// a Dataset: non-empty, every item has a non-empty unique ID, every
// sequence is individually valid, and every sequence agrees with ds.D.
func (ds Dataset) Validate() error {
	if len(ds.Items) == 0 {
		return errorf("Dataset.Validate", "no items", ErrEmptyDataset)
	}

	seen := make(map[string]struct{}, len(ds.Items))
	for _, it := range ds.Items {
		if it.ID == "" {
			return errorf("Dataset.Validate", "item with empty id", ErrEmptyID)
		}
		if _, dup := seen[it.ID]; dup {
			return errorf("Dataset.Validate", "id %q appears more than once", ErrDuplicateID, it.ID)
		}
		seen[it.ID] = struct{}{}

		if err := it.Seq.validate(); err != nil {
			return errorf("Dataset.Validate", "item %q", err, it.ID)
		}
		if it.Seq.D != ds.D {
			return errorf("Dataset.Validate", "item %q has D=%d, dataset D=%d", ErrDimensionMismatch, it.ID, it.Seq.D, ds.D)
		}
	}

	return nil
}

// SortedByID returns a new slice of ds.Items ordered by ascending ID. The
// engine uses this wherever spec-mandated determinism requires a stable,
// reproducible member ordering before a parallel reduction (see
// internal/parallel and the cluster package's concurrency notes).
func (ds Dataset) SortedByID() []Item {
	out := make([]Item, len(ds.Items))
	copy(out, ds.Items)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// IndexByID returns a lookup from item ID to its position in items.
func IndexByID(items []Item) map[string]int {
	idx := make(map[string]int, len(items))
	for i, it := range items {
		idx[it.ID] = i
	}
	return idx
}
