package tsdata

import "math"

// Sequence is an ordered, finite numeric series of nominal length D.
//
// Exactly one of Dense or Sparse is populated:
//   - Dense holds len(Dense)==D values directly.
//   - Sparse maps index -> value; any index in [0,D) absent from the map is
//     treated as zero.
//
// Sequence is immutable after construction; nothing in this module writes
// through a Sequence's slice or map.
type Sequence struct {
	Dense  []float64
	Sparse map[int]float64
	D      int
}

// NewDense builds a dense Sequence from values, taking len(values) as D.
func NewDense(values []float64) Sequence {
	return Sequence{Dense: values, D: len(values)}
}

// NewSparse builds a sparse Sequence of nominal length d from an index->value
// map. Absent indices read as zero via At/ToDense.
func NewSparse(d int, values map[int]float64) Sequence {
	return Sequence{Sparse: values, D: d}
}

// IsSparse reports whether s was constructed via NewSparse.
func (s Sequence) IsSparse() bool {
	return s.Sparse != nil
}

// At returns the value at index i, treating an absent sparse index as zero.
// Callers must ensure 0 <= i < s.D; At does not bounds-check a dense slice.
func (s Sequence) At(i int) float64 {
	if s.IsSparse() {
		return s.Sparse[i] // zero value on absent key, matching map semantics
	}
	return s.Dense[i]
}

// ToDense returns a dense copy of s, filling absent sparse indices with zero.
// Calling ToDense on an already-dense Sequence returns a defensive copy.
func (s Sequence) ToDense() []float64 {
	out := make([]float64, s.D)
	if !s.IsSparse() {
		copy(out, s.Dense)
		return out
	}
	for idx, v := range s.Sparse {
		if idx >= 0 && idx < s.D {
			out[idx] = v
		}
	}
	return out
}

// validate checks the shape invariant (D>0) and that every present value is
// finite. It does not check cross-sequence D consistency; Dataset.Validate
// does that.
func (s Sequence) validate() error {
	if s.D <= 0 {
		return ErrEmptySequence
	}
	if s.IsSparse() {
		for idx, v := range s.Sparse {
			if idx < 0 || idx >= s.D {
				return ErrDimensionMismatch
			}
			if !isFinite(v) {
				return ErrNonFiniteValue
			}
		}
		return nil
	}
	if len(s.Dense) != s.D {
		return ErrDimensionMismatch
	}
	for _, v := range s.Dense {
		if !isFinite(v) {
			return ErrNonFiniteValue
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
