package centroid

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/dtwclust/dtwclust/dtw"
	"github.com/dtwclust/dtwclust/tsdata"
)

// Strategy selects which centroid-update algorithm a caller wants.
type Strategy int

const (
	// EuclideanMeanStrategy rebuilds a centroid as the per-dimension
	// arithmetic mean of its members.
	EuclideanMeanStrategy Strategy = iota
	// DBAStrategy rebuilds a centroid via DTW Barycenter Averaging.
	DBAStrategy
)

// EuclideanMean returns the per-dimension arithmetic mean of members.
// Absent sparse indices contribute zero to both the sum and the
// denominator, preserving pad-to-dense semantics.
func EuclideanMean(members []tsdata.Sequence) (tsdata.Sequence, error) {
	if len(members) == 0 {
		return tsdata.Sequence{}, errorf("EuclideanMean", "members=0", ErrNoMembers)
	}
	d := members[0].D
	out := make([]float64, d)
	buf := make([]float64, len(members))
	for dim := 0; dim < d; dim++ {
		for i, m := range members {
			buf[i] = m.At(dim)
		}
		out[dim] = stat.Mean(buf, nil)
	}
	return tsdata.NewDense(out), nil
}

// DBA computes a DTW Barycenter Average over members, starting from init
// (typically an existing member sequence) and refining for iters passes.
// Each pass aligns every member against the current reference with a
// full-matrix, path-returning DTW call, then recomputes each reference
// index as the mean of every member value that aligned to it. An index
// with no aligned values in a given pass retains its previous value.
func DBA(members []tsdata.Sequence, init tsdata.Sequence, iters int) (tsdata.Sequence, error) {
	if len(members) == 0 {
		return tsdata.Sequence{}, errorf("DBA", "members=0", ErrNoMembers)
	}
	d := init.D
	ref := init.ToDense()

	opts := dtw.DefaultOptions()
	opts.ReturnPath = true
	opts.MemoryMode = dtw.FullMatrix

	for pass := 0; pass < iters; pass++ {
		buckets := make([][]float64, d)

		for _, m := range members {
			_, path, err := dtw.DTW(ref, m.ToDense(), &opts)
			if err != nil {
				return tsdata.Sequence{}, errorf("DBA", "pass=%d", err, pass)
			}
			for _, c := range path {
				buckets[c.I] = append(buckets[c.I], m.At(c.J))
			}
		}

		next := make([]float64, d)
		for dim := 0; dim < d; dim++ {
			if len(buckets[dim]) == 0 {
				next[dim] = ref[dim]
				continue
			}
			next[dim] = floats.Sum(buckets[dim]) / float64(len(buckets[dim]))
		}
		ref = next
	}

	return tsdata.NewDense(ref), nil
}
