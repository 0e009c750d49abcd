// SPDX-License-Identifier: MIT
package fixtures

import (
	"math"
	"math/rand"
)

// BuildSine returns a length-n sample of amp*sin(2*pi*freq*i/n + phase),
// plus independent Gaussian noise of standard deviation sigma. freq is in
// cycles over the full sequence length (freq=1 means one full period
// across all n samples). seed makes the noise draw reproducible.
func BuildSine(n int, freq, phase, amp, sigma float64, seed int64) ([]float64, error) {
	if n < 1 {
		return nil, errorf("BuildSine", "n=%d", ErrBadSize, n)
	}
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		theta := 2*math.Pi*freq*float64(i)/float64(n) + phase
		v := amp * math.Sin(theta)
		if sigma > 0 {
			v += sigma * rng.NormFloat64()
		}
		out[i] = v
	}
	return out, nil
}

// BuildFlatLevel returns a length-n sequence holding level at every
// index, plus independent Gaussian noise of standard deviation sigma.
func BuildFlatLevel(n int, level, sigma float64, seed int64) ([]float64, error) {
	if n < 1 {
		return nil, errorf("BuildFlatLevel", "n=%d", ErrBadSize, n)
	}
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		v := level
		if sigma > 0 {
			v += sigma * rng.NormFloat64()
		}
		out[i] = v
	}
	return out, nil
}

// BuildGroup calls gen(seed + int64(i)) for i in [0,count) and returns the
// count generated sequences. Each member gets a distinct derived seed so
// the group is internally varied yet fully reproducible for a fixed base
// seed.
func BuildGroup(count int, seed int64, gen func(memberSeed int64) ([]float64, error)) ([][]float64, error) {
	out := make([][]float64, count)
	for i := 0; i < count; i++ {
		seq, err := gen(seed + int64(i))
		if err != nil {
			return nil, err
		}
		out[i] = seq
	}
	return out, nil
}

// InjectOutliers overwrites len(at) sequences in group, in place, with a
// copy of base shifted by magnitude standard deviations of base's own
// sample standard deviation along every index — producing points that
// sit far from whatever centroid the rest of group clusters around. Used
// to build the 3-sigma outlier-strip scenario.
func InjectOutliers(group [][]float64, at []int, base []float64, magnitude float64) {
	sd := sampleStdDev(base)
	shift := magnitude * sd
	for _, idx := range at {
		if idx < 0 || idx >= len(group) {
			continue
		}
		shifted := make([]float64, len(base))
		for i, v := range base {
			shifted[i] = v + shift
		}
		group[idx] = shifted
	}
}

func sampleStdDev(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var mean float64
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))

	var sumSq float64
	for _, x := range xs {
		d := x - mean
		sumSq += d * d
	}
	variance := sumSq / float64(len(xs))
	if variance <= 0 {
		return 1 // degenerate constant series: pick a non-zero unit so InjectOutliers still moves the point
	}
	return math.Sqrt(variance)
}
