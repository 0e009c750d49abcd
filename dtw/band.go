package dtw

import "math"

// band decides, for a given DP cell (i,j) with 1<=i<=n, 1<=j<=m, whether
// that cell lies inside the configured Sakoe-Chiba band.
type band struct {
	n, m          int
	unconstrained bool
	radius        float64 // widened window, as a float for the scaled comparison below
}

// newBand resolves a band for sequences of length n and m given the
// caller's requested window. window<0 means unconstrained (full DTW).
//
// A banded window is always widened to at least ceil(|n-m|), per spec: the
// band must cover the start (0,0) and end (n-1,m-1) cells so a valid
// alignment path exists even when n!=m.
func newBand(n, m, window int) band {
	if window < 0 {
		return band{n: n, m: m, unconstrained: true}
	}

	minRadius := int(math.Ceil(math.Abs(float64(n - m))))
	w := window
	if w < minRadius {
		w = minRadius
	}
	return band{n: n, m: m, radius: float64(w)}
}

// contains reports whether DP cell (i,j) (1-based, i in [1,n], j in [1,m])
// lies within the band. The test is scaled by m/n per the Sakoe-Chiba
// definition for sequences of differing length: |i*m/n - j| <= w.
func (b band) contains(i, j int) bool {
	if b.unconstrained {
		return true
	}
	scaled := float64(i)*float64(b.m)/float64(b.n) - float64(j)
	return math.Abs(scaled) <= b.radius
}
