// Package quality computes a cluster's spread (sigma, the root-mean-square
// deviation of its members from the centroid) and classifies the cluster
// as Good, Outline, or Reclusterize against two configured thresholds.
//
// Per-member deviations are accumulated into a pre-sized, index-ordered
// buffer and reduced with gonum/floats.Sum before the final square root,
// so the result is bit-reproducible regardless of how the deviations were
// computed upstream (e.g. in parallel).
package quality
