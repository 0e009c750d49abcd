// Package outlier strips members whose deviation from their cluster's
// centroid exceeds 3*sigma, appending them to an outlier pool, then
// recomputes the cluster's centroid, sigma, and classification exactly
// once — no cascading re-strip.
package outlier
