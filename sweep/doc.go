// Package sweep runs K-Means (via kmeanspp + kmeans) once for every k in
// a configured range, scores each resulting clustering by the
// size-weighted mean of its per-cluster sigma, and returns the
// minimum-scoring clustering, ties broken toward the smaller k.
package sweep
