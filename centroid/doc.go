// Package centroid computes a cluster's representative sequence from its
// member sequences, under one of two strategies: a per-dimension
// arithmetic mean, or DTW Barycenter Averaging (DBA).
//
// Both strategies return a dense tsdata.Sequence — a centroid is never
// itself sparse, even when every member is, since the mean of sparse
// members is generally dense.
package centroid
