// Package parallel provides a small bounded worker pool for embarrassingly
// parallel, read-only maps over an index range.
//
// It exists because the clustering engine (see the top-level cluster
// package) has exactly two hot loops that are safe to parallelize —
// per-member centroid assignment (package kmeans) and nearest-centroid
// distance scans during seeding (package kmeanspp) — and both need the
// same shape: fan out pure work over [0,n), collect results back into a
// pre-sized, index-addressed slice so that downstream reductions stay
// bit-reproducible regardless of goroutine completion order.
//
// Map schedules work onto a bounded pool of goroutines pulling from a
// shared jobs channel (a classic Go worker pool: the runtime balances load
// across workers, so a channel of individual indices behaves like a
// work-stealing scheduler without any custom stealing logic) and uses
// golang.org/x/sync/errgroup to wait for completion and propagate the
// first error encountered.
package parallel
