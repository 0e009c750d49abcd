// Package merge detects and collapses near-duplicate clusters: clusters
// whose centroids lie closer than a configured threshold are unioned,
// their centroid and spread recomputed over the combined membership.
//
// Merging repeats pass over pass until a full pass produces no merges,
// scanning candidate pairs in a fixed, size-then-id deterministic order
// so the result never depends on map iteration or goroutine scheduling.
package merge
