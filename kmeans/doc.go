// Package kmeans fits a K-Means model over a member pool given initial
// centroids, driving the Seeded -> Assigning -> Updating -> Converged /
// Exhausted state machine described by the clustering engine.
//
// Assignment is embarrassingly parallel over members via
// internal/parallel.Map; the reduction back into a deterministic,
// index-aligned assignment slice never depends on goroutine completion
// order. Centroid update delegates to package centroid and runs
// sequentially over clusters, since the number of clusters is small and
// each update may itself run several DBA passes.
package kmeans
