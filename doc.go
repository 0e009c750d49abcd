// Package dtwclust is a time-series clustering engine: it partitions a
// collection of equal-length numeric sequences into groups that follow
// similar temporal shapes, then recursively refines the partition until
// every surviving group meets a configurable tightness criterion.
//
// What is dtwclust?
//
//	A small, dependency-light engine built from:
//
//	  • A Dynamic Time Warping kernel, full and Sakoe-Chiba banded
//	  • A DTW Barycenter Averaging centroid, alongside a plain Euclidean mean
//	  • A parallel-assignment K-Means fitter seeded by K-Means++
//	  • A meta-algorithm that sweeps candidate cluster counts, merges
//	    near-duplicate centroids, strips 3-sigma outliers, and recurses on
//	    groups that fail a quality threshold
//
// Why dtwclust?
//
//   - In-memory only    — no I/O, no wire protocol, no persistence
//   - Deterministic     — a seeded PRNG and index-ordered reductions make
//     two runs over the same input bit-identical
//   - Parallel where it's safe — per-member assignment and per-member
//     distance scans run across a bounded worker pool; everything that
//     touches shared state (centroid rebuilds, classification, merging,
//     recursion) stays sequential
//
// Everything lives under small, single-responsibility subpackages:
//
//	tsdata/    — the (id, sequence) data model and dataset validation
//	dtw/       — the DP alignment kernel (C1)
//	distance/  — tagged dispatch over Euclidean/DtwFull/DtwBanded (C2)
//	centroid/  — Euclidean-mean and DBA centroid updates (C3)
//	kmeanspp/  — distance-aware seeded initialisation (C4)
//	kmeans/    — the assign/update/converge state machine (C5)
//	quality/   — per-cluster sigma and Good/Outline/Reclusterize tagging (C6)
//	merge/     — near-duplicate centroid union (C7)
//	outlier/   — 3-sigma member stripping (C8)
//	sweep/     — the multi-k outer loop (C9)
//	cluster/   — the top-level Config/Run and recursive refinement driver (C10)
//	fixtures/  — seeded synthetic dataset generators for tests and demos
//
// Quick ASCII picture of the data flow:
//
//	dataset ─▶ cluster.Run ─▶ sweep ─▶ kmeans ─▶ {distance, centroid}
//	                       └─▶ quality ─▶ merge ─▶ outlier ─▶ recurse or emit
//
// See cluster.Run for the single entry point; the cluster package's tests
// drive it end to end over fixtures-generated datasets.
//
//	go get github.com/dtwclust/dtwclust
package dtwclust
