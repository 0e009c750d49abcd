// Package kmeanspp seeds initial centroids for K-Means via the K-Means++
// algorithm: an RNG-driven uniform first pick, then k-1 rounds of
// squared-distance-weighted sampling biased away from already-chosen
// centroids.
//
// The PRNG is always a single *rand.Rand built from the caller's seed and
// threaded explicitly — never a package-level/global source — matching
// this module's determinism policy: identical seed and inputs always
// produce identical centroids.
package kmeanspp
