// Package tsdata defines the data model the clustering engine consumes:
// numeric sequences (dense or sparse), labelled items, and datasets built
// from them.
//
// tsdata is deliberately the engine's only accepted input shape. Loading
// observations from JSON, writing CSV/BigQuery reports, and computing
// business KPIs (ARPU/ARPPU) are treated as external collaborators and are
// not part of this package or this module.
//
// Sequences are immutable once built: nothing in this module mutates a
// Sequence or Item after construction. Centroids are represented as
// ordinary dense Sequence values too, but are owned and rebuilt wholesale
// (never mutated in place) by the kmeans/centroid packages each
// iteration.
package tsdata
