// Package distance dispatches a pairwise scalar distance over two
// tsdata.Sequence values given a tag and parameters, unifying Euclidean
// distance and full/banded DTW behind one call surface.
//
// This is a tagged-variant dispatcher, not a polymorphic interface
// hierarchy: the caller picks a Tag, and Distance routes to the matching
// kernel. Euclidean distance never allocates beyond a dense fill buffer;
// DTW variants delegate to package dtw without requesting the alignment
// path, since the dispatcher only ever needs a scalar.
package distance
