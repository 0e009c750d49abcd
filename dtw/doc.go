// Package dtw computes Dynamic Time Warping (DTW) distances between
// numeric time series, with an optional alignment path and a choice of
// memory/time tradeoffs.
//
// What is DTW?
//
//	DTW finds the minimum-cost monotone alignment between two sequences by
//	warping the time axis. Step cost is the squared difference of aligned
//	values; the reported distance is the square root of the total path
//	cost, matching ordinary Euclidean distance when n==m and no warping is
//	needed.
//
// Key features:
//   - FullMatrix mode: O(N*M) time & memory, required for ReturnPath.
//   - Rolling mode: O(M) memory (two rows sized by len(b)), distance only;
//     the rows are not sized by the shorter of the two sequences.
//   - Sakoe-Chiba band (|i*M/N - j| <= w), auto-widened to ceil(|N-M|) so a
//     path always exists when N != M.
//   - on-demand alignment path (ReturnPath=true) with a deterministic
//     tie-break order: diagonal, then left, then up.
//
// Usage:
//
//	import "github.com/dtwclust/dtwclust/dtw"
//
//	opts := dtw.Options{
//	  Window:     10,              // Sakoe-Chiba band +/-10
//	  ReturnPath: true,            // also return the warp path
//	  MemoryMode: dtw.FullMatrix,  // required when ReturnPath is set
//	}
//	dist, path, err := dtw.DTW(a, b, &opts)
//
// Performance:
//
//   - Time:   O(N*M)
//   - Memory: O(N*M) (FullMatrix) or O(M) (Rolling)
package dtw
