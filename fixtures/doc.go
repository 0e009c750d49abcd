// Package fixtures generates small, seeded, deterministic time-series
// datasets for tests and demos: phase-shifted sinusoids, flat constant
// levels, and 3-sigma outlier injection.
//
// It plays the same role the teacher's own builder package plays for
// graph topologies (BuildPulse, BuildAudioChirp): a library never ships
// a test suite built entirely from hand-written literal slices once the
// domain is numeric sequences rather than small fixed graphs.
//
//	go get github.com/dtwclust/dtwclust/fixtures
package fixtures
