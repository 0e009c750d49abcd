package cluster

import "log"

// Logger receives informational diagnostics (per-recursion sigma
// distributions, chosen k per level). It is never required for
// correctness: Run never branches on anything a Logger does.
type Logger interface {
	Logf(format string, args ...any)
}

// StdLogger adapts the standard library's log package to Logger.
type StdLogger struct{}

// Logf writes via log.Printf.
func (StdLogger) Logf(format string, args ...any) {
	log.Printf(format, args...)
}

// nopLogger is used internally when Config.Logger is nil, so call sites
// never need a nil check.
type nopLogger struct{}

func (nopLogger) Logf(string, ...any) {}
