package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Map runs fn(i) for every i in [0,n) across a bounded worker pool and
// returns nil once every call has completed, or the first error any call
// returned (goroutines still in flight are allowed to finish; fn itself is
// responsible for checking ctx if early exit matters to it).
//
// fn MUST NOT mutate any shared state keyed by anything other than i — the
// pool gives no ordering guarantee about which worker processes which index
// or in what order. Callers that need a deterministic reduction (all of
// them, per the clustering engine's determinism requirement) should have fn
// write into a pre-sized slice at index i and reduce that slice afterwards
// in index order.
//
// n<=0 is a no-op. A single worker is used when n==1 or GOMAXPROCS==1, which
// skips pool setup entirely.
func Map(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	if n <= 0 {
		return nil
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			if err := fn(ctx, i); err != nil {
				return err
			}
		}
		return nil
	}

	jobs := make(chan int, n)
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := range jobs {
				if err := fn(gctx, i); err != nil {
					return err
				}
			}
			return nil
		})
	}

	return g.Wait()
}
