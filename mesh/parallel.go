package mesh

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ForEachNode calls fn for every node, splitting the node range into
// disjoint chunks processed by up to workers goroutines (GOMAXPROCS when
// workers ≤ 0). fn may call any query method; it must not reconfigure the
// mesh. The first error returned by fn cancels the sweep and is returned.
//
// Enable the offset cache before sweeping when fn issues neighbor queries;
// queries are read-only either way.
func (m *Mesh[T]) ForEachNode(ctx context.Context, workers int, fn func(ctx context.Context, node int) error) error {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	n := len(m.nodeToVertex)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += cacheChunk {
		hi := min(lo+cacheChunk, n)
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			for node := lo; node < hi; node++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				if err := fn(gctx, node); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
