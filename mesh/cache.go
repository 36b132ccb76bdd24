package mesh

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// cacheChunk is the number of nodes one worker resolves per task.
const cacheChunk = 4096

// offsetCache stores, per node, the resolved active neighbor vertices in
// offset-table order (CSR layout: row n is verts[start[n]:start[n+1]]).
type offsetCache struct {
	start []int
	verts []int32
}

func (c *offsetCache) row(n int) []int32 {
	return c.verts[c.start[n]:c.start[n+1]]
}

// EnableOffsetCache precomputes the neighbor candidates of every node so
// repeated queries skip bounds, interpretation and deformation checks.
// Query results are identical with and without the cache. Configuration
// setters rebuild an enabled cache.
// Stage 1 (Count): per-node candidate counts, in parallel over node chunks.
// Stage 2 (Prefix): row offsets.
// Stage 3 (Fill): candidate vertices, in parallel over the same chunks.
// Returns ctx.Err() if cancelled; the previous cache state is then kept.
// Complexity: O(N·k) time and memory.
func (m *Mesh[T]) EnableOffsetCache(ctx context.Context) error {
	n := len(m.nodeToVertex)
	start := make([]int, n+1)

	// A temporary mesh view without cache so resolution is computed fresh.
	saved := m.cache
	m.cache = nil
	defer func() {
		if m.cache == nil {
			m.cache = saved
		}
	}()

	err := m.forChunks(ctx, n, func(lo, hi int) {
		var buf []int
		for node := lo; node < hi; node++ {
			buf = m.appendAdjacent(buf[:0], int(m.nodeToVertex[node]))
			start[node+1] = len(buf)
		}
	})
	if err != nil {
		return err
	}
	for i := 1; i <= n; i++ {
		start[i] += start[i-1]
	}
	verts := make([]int32, start[n])
	err = m.forChunks(ctx, n, func(lo, hi int) {
		var buf []int
		for node := lo; node < hi; node++ {
			buf = m.appendAdjacent(buf[:0], int(m.nodeToVertex[node]))
			row := verts[start[node]:start[node+1]]
			for i, w := range buf {
				row[i] = int32(w)
			}
		}
	})
	if err != nil {
		return err
	}

	m.cache = &offsetCache{start: start, verts: verts}
	m.logger.Debug("mesh offset cache built", "nodes", n, "entries", len(verts))
	return nil
}

// DisableOffsetCache drops the cached candidate table.
func (m *Mesh[T]) DisableOffsetCache() {
	m.cache = nil
}

// OffsetCacheEnabled reports whether queries use the cached candidate table.
func (m *Mesh[T]) OffsetCacheEnabled() bool { return m.cache != nil }

// forChunks runs fn over [0, n) split into disjoint chunks on GOMAXPROCS workers.
func (m *Mesh[T]) forChunks(ctx context.Context, n int, fn func(lo, hi int)) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for lo := 0; lo < n; lo += cacheChunk {
		hi := min(lo+cacheChunk, n)
		if err := gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(lo, hi)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
