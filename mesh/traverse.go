package mesh

import (
	"context"
	"fmt"
)

// Walk is the result of a breadth-first traversal from one vertex.
type Walk struct {
	// Order lists the reached vertices in visit order, source first.
	Order []int
	// Depth holds the hop count per node index, -1 for unreached nodes.
	Depth []int
	// Parent holds the predecessor node per node index, NoNode for the
	// source and for unreached nodes.
	Parent []int
}

// Reached reports whether node n was visited.
func (w *Walk) Reached(n int) bool {
	return n >= 0 && n < len(w.Depth) && w.Depth[n] >= 0
}

// PathTo returns the node path from the source to n, or nil if n was not reached.
func (w *Walk) PathTo(n int) []int {
	if !w.Reached(n) {
		return nil
	}
	path := make([]int, w.Depth[n]+1)
	for i := len(path) - 1; i >= 0; i-- {
		path[i] = n
		n = w.Parent[n]
	}
	return path
}

// BFS walks the adjacency graph from src in hop order, entering only nodes
// whose value lies in the inclusive window [lo, hi] (a global range overrides
// it). The source is visited regardless of its value. maxDepth ≤ 0 means
// unlimited. Neighbors are visited in offset-table
// order, so the walk is deterministic.
//
// Returns ErrInactiveSource when src is not a node, and ctx.Err() when the
// context is canceled; the partial walk is returned alongside the error.
//
// Time:   O(N·k).
// Memory: O(N).
func (m *Mesh[T]) BFS(ctx context.Context, src int, lo, hi T, maxDepth int) (*Walk, error) {
	if src < 0 || src >= len(m.values) || m.vertexToNode[src] == NoNode {
		return nil, fmt.Errorf("mesh.BFS: %w: vertex %d", ErrInactiveSource, src)
	}
	n := len(m.nodeToVertex)
	w := &Walk{Depth: make([]int, n), Parent: make([]int, n)}
	for i := range w.Depth {
		w.Depth[i], w.Parent[i] = -1, NoNode
	}
	rng := m.queryRange(lo, hi)

	root := int(m.vertexToNode[src])
	w.Depth[root] = 0
	queue := []int{root}
	var buf []int
	for head := 0; head < len(queue); head++ {
		if err := ctx.Err(); err != nil {
			return w, err
		}
		cur := queue[head]
		v := int(m.nodeToVertex[cur])
		w.Order = append(w.Order, v)
		if maxDepth > 0 && w.Depth[cur] >= maxDepth {
			continue
		}
		buf = m.appendAdjacent(buf[:0], v)
		for _, u := range buf {
			next := int(m.vertexToNode[u])
			if w.Depth[next] >= 0 || !rng.Contains(m.values[u]) {
				continue
			}
			w.Depth[next] = w.Depth[cur] + 1
			w.Parent[next] = cur
			queue = append(queue, next)
		}
	}
	return w, nil
}
