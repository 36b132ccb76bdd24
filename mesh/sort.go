package mesh

import (
	"slices"

	"github.com/zibamira/filopodia-tool-sub002/scalar"
)

// SortNodeIndices computes the ascending (value, node) order over all nodes
// and caches it. Call it again after the backing values change; nothing
// invalidates the cache implicitly. The returned slice is the cache itself
// and must not be modified.
// Complexity: O(N log N) time, O(N) memory.
func (m *Mesh[T]) SortNodeIndices() []int {
	order := make([]int, len(m.nodeToVertex))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		return scalar.Compare(scalar.Ascending, m.values[m.nodeToVertex[a]], a, m.values[m.nodeToVertex[b]], b)
	})
	m.sorted = order
	m.logger.Debug("mesh nodes sorted", "nodes", len(order))
	return order
}

// SortedNodes returns the order computed by the last SortNodeIndices call,
// or nil if none was made.
func (m *Mesh[T]) SortedNodes() []int { return m.sorted }

// MinOf returns the active vertex of vs with the smallest (value, node).
// Inactive and out-of-range entries are ignored; ok is false when none remain.
// Complexity: O(len(vs)).
func (m *Mesh[T]) MinOf(vs []int) (v int, ok bool) {
	return m.extremum(vs, scalar.Ascending)
}

// MaxOf returns the active vertex of vs with the largest (value, node).
func (m *Mesh[T]) MaxOf(vs []int) (v int, ok bool) {
	return m.extremum(vs, scalar.Descending)
}

func (m *Mesh[T]) extremum(vs []int, ord scalar.Ordering) (int, bool) {
	best, bestNode := NoVertex, NoNode
	for _, v := range vs {
		n := m.NodeOf(v)
		if n == NoNode {
			continue
		}
		if best == NoVertex || scalar.Precedes(ord, m.values[v], n, m.values[best], bestNode) {
			best, bestNode = v, n
		}
	}
	return best, best != NoVertex
}
