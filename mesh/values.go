package mesh

import (
	"fmt"

	"github.com/zibamira/filopodia-tool-sub002/scalar"
)

// ValueAt returns the value stored at vertex v.
// Returns false when v is not a vertex of the lattice.
// Complexity: O(1).
func (m *Mesh[T]) ValueAt(v int) (T, bool) {
	if v < 0 || v >= len(m.values) {
		var zero T
		return zero, false
	}
	return m.values[v], true
}

// NodeValue returns the value of node n.
// Returns false when n is out of range.
// Complexity: O(1).
func (m *Mesh[T]) NodeValue(n int) (T, bool) {
	if n < 0 || n >= len(m.nodeToVertex) {
		var zero T
		return zero, false
	}
	return m.values[m.nodeToVertex[n]], true
}

// ValueRange returns the range the source field reported, if any.
func (m *Mesh[T]) ValueRange() (scalar.Range[T], bool) {
	return m.known, m.hasKnown
}

// SetGlobalRange makes r override the bounds passed to every neighbor query.
// Returns scalar.ErrInvalidRange when r.Min > r.Max or a bound is NaN.
func (m *Mesh[T]) SetGlobalRange(r scalar.Range[T]) error {
	if !r.Valid() {
		return fmt.Errorf("mesh.SetGlobalRange: %w: %s", scalar.ErrInvalidRange, r)
	}
	m.global, m.hasGlobal = r, true
	m.logger.Debug("mesh global range set", "range", r.String())
	return nil
}

// ClearGlobalRange restores per-query bounds.
func (m *Mesh[T]) ClearGlobalRange() {
	m.hasGlobal = false
}

// GlobalRange returns the override range, if set.
func (m *Mesh[T]) GlobalRange() (scalar.Range[T], bool) {
	return m.global, m.hasGlobal
}

// queryRange resolves the bounds effective for one query.
func (m *Mesh[T]) queryRange(lo, hi T) scalar.Range[T] {
	if m.hasGlobal {
		return m.global
	}
	return scalar.Range[T]{Min: lo, Max: hi}
}
