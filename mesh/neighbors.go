package mesh

import (
	"github.com/zibamira/filopodia-tool-sub002/scalar"
)

// AscendingNeighborsOf returns the active neighbors of v whose value lies in
// [lo, hi] (or the global range) and differs from the value of v, sorted by
// ascending (value, node).
//
// Both sides of v are kept: the result holds smaller and larger neighbors.
// Sweeps that need only strictly smaller or strictly larger neighbors (join
// and split tree construction) should call LowerNeighborsOf or
// UpperNeighborsOf instead.
func (m *Mesh[T]) AscendingNeighborsOf(v int, lo, hi T) []int {
	return m.AppendNeighbors(nil, v, lo, hi, scalar.Ascending, Both)
}

// DescendingNeighborsOf is AscendingNeighborsOf sorted by descending (value, node).
// It keeps both sides of v as well; see UpperNeighborsOf for the strict form.
func (m *Mesh[T]) DescendingNeighborsOf(v int, lo, hi T) []int {
	return m.AppendNeighbors(nil, v, lo, hi, scalar.Descending, Both)
}

// LowerNeighborsOf returns the in-range active neighbors with a value
// strictly smaller than that of v, sorted by ascending (value, node).
func (m *Mesh[T]) LowerNeighborsOf(v int, lo, hi T) []int {
	return m.AppendNeighbors(nil, v, lo, hi, scalar.Ascending, Lower)
}

// UpperNeighborsOf returns the in-range active neighbors with a value
// strictly greater than that of v, sorted by descending (value, node).
func (m *Mesh[T]) UpperNeighborsOf(v int, lo, hi T) []int {
	return m.AppendNeighbors(nil, v, lo, hi, scalar.Descending, Upper)
}

// NeighborsOf is the general form of the directional queries.
func (m *Mesh[T]) NeighborsOf(v int, lo, hi T, ord scalar.Ordering, side Side) []int {
	return m.AppendNeighbors(nil, v, lo, hi, ord, side)
}

// AppendNeighbors appends the neighbors of v selected by range and side to
// dst, keeping the appended tail sorted under ord, and returns the extended
// slice. Existing elements of dst are left untouched.
//
// Behavior per candidate offset:
//  1. Resolve the candidate vertex (bounds, interpretation, deformation); drop if outside.
//  2. Drop inactive vertices.
//  3. Drop values outside the effective range.
//  4. Drop values failing the side test against the source value.
//  5. Insert into the sorted tail.
//
// Returns dst unchanged when v is not a vertex of the lattice.
// Complexity: O(k²) worst case, k = len(Offsets()); no allocation when dst has capacity.
func (m *Mesh[T]) AppendNeighbors(dst []int, v int, lo, hi T, ord scalar.Ordering, side Side) []int {
	if v < 0 || v >= len(m.values) {
		return dst
	}
	r := m.queryRange(lo, hi)
	src := m.values[v]
	base := len(dst)

	var row []int32
	node := m.vertexToNode[v]
	cached := m.cache != nil && node != NoNode
	count := len(m.offsets)
	if cached {
		row = m.cache.row(int(node))
		count = len(row)
	}
	x, y, z := m.coord(v)

	for i := 0; i < count; i++ {
		var w int
		if cached {
			w = int(row[i])
		} else {
			w = m.resolve(v, x, y, z, m.offsets[i])
			if w == NoVertex {
				continue
			}
		}
		wn := int(m.vertexToNode[w])
		if wn == NoNode {
			continue
		}
		val := m.values[w]
		if !r.Contains(val) {
			continue
		}
		switch side {
		case Lower:
			if !(val < src) {
				continue
			}
		case Upper:
			if !(val > src) {
				continue
			}
		default:
			if val == src {
				continue
			}
		}

		// Insertion step: shift larger entries right until w fits.
		dst = append(dst, w)
		j := len(dst) - 1
		for j > base {
			p := dst[j-1]
			if !scalar.Precedes(ord, val, wn, m.values[p], int(m.vertexToNode[p])) {
				break
			}
			dst[j] = p
			j--
		}
		dst[j] = w
	}
	return dst
}

// TemporalNeighborsOf returns the active neighbors of v reached through
// offsets with a non-zero third component, in offset-table order.
// Deformation is applied under SpatioTemporal. The result is always empty
// under IndependentSlices.
func (m *Mesh[T]) TemporalNeighborsOf(v int) []int {
	if v < 0 || v >= len(m.values) || m.interp == IndependentSlices {
		return nil
	}
	x, y, z := m.coord(v)
	var out []int
	for _, o := range m.offsets {
		if o.DZ == 0 {
			continue
		}
		w := m.resolve(v, x, y, z, o)
		if w == NoVertex || m.vertexToNode[w] == NoNode {
			continue
		}
		out = append(out, w)
	}
	return out
}

// appendAdjacent appends every active neighbor of v in offset-table order,
// ignoring values.
func (m *Mesh[T]) appendAdjacent(dst []int, v int) []int {
	if node := m.vertexToNode[v]; m.cache != nil && node != NoNode {
		for _, w := range m.cache.row(int(node)) {
			dst = append(dst, int(w))
		}
		return dst
	}
	x, y, z := m.coord(v)
	for _, o := range m.offsets {
		w := m.resolve(v, x, y, z, o)
		if w == NoVertex || m.vertexToNode[w] == NoNode {
			continue
		}
		dst = append(dst, w)
	}
	return dst
}
