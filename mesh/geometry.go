package mesh

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/zibamira/filopodia-tool-sub002/lattice"
)

// Dims returns the lattice extent.
func (m *Mesh[T]) Dims() lattice.Dims { return m.dims }

// VoxelSize returns the physical voxel size of the source lattice.
func (m *Mesh[T]) VoxelSize() r3.Vec { return m.voxel }

// NumVertices returns NX·NY·NZ.
func (m *Mesh[T]) NumVertices() int { return len(m.values) }

// NumNodes returns the number of active vertices.
func (m *Mesh[T]) NumNodes() int { return len(m.nodeToVertex) }

// InBounds reports whether (x, y, z) lies inside the lattice.
// Complexity: O(1).
func (m *Mesh[T]) InBounds(x, y, z int) bool {
	return x >= 0 && x < m.dims.NX && y >= 0 && y < m.dims.NY && z >= 0 && z < m.dims.NZ
}

// index maps an in-bounds (x, y, z) to x + y·NX + z·NX·NY.
func (m *Mesh[T]) index(x, y, z int) int {
	return x + m.dims.NX*(y+m.dims.NY*z)
}

// coord is the inverse of index for 0 ≤ v < NumVertices.
func (m *Mesh[T]) coord(v int) (x, y, z int) {
	x = v % m.dims.NX
	v /= m.dims.NX
	return x, v % m.dims.NY, v / m.dims.NY
}

// VertexAt converts a coordinate to its linear vertex index.
// Returns NoVertex when c lies outside the lattice.
// Complexity: O(1).
func (m *Mesh[T]) VertexAt(c Coord) int {
	if !m.InBounds(c.X, c.Y, c.Z) {
		return NoVertex
	}
	return m.index(c.X, c.Y, c.Z)
}

// CoordOf converts a linear vertex index to its coordinate.
// Returns false when v is not a vertex of the lattice.
// Complexity: O(1).
func (m *Mesh[T]) CoordOf(v int) (Coord, bool) {
	if v < 0 || v >= len(m.values) {
		return Coord{}, false
	}
	x, y, z := m.coord(v)
	return Coord{X: x, Y: y, Z: z}, true
}

// VertexOf returns the vertex carrying node n, or NoVertex when n is out of range.
// Complexity: O(1).
func (m *Mesh[T]) VertexOf(n int) int {
	if n < 0 || n >= len(m.nodeToVertex) {
		return NoVertex
	}
	return int(m.nodeToVertex[n])
}

// NodeOf returns the node index of vertex v, or NoNode when v is inactive or out of range.
// Complexity: O(1).
func (m *Mesh[T]) NodeOf(v int) int {
	if v < 0 || v >= len(m.vertexToNode) {
		return NoNode
	}
	return int(m.vertexToNode[v])
}

// IsActive reports whether v is a vertex carrying a node.
func (m *Mesh[T]) IsActive(v int) bool {
	return m.NodeOf(v) != NoNode
}
