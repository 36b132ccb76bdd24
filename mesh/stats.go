package mesh

// Stats reports vertex, node, offset and directed adjacency counts for the
// current configuration.
// Complexity: O(N·k).
func (m *Mesh[T]) Stats() Stats {
	edges := 0
	if m.cache != nil {
		edges = len(m.cache.verts)
	} else {
		var buf []int
		for _, v := range m.nodeToVertex {
			buf = m.appendAdjacent(buf[:0], int(v))
			edges += len(buf)
		}
	}
	return Stats{
		Dims:           m.dims,
		Vertices:       len(m.values),
		Nodes:          len(m.nodeToVertex),
		Offsets:        len(m.offsets),
		Edges:          edges,
		Connectivity:   m.conn,
		Interpretation: m.interp,
		Deformed:       m.deforms(),
		OffsetCache:    m.cache != nil,
	}
}
