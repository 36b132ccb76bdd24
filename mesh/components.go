package mesh

// ConnectedComponents groups the nodes into components of the graph induced
// by the current connectivity, interpretation and deformation, ignoring
// values. Adjacency under deformation may be one-directional, so components
// are computed with union-find over every directed adjacency.
// Each component lists its node indices in ascending order; components are
// ordered by their smallest node.
//
// Time:   O(N·k·α(N)), k = len(Offsets()).
// Memory: O(N).
func (m *Mesh[T]) ConnectedComponents() [][]int {
	n := len(m.nodeToVertex)
	parent := make([]int32, n)
	rank := make([]uint8, n)
	for i := range parent {
		parent[i] = int32(i)
	}
	find := func(u int32) int32 {
		for parent[u] != u {
			parent[u] = parent[parent[u]] // path halving
			u = parent[u]
		}
		return u
	}
	union := func(a, b int32) {
		ra, rb := find(a), find(b)
		if ra == rb {
			return
		}
		switch {
		case rank[ra] < rank[rb]:
			parent[ra] = rb
		case rank[ra] > rank[rb]:
			parent[rb] = ra
		default:
			parent[rb] = ra
			rank[ra]++
		}
	}

	var buf []int
	for node := 0; node < n; node++ {
		buf = m.appendAdjacent(buf[:0], int(m.nodeToVertex[node]))
		for _, w := range buf {
			union(int32(node), m.vertexToNode[w])
		}
	}

	// Nodes are visited in ascending order, so each component's slice is
	// already sorted and components appear by smallest member.
	slot := make(map[int32]int)
	var comps [][]int
	for node := 0; node < n; node++ {
		root := find(int32(node))
		i, ok := slot[root]
		if !ok {
			i = len(comps)
			slot[root] = i
			comps = append(comps, nil)
		}
		comps[i] = append(comps[i], node)
	}
	return comps
}
