// Package mesh turns a regularly sampled 3-D (or 2-D + time) scalar lattice
// into an indexed neighbor graph for contour tree and merge tree construction.
//
// What:
//
//   - Mesh[T] wraps a lattice.Field[T] without copying its values.
//   - Index geometry: Coord ↔ linear vertex index, and a dense node index over
//     the active vertex subset (node ↔ vertex bijection, NoNode for inactive).
//   - Connectivity: Face (6), Edge (18), Corner (26) or TemporalExpanded
//     (in-slice face neighbors plus a (2r+1)² window in each adjacent slice).
//   - Interpretation: Spatial, IndependentSlices (third axis dropped) or
//     SpatioTemporal (third axis is time, optionally deformation-corrected).
//   - Deformation binding: backward/forward displacement fields remap a vertex
//     before it crosses into the previous/next slice.
//   - Queries: value lookup, sorted node order, range-filtered neighbor lists
//     sorted by (value, node) during enumeration, extremal vertex of a set.
//
// Why:
//
//   - Tree construction sweeps every node in value order and asks for its
//     lower or upper neighbors; both answers must be deterministic and cheap.
//
// Lifecycle:
//
//	m, _ := mesh.New(field, mesh.WithConnectivity(mesh.Face))
//	_ = m.SetInterpretation(mesh.SpatioTemporal)
//	_ = m.Bind(backward, forward)
//	order := m.SortNodeIndices()
//	for _, n := range order {
//	    lower := m.LowerNeighborsOf(m.VertexOf(n), lo, hi)
//	    ...
//	}
//
// Configuration must finish before querying starts. A Mesh is not safe for
// concurrent configuration; a fully configured Mesh may be queried from many
// goroutines (see ForEachNode).
//
// Complexity:
//
//   - VertexAt, CoordOf, VertexOf, NodeOf, ValueAt: O(1).
//   - NeighborsOf and friends: O(k²) worst case for k ≤ len(Offsets()) candidates,
//     O(k) for nearly sorted neighborhoods; no allocation with AppendNeighbors.
//   - SortNodeIndices: O(N log N).
//   - EnableOffsetCache: O(N·k) time and memory, built in parallel.
//   - ConnectedComponents: O(N·k·α(N)).
//   - BFS: O(N·k).
//
// Errors:
//
//   - ErrNilField, ErrTooLarge, ErrActiveOutOfRange: construction.
//   - ErrUnknownConnectivity, ErrUnknownInterpretation, ErrUnknownRounding,
//     ErrTemporalWindow: configuration setters and parsers.
//   - ErrNilDeformation, ErrDimensionMismatch: Bind.
//   - scalar.ErrInvalidRange: SetGlobalRange.
//   - ErrInactiveSource: BFS.
//
// Out-of-bounds queries never fail; they return NoVertex, NoNode, false or an
// empty list.
package mesh
