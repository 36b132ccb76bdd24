// Package filopodia is the root of a small toolkit that turns voxel
// lattices into neighbor graphs for contour-tree and merge-tree
// construction, with optional motion compensation along the time axis of
// 2-D+t stacks.
//
// Everything lives in subpackages:
//
//	scalar/           element constraint, orderings with node tie-break, value ranges
//	lattice/          dense scalar and displacement fields, active-set helpers
//	mesh/             the neighbor graph: index geometry, connectivity, deformation,
//	                  ordered neighbor queries, offset cache, components, BFS
//	rawvol/           raw volume I/O with gzip, zstd and lz4 streams
//	cmd/latticemesh/  CLI driven by a YAML job file
//	examples/         runnable scenarios
//
// Quick example, a 2×1×1 lattice:
//
//	field, _ := lattice.NewDense(lattice.Dims{NX: 2, NY: 1, NZ: 1}, lattice.UnitVoxel, []uint8{3, 7})
//	m, _ := mesh.New[uint8](field)
//	up := m.UpperNeighborsOf(0, 0, 255) // [1]
//
// Queries never mutate the mesh, so a fully configured mesh may be shared
// by concurrent readers.
package filopodia
