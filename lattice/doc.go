// Package lattice provides read-only views of regularly sampled volumetric
// fields: a typed scalar field and a vector-valued displacement field.
//
// What:
//
//   - Dims: lattice extent (NX, NY, NZ); the third axis is space or time
//     depending on how a consumer interprets it.
//   - Field[T]: the data-source contract consumed by the mesh package:
//     extent, voxel size, a raster-ordered value slice and an optional known range.
//   - Dense[T]: the in-memory Field implementation over a caller-owned slice.
//   - VectorField: per-voxel displacement vectors (gonum r3.Vec) used for
//     temporal correspondence between successive slices.
//   - ActiveWhere / ActiveLabels: build the sparse active-vertex set as a
//     roaring bitmap.
//
// Layout: the value of voxel (x, y, z) lives at index x + y·NX + z·NX·NY.
//
// Ownership: Dense and VectorField do not copy their input slices. The caller
// must keep them alive and unmodified while any consumer holds the view.
//
// Errors:
//
//   - ErrEmptyLattice: a dimension is zero or negative.
//   - ErrDataLength: the slice length differs from NX·NY·NZ.
//   - ErrVoxelSize: a voxel size component is not finite and positive.
//   - ErrDimensionMismatch: two fields expected to share geometry do not.
package lattice
