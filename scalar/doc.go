// Package scalar defines the numeric element constraint and the ordering and
// range predicates shared by the lattice and mesh packages.
//
// What:
//
//   - Scalar: the closed set of numeric voxel representations (integers and floats).
//   - Range[T]: an inclusive [Min, Max] interval with membership testing.
//   - Ordering: a closed two-valued variant {Ascending, Descending} that ranks
//     (value, node) pairs with a node-index tie-break.
//
// Why:
//
//   - Contour and merge tree sweeps need a strict, total, reproducible order
//     over lattice nodes even when values repeat.
//   - The ordering is a plain value rather than an interface so the per-neighbor
//     comparison in the enumeration hot path stays free of indirection.
//
// Complexity:
//
//   - Compare, Precedes, Contains: O(1), no allocation.
//
// Errors:
//
//   - ErrUnknownOrdering: an Ordering outside {Ascending, Descending} was parsed.
package scalar
