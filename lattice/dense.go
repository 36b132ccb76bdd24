package lattice

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/zibamira/filopodia-tool-sub002/scalar"
)

// Dense is a Field over a caller-owned, raster-ordered slice.
type Dense[T scalar.Scalar] struct {
	dims     Dims
	voxel    r3.Vec
	data     []T
	known    scalar.Range[T]
	hasKnown bool
}

// validateGeometry checks dims, data length n and voxel size.
func validateGeometry(dims Dims, n int, voxel r3.Vec) error {
	if !dims.Valid() {
		return fmt.Errorf("%w: %s", ErrEmptyLattice, dims)
	}
	if n != dims.Len() {
		return fmt.Errorf("%w: got %d samples for %s", ErrDataLength, n, dims)
	}
	for _, c := range [3]float64{voxel.X, voxel.Y, voxel.Z} {
		if !(c > 0) || math.IsInf(c, 0) {
			return fmt.Errorf("%w: %v", ErrVoxelSize, voxel)
		}
	}
	return nil
}

// NewDense wraps data as a dims-shaped field with the given voxel size.
// data is not copied.
// Returns ErrEmptyLattice, ErrDataLength or ErrVoxelSize on invalid input.
// Complexity: O(1).
func NewDense[T scalar.Scalar](dims Dims, voxel r3.Vec, data []T) (*Dense[T], error) {
	if err := validateGeometry(dims, len(data), voxel); err != nil {
		return nil, err
	}
	return &Dense[T]{dims: dims, voxel: voxel, data: data}, nil
}

// Dims returns the lattice extent.
func (d *Dense[T]) Dims() Dims { return d.dims }

// VoxelSize returns the physical size of one voxel.
func (d *Dense[T]) VoxelSize() r3.Vec { return d.voxel }

// Values returns the raster-ordered samples without copying.
func (d *Dense[T]) Values() []T { return d.data }

// KnownRange returns the range set with SetKnownRange.
func (d *Dense[T]) KnownRange() (scalar.Range[T], bool) { return d.known, d.hasKnown }

// SetKnownRange records a producer-established value range.
// Returns scalar.ErrInvalidRange when r.Min > r.Max.
func (d *Dense[T]) SetKnownRange(r scalar.Range[T]) error {
	if !r.Valid() {
		return fmt.Errorf("%w: %s", scalar.ErrInvalidRange, r)
	}
	d.known, d.hasKnown = r, true
	return nil
}

// At returns the value at (x, y, z) and false when the coordinate is outside the lattice.
// Complexity: O(1).
func (d *Dense[T]) At(x, y, z int) (T, bool) {
	if x < 0 || x >= d.dims.NX || y < 0 || y >= d.dims.NY || z < 0 || z >= d.dims.NZ {
		var zero T
		return zero, false
	}
	return d.data[x+y*d.dims.NX+z*d.dims.NX*d.dims.NY], true
}

// ScanRange returns the minimum and maximum of data, skipping NaN.
// ok is false when data holds no comparable value.
// Complexity: O(n).
func ScanRange[T scalar.Scalar](data []T) (r scalar.Range[T], ok bool) {
	for _, v := range data {
		if v != v {
			continue
		}
		if !ok {
			r.Min, r.Max, ok = v, v, true
			continue
		}
		if v < r.Min {
			r.Min = v
		}
		if v > r.Max {
			r.Max = v
		}
	}
	return r, ok
}
