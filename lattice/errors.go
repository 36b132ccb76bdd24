package lattice

import "errors"

var (
	// ErrEmptyLattice indicates a dimension is not positive.
	ErrEmptyLattice = errors.New("lattice: dimensions must be > 0")
	// ErrDataLength indicates the backing slice does not match the dimensions.
	ErrDataLength = errors.New("lattice: data length does not match dimensions")
	// ErrVoxelSize indicates a voxel size component is not finite and positive.
	ErrVoxelSize = errors.New("lattice: voxel size must be finite and > 0")
	// ErrDimensionMismatch indicates two fields do not share the same extent.
	ErrDimensionMismatch = errors.New("lattice: dimension mismatch")
)
