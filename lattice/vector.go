package lattice

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// VectorField is a lattice of displacement vectors in physical units.
// It shares the raster layout of Dense.
type VectorField struct {
	dims  Dims
	voxel r3.Vec
	data  []r3.Vec
}

// NewVectorField wraps data as a dims-shaped displacement field.
// data is not copied.
func NewVectorField(dims Dims, voxel r3.Vec, data []r3.Vec) (*VectorField, error) {
	if err := validateGeometry(dims, len(data), voxel); err != nil {
		return nil, err
	}
	return &VectorField{dims: dims, voxel: voxel, data: data}, nil
}

// Dims returns the lattice extent.
func (f *VectorField) Dims() Dims { return f.dims }

// VoxelSize returns the physical size of one voxel.
func (f *VectorField) VoxelSize() r3.Vec { return f.voxel }

// Vectors returns the raster-ordered vectors without copying.
func (f *VectorField) Vectors() []r3.Vec { return f.data }

// At returns the displacement stored at linear index i.
// Complexity: O(1).
func (f *VectorField) At(i int) r3.Vec { return f.data[i] }
