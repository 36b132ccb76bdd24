package lattice

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/zibamira/filopodia-tool-sub002/scalar"
)

// Dims is the extent of a lattice along X, Y and Z.
type Dims struct {
	NX, NY, NZ int
}

// Len returns NX·NY·NZ.
// Complexity: O(1).
func (d Dims) Len() int {
	return d.NX * d.NY * d.NZ
}

// Valid reports whether every dimension is positive.
func (d Dims) Valid() bool {
	return d.NX > 0 && d.NY > 0 && d.NZ > 0
}

// String formats the extent as "NXxNYxNZ".
func (d Dims) String() string {
	return fmt.Sprintf("%dx%dx%d", d.NX, d.NY, d.NZ)
}

// Field is a read-only view of a typed scalar lattice.
//
// Values returns the raster-ordered samples; callers must not modify them.
// KnownRange reports a value range established by the producer, if any.
type Field[T scalar.Scalar] interface {
	Dims() Dims
	VoxelSize() r3.Vec
	Values() []T
	KnownRange() (scalar.Range[T], bool)
}

// UnitVoxel is the default voxel size of 1 along every axis.
var UnitVoxel = r3.Vec{X: 1, Y: 1, Z: 1}
