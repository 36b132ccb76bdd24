package lattice_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/zibamira/filopodia-tool-sub002/lattice"
	"github.com/zibamira/filopodia-tool-sub002/scalar"
)

// TestNewDense_Errors verifies that NewDense rejects empty, short and badly scaled inputs.
func TestNewDense_Errors(t *testing.T) {
	cases := []struct {
		name  string
		dims  lattice.Dims
		n     int
		voxel r3.Vec
		err   error
	}{
		{"ZeroDim", lattice.Dims{NX: 0, NY: 2, NZ: 2}, 0, lattice.UnitVoxel, lattice.ErrEmptyLattice},
		{"NegativeDim", lattice.Dims{NX: 2, NY: -1, NZ: 2}, 0, lattice.UnitVoxel, lattice.ErrEmptyLattice},
		{"ShortData", lattice.Dims{NX: 2, NY: 2, NZ: 2}, 7, lattice.UnitVoxel, lattice.ErrDataLength},
		{"ZeroVoxel", lattice.Dims{NX: 1, NY: 1, NZ: 1}, 1, r3.Vec{X: 1, Y: 0, Z: 1}, lattice.ErrVoxelSize},
		{"InfVoxel", lattice.Dims{NX: 1, NY: 1, NZ: 1}, 1, r3.Vec{X: math.Inf(1), Y: 1, Z: 1}, lattice.ErrVoxelSize},
		{"NaNVoxel", lattice.Dims{NX: 1, NY: 1, NZ: 1}, 1, r3.Vec{X: 1, Y: 1, Z: math.NaN()}, lattice.ErrVoxelSize},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := lattice.NewDense(tc.dims, tc.voxel, make([]uint8, tc.n))
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestDense_At checks raster ordering and bounds handling.
func TestDense_At(t *testing.T) {
	dims := lattice.Dims{NX: 3, NY: 2, NZ: 2}
	data := make([]int16, dims.Len())
	for i := range data {
		data[i] = int16(i)
	}
	f, err := lattice.NewDense(dims, lattice.UnitVoxel, data)
	require.NoError(t, err)

	v, ok := f.At(2, 1, 1)
	require.True(t, ok)
	assert.Equal(t, int16(2+1*3+1*6), v)

	for _, c := range [][3]int{{-1, 0, 0}, {3, 0, 0}, {0, 2, 0}, {0, 0, 2}} {
		_, ok := f.At(c[0], c[1], c[2])
		assert.False(t, ok, "At%v should be out of bounds", c)
	}
	assert.Equal(t, "3x2x2", dims.String())
}

func TestDense_KnownRange(t *testing.T) {
	f, err := lattice.NewDense(lattice.Dims{NX: 2, NY: 1, NZ: 1}, lattice.UnitVoxel, []float32{1, 2})
	require.NoError(t, err)
	_, ok := f.KnownRange()
	assert.False(t, ok)

	require.NoError(t, f.SetKnownRange(scalar.Range[float32]{Min: 0, Max: 10}))
	r, ok := f.KnownRange()
	require.True(t, ok)
	assert.Equal(t, float32(10), r.Max)

	assert.ErrorIs(t, f.SetKnownRange(scalar.Range[float32]{Min: 3, Max: 1}), scalar.ErrInvalidRange)
}

func TestScanRange(t *testing.T) {
	r, ok := lattice.ScanRange([]float64{math.NaN(), 3, -2, 7, math.NaN()})
	require.True(t, ok)
	assert.Equal(t, scalar.Range[float64]{Min: -2, Max: 7}, r)

	_, ok = lattice.ScanRange([]float64{math.NaN()})
	assert.False(t, ok)
	_, ok = lattice.ScanRange[uint8](nil)
	assert.False(t, ok)
}

func TestActiveWhere(t *testing.T) {
	dims := lattice.Dims{NX: 4, NY: 1, NZ: 1}
	f, err := lattice.NewDense(dims, lattice.UnitVoxel, []uint8{0, 5, 0, 9})
	require.NoError(t, err)

	bm := lattice.ActiveWhere[uint8](f, func(v uint8) bool { return v > 0 })
	assert.Equal(t, []uint32{1, 3}, bm.ToArray())

	labels, err := lattice.NewDense(dims, lattice.UnitVoxel, []int32{1, 0, 0, 2})
	require.NoError(t, err)
	lb, err := lattice.ActiveLabels[int32](dims, labels)
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 3}, lb.ToArray())

	_, err = lattice.ActiveLabels[int32](lattice.Dims{NX: 2, NY: 2, NZ: 1}, labels)
	assert.ErrorIs(t, err, lattice.ErrDimensionMismatch)
}

func TestNewVectorField(t *testing.T) {
	dims := lattice.Dims{NX: 2, NY: 1, NZ: 1}
	vf, err := lattice.NewVectorField(dims, lattice.UnitVoxel, []r3.Vec{{X: 1}, {Y: -1}})
	require.NoError(t, err)
	assert.Equal(t, dims, vf.Dims())
	assert.Equal(t, r3.Vec{Y: -1}, vf.At(1))
	assert.Len(t, vf.Vectors(), 2)

	_, err = lattice.NewVectorField(dims, lattice.UnitVoxel, []r3.Vec{{}})
	assert.ErrorIs(t, err, lattice.ErrDataLength)
}
