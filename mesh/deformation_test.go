package mesh_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/zibamira/filopodia-tool-sub002/lattice"
	"github.com/zibamira/filopodia-tool-sub002/mesh"
)

// newTimeMesh builds a face-connected spatiotemporal mesh over the 3×3×3 ramp.
func newTimeMesh(t *testing.T, voxel r3.Vec) *mesh.Mesh[uint8] {
	t.Helper()
	data := make([]uint8, cube3.Len())
	for i := range data {
		data[i] = uint8(i)
	}
	f, err := lattice.NewDense(cube3, voxel, data)
	require.NoError(t, err)
	m, err := mesh.New[uint8](f, mesh.WithInterpretation(mesh.SpatioTemporal))
	require.NoError(t, err)
	return m
}

// TestBind_ShiftsTemporalNeighbors: a forward shift of one voxel in X moves the next-slice
// neighbor; the backward field is zero.
func TestBind_ShiftsTemporalNeighbors(t *testing.T) {
	m := newTimeMesh(t, r3.Vec{X: 2, Y: 1, Z: 1})
	// 2 physical units along X is one voxel at voxel size 2.
	require.NoError(t, m.Bind(constantField(t, cube3, r3.Vec{}), constantField(t, cube3, r3.Vec{X: 2})))
	require.True(t, m.IsBound())

	assert.Equal(t, []int{4, 23}, m.TemporalNeighborsOf(13))
	assert.Equal(t, []int{4, 10, 12, 14, 16, 23}, m.AscendingNeighborsOf(13, 0, 255))

	// (2,1,1) is shifted out of the lattice in the next slice: silently dropped.
	assert.Equal(t, []int{5}, m.TemporalNeighborsOf(14))
}

// TestBind_YComponent checks the Y displacement and that Z is ignored.
func TestBind_YComponent(t *testing.T) {
	m := newTimeMesh(t, lattice.UnitVoxel)
	require.NoError(t, m.Bind(constantField(t, cube3, r3.Vec{}), constantField(t, cube3, r3.Vec{Y: -1, Z: 5})))
	assert.Equal(t, []int{4, 19}, m.TemporalNeighborsOf(13))
}

// TestBind_Rounding covers each rounding rule on fractional displacements.
func TestBind_Rounding(t *testing.T) {
	cases := []struct {
		name string
		dx   float64
		rule mesh.Rounding
		want []int
	}{
		{"HalfUpNearest", 0.5, mesh.RoundNearest, []int{4, 23}},
		{"HalfUpFloor", 0.5, mesh.RoundFloor, []int{4, 22}},
		{"HalfUpTruncate", 0.5, mesh.RoundTruncate, []int{4, 22}},
		{"NegativeNearest", -1.5, mesh.RoundNearest, []int{4}},
		{"NegativeFloor", -1.5, mesh.RoundFloor, []int{4}},
		{"NegativeTruncate", -1.5, mesh.RoundTruncate, []int{4, 21}},
		{"NaN", math.NaN(), mesh.RoundNearest, []int{4}},
		{"Inf", math.Inf(1), mesh.RoundTruncate, []int{4}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := newTimeMesh(t, lattice.UnitVoxel)
			require.NoError(t, m.SetRounding(tc.rule))
			require.NoError(t, m.Bind(constantField(t, cube3, r3.Vec{}), constantField(t, cube3, r3.Vec{X: tc.dx})))
			assert.Equal(t, tc.want, m.TemporalNeighborsOf(13))
		})
	}
}

// TestBind_OnlySpatioTemporal: bound fields are ignored unless the third axis is time.
func TestBind_OnlySpatioTemporal(t *testing.T) {
	m := newTimeMesh(t, lattice.UnitVoxel)
	require.NoError(t, m.Bind(constantField(t, cube3, r3.Vec{X: 1}), constantField(t, cube3, r3.Vec{X: 1})))
	assert.Equal(t, []int{5, 23}, m.TemporalNeighborsOf(13))

	require.NoError(t, m.SetInterpretation(mesh.Spatial))
	assert.Equal(t, []int{4, 22}, m.TemporalNeighborsOf(13))
	assert.False(t, m.Stats().Deformed)

	require.NoError(t, m.SetInterpretation(mesh.SpatioTemporal))
	assert.True(t, m.Stats().Deformed)
	require.NoError(t, m.Unbind())
	assert.False(t, m.IsBound())
	assert.Equal(t, []int{4, 22}, m.TemporalNeighborsOf(13))
}

// TestBind_Errors verifies configuration-time failures and that a failed Bind keeps the old binding.
func TestBind_Errors(t *testing.T) {
	m := newTimeMesh(t, lattice.UnitVoxel)
	ok := constantField(t, cube3, r3.Vec{})
	small := constantField(t, lattice.Dims{NX: 3, NY: 3, NZ: 2}, r3.Vec{})

	assert.ErrorIs(t, m.Bind(nil, ok), mesh.ErrNilDeformation)
	assert.ErrorIs(t, m.Bind(ok, nil), mesh.ErrNilDeformation)
	assert.ErrorIs(t, m.Bind(small, ok), mesh.ErrDimensionMismatch)
	assert.ErrorIs(t, m.Bind(ok, small), mesh.ErrDimensionMismatch)
	assert.False(t, m.IsBound())

	require.NoError(t, m.Bind(ok, ok))
	assert.ErrorIs(t, m.Bind(ok, small), mesh.ErrDimensionMismatch)
	assert.True(t, m.IsBound())
}
