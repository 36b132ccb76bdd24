package mesh_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/zibamira/filopodia-tool-sub002/lattice"
	"github.com/zibamira/filopodia-tool-sub002/mesh"
	"github.com/zibamira/filopodia-tool-sub002/scalar"
)

var cube3 = lattice.Dims{NX: 3, NY: 3, NZ: 3}

// ramp builds a field whose value at vertex i is i.
func ramp[T scalar.Scalar](t testing.TB, d lattice.Dims) *lattice.Dense[T] {
	t.Helper()
	data := make([]T, d.Len())
	for i := range data {
		data[i] = T(i)
	}
	f, err := lattice.NewDense(d, lattice.UnitVoxel, data)
	require.NoError(t, err)
	return f
}

// randomField builds a field of values drawn from [0, levels), so values repeat.
func randomField(t testing.TB, d lattice.Dims, levels int, seed int64) *lattice.Dense[float32] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float32, d.Len())
	for i := range data {
		data[i] = float32(rng.Intn(levels))
	}
	f, err := lattice.NewDense(d, lattice.UnitVoxel, data)
	require.NoError(t, err)
	return f
}

// randomActive keeps roughly three quarters of n vertices.
func randomActive(n int, seed int64) *roaring.Bitmap {
	rng := rand.New(rand.NewSource(seed))
	bm := roaring.New()
	for i := 0; i < n; i++ {
		if rng.Intn(4) != 0 {
			bm.Add(uint32(i))
		}
	}
	return bm
}

// constantField fills a displacement field with d.
func constantField(t testing.TB, dims lattice.Dims, d r3.Vec) *lattice.VectorField {
	t.Helper()
	data := make([]r3.Vec, dims.Len())
	for i := range data {
		data[i] = d
	}
	vf, err := lattice.NewVectorField(dims, lattice.UnitVoxel, data)
	require.NoError(t, err)
	return vf
}

// bruteNeighbors recomputes a neighbor query from coordinates alone.
// Valid only when no deformation is applied.
func bruteNeighbors[T scalar.Scalar](m *mesh.Mesh[T], v int, lo, hi T, ord scalar.Ordering, side mesh.Side) []int {
	c, _ := m.CoordOf(v)
	src, _ := m.ValueAt(v)
	var out []int
	for _, o := range m.Offsets() {
		w := m.VertexAt(mesh.Coord{X: c.X + o.DX, Y: c.Y + o.DY, Z: c.Z + o.DZ})
		if w == mesh.NoVertex || !m.IsActive(w) {
			continue
		}
		val, _ := m.ValueAt(w)
		if val < lo || val > hi {
			continue
		}
		switch side {
		case mesh.Lower:
			if val >= src {
				continue
			}
		case mesh.Upper:
			if val <= src {
				continue
			}
		default:
			if val == src {
				continue
			}
		}
		out = append(out, w)
	}
	slices.SortFunc(out, func(a, b int) int {
		va, _ := m.ValueAt(a)
		vb, _ := m.ValueAt(b)
		return scalar.Compare(ord, va, m.NodeOf(a), vb, m.NodeOf(b))
	})
	return out
}

// values maps vertices to their values for readable assertions.
func values[T scalar.Scalar](m *mesh.Mesh[T], vs []int) []T {
	out := make([]T, len(vs))
	for i, v := range vs {
		out[i], _ = m.ValueAt(v)
	}
	return out
}
