package mesh_test

import (
	"context"
	"testing"

	"github.com/zibamira/filopodia-tool-sub002/lattice"
	"github.com/zibamira/filopodia-tool-sub002/mesh"
	"github.com/zibamira/filopodia-tool-sub002/scalar"
)

// benchmarkNeighbors sweeps every vertex of a 64³ random field once per iteration.
func benchmarkNeighbors(b *testing.B, conn mesh.Connectivity, cached bool) {
	dims := lattice.Dims{NX: 64, NY: 64, NZ: 64}
	m, err := mesh.New[float32](randomField(b, dims, 256, 42), mesh.WithConnectivity(conn))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	if cached {
		if err := m.EnableOffsetCache(context.Background()); err != nil {
			b.Fatalf("setup EnableOffsetCache failed: %v", err)
		}
	}
	buf := make([]int, 0, 32)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for v := 0; v < m.NumVertices(); v++ {
			buf = m.AppendNeighbors(buf[:0], v, 0, 255, scalar.Ascending, mesh.Lower)
		}
	}
}

func BenchmarkNeighbors_Face(b *testing.B)         { benchmarkNeighbors(b, mesh.Face, false) }
func BenchmarkNeighbors_Corner(b *testing.B)       { benchmarkNeighbors(b, mesh.Corner, false) }
func BenchmarkNeighbors_CornerCached(b *testing.B) { benchmarkNeighbors(b, mesh.Corner, true) }

// BenchmarkSortNodeIndices measures the initial sweep order on a 64³ field.
func BenchmarkSortNodeIndices(b *testing.B) {
	m, err := mesh.New[float32](randomField(b, lattice.Dims{NX: 64, NY: 64, NZ: 64}, 1024, 7))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.SortNodeIndices()
	}
}
