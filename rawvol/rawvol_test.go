package rawvol_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/zibamira/filopodia-tool-sub002/lattice"
	"github.com/zibamira/filopodia-tool-sub002/rawvol"
)

var dims = lattice.Dims{NX: 4, NY: 3, NZ: 2}

func sampleField(t *testing.T) *lattice.Dense[uint16] {
	t.Helper()
	data := make([]uint16, dims.Len())
	for i := range data {
		data[i] = uint16(i * 1000)
	}
	f, err := lattice.NewDense(dims, r3.Vec{X: 0.5, Y: 0.5, Z: 2}, data)
	require.NoError(t, err)
	return f
}

// TestScalar_Compressions encodes and decodes through every stream wrapper and byte order.
func TestScalar_Compressions(t *testing.T) {
	src := sampleField(t)
	for _, c := range []rawvol.Compression{rawvol.None, rawvol.Gzip, rawvol.Zstd, rawvol.LZ4} {
		for _, big := range []bool{false, true} {
			h := rawvol.Header{Dims: dims, Voxel: src.VoxelSize(), Type: rawvol.Uint16, BigEndian: big, Compression: c}
			t.Run(c.String(), func(t *testing.T) {
				var buf bytes.Buffer
				require.NoError(t, rawvol.WriteScalar[uint16](&buf, h, src))
				got, err := rawvol.ReadScalar[uint16](&buf, h)
				require.NoError(t, err)
				assert.Equal(t, src.Values(), got.Values())
				assert.Equal(t, src.VoxelSize(), got.VoxelSize())
				r, ok := got.KnownRange()
				require.True(t, ok)
				assert.Equal(t, uint16(23000), r.Max)
			})
		}
	}
}

// TestScalar_ByteLayout pins the little-endian raster layout.
func TestScalar_ByteLayout(t *testing.T) {
	f, err := lattice.NewDense(lattice.Dims{NX: 2, NY: 1, NZ: 1}, lattice.UnitVoxel, []int16{1, -2})
	require.NoError(t, err)
	var buf bytes.Buffer
	h := rawvol.Header{Dims: f.Dims(), Type: rawvol.Int16}
	require.NoError(t, rawvol.WriteScalar[int16](&buf, h, f))
	assert.Equal(t, []byte{0x01, 0x00, 0xfe, 0xff}, buf.Bytes())

	got, err := rawvol.ReadScalar[int16](bytes.NewReader(buf.Bytes()), h)
	require.NoError(t, err)
	assert.Equal(t, lattice.UnitVoxel, got.VoxelSize(), "zero header voxel defaults to unit")
}

func TestScalar_Errors(t *testing.T) {
	h := rawvol.Header{Dims: dims, Type: rawvol.Uint16}

	_, err := rawvol.ReadScalar[uint16](bytes.NewReader(make([]byte, 10)), h)
	assert.ErrorIs(t, err, rawvol.ErrShortData)

	_, err = rawvol.ReadScalar[float32](bytes.NewReader(make([]byte, 48)), h)
	assert.ErrorIs(t, err, rawvol.ErrTypeMismatch)
	_, err = rawvol.ReadScalar[int16](bytes.NewReader(make([]byte, 48)), h)
	assert.ErrorIs(t, err, rawvol.ErrTypeMismatch)

	_, err = rawvol.ReadScalar[int](bytes.NewReader(make([]byte, 48)), h)
	assert.ErrorIs(t, err, rawvol.ErrTypeMismatch, "int has no fixed width")

	bad := h
	bad.Dims = lattice.Dims{}
	_, err = rawvol.ReadScalar[uint16](bytes.NewReader(nil), bad)
	assert.ErrorIs(t, err, lattice.ErrEmptyLattice)

	other := h
	other.Dims = lattice.Dims{NX: 1, NY: 1, NZ: 1}
	assert.ErrorIs(t, rawvol.WriteScalar[uint16](&bytes.Buffer{}, other, sampleField(t)), lattice.ErrDimensionMismatch)

	gz := h
	gz.Compression = rawvol.Gzip
	_, err = rawvol.ReadScalar[uint16](bytes.NewReader([]byte("not gzip")), gz)
	assert.Error(t, err)
}

func TestVectors(t *testing.T) {
	vecs := make([]r3.Vec, dims.Len())
	for i := range vecs {
		vecs[i] = r3.Vec{X: float64(i), Y: -0.5, Z: 0.25}
	}
	vf, err := lattice.NewVectorField(dims, lattice.UnitVoxel, vecs)
	require.NoError(t, err)

	for _, st := range []rawvol.SampleType{rawvol.Float32, rawvol.Float64} {
		t.Run(st.String(), func(t *testing.T) {
			h := rawvol.Header{Dims: dims, Type: st, Compression: rawvol.Zstd}
			var buf bytes.Buffer
			require.NoError(t, rawvol.WriteVectors(&buf, h, vf))
			got, err := rawvol.ReadVectors(&buf, h)
			require.NoError(t, err)
			assert.Equal(t, vecs, got.Vectors())
		})
	}

	_, err = rawvol.ReadVectors(bytes.NewReader(nil), rawvol.Header{Dims: dims, Type: rawvol.Uint8})
	assert.ErrorIs(t, err, rawvol.ErrTypeMismatch)
}

func TestFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vol.raw.gz")
	src := sampleField(t)
	h := rawvol.Header{Dims: dims, Voxel: src.VoxelSize(), Type: rawvol.Uint16, Compression: rawvol.Gzip}
	require.NoError(t, rawvol.WriteScalarFile[uint16](path, h, src))
	got, err := rawvol.ReadScalarFile[uint16](path, h)
	require.NoError(t, err)
	assert.Equal(t, src.Values(), got.Values())

	_, err = rawvol.ReadScalarFile[uint16](filepath.Join(t.TempDir(), "missing.raw"), h)
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want rawvol.SampleType
	}{
		{"uint8", rawvol.Uint8}, {"byte", rawvol.Uint8}, {"Int16", rawvol.Int16},
		{"float", rawvol.Float32}, {"double", rawvol.Float64}, {"uint32", rawvol.Uint32},
	}
	for _, tc := range cases {
		got, err := rawvol.ParseSampleType(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
	_, err := rawvol.ParseSampleType("complex64")
	assert.ErrorIs(t, err, rawvol.ErrUnknownSampleType)
	assert.Equal(t, 8, rawvol.Float64.Size())
	lo, hi := rawvol.Int16.Limits()
	assert.Equal(t, [2]float64{-32768, 32767}, [2]float64{lo, hi})
	lo, hi = rawvol.Uint32.Limits()
	assert.Equal(t, [2]float64{0, 4294967295}, [2]float64{lo, hi})
	assert.Equal(t, 0, rawvol.SampleType(42).Size())

	c, err := rawvol.ParseCompression("zst")
	require.NoError(t, err)
	assert.Equal(t, rawvol.Zstd, c)
	c, err = rawvol.ParseCompression("")
	require.NoError(t, err)
	assert.Equal(t, rawvol.None, c)
	_, err = rawvol.ParseCompression("bz2")
	assert.ErrorIs(t, err, rawvol.ErrUnknownCompression)
}
