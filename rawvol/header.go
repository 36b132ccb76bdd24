package rawvol

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/zibamira/filopodia-tool-sub002/lattice"
)

var (
	// ErrUnknownSampleType indicates an unsupported sample type name.
	ErrUnknownSampleType = errors.New("rawvol: unknown sample type")
	// ErrUnknownCompression indicates an unsupported compression name.
	ErrUnknownCompression = errors.New("rawvol: unknown compression")
	// ErrTypeMismatch indicates the element type disagrees with the header.
	ErrTypeMismatch = errors.New("rawvol: element type does not match header")
	// ErrShortData indicates fewer samples than the header promises.
	ErrShortData = errors.New("rawvol: stream shorter than header")
)

// SampleType is the on-disk representation of one sample.
type SampleType int

// Supported sample types.
const (
	Uint8 SampleType = iota
	Int8
	Uint16
	Int16
	Uint32
	Int32
	Float32
	Float64
)

var sampleTypes = []struct {
	name string
	size int
}{
	Uint8:   {"uint8", 1},
	Int8:    {"int8", 1},
	Uint16:  {"uint16", 2},
	Int16:   {"int16", 2},
	Uint32:  {"uint32", 4},
	Int32:   {"int32", 4},
	Float32: {"float32", 4},
	Float64: {"float64", 8},
}

// String returns the lower-case type name.
func (s SampleType) String() string {
	if s < 0 || int(s) >= len(sampleTypes) {
		return fmt.Sprintf("sampletype(%d)", int(s))
	}
	return sampleTypes[s].name
}

// Size returns the sample width in bytes, or 0 for an unknown type.
func (s SampleType) Size() int {
	if s < 0 || int(s) >= len(sampleTypes) {
		return 0
	}
	return sampleTypes[s].size
}

// Limits returns the smallest and largest value the type represents, both
// zero for an unknown type.
func (s SampleType) Limits() (lo, hi float64) {
	switch s {
	case Uint8:
		return 0, math.MaxUint8
	case Int8:
		return math.MinInt8, math.MaxInt8
	case Uint16:
		return 0, math.MaxUint16
	case Int16:
		return math.MinInt16, math.MaxInt16
	case Uint32:
		return 0, math.MaxUint32
	case Int32:
		return math.MinInt32, math.MaxInt32
	case Float32:
		return -math.MaxFloat32, math.MaxFloat32
	case Float64:
		return -math.MaxFloat64, math.MaxFloat64
	}
	return 0, 0
}

// IsFloat reports whether s is a floating-point type.
func (s SampleType) IsFloat() bool { return s == Float32 || s == Float64 }

// ParseSampleType maps a type name ("uint8", "byte", "float", ...) to a SampleType.
func ParseSampleType(name string) (SampleType, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "byte", "u8":
		return Uint8, nil
	case "float", "f32":
		return Float32, nil
	case "double", "f64":
		return Float64, nil
	}
	for i, st := range sampleTypes {
		if st.name == n {
			return SampleType(i), nil
		}
	}
	return Uint8, fmt.Errorf("%w: %q", ErrUnknownSampleType, name)
}

// Compression is the stream wrapper around the samples.
type Compression int

// Supported stream wrappers.
const (
	None Compression = iota
	Gzip
	Zstd
	LZ4
)

var compressionNames = []string{None: "none", Gzip: "gzip", Zstd: "zstd", LZ4: "lz4"}

// String returns the lower-case compression name.
func (c Compression) String() string {
	if c < 0 || int(c) >= len(compressionNames) {
		return fmt.Sprintf("compression(%d)", int(c))
	}
	return compressionNames[c]
}

// ParseCompression maps "none"/"", "gzip"/"gz", "zstd"/"zst" and "lz4".
func ParseCompression(name string) (Compression, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none", "raw":
		return None, nil
	case "gzip", "gz":
		return Gzip, nil
	case "zstd", "zst":
		return Zstd, nil
	case "lz4":
		return LZ4, nil
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownCompression, name)
}

// Header describes the layout of a raw volume.
type Header struct {
	Dims        lattice.Dims
	Voxel       r3.Vec
	Type        SampleType
	BigEndian   bool
	Compression Compression
}

// order returns the byte order of the samples.
func (h Header) order() binary.ByteOrder {
	if h.BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// voxel returns the header voxel size, defaulting to a unit voxel.
func (h Header) voxel() r3.Vec {
	if h.Voxel == (r3.Vec{}) {
		return lattice.UnitVoxel
	}
	return h.Voxel
}
