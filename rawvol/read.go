package rawvol

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/zibamira/filopodia-tool-sub002/lattice"
	"github.com/zibamira/filopodia-tool-sub002/scalar"
)

// sampleTypeOf maps the Go element type to its SampleType, or -1 when the
// type has no raw representation (int, uint and 64-bit integers).
func sampleTypeOf[T scalar.Scalar]() SampleType {
	var zero T
	half := 0.5
	size := binary.Size(zero)
	if T(half) != 0 {
		if size == 4 {
			return Float32
		}
		return Float64
	}
	signed := zero-T(1) < zero
	switch {
	case size == 1 && signed:
		return Int8
	case size == 1:
		return Uint8
	case size == 2 && signed:
		return Int16
	case size == 2:
		return Uint16
	case size == 4 && signed:
		return Int32
	case size == 4:
		return Uint32
	}
	return -1
}

// checkType verifies that T is stored as h.Type.
func checkType[T scalar.Scalar](h Header) error {
	if got := sampleTypeOf[T](); got != h.Type {
		return fmt.Errorf("%w: header %s, element %s", ErrTypeMismatch, h.Type, got)
	}
	return nil
}

// readSamples decodes exactly len(dst) samples from r.
func readSamples(r io.Reader, h Header, dst any) error {
	src, closeFn, err := decompress(r, h.Compression)
	if err != nil {
		return err
	}
	defer closeFn()
	if err := binary.Read(src, h.order(), dst); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("%w: %v", ErrShortData, err)
		}
		return fmt.Errorf("rawvol: read: %w", err)
	}
	return nil
}

// ReadScalar decodes a scalar volume described by h.
// The known range of the returned field is the scanned data range.
// Returns ErrTypeMismatch, ErrShortData or a lattice geometry error.
// Complexity: O(NX·NY·NZ).
func ReadScalar[T scalar.Scalar](r io.Reader, h Header) (*lattice.Dense[T], error) {
	if err := checkType[T](h); err != nil {
		return nil, err
	}
	if !h.Dims.Valid() {
		return nil, fmt.Errorf("%w: %s", lattice.ErrEmptyLattice, h.Dims)
	}
	data := make([]T, h.Dims.Len())
	if err := readSamples(r, h, data); err != nil {
		return nil, err
	}
	f, err := lattice.NewDense(h.Dims, h.voxel(), data)
	if err != nil {
		return nil, err
	}
	if rng, ok := lattice.ScanRange(data); ok {
		if err := f.SetKnownRange(rng); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// ReadVectors decodes a displacement field of 3 components per voxel.
// h.Type must be Float32 or Float64.
func ReadVectors(r io.Reader, h Header) (*lattice.VectorField, error) {
	if !h.Type.IsFloat() {
		return nil, fmt.Errorf("%w: vectors need float32 or float64, header %s", ErrTypeMismatch, h.Type)
	}
	if !h.Dims.Valid() {
		return nil, fmt.Errorf("%w: %s", lattice.ErrEmptyLattice, h.Dims)
	}
	n := h.Dims.Len()
	vecs := make([]r3.Vec, n)
	if h.Type == Float32 {
		comps := make([]float32, 3*n)
		if err := readSamples(r, h, comps); err != nil {
			return nil, err
		}
		for i := range vecs {
			vecs[i] = r3.Vec{X: float64(comps[3*i]), Y: float64(comps[3*i+1]), Z: float64(comps[3*i+2])}
		}
	} else {
		comps := make([]float64, 3*n)
		if err := readSamples(r, h, comps); err != nil {
			return nil, err
		}
		for i := range vecs {
			vecs[i] = r3.Vec{X: comps[3*i], Y: comps[3*i+1], Z: comps[3*i+2]}
		}
	}
	return lattice.NewVectorField(h.Dims, h.voxel(), vecs)
}

// ReadScalarFile opens path and decodes it with ReadScalar.
func ReadScalarFile[T scalar.Scalar](path string, h Header) (*lattice.Dense[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("rawvol: %w", err)
	}
	defer f.Close()
	return ReadScalar[T](bufio.NewReader(f), h)
}

// ReadVectorsFile opens path and decodes it with ReadVectors.
func ReadVectorsFile(path string, h Header) (*lattice.VectorField, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("rawvol: %w", err)
	}
	defer f.Close()
	return ReadVectors(bufio.NewReader(f), h)
}
