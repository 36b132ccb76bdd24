package rawvol

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/zibamira/filopodia-tool-sub002/lattice"
	"github.com/zibamira/filopodia-tool-sub002/scalar"
)

func writeSamples(w io.Writer, h Header, src any) error {
	dst, closeFn, err := compress(w, h.Compression)
	if err != nil {
		return err
	}
	if err := binary.Write(dst, h.order(), src); err != nil {
		_ = closeFn()
		return fmt.Errorf("rawvol: write: %w", err)
	}
	if err := closeFn(); err != nil {
		return fmt.Errorf("rawvol: flush: %w", err)
	}
	return nil
}

// WriteScalar encodes f in the layout described by h.
// Returns ErrTypeMismatch or lattice.ErrDimensionMismatch when h disagrees with f.
func WriteScalar[T scalar.Scalar](w io.Writer, h Header, f lattice.Field[T]) error {
	if err := checkType[T](h); err != nil {
		return err
	}
	if f.Dims() != h.Dims {
		return fmt.Errorf("%w: header %s, field %s", lattice.ErrDimensionMismatch, h.Dims, f.Dims())
	}
	return writeSamples(w, h, f.Values())
}

// WriteVectors encodes vf as 3 components per voxel of h.Type.
func WriteVectors(w io.Writer, h Header, vf *lattice.VectorField) error {
	if !h.Type.IsFloat() {
		return fmt.Errorf("%w: vectors need float32 or float64, header %s", ErrTypeMismatch, h.Type)
	}
	if vf.Dims() != h.Dims {
		return fmt.Errorf("%w: header %s, field %s", lattice.ErrDimensionMismatch, h.Dims, vf.Dims())
	}
	vecs := vf.Vectors()
	if h.Type == Float32 {
		comps := make([]float32, 0, 3*len(vecs))
		for _, v := range vecs {
			comps = append(comps, float32(v.X), float32(v.Y), float32(v.Z))
		}
		return writeSamples(w, h, comps)
	}
	comps := make([]float64, 0, 3*len(vecs))
	for _, v := range vecs {
		comps = append(comps, v.X, v.Y, v.Z)
	}
	return writeSamples(w, h, comps)
}

// WriteScalarFile creates path and encodes f into it.
func WriteScalarFile[T scalar.Scalar](path string, h Header, f lattice.Field[T]) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("rawvol: %w", err)
	}
	bw := bufio.NewWriter(out)
	if err := WriteScalar(bw, h, f); err != nil {
		out.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		out.Close()
		return fmt.Errorf("rawvol: %w", err)
	}
	return out.Close()
}
