package main

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/zibamira/filopodia-tool-sub002/lattice"
	"github.com/zibamira/filopodia-tool-sub002/rawvol"
	"github.com/zibamira/filopodia-tool-sub002/scalar"
)

// Synthetic patterns.
const (
	patternRamp  = "ramp"
	patternWaves = "waves"
)

// synthValues fills a raster-ordered volume. ramp is x+y+z; waves is a
// product of cosines with one bump per wavelength on each axis, scaled to
// [0, 100].
func synthValues[T scalar.Scalar](dims lattice.Dims, pattern string, wavelength float64) ([]T, error) {
	if pattern == patternWaves && (!(wavelength > 0) || math.IsInf(wavelength, 0)) {
		return nil, fmt.Errorf("latticemesh: wavelength %g is not a positive finite number", wavelength)
	}
	data := make([]T, dims.Len())
	i := 0
	for z := 0; z < dims.NZ; z++ {
		for y := 0; y < dims.NY; y++ {
			for x := 0; x < dims.NX; x++ {
				switch pattern {
				case patternRamp:
					data[i] = T(x + y + z)
				case patternWaves:
					w := 2 * math.Pi / wavelength
					v := math.Cos(w*float64(x)) * math.Cos(w*float64(y)) * math.Cos(w*float64(z))
					data[i] = T(math.Round(50 * (v + 1)))
				default:
					return nil, fmt.Errorf("latticemesh: unknown pattern %q", pattern)
				}
				i++
			}
		}
	}
	return data, nil
}

// synthesize writes a synthetic volume of the type named by h.
func synthesize(path string, h rawvol.Header, pattern string, wavelength float64) error {
	switch h.Type {
	case rawvol.Uint8:
		return writeSynth[uint8](path, h, pattern, wavelength)
	case rawvol.Int8:
		return writeSynth[int8](path, h, pattern, wavelength)
	case rawvol.Uint16:
		return writeSynth[uint16](path, h, pattern, wavelength)
	case rawvol.Int16:
		return writeSynth[int16](path, h, pattern, wavelength)
	case rawvol.Uint32:
		return writeSynth[uint32](path, h, pattern, wavelength)
	case rawvol.Int32:
		return writeSynth[int32](path, h, pattern, wavelength)
	case rawvol.Float32:
		return writeSynth[float32](path, h, pattern, wavelength)
	case rawvol.Float64:
		return writeSynth[float64](path, h, pattern, wavelength)
	}
	return fmt.Errorf("%w: %s", rawvol.ErrUnknownSampleType, h.Type)
}

func writeSynth[T scalar.Scalar](path string, h rawvol.Header, pattern string, wavelength float64) error {
	data, err := synthValues[T](h.Dims, pattern, wavelength)
	if err != nil {
		return err
	}
	voxel := h.Voxel
	if voxel == (r3.Vec{}) {
		voxel = lattice.UnitVoxel
	}
	f, err := lattice.NewDense(h.Dims, voxel, data)
	if err != nil {
		return err
	}
	return rawvol.WriteScalarFile[T](path, h, f)
}
