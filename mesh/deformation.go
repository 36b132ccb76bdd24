package mesh

import (
	"fmt"
	"math"

	"github.com/zibamira/filopodia-tool-sub002/lattice"
)

// Bind attaches the backward and forward displacement fields.
// Under SpatioTemporal, an offset into slice t-1 is displaced by backward and
// an offset into slice t+1 by forward, both sampled at the source vertex.
// Vectors are in physical units; X and Y are divided by the voxel size and Z
// is ignored.
// Returns ErrNilDeformation or ErrDimensionMismatch; on error the previous
// binding is kept.
func (m *Mesh[T]) Bind(backward, forward *lattice.VectorField) error {
	if backward == nil || forward == nil {
		return fmt.Errorf("mesh.Bind: %w", ErrNilDeformation)
	}
	if backward.Dims() != m.dims {
		return fmt.Errorf("mesh.Bind: backward %w: %s, source %s", ErrDimensionMismatch, backward.Dims(), m.dims)
	}
	if forward.Dims() != m.dims {
		return fmt.Errorf("mesh.Bind: forward %w: %s, source %s", ErrDimensionMismatch, forward.Dims(), m.dims)
	}
	m.backward, m.forward = backward, forward
	return m.reconfigure("deformation", "bound")
}

// Unbind detaches the displacement fields.
func (m *Mesh[T]) Unbind() error {
	if m.forward == nil {
		return nil
	}
	m.backward, m.forward = nil, nil
	return m.reconfigure("deformation", "unbound")
}

// IsBound reports whether displacement fields are attached.
func (m *Mesh[T]) IsBound() bool { return m.forward != nil }

// deforms reports whether Z offsets are currently remapped.
func (m *Mesh[T]) deforms() bool {
	return m.interp == SpatioTemporal && m.forward != nil
}

// snap rounds f by the configured rule and reports whether the result is in [0, n).
func (m *Mesh[T]) snap(f float64, n int) (int, bool) {
	// Reject early so the int conversion cannot overflow.
	if math.IsNaN(f) || f <= -1 || f >= float64(n)+1 {
		return 0, false
	}
	var r float64
	switch m.rounding {
	case RoundFloor:
		r = math.Floor(f)
	case RoundTruncate:
		r = math.Trunc(f)
	default:
		r = math.Round(f)
	}
	i := int(r)
	return i, i >= 0 && i < n
}

// resolve returns the vertex reached from src at (x, y, z) by offset o, or
// NoVertex when the candidate leaves the lattice. Activity is not checked.
func (m *Mesh[T]) resolve(src, x, y, z int, o Offset) int {
	nz := z + o.DZ
	if nz < 0 || nz >= m.dims.NZ {
		return NoVertex
	}
	if o.DZ == 0 || !m.deforms() {
		nx, ny := x+o.DX, y+o.DY
		if nx < 0 || nx >= m.dims.NX || ny < 0 || ny >= m.dims.NY {
			return NoVertex
		}
		return m.index(nx, ny, nz)
	}

	field := m.forward
	if o.DZ < 0 {
		field = m.backward
	}
	d := field.At(src)
	nx, okx := m.snap(float64(x)+d.X/m.voxel.X+float64(o.DX), m.dims.NX)
	ny, oky := m.snap(float64(y)+d.Y/m.voxel.Y+float64(o.DY), m.dims.NY)
	if !okx || !oky {
		return NoVertex
	}
	return m.index(nx, ny, nz)
}
