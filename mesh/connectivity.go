package mesh

import (
	"context"
	"fmt"
	"slices"
)

// buildOffsets returns the offset table for conn filtered by interp.
// Offsets are generated in raster order (DZ, then DY, then DX ascending), so
// every table is closed under negation and identical across runs.
// Complexity: O(k) for k generated offsets.
func buildOffsets(conn Connectivity, interp Interpretation, window int) []Offset {
	var out []Offset
	switch conn {
	case TemporalExpanded:
		for dz := -1; dz <= 1; dz++ {
			// The in-slice part is face-adjacent only and independent of window.
			r := window
			if dz == 0 {
				r = 1
			}
			for dy := -r; dy <= r; dy++ {
				for dx := -r; dx <= r; dx++ {
					if dz == 0 && abs(dx)+abs(dy) != 1 {
						continue
					}
					out = append(out, Offset{dx, dy, dz})
				}
			}
		}
	default:
		limit := 1 // number of axes allowed to move
		switch conn {
		case Edge:
			limit = 2
		case Corner:
			limit = 3
		}
		for dz := -1; dz <= 1; dz++ {
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					k := abs(dx) + abs(dy) + abs(dz)
					if k == 0 || k > limit {
						continue
					}
					out = append(out, Offset{dx, dy, dz})
				}
			}
		}
	}
	if interp == IndependentSlices {
		out = projectSlices(out)
	}
	return out
}

// projectSlices zeroes DZ, drops the null offset and removes duplicates while
// keeping first-occurrence order.
func projectSlices(in []Offset) []Offset {
	out := make([]Offset, 0, len(in))
	for _, o := range in {
		o.DZ = 0
		if o.IsZero() || slices.Contains(out, o) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Offsets returns the effective offset table. The slice must not be modified.
func (m *Mesh[T]) Offsets() []Offset { return m.offsets }

// Connectivity returns the active connectivity model.
func (m *Mesh[T]) Connectivity() Connectivity { return m.conn }

// Interpretation returns the active third-axis interpretation.
func (m *Mesh[T]) Interpretation() Interpretation { return m.interp }

// TemporalWindow returns the TemporalExpanded window radius.
func (m *Mesh[T]) TemporalWindow() int { return m.window }

// Rounding returns the rounding rule applied to deformed positions.
func (m *Mesh[T]) Rounding() Rounding { return m.rounding }

// SetConnectivity switches the neighbor-offset set.
// Returns ErrUnknownConnectivity for values outside the defined set.
func (m *Mesh[T]) SetConnectivity(c Connectivity) error {
	if !c.valid() {
		return fmt.Errorf("mesh.SetConnectivity: %w: %d", ErrUnknownConnectivity, int(c))
	}
	m.conn = c
	return m.reconfigure("connectivity", c.String())
}

// SetInterpretation switches the meaning of the third axis.
// Returns ErrUnknownInterpretation for values outside the defined set.
func (m *Mesh[T]) SetInterpretation(i Interpretation) error {
	if !i.valid() {
		return fmt.Errorf("mesh.SetInterpretation: %w: %d", ErrUnknownInterpretation, int(i))
	}
	m.interp = i
	return m.reconfigure("interpretation", i.String())
}

// SetTemporalWindow sets the TemporalExpanded window radius.
// Returns ErrTemporalWindow outside [0, MaxTemporalWindow].
func (m *Mesh[T]) SetTemporalWindow(r int) error {
	if r < 0 || r > MaxTemporalWindow {
		return fmt.Errorf("mesh.SetTemporalWindow: %w: %d", ErrTemporalWindow, r)
	}
	m.window = r
	return m.reconfigure("temporal_window", r)
}

// SetRounding sets how deformed positions snap to the lattice.
// Returns ErrUnknownRounding for values outside the defined set.
func (m *Mesh[T]) SetRounding(r Rounding) error {
	if !r.valid() {
		return fmt.Errorf("mesh.SetRounding: %w: %d", ErrUnknownRounding, int(r))
	}
	m.rounding = r
	return m.reconfigure("rounding", r.String())
}

// reconfigure recomputes the offset table and rebuilds an enabled offset cache.
func (m *Mesh[T]) reconfigure(key string, value any) error {
	m.offsets = buildOffsets(m.conn, m.interp, m.window)
	m.logger.Debug("mesh reconfigured", key, value, "offsets", len(m.offsets))
	if m.cache == nil {
		return nil
	}
	return m.EnableOffsetCache(context.Background())
}
