package mesh

import (
	"fmt"
	"strings"

	"github.com/zibamira/filopodia-tool-sub002/lattice"
)

const (
	// NoVertex is returned for coordinates or indices outside the lattice.
	NoVertex = -1
	// NoNode is returned for vertices that are inactive or outside the lattice.
	NoNode = -1
	// MaxTemporalWindow bounds the TemporalExpanded window radius.
	MaxTemporalWindow = 3
)

// Coord is an integer lattice position.
type Coord struct {
	X, Y, Z int
}

// Offset is a neighbor displacement in lattice steps.
type Offset struct {
	DX, DY, DZ int
}

// Neg returns the opposite offset.
func (o Offset) Neg() Offset { return Offset{-o.DX, -o.DY, -o.DZ} }

// IsZero reports whether o is the null displacement.
func (o Offset) IsZero() bool { return o.DX == 0 && o.DY == 0 && o.DZ == 0 }

// Connectivity selects the neighbor-offset set.
type Connectivity int

const (
	// Face connects vertices differing by ±1 on exactly one axis (6 offsets).
	Face Connectivity = iota
	// Edge adds offsets with ±1 on exactly two axes (18 offsets).
	Edge
	// Corner adds offsets with ±1 on all three axes (26 offsets).
	Corner
	// TemporalExpanded uses the in-slice face offsets plus a (2r+1)² window
	// in each adjacent slice, r being the temporal window (22 offsets for r=1).
	TemporalExpanded
)

var connectivityNames = map[Connectivity]string{
	Face:             "face",
	Edge:             "edge",
	Corner:           "corner",
	TemporalExpanded: "temporal",
}

// String returns the lower-case name used by ParseConnectivity.
func (c Connectivity) String() string {
	if s, ok := connectivityNames[c]; ok {
		return s
	}
	return fmt.Sprintf("connectivity(%d)", int(c))
}

func (c Connectivity) valid() bool {
	_, ok := connectivityNames[c]
	return ok
}

// ParseConnectivity maps "face"/"6", "edge"/"18", "corner"/"26" and
// "temporal"/"expanded" to a Connectivity.
func ParseConnectivity(s string) (Connectivity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "face", "6":
		return Face, nil
	case "edge", "18":
		return Edge, nil
	case "corner", "26":
		return Corner, nil
	case "temporal", "expanded":
		return TemporalExpanded, nil
	}
	return Face, fmt.Errorf("%w: %q", ErrUnknownConnectivity, s)
}

// Interpretation fixes the meaning of the third lattice axis.
type Interpretation int

const (
	// Spatial treats Z as a spatial axis; every offset is legal.
	Spatial Interpretation = iota
	// IndependentSlices treats each Z slice as a disconnected 2-D lattice.
	IndependentSlices
	// SpatioTemporal treats Z as time; Z offsets go through the bound deformation.
	SpatioTemporal
)

var interpretationNames = map[Interpretation]string{
	Spatial:           "spatial",
	IndependentSlices: "slices",
	SpatioTemporal:    "spatiotemporal",
}

// String returns the lower-case name used by ParseInterpretation.
func (i Interpretation) String() string {
	if s, ok := interpretationNames[i]; ok {
		return s
	}
	return fmt.Sprintf("interpretation(%d)", int(i))
}

func (i Interpretation) valid() bool {
	_, ok := interpretationNames[i]
	return ok
}

// ParseInterpretation maps "spatial"/"3d", "slices"/"2d" and "spatiotemporal"/"time".
func ParseInterpretation(s string) (Interpretation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "spatial", "3d":
		return Spatial, nil
	case "slices", "2d":
		return IndependentSlices, nil
	case "spatiotemporal", "time", "2d+t":
		return SpatioTemporal, nil
	}
	return Spatial, fmt.Errorf("%w: %q", ErrUnknownInterpretation, s)
}

// Rounding maps a displaced, fractional position onto the lattice.
type Rounding int

const (
	// RoundNearest rounds half away from zero.
	RoundNearest Rounding = iota
	// RoundFloor rounds toward negative infinity.
	RoundFloor
	// RoundTruncate rounds toward zero.
	RoundTruncate
)

var roundingNames = map[Rounding]string{
	RoundNearest:  "nearest",
	RoundFloor:    "floor",
	RoundTruncate: "truncate",
}

// String returns the lower-case name used by ParseRounding.
func (r Rounding) String() string {
	if s, ok := roundingNames[r]; ok {
		return s
	}
	return fmt.Sprintf("rounding(%d)", int(r))
}

func (r Rounding) valid() bool {
	_, ok := roundingNames[r]
	return ok
}

// ParseRounding maps "nearest", "floor" and "truncate" to a Rounding.
func ParseRounding(s string) (Rounding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nearest", "round":
		return RoundNearest, nil
	case "floor":
		return RoundFloor, nil
	case "truncate", "trunc":
		return RoundTruncate, nil
	}
	return RoundNearest, fmt.Errorf("%w: %q", ErrUnknownRounding, s)
}

// Side restricts neighbor values relative to the source vertex value.
type Side int

const (
	// Both keeps neighbors whose value differs from the source value.
	Both Side = iota
	// Lower keeps neighbors whose value is strictly smaller.
	Lower
	// Upper keeps neighbors whose value is strictly greater.
	Upper
)

// Stats summarizes the graph induced by the current configuration.
type Stats struct {
	Dims           lattice.Dims
	Vertices       int
	Nodes          int
	Offsets        int
	Edges          int // directed node → node adjacencies
	Connectivity   Connectivity
	Interpretation Interpretation
	Deformed       bool
	OffsetCache    bool
}
