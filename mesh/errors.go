package mesh

import "errors"

// Sentinel errors for mesh construction and configuration.
var (
	// ErrNilField indicates New was called without a source field.
	ErrNilField = errors.New("mesh: source field is nil")
	// ErrTooLarge indicates the lattice holds more vertices than int32 can index.
	ErrTooLarge = errors.New("mesh: lattice too large")
	// ErrActiveOutOfRange indicates the active set names a vertex outside the lattice.
	ErrActiveOutOfRange = errors.New("mesh: active vertex out of range")
	// ErrUnknownConnectivity indicates a Connectivity value outside the defined set.
	ErrUnknownConnectivity = errors.New("mesh: unknown connectivity")
	// ErrUnknownInterpretation indicates an Interpretation value outside the defined set.
	ErrUnknownInterpretation = errors.New("mesh: unknown interpretation")
	// ErrUnknownRounding indicates a Rounding value outside the defined set.
	ErrUnknownRounding = errors.New("mesh: unknown rounding")
	// ErrTemporalWindow indicates a temporal window radius outside [0, MaxTemporalWindow].
	ErrTemporalWindow = errors.New("mesh: temporal window out of range")
	// ErrNilDeformation indicates Bind received a nil displacement field.
	ErrNilDeformation = errors.New("mesh: deformation field is nil")
	// ErrDimensionMismatch indicates a bound field does not share the source extent.
	ErrDimensionMismatch = errors.New("mesh: dimension mismatch")
	// ErrInactiveSource indicates a traversal started from a vertex that is not a node.
	ErrInactiveSource = errors.New("mesh: source vertex is not active")
)
