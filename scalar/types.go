package scalar

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownOrdering indicates a textual ordering name could not be parsed.
var ErrUnknownOrdering = errors.New("scalar: unknown ordering")

// Scalar is the set of numeric voxel representations a lattice may hold.
type Scalar interface {
	~int | ~uint | ~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64 | ~float32 | ~float64
}

// Ordering selects the direction of a (value, node) ranking.
type Ordering uint8

const (
	// Ascending ranks smaller values first; equal values rank the lower node first.
	Ascending Ordering = iota
	// Descending ranks larger values first; equal values rank the higher node first.
	Descending
)

// String returns the lower-case name of the ordering.
func (o Ordering) String() string {
	switch o {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return fmt.Sprintf("ordering(%d)", uint8(o))
	}
}

// Reverse returns the opposite ordering.
func (o Ordering) Reverse() Ordering {
	if o == Ascending {
		return Descending
	}
	return Ascending
}

// ParseOrdering maps "ascending"/"asc" and "descending"/"desc" to an Ordering.
func ParseOrdering(s string) (Ordering, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ascending", "asc":
		return Ascending, nil
	case "descending", "desc":
		return Descending, nil
	}
	return Ascending, fmt.Errorf("%w: %q", ErrUnknownOrdering, s)
}
