package scalar

import (
	"errors"
	"fmt"
)

// ErrInvalidRange indicates Min > Max or a NaN bound.
var ErrInvalidRange = errors.New("scalar: invalid range")

// Range is an inclusive numeric interval [Min, Max].
type Range[T Scalar] struct {
	Min, Max T
}

// NewRange returns [lo, hi] or ErrInvalidRange when the bounds are unordered.
func NewRange[T Scalar](lo, hi T) (Range[T], error) {
	r := Range[T]{Min: lo, Max: hi}
	if !r.Valid() {
		return Range[T]{}, fmt.Errorf("%w: [%v, %v]", ErrInvalidRange, lo, hi)
	}
	return r, nil
}

// Valid reports whether Min <= Max and neither bound is NaN.
func (r Range[T]) Valid() bool {
	return !isNaN(r.Min) && !isNaN(r.Max) && r.Min <= r.Max
}

// Contains reports whether Min <= v <= Max. NaN is never contained.
// Complexity: O(1).
func (r Range[T]) Contains(v T) bool {
	return v >= r.Min && v <= r.Max
}

// Intersect returns the overlap of r and o and whether it is non-empty.
func (r Range[T]) Intersect(o Range[T]) (Range[T], bool) {
	out := r
	if o.Min > out.Min {
		out.Min = o.Min
	}
	if o.Max < out.Max {
		out.Max = o.Max
	}
	return out, out.Valid()
}

// String formats the interval as "[min, max]".
func (r Range[T]) String() string {
	return fmt.Sprintf("[%v, %v]", r.Min, r.Max)
}
