package scalar

// isNaN reports whether v is a floating-point NaN. Integers never are.
func isNaN[T Scalar](v T) bool {
	return v != v
}

// compareValues ranks a against b ascending. NaN ranks after every number and
// equal to another NaN, which keeps the order total over float lattices.
func compareValues[T Scalar](a, b T) int {
	switch an, bn := isNaN(a), isNaN(b); {
	case an && bn:
		return 0
	case an:
		return 1
	case bn:
		return -1
	}
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// Compare ranks the pair (va, na) against (vb, nb) under o.
// It returns a negative number when (va, na) comes first, a positive number
// when (vb, nb) comes first, and zero only when both value and node are equal.
// Complexity: O(1).
func Compare[T Scalar](o Ordering, va T, na int, vb T, nb int) int {
	c := compareValues(va, vb)
	if c == 0 {
		switch {
		case na < nb:
			c = -1
		case na > nb:
			c = 1
		}
	}
	if o == Descending {
		return -c
	}
	return c
}

// Precedes reports whether (va, na) strictly comes before (vb, nb) under o.
// Complexity: O(1).
func Precedes[T Scalar](o Ordering, va T, na int, vb T, nb int) bool {
	return Compare(o, va, na, vb, nb) < 0
}

// Less reports whether a < b with NaN ranked last. It ignores node indices.
func Less[T Scalar](a, b T) bool {
	return compareValues(a, b) < 0
}
