package lattice

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/zibamira/filopodia-tool-sub002/scalar"
)

// ActiveWhere returns the set of linear indices whose value satisfies keep.
// Complexity: O(n) time.
func ActiveWhere[T scalar.Scalar](f Field[T], keep func(T) bool) *roaring.Bitmap {
	bm := roaring.New()
	for i, v := range f.Values() {
		if keep(v) {
			bm.Add(uint32(i))
		}
	}
	bm.RunOptimize()
	return bm
}

// ActiveLabels returns the set of voxels carrying a non-zero label.
// The label field must share the source extent.
// Returns ErrDimensionMismatch when labels.Dims() != dims.
func ActiveLabels[L scalar.Scalar](dims Dims, labels Field[L]) (*roaring.Bitmap, error) {
	if labels.Dims() != dims {
		return nil, fmt.Errorf("%w: labels %s, source %s", ErrDimensionMismatch, labels.Dims(), dims)
	}
	return ActiveWhere(labels, func(l L) bool { return l != 0 }), nil
}
