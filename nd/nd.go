// Package nd provides the small set of multi-dimensional array helpers the
// phantom samplers are built on: extents, column-major strides, and a
// parallel per-index sampling driver.
//
// Arrays are dense and column-major: axis 0 varies fastest in memory. This
// matches the layout of the .cfl interchange format, so buffers can be
// written to disk without reordering.
package nd

import "fmt"

// Size returns the number of elements spanned by dims.
// Dimension vectors must have every extent >= 1.
func Size(dims []int) int {
	n := 1
	for i, d := range dims {
		if d < 1 {
			panic(fmt.Sprintf("nd: dims[%d] = %d, extents must be >= 1", i, d))
		}
		n *= d
	}
	return n
}

// Strides returns the column-major element strides for dims. Axes with
// extent 1 get stride 0, so positions along them collapse to the same
// element; this is what lets a lower-dimensional array broadcast across a
// larger index space.
func Strides(dims []int) []int {
	str := make([]int, len(dims))
	s := 1
	for i, d := range dims {
		if d > 1 {
			str[i] = s
		}
		s *= d
	}
	return str
}

// Unravel fills pos with the multi-index of flat element idx under dims.
// pos must have len(dims) entries.
func Unravel(idx int, dims []int, pos []int) {
	for i, d := range dims {
		pos[i] = idx % d
		idx /= d
	}
}

// Offset returns the flat element offset of pos under the given strides.
func Offset(pos, strides []int) int {
	off := 0
	for i, s := range strides {
		off += pos[i] * s
	}
	return off
}
