package nd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSize(t *testing.T) {
	cases := []struct {
		dims []int
		want int
	}{
		{[]int{1}, 1},
		{[]int{4}, 4},
		{[]int{1, 8, 8, 1}, 64},
		{[]int{3, 16, 2}, 96},
	}
	for _, c := range cases {
		if got := Size(c.dims); got != c.want {
			t.Errorf("Size(%v) = %d, want %d", c.dims, got, c.want)
		}
	}
}

func TestSize_BadExtentPanics(t *testing.T) {
	assert.Panics(t, func() { Size([]int{4, 0, 2}) })
	assert.Panics(t, func() { Size([]int{-1}) })
}

func TestStrides_ColumnMajor(t *testing.T) {
	got := Strides([]int{3, 4, 5})
	assert.Equal(t, []int{1, 3, 12}, got)
}

func TestStrides_SingletonAxesBroadcast(t *testing.T) {
	// Extent-1 axes get stride 0 so any position along them maps to the
	// same element.
	got := Strides([]int{3, 8, 1, 2})
	assert.Equal(t, []int{1, 3, 0, 24}, got)

	// Positions that differ only along the singleton axis hit the same slot.
	assert.Equal(t,
		Offset([]int{2, 5, 0, 1}, got),
		Offset([]int{2, 5, 6, 1}, got))
}

func TestUnravel_RoundTrip(t *testing.T) {
	dims := []int{2, 3, 4, 2}
	strides := []int{1, 2, 6, 24} // full strides, no singletons
	pos := make([]int, len(dims))
	for idx := 0; idx < Size(dims); idx++ {
		Unravel(idx, dims, pos)
		if got := Offset(pos, strides); got != idx {
			t.Fatalf("Unravel(%d) = %v, Offset back = %d", idx, pos, got)
		}
	}
}

func TestZSample_VisitsEveryIndexExactlyOnce(t *testing.T) {
	dims := []int{2, 5, 4, 3}
	strides := Strides(dims)
	out := make([]complex128, Size(dims))

	// Encode the flat offset of the visited position; if every slot ends up
	// holding its own index, each index was visited once and written to the
	// right slot.
	ZSample(dims, out, func(pos []int) complex128 {
		return complex(float64(Offset(pos, strides)), 0)
	})
	for i, v := range out {
		if int(real(v)) != i || imag(v) != 0 {
			t.Fatalf("out[%d] = %v, want (%d,0)", i, v, i)
		}
	}
}

func TestZSample_ParallelMatchesSerial(t *testing.T) {
	// Large enough to take the parallel path.
	dims := []int{1, 128, 128, 4}
	fn := func(pos []int) complex128 {
		return complex(float64(3*pos[1]+7*pos[2]), float64(pos[3]))
	}

	got := make([]complex128, Size(dims))
	ZSample(dims, got, fn)

	want := make([]complex128, Size(dims))
	pos := make([]int, len(dims))
	for idx := range want {
		Unravel(idx, dims, pos)
		want[idx] = fn(pos)
	}
	assert.Equal(t, want, got)
}

func TestZSample_LengthMismatchPanics(t *testing.T) {
	out := make([]complex128, 7)
	assert.Panics(t, func() {
		ZSample([]int{2, 4}, out, func([]int) complex128 { return 0 })
	})
}
