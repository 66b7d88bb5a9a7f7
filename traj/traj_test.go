package traj

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Validation(t *testing.T) {
	assert.Panics(t, func() { New([]int{2, 4}) })
	assert.Panics(t, func() { New([]int{}) })
	assert.Panics(t, func() { New([]int{3, 0}) })

	tr := New([]int{3, 4, 5})
	assert.Equal(t, 20, tr.Samples())
	assert.Len(t, tr.Data, 60)
}

func TestGrid_Coordinates(t *testing.T) {
	const dx, dy = 4, 6
	tr := Grid(dx, dy)
	assert.Equal(t, []int{3, dx, dy}, tr.Dims)

	for y := 0; y < dy; y++ {
		for x := 0; x < dx; x++ {
			base := 3 * (x + dx*y)
			assert.Equal(t, float64(2*x-dx)/2, tr.Data[base+0])
			assert.Equal(t, float64(2*y-dy)/2, tr.Data[base+1])
			assert.Equal(t, 0.0, tr.Data[base+2])
		}
	}
}

func TestGrid_OddExtents(t *testing.T) {
	tr := Grid(5, 3)
	// Center sample of a 5-wide axis sits half a step off zero.
	base := 3 * (2 + 5*1)
	assert.Equal(t, -0.5, tr.Data[base+0])
	assert.Equal(t, -0.5, tr.Data[base+1])
}

func TestRadial_FirstSpokeAlongReadAxis(t *testing.T) {
	const samples, spokes = 8, 5
	tr := Radial(samples, spokes, false)
	assert.Equal(t, []int{3, samples, spokes}, tr.Dims)

	for i := 0; i < samples; i++ {
		r := float64(2*i-samples) / 2
		assert.Equal(t, r, tr.Data[3*i+0], "sample %d", i)
		assert.Equal(t, 0.0, tr.Data[3*i+1], "sample %d", i)
		assert.Equal(t, 0.0, tr.Data[3*i+2], "sample %d", i)
	}
}

func TestRadial_UniformSpokeAngles(t *testing.T) {
	const samples, spokes = 6, 4
	tr := Radial(samples, spokes, false)

	for s := 0; s < spokes; s++ {
		want := math.Pi * float64(s) / spokes
		// Read the direction off a positive-radius sample.
		i := samples/2 + 1
		base := 3 * (i + samples*s)
		got := math.Atan2(tr.Data[base+1], tr.Data[base+0])
		assert.InDelta(t, want, got, 1e-12, "spoke %d", s)

		// Every sample on the spoke keeps the commanded radius.
		for i := 0; i < samples; i++ {
			base := 3 * (i + samples*s)
			rad := math.Hypot(tr.Data[base+0], tr.Data[base+1])
			assert.InDelta(t, math.Abs(float64(2*i-samples)/2), rad, 1e-12)
		}
	}
}

func TestRadial_GoldenAngleIncrement(t *testing.T) {
	const samples = 8
	tr := Radial(samples, 3, true)

	golden := math.Pi / ((1 + math.Sqrt(5)) / 2)
	i := samples/2 + 1 // positive radius
	for s := 0; s < 3; s++ {
		base := 3 * (i + samples*s)
		got := math.Atan2(tr.Data[base+1], tr.Data[base+0])
		want := math.Mod(float64(s)*golden, 2*math.Pi)
		if want > math.Pi {
			want -= 2 * math.Pi // Atan2 range
		}
		assert.InDelta(t, want, got, 1e-12, "spoke %d", s)
	}
}
