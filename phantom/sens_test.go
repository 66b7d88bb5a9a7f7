package phantom

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSensitivity_CoilIndexOutOfRangePanics(t *testing.T) {
	assert.PanicsWithValue(t, "phantom: coil index 8 out of range [0,8)", func() {
		Sensitivity(8, [2]float64{0, 0})
	})
	assert.PanicsWithValue(t, "phantom: coil index -1 out of range [0,8)", func() {
		Sensitivity(-1, [2]float64{0, 0})
	})
}

func TestSensitivity_CoilsAreDistinct(t *testing.T) {
	p := [2]float64{0.5, -0.25}
	seen := map[complex128]bool{}
	for c := 0; c < MaxCoils; c++ {
		seen[Sensitivity(c, p)] = true
	}
	assert.Len(t, seen, MaxCoils, "every coil should have its own field value")
}

func TestSensitivity_NonzeroAcrossFOV(t *testing.T) {
	// Root-sum-of-squares over all channels must not vanish anywhere a coil
	// array is supposed to see the object.
	for _, p := range [][2]float64{
		{0, 0}, {0.9, 0.9}, {-0.9, 0.9}, {0.9, -0.9}, {-0.9, -0.9}, {0.5, 0}, {0, -0.75},
	} {
		rss := 0.0
		for c := 0; c < MaxCoils; c++ {
			v := cmplx.Abs(Sensitivity(c, p))
			rss += v * v
		}
		assert.Greater(t, rss, 0.01, "rss at %v", p)
	}
}

func TestSensitivity_StrongestNearItsCoil(t *testing.T) {
	// Coil 0 sits at angle zero, so the FOV edge facing it must see more
	// signal than the opposite edge.
	near := cmplx.Abs(Sensitivity(0, [2]float64{1, 0}))
	far := cmplx.Abs(Sensitivity(0, [2]float64{-1, 0}))
	assert.Greater(t, near, 1.5*far)
}

func TestSensitivities_SingleChannelStillWeighted(t *testing.T) {
	// The pure sensitivity maps keep the coil weighting on even for one
	// channel; they must reproduce the analytic field, not the constant 1.
	const n = 8
	dims := []int{1, n, n, 1}
	out := make([]complex128, n*n)
	Sensitivities(dims, out)

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			p := [2]float64{imageCoord(x, n), imageCoord(y, n)}
			want := Sensitivity(0, p)
			assert.Equal(t, want, out[x+n*y], "at (%d,%d)", x, y)
		}
	}
}

func TestSensitivities_MatchFieldExactly(t *testing.T) {
	const n = 12
	dims := []int{1, n, n, MaxCoils}
	out := make([]complex128, n*n*MaxCoils)
	Sensitivities(dims, out)

	for c := 0; c < MaxCoils; c++ {
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				p := [2]float64{imageCoord(x, n), imageCoord(y, n)}
				if got, want := out[x+n*y+n*n*c], Sensitivity(c, p); got != want {
					t.Fatalf("coil %d at (%d,%d): got %v, want %v", c, x, y, got, want)
				}
			}
		}
	}
}
