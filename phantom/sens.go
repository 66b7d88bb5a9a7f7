package phantom

import (
	"fmt"
	"math"
)

const (
	// MaxCoils is the number of receive channels the sensitivity model
	// supports. Requests beyond it are a configuration bug, not bad data.
	MaxCoils = 8
	// coilCoeff is the per-axis order of each coil's truncated 2-D Fourier
	// series.
	coilCoeff = 5
	// sensHalf centers the series indices so the middle coefficient is the
	// DC term.
	sensHalf = (coilCoeff - 1) / 2
)

// Coil model behind the coefficient table: equally spaced Gaussian-profile
// loops placed just outside the field of view. The series lives on a
// period-4 torus (twice the FOV), which is why sensitivity frequencies are
// quarter-integral.
const (
	coilDistance = 1.5 // loop center distance from isocenter
	coilWidth    = 0.9 // Gaussian width of the loop profile
)

// sensCoeff holds the Fourier-series coefficients of each coil's
// sensitivity field. Initialized once at load, shared by reference, never
// mutated.
var sensCoeff = sensCoefficients()

// sensCoefficients evaluates the closed-form transform of the Gaussian coil
// profiles at the quarter-integral series frequencies. Each coil also gets a
// constant phase offset so the fields are complex-valued, as measured coil
// profiles are.
func sensCoefficients() [MaxCoils][coilCoeff][coilCoeff]complex128 {
	var tbl [MaxCoils][coilCoeff][coilCoeff]complex128
	norm := 2 * math.Pi * coilWidth * coilWidth / 16
	for c := 0; c < MaxCoils; c++ {
		angle := 2 * math.Pi * float64(c) / MaxCoils
		cx := coilDistance * math.Cos(angle)
		cy := coilDistance * math.Sin(angle)
		phase0 := math.Pi * float64(c) / MaxCoils
		for i := 0; i < coilCoeff; i++ {
			for j := 0; j < coilCoeff; j++ {
				fi := float64(i-sensHalf) / 4
				fj := float64(j-sensHalf) / 4
				amp := norm * math.Exp(-2*math.Pi*math.Pi*coilWidth*coilWidth*(fi*fi+fj*fj))
				ph := phase0 - 2*math.Pi*(fi*cx+fj*cy)
				tbl[c][i][j] = complex(amp*math.Cos(ph), amp*math.Sin(ph))
			}
		}
	}
	return tbl
}

// Sensitivity evaluates coil c's analytic sensitivity field at the
// normalized position p by summing the coil's Fourier series. The coil
// index must lie in [0, MaxCoils); violations panic.
func Sensitivity(c int, p [2]float64) complex128 {
	checkCoil(c)
	var val complex128
	for i := 0; i < coilCoeff; i++ {
		for j := 0; j < coilCoeff; j++ {
			arg := 2 * math.Pi * (float64(i-sensHalf)*p[0] + float64(j-sensHalf)*p[1]) / 4
			val += sensCoeff[c][i][j] * complex(math.Cos(arg), math.Sin(arg))
		}
	}
	return val
}

func checkCoil(c int) {
	if c < 0 || c >= MaxCoils {
		panic(fmt.Sprintf("phantom: coil index %d out of range [0,%d)", c, MaxCoils))
	}
}
