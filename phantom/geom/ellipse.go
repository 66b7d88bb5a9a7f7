// Package geom holds the analytic geometry behind the phantom models: the
// ellipse primitive, its exact image-domain and k-space evaluations, and the
// standard parameter tables.
//
// Ellipses have closed-form Fourier transforms, so a phantom built from them
// can be sampled directly in either domain without ever gridding or
// transforming: the k-space values are exact, not FFTs of a rasterized
// image.
package geom

import "math"

// deg converts degrees to radians in table literals.
const deg = math.Pi / 180

// Ellipse is one geometric primitive of a phantom model.
type Ellipse struct {
	// Intensity is the additive contribution inside the ellipse.
	Intensity float64
	// Axes are the two semi-axes before rotation.
	Axes [2]float64
	// Center offsets the ellipse in normalized coordinates (~[-1,1]).
	Center [2]float64
	// Angle rotates the ellipse about its own center, in radians.
	Angle float64
}

// Eval returns the summed contribution of all ellipses at the normalized
// position p: the image-domain intensity when kspace is false, the exact
// continuous Fourier transform at spatial frequency p when true.
func Eval(ellipses []Ellipse, p [2]float64, kspace bool) complex128 {
	var sum complex128
	for i := range ellipses {
		if kspace {
			sum += kspaceEllipse(&ellipses[i], p)
		} else {
			sum += imageEllipse(&ellipses[i], p)
		}
	}
	return sum
}

// Both evaluations rotate the coordinate a quarter turn first so the
// rendered models sit in the conventional orientation (nose up). The
// rotation is applied identically in the two domains, which the Fourier
// transform permits.
func quarterTurn(p [2]float64) (float64, float64) {
	return -p[1], p[0]
}

// imageEllipse is the indicator evaluation: Intensity inside the rotated,
// shifted ellipse (boundary inclusive), zero outside.
func imageEllipse(e *Ellipse, p [2]float64) complex128 {
	q0, q1 := quarterTurn(p)
	q0 -= e.Center[0]
	q1 -= e.Center[1]
	sin, cos := math.Sincos(e.Angle)
	r0 := cos*q0 + sin*q1
	r1 := -sin*q0 + cos*q1
	d0 := r0 / e.Axes[0]
	d1 := r1 / e.Axes[1]
	if d0*d0+d1*d1 <= 1 {
		return complex(e.Intensity, 0)
	}
	return 0
}

// kspaceEllipse is the closed-form transform of imageEllipse: a jinc profile
// scaled by the ellipse area, with the center offset contributing a linear
// phase ramp.
func kspaceEllipse(e *Ellipse, k [2]float64) complex128 {
	q0, q1 := quarterTurn(k)
	sin, cos := math.Sincos(e.Angle)
	r0 := cos*q0 + sin*q1
	r1 := -sin*q0 + cos*q1
	rad := 2 * math.Pi * math.Hypot(e.Axes[0]*r0, e.Axes[1]*r1)
	w := e.Intensity * math.Pi * e.Axes[0] * e.Axes[1] * jinc(rad)
	ph := 2 * math.Pi * (q0*e.Center[0] + q1*e.Center[1])
	return complex(w*math.Cos(ph), w*math.Sin(ph))
}

// jinc is the radial analogue of sinc: 2*J1(x)/x, continued to 1 at zero.
func jinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	return 2 * math.J1(x) / x
}
