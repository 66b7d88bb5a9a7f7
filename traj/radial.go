package traj

import (
	"math"

	"github.com/sirupsen/logrus"
)

// Radial returns a radial trajectory of full-diameter spokes through the
// k-space center, dims [3, samples, spokes]. Uniform spacing distributes
// spoke angles evenly over half a turn; golden spacing advances each spoke
// by the golden angle instead.
func Radial(samples, spokes int, golden bool) *Trajectory {
	t := New([]int{3, samples, spokes})
	logrus.Debugf("traj: radial samples=%d spokes=%d golden=%v", samples, spokes, golden)
	for s := 0; s < spokes; s++ {
		var angle float64
		if golden {
			// Golden angle: pi divided by the golden ratio (~111.25 deg).
			// Keeps coverage near-uniform for any leading subset of spokes.
			angle = float64(s) * math.Pi / ((1 + math.Sqrt(5)) / 2)
		} else {
			angle = math.Pi * float64(s) / float64(spokes)
		}
		sin, cos := math.Sincos(angle)
		for i := 0; i < samples; i++ {
			r := float64(2*i-samples) / 2
			base := 3 * (i + samples*s)
			t.Data[base+0] = r * cos
			t.Data[base+1] = r * sin
		}
	}
	return t
}
