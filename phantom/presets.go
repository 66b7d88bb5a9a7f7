package phantom

import (
	"github.com/andruw17/mrsim/phantom/geom"
	"github.com/andruw17/mrsim/traj"
)

// one is the constant pseudo-geometry used by the pure sensitivity maps: it
// contributes nothing, so only the coil weighting survives.
func one([2]float64) complex128 {
	return 1
}

// Custom samples an arbitrary ellipse list onto a Cartesian grid, in image
// domain or k-space. dims follows the package axis convention; out must
// hold exactly one complex value per index and is written exactly once per
// index.
func Custom(ellipses []geom.Ellipse, dims []int, out []complex128, kspace bool) {
	fn := func(p [2]float64) complex128 {
		return geom.Eval(ellipses, p, kspace)
	}
	sampleGrid(dims, out, fn, kspace, false)
}

// CustomNonCart samples an arbitrary ellipse list along a trajectory.
// Always k-space.
func CustomNonCart(ellipses []geom.Ellipse, dims []int, out []complex128, t *traj.Trajectory) {
	fn := func(p [2]float64) complex128 {
		return geom.Eval(ellipses, p, true)
	}
	sampleTraj(dims, out, fn, t)
}

// Head renders the modified Shepp-Logan head model.
func Head(dims []int, out []complex128, kspace bool) {
	Custom(geom.SheppLoganMod, dims, out, kspace)
}

// HeadNonCart renders the modified Shepp-Logan head model along a
// trajectory.
func HeadNonCart(dims []int, out []complex128, t *traj.Trajectory) {
	CustomNonCart(geom.SheppLoganMod, dims, out, t)
}

// Disc renders the unit disc.
func Disc(dims []int, out []complex128, kspace bool) {
	Custom(geom.Disc, dims, out, kspace)
}

// Rings renders the four-band bullseye.
func Rings(dims []int, out []complex128, kspace bool) {
	Custom(geom.Rings, dims, out, kspace)
}

// Sensitivities renders the coil sensitivity fields themselves on the image
// grid: the geometry is the constant one, and the sensitivity weighting is
// applied even when a single channel is requested.
func Sensitivities(dims []int, out []complex128) {
	sampleGrid(dims, out, one, false, true)
}
