// Package traj builds k-space sampling trajectories for the non-Cartesian
// phantom entry points. Coordinates are stored in k-index units: one unit
// equals one Cartesian grid step, so a trajectory value v samples the same
// frequency as grid index offset v from the k-space center.
package traj

import "fmt"

// Trajectory is a dense array of k-space coordinate triples.
type Trajectory struct {
	// Dims[0] is always 3: the (kx, ky, kz) triple per sample. The
	// remaining axes are sample axes; they align positionally with the
	// output axes of a sampling call and singleton axes broadcast.
	Dims []int
	// Data holds the coordinates column-major (triple component fastest).
	Data []float64
}

// New allocates a zeroed trajectory. dims must start with the leading
// coordinate axis of extent 3 and all sample extents must be >= 1.
func New(dims []int) *Trajectory {
	if len(dims) == 0 || dims[0] != 3 {
		panic(fmt.Sprintf("traj: leading axis extent must be 3, got %v", dims))
	}
	n := 3
	for i, d := range dims[1:] {
		if d < 1 {
			panic(fmt.Sprintf("traj: dims[%d] = %d, extents must be >= 1", i+1, d))
		}
		n *= d
	}
	return &Trajectory{
		Dims: append([]int(nil), dims...),
		Data: make([]float64, n),
	}
}

// Samples returns the number of coordinate triples.
func (t *Trajectory) Samples() int {
	return len(t.Data) / 3
}

// Grid returns the trajectory that reproduces the Cartesian k-space grid of
// spatial extents dx, dy: sample (x, y) carries exactly the frequency the
// grid sampler assigns to index (x, y). Useful for validating non-Cartesian
// pipelines against gridded ones.
func Grid(dx, dy int) *Trajectory {
	t := New([]int{3, dx, dy})
	for y := 0; y < dy; y++ {
		for x := 0; x < dx; x++ {
			base := 3 * (x + dx*y)
			t.Data[base+0] = float64(2*x-dx) / 2
			t.Data[base+1] = float64(2*y-dy) / 2
		}
	}
	return t
}
