package phantom

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/andruw17/mrsim/nd"
	"github.com/andruw17/mrsim/traj"
)

// CoilAxis is the dimension-vector axis holding the receive-channel count.
const CoilAxis = 3

// checkDims validates an output request. Every violation panics: these are
// caller bugs and no output may be produced after one.
func checkDims(dims []int, out []complex128) {
	if len(dims) <= CoilAxis {
		panic(fmt.Sprintf("phantom: dimension vector %v too short, need at least %d axes", dims, CoilAxis+1))
	}
	n := nd.Size(dims)
	if len(out) != n {
		panic(fmt.Sprintf("phantom: output length %d does not match dims %v (need %d)", len(out), dims, n))
	}
	if c := dims[CoilAxis]; c > MaxCoils {
		panic(fmt.Sprintf("phantom: %d coils requested, sensitivity model supports at most %d", c, MaxCoils))
	}
}

// gridContext is the per-call bundle for Cartesian sampling; it is built
// fresh for each entry-point call and captured by the nd.ZSample callback.
type gridContext struct {
	dims   []int
	kspace bool
	comb   combineFunc
	fn     pointFunc
}

func (g *gridContext) sample(pos []int) complex128 {
	var p [2]float64
	if g.kspace {
		p[0] = kspaceCoord(pos[1], g.dims[1])
		p[1] = kspaceCoord(pos[2], g.dims[2])
	} else {
		p[0] = imageCoord(pos[1], g.dims[1])
		p[1] = imageCoord(pos[2], g.dims[2])
	}
	return g.comb(pos[CoilAxis], p, g.fn)
}

// sampleGrid drives a Cartesian sampling call. forceSens keeps the
// sensitivity weighting on even for a single-channel output; only the pure
// sensitivity maps use that.
func sampleGrid(dims []int, out []complex128, fn pointFunc, kspace, forceSens bool) {
	checkDims(dims, out)
	multicoil := dims[CoilAxis] > 1 || forceSens
	logrus.Debugf("phantom: grid sampling dims=%v kspace=%v multicoil=%v", dims, kspace, multicoil)
	ctx := &gridContext{
		dims:   dims,
		kspace: kspace,
		comb:   combiner(multicoil, kspace),
		fn:     fn,
	}
	nd.ZSample(dims, out, ctx.sample)
}

// trajContext is the per-call bundle for non-Cartesian sampling. strides
// map an output position to the first coordinate component of its
// trajectory sample; singleton trajectory axes broadcast via stride 0.
type trajContext struct {
	comb    combineFunc
	fn      pointFunc
	data    []float64
	strides []int
}

func (tc *trajContext) sample(pos []int) complex128 {
	off := nd.Offset(pos, tc.strides)
	// Each sample carries a coordinate triple; the third (slice) component
	// is present in the layout but not consumed by this 2-D model.
	p := [2]float64{trajCoord(tc.data[off]), trajCoord(tc.data[off+1])}
	return tc.comb(pos[CoilAxis], p, tc.fn)
}

// trajStrides validates a trajectory against the output dims and returns
// per-output-axis strides into its data. Trajectory axis i aligns with
// output axis i; axes the trajectory lacks, or holds with extent 1, repeat
// the same coordinates across that output axis.
func trajStrides(dims []int, t *traj.Trajectory) []int {
	if len(t.Dims) == 0 || t.Dims[0] != 3 {
		panic(fmt.Sprintf("phantom: trajectory leading axis extent must be 3, got %v", t.Dims))
	}
	if n := nd.Size(t.Dims); len(t.Data) != n {
		panic(fmt.Sprintf("phantom: trajectory data length %d does not match dims %v (need %d)", len(t.Data), t.Dims, n))
	}
	for i := 1; i < len(t.Dims); i++ {
		td := t.Dims[i]
		if td == 1 {
			continue
		}
		if i == CoilAxis {
			panic(fmt.Sprintf("phantom: trajectory must not vary along the coil axis, got extent %d", td))
		}
		if i >= len(dims) || td != dims[i] {
			panic(fmt.Sprintf("phantom: trajectory axis %d extent %d does not match output dims %v", i, td, dims))
		}
	}

	tstr := nd.Strides(t.Dims)
	strides := make([]int, len(dims))
	for i := 1; i < len(dims) && i < len(t.Dims); i++ {
		strides[i] = tstr[i]
	}
	return strides
}

// sampleTraj drives a non-Cartesian sampling call. Trajectory sampling is
// always k-space; there is no image-domain variant.
func sampleTraj(dims []int, out []complex128, fn pointFunc, t *traj.Trajectory) {
	checkDims(dims, out)
	strides := trajStrides(dims, t)
	multicoil := dims[CoilAxis] > 1
	logrus.Debugf("phantom: trajectory sampling dims=%v traj=%v multicoil=%v", dims, t.Dims, multicoil)
	ctx := &trajContext{
		comb:    combiner(multicoil, true),
		fn:      fn,
		data:    t.Data,
		strides: strides,
	}
	nd.ZSample(dims, out, ctx.sample)
}
