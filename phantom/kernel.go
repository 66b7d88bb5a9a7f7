package phantom

// pointFunc evaluates the modeled object at one normalized 2-D coordinate:
// an intensity for image-domain sampling, a spatial-frequency value for
// k-space sampling.
type pointFunc func(p [2]float64) complex128

// combineFunc merges one coil's sensitivity with a geometry evaluation at a
// normalized coordinate. The three implementations below form a closed set;
// selection happens once per sampling call in combiner.
type combineFunc func(coil int, p [2]float64, fn pointFunc) complex128

// direct is the sensitivity bypass: the geometry value passes through
// untouched. Used whenever a single receive channel is requested.
func direct(_ int, p [2]float64, fn pointFunc) complex128 {
	return fn(p)
}

// imageSens weights the geometry value by the coil field. Multiplication is
// the image-domain form of coil reception.
func imageSens(c int, p [2]float64, fn pointFunc) complex128 {
	return Sensitivity(c, p) * fn(p)
}

// kspaceSens applies the identical coil model in k-space, where the
// image-domain product becomes convolution with the field's Fourier
// coefficients: the geometry transform is evaluated at the 25
// quarter-integral shifted frequencies and combined with the same table
// that imageSens sums over.
func kspaceSens(c int, p [2]float64, fn pointFunc) complex128 {
	checkCoil(c)
	var val complex128
	for i := 0; i < coilCoeff; i++ {
		for j := 0; j < coilCoeff; j++ {
			shifted := [2]float64{
				p[0] + float64(i-sensHalf)/4,
				p[1] + float64(j-sensHalf)/4,
			}
			val += sensCoeff[c][i][j] * fn(shifted)
		}
	}
	return val
}

// combiner selects the strategy for one sampling call.
func combiner(multicoil, kspace bool) combineFunc {
	switch {
	case !multicoil:
		return direct
	case kspace:
		return kspaceSens
	default:
		return imageSens
	}
}

// Coordinate normalizers. Grid indices map onto an interval symmetric
// around zero: image positions scale by the extent (range ~[-1,1)), spatial
// frequencies by a fixed 4 so the k-space step stays tied to the field of
// view rather than the grid size. Trajectory entries arrive in k-index
// units and are halved onto the same scale. A trajectory that reproduces
// grid indices must land on exactly the grid frequencies, so these
// constants are load-bearing; see kspaceCoord vs trajCoord.
func imageCoord(x, extent int) float64 {
	return float64(2*x-extent) / float64(extent)
}

func kspaceCoord(x, extent int) float64 {
	return float64(2*x-extent) / 4
}

func trajCoord(t float64) float64 {
	return t / 2
}
