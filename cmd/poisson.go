package cmd

import (
	"math/rand"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/andruw17/mrsim/cfl"
	"github.com/andruw17/mrsim/poisson"
)

var (
	poissonSizeX   int       // Mask cells along the first phase-encode axis
	poissonSizeY   int       // Mask cells along the second phase-encode axis
	poissonDeltas  []float64 // Per-class minimum distances; the class count follows
	poissonVardens float64   // Variable-density slope, 0 keeps density uniform
	poissonMax     int       // Upper bound on generated points
	poissonCalib   int       // Side of the fully sampled central block, 0 for none
	poissonSeed    int64     // Seed for the sampling pattern
)

var poissonCmd = &cobra.Command{
	Use:   "poisson <output>",
	Short: "Generate a Poisson-disc undersampling mask",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging()

		if poissonSizeX < 1 || poissonSizeY < 1 {
			logrus.Fatalf("mask extents must be positive, got %d and %d", poissonSizeX, poissonSizeY)
		}
		if poissonCalib > poissonSizeX || poissonCalib > poissonSizeY {
			logrus.Fatalf("calibration block %d exceeds mask extents %dx%d", poissonCalib, poissonSizeX, poissonSizeY)
		}
		for _, d := range poissonDeltas {
			if d <= 0 || d >= 1 {
				logrus.Fatalf("point distances must be in (0, 1), got %v", poissonDeltas)
			}
		}

		classes := len(poissonDeltas)
		rng := rand.New(rand.NewSource(poissonSeed))
		points, kinds := poisson.DiscMulti(rng, poissonMax, classes, poissonVardens, poisson.RMatrix(poissonDeltas))
		mask := classMasks(points, kinds, classes, poissonSizeX, poissonSizeY)

		plane := poissonSizeX * poissonSizeY
		for c := 0; c < classes; c++ {
			fillCalibration(mask[c*plane:(c+1)*plane], poissonSizeX, poissonSizeY, poissonCalib)
		}

		dims := []int{1, poissonSizeX, poissonSizeY}
		if classes > 1 {
			// One mask plane per class, stacked past the coil axis.
			dims = []int{1, poissonSizeX, poissonSizeY, 1, classes}
		}
		if err := cfl.Write(args[0], dims, mask); err != nil {
			logrus.Fatalf("Failed to write %s: %v", args[0], err)
		}
		logrus.Infof("Wrote %s.cfl with dims %v from %d points", args[0], dims, len(points))
	},
}

// classMasks bins a labelled point set onto one mask plane per class and
// concatenates the planes.
func classMasks(points []poisson.Point, kinds []int, classes, nx, ny int) []complex128 {
	mask := make([]complex128, 0, classes*nx*ny)
	for c := 0; c < classes; c++ {
		var sub []poisson.Point
		for i, p := range points {
			if kinds[i] == c {
				sub = append(sub, p)
			}
		}
		mask = append(mask, poisson.Mask(sub, nx, ny)...)
	}
	return mask
}

// fillCalibration marks the central calib-by-calib block of the mask as
// sampled. calib <= 0 leaves the mask untouched.
func fillCalibration(mask []complex128, nx, ny, calib int) {
	x0 := (nx - calib) / 2
	y0 := (ny - calib) / 2
	for y := y0; y < y0+calib; y++ {
		for x := x0; x < x0+calib; x++ {
			mask[x+nx*y] = 1
		}
	}
}

func init() {
	poissonCmd.Flags().IntVar(&poissonSizeX, "size-x", 128, "Mask cells along the first phase-encode axis")
	poissonCmd.Flags().IntVar(&poissonSizeY, "size-y", 128, "Mask cells along the second phase-encode axis")
	poissonCmd.Flags().Float64SliceVar(&poissonDeltas, "deltas", []float64{0.02}, "Comma-separated per-class minimum point distances; one mask plane per class")
	poissonCmd.Flags().Float64Var(&poissonVardens, "vardens", 0, "Variable-density slope; higher thins the mask edges")
	poissonCmd.Flags().IntVar(&poissonMax, "max", 20000, "Upper bound on generated points")
	poissonCmd.Flags().IntVar(&poissonCalib, "calib", 0, "Side of the fully sampled central calibration block")
	poissonCmd.Flags().Int64Var(&poissonSeed, "seed", 42, "Seed for the sampling pattern")

	rootCmd.AddCommand(poissonCmd)
}
