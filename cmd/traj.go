package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/andruw17/mrsim/cfl"
	"github.com/andruw17/mrsim/traj"
)

var (
	trajSamples int  // Readout samples per spoke
	trajSpokes  int  // Number of radial spokes
	trajGolden  bool // Golden-angle spoke ordering
)

var trajCmd = &cobra.Command{
	Use:   "traj <output>",
	Short: "Generate a radial k-space trajectory",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging()

		if trajSamples < 1 || trajSpokes < 1 {
			logrus.Fatalf("samples and spokes must be positive, got %d and %d", trajSamples, trajSpokes)
		}

		t := traj.Radial(trajSamples, trajSpokes, trajGolden)
		if err := cfl.Write(args[0], t.Dims, toComplex(t.Data)); err != nil {
			logrus.Fatalf("Failed to write %s: %v", args[0], err)
		}
		logrus.Infof("Wrote %s.cfl with dims %v", args[0], t.Dims)
	},
}

// toComplex widens real coordinates into the complex samples the .cfl
// format stores.
func toComplex(v []float64) []complex128 {
	out := make([]complex128, len(v))
	for i, x := range v {
		out[i] = complex(x, 0)
	}
	return out
}

func init() {
	trajCmd.Flags().IntVar(&trajSamples, "samples", 128, "Readout samples per spoke")
	trajCmd.Flags().IntVar(&trajSpokes, "spokes", 64, "Number of radial spokes")
	trajCmd.Flags().BoolVar(&trajGolden, "golden", false, "Advance spokes by the golden angle instead of uniformly")

	rootCmd.AddCommand(trajCmd)
}
