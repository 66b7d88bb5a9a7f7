package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/andruw17/mrsim/cfl"
	"github.com/andruw17/mrsim/nd"
	"github.com/andruw17/mrsim/phantom"
	"github.com/andruw17/mrsim/phantom/geom"
	"github.com/andruw17/mrsim/traj"
)

var (
	phantomSize     int    // Grid extent along each spatial axis
	phantomCoils    int    // Simulated receive channels
	phantomKSpace   bool   // Sample the analytic k-space transform instead of the image
	phantomPreset   string // Built-in geometry selection
	phantomTrajPath string // Trajectory .cfl basename; switches to non-Cartesian sampling
	phantomGeomPath string // YAML ellipse table overriding the preset
	phantomPNGPath  string // Magnitude preview PNG path
	phantomPlot     bool   // Print a terminal magnitude profile
)

var phantomCmd = &cobra.Command{
	Use:   "phantom <output>",
	Short: "Render an analytic phantom to a .cfl/.hdr pair",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging()

		if phantomSize < 1 {
			logrus.Fatalf("size must be positive, got %d", phantomSize)
		}
		if phantomCoils < 1 || phantomCoils > phantom.MaxCoils {
			logrus.Fatalf("coils must be between 1 and %d, got %d", phantom.MaxCoils, phantomCoils)
		}

		var dims []int
		var out []complex128
		kspace := phantomKSpace

		switch {
		case phantomPreset == "sens":
			if phantomKSpace || phantomTrajPath != "" || phantomGeomPath != "" {
				logrus.Fatalf("sensitivity maps are image-domain Cartesian only")
			}
			dims = gridDims(phantomSize, phantomCoils)
			out = make([]complex128, nd.Size(dims))
			phantom.Sensitivities(dims, out)

		case phantomTrajPath != "":
			t, err := loadTrajectory(phantomTrajPath)
			if err != nil {
				logrus.Fatalf("Failed to load trajectory %s: %v", phantomTrajPath, err)
			}
			ellipses, err := selectGeometry(phantomPreset, phantomGeomPath)
			if err != nil {
				logrus.Fatalf("%v", err)
			}
			dims = nonCartDims(t.Dims, phantomCoils)
			if dims == nil {
				logrus.Fatalf("trajectory dims %v leave no room for the coil axis", t.Dims)
			}
			out = make([]complex128, nd.Size(dims))
			phantom.CustomNonCart(ellipses, dims, out, t)
			kspace = true

		default:
			ellipses, err := selectGeometry(phantomPreset, phantomGeomPath)
			if err != nil {
				logrus.Fatalf("%v", err)
			}
			dims = gridDims(phantomSize, phantomCoils)
			out = make([]complex128, nd.Size(dims))
			phantom.Custom(ellipses, dims, out, phantomKSpace)
		}

		if err := cfl.Write(args[0], dims, out); err != nil {
			logrus.Fatalf("Failed to write %s: %v", args[0], err)
		}
		logrus.Infof("Wrote %s.cfl with dims %v", args[0], dims)

		if phantomPNGPath != "" {
			if phantomTrajPath != "" {
				logrus.Warnf("--png needs a Cartesian grid, skipping")
			} else if err := writeMagnitudePNG(phantomPNGPath, out, dims[1], dims[2]); err != nil {
				logrus.Fatalf("Failed to write %s: %v", phantomPNGPath, err)
			}
		}
		if phantomPlot {
			printProfile(out, dims, kspace)
		}
	},
}

// gridDims assembles the dimension vector for a size-by-size Cartesian
// output following the phantom axis convention.
func gridDims(size, coils int) []int {
	return []int{1, size, size, coils}
}

// nonCartDims maps trajectory sample axes onto an output dimension vector
// with coils on the standard axis. Returns nil when the trajectory carries
// so many sample axes that they would collide with the coil axis.
func nonCartDims(tdims []int, coils int) []int {
	if len(tdims) > phantom.CoilAxis {
		return nil
	}
	dims := []int{1, 1, 1, coils}
	for i, d := range tdims[1:] {
		dims[i+1] = d
	}
	return dims
}

// selectGeometry resolves the sampled ellipse table: an explicit YAML file
// wins over the preset name.
func selectGeometry(preset, path string) ([]geom.Ellipse, error) {
	if path != "" {
		return geom.FromFile(path)
	}
	switch preset {
	case "head":
		return geom.SheppLoganMod, nil
	case "classic":
		return geom.SheppLogan, nil
	case "disc":
		return geom.Disc, nil
	case "rings":
		return geom.Rings, nil
	}
	return nil, fmt.Errorf("unknown preset %q (want head, classic, disc, rings or sens)", preset)
}

// loadTrajectory reads a trajectory stored as a complex .cfl pair, keeping
// the real parts.
func loadTrajectory(name string) (*traj.Trajectory, error) {
	dims, data, err := cfl.Read(name)
	if err != nil {
		return nil, err
	}
	if len(dims) == 0 || dims[0] != 3 {
		return nil, fmt.Errorf("trajectory dims %v must start with a coordinate axis of extent 3", dims)
	}
	coords := make([]float64, len(data))
	for i, v := range data {
		coords[i] = real(v)
	}
	return &traj.Trajectory{Dims: dims, Data: coords}, nil
}

func init() {
	phantomCmd.Flags().IntVar(&phantomSize, "size", 128, "Grid extent along each spatial axis")
	phantomCmd.Flags().IntVar(&phantomCoils, "coils", 1, "Number of simulated receive channels (max 8)")
	phantomCmd.Flags().BoolVar(&phantomKSpace, "kspace", false, "Sample the analytic k-space transform instead of the image")
	phantomCmd.Flags().StringVar(&phantomPreset, "preset", "head", "Geometry preset (head, classic, disc, rings, sens)")
	phantomCmd.Flags().StringVar(&phantomTrajPath, "traj", "", "Trajectory .cfl basename; samples along it instead of the grid (always k-space)")
	phantomCmd.Flags().StringVar(&phantomGeomPath, "geometry", "", "YAML ellipse table replacing the preset geometry")
	phantomCmd.Flags().StringVar(&phantomPNGPath, "png", "", "Write a magnitude preview PNG to this path")
	phantomCmd.Flags().BoolVar(&phantomPlot, "plot", false, "Print a terminal plot of the central magnitude profile")

	rootCmd.AddCommand(phantomCmd)
}
