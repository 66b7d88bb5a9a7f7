package geom

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// On-disk geometry description. Angles are degrees in the file and radians
// in memory.
type fileEllipse struct {
	Intensity float64    `yaml:"intensity"`
	Axes      [2]float64 `yaml:"axes"`
	Center    [2]float64 `yaml:"center"`
	Angle     float64    `yaml:"angle"`
}

type geometryFile struct {
	Ellipses []fileEllipse `yaml:"ellipses"`
}

// FromFile loads a custom ellipse list from a YAML geometry file:
//
//	ellipses:
//	  - intensity: 1.0
//	    axes: [0.5, 0.3]
//	    center: [0.1, -0.2]
//	    angle: 30
func FromFile(path string) ([]Ellipse, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading geometry file: %w", err)
	}
	return parseGeometry(data, path)
}

func parseGeometry(data []byte, path string) ([]Ellipse, error) {
	var gf geometryFile
	if err := yaml.Unmarshal(data, &gf); err != nil {
		return nil, fmt.Errorf("parsing geometry file %s: %w", path, err)
	}
	if len(gf.Ellipses) == 0 {
		return nil, fmt.Errorf("geometry file %s defines no ellipses", path)
	}
	ellipses := make([]Ellipse, len(gf.Ellipses))
	for i, fe := range gf.Ellipses {
		if fe.Axes[0] <= 0 || fe.Axes[1] <= 0 {
			return nil, fmt.Errorf("geometry file %s: ellipse %d: axes must be positive, got %v", path, i, fe.Axes)
		}
		ellipses[i] = Ellipse{
			Intensity: fe.Intensity,
			Axes:      fe.Axes,
			Center:    fe.Center,
			Angle:     fe.Angle * deg,
		}
	}
	return ellipses, nil
}
