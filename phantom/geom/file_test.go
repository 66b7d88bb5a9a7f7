package geom

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleGeometry = `
ellipses:
  - intensity: 1.0
    axes: [0.5, 0.3]
    center: [0.1, -0.2]
    angle: 30
  - intensity: -0.5
    axes: [0.2, 0.2]
    center: [0, 0]
    angle: 0
`

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "geometry.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleGeometry), 0o644))

	ellipses, err := FromFile(path)
	require.NoError(t, err)
	require.Len(t, ellipses, 2)

	assert.Equal(t, 1.0, ellipses[0].Intensity)
	assert.Equal(t, [2]float64{0.5, 0.3}, ellipses[0].Axes)
	assert.Equal(t, [2]float64{0.1, -0.2}, ellipses[0].Center)
	assert.InDelta(t, 30*math.Pi/180, ellipses[0].Angle, 1e-15)
	assert.Equal(t, -0.5, ellipses[1].Intensity)
}

func TestFromFile_Missing(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParseGeometry_Invalid(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"empty list", "ellipses: []"},
		{"no ellipses key", "something: else"},
		{"zero axis", "ellipses:\n  - intensity: 1\n    axes: [0, 0.5]\n    center: [0, 0]\n    angle: 0"},
		{"negative axis", "ellipses:\n  - intensity: 1\n    axes: [0.5, -0.1]\n    center: [0, 0]\n    angle: 0"},
		{"not yaml", ":::"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := parseGeometry([]byte(c.yaml), c.name)
			assert.Error(t, err)
		})
	}
}
