package cmd

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math/cmplx"
	"os"

	"github.com/guptarohit/asciigraph"
)

// writeMagnitudePNG renders the first coil plane of a gridded result as a
// 16-bit grayscale image, scaled so the peak magnitude maps to white.
func writeMagnitudePNG(path string, out []complex128, nx, ny int) error {
	plane := out[:nx*ny]
	peak := 0.0
	for _, v := range plane {
		if m := cmplx.Abs(v); m > peak {
			peak = m
		}
	}
	if peak == 0 {
		peak = 1
	}

	img := image.NewGray16(image.Rect(0, 0, nx, ny))
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			m := cmplx.Abs(plane[x+nx*y]) / peak
			img.Set(x, y, color.Gray16{Y: uint16(m * 65535)})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return png.Encode(f, img)
}

// printProfile plots the first-coil magnitude along the central line of
// axis 1: the middle image row for grids, the middle spoke for radial
// layouts.
func printProfile(out []complex128, dims []int, kspace bool) {
	nx := dims[1]
	line := dims[2] / 2
	data := make([]float64, nx)
	for x := 0; x < nx; x++ {
		data[x] = cmplx.Abs(out[x+nx*line])
	}

	caption := "image magnitude, central line"
	if kspace {
		caption = "k-space magnitude, central line"
	}
	graph := asciigraph.Plot(data,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
	fmt.Println(graph)
}
