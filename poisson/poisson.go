// Package poisson generates variable-density Poisson-disc sampling
// patterns: sets of points in the unit square with a guaranteed minimum
// pairwise distance that may grow away from the center. Binned onto a grid
// they serve as incoherent undersampling masks for compressed-sensing
// acquisitions.
package poisson

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// Point is a sample location in [0,1) x [0,1).
type Point [2]float64

// tries is the number of candidate throws per active point before it
// retires; Bridson's classic choice.
const tries = 30

// Disc draws a single-class pattern with base minimum distance delta. The
// local distance scales with 1 + vardens*r, r being the distance from the
// square's center, so vardens > 0 thins the pattern toward the edges (the
// high-frequency corners of a k-space mask). Generation stops when the
// pattern is maximal or max points have been placed.
//
// The pattern is a pure function of the supplied rng stream: reseed the
// source to reproduce it.
func Disc(rng *rand.Rand, max int, vardens, delta float64) []Point {
	points, _ := DiscMulti(rng, max, 1, vardens, [][]float64{{delta}})
	return points
}

// RMatrix expands per-class minimum distances into the pairwise matrix
// DiscMulti consumes: same-class pairs keep their own distance, cross-class
// pairs the mean of the two.
func RMatrix(delta []float64) [][]float64 {
	m := make([][]float64, len(delta))
	for i := range delta {
		m[i] = make([]float64, len(delta))
		for j := range delta {
			if i == j {
				m[i][j] = delta[i]
			} else {
				m[i][j] = (delta[i] + delta[j]) / 2
			}
		}
	}
	return m
}

// DiscMulti draws an interleaved multi-class pattern (one class per
// acquisition frame). dist[t][u] is the minimum distance between a class-t
// and a class-u point before density scaling; RMatrix builds it from
// per-class deltas. Returns the points and their class labels.
func DiscMulti(rng *rand.Rand, max, classes int, vardens float64, dist [][]float64) ([]Point, []int) {
	checkArgs(max, classes, vardens, dist)

	dmin, dmax := distRange(dist)
	// One point per cell at minimum spacing.
	cell := dmin / math.Sqrt2
	side := int(math.Ceil(1 / cell))
	if side < 1 {
		side = 1
	}
	grid := make([]int, side*side)
	for i := range grid {
		grid[i] = -1
	}
	// Worst-case pair distance bounds the neighborhood scan.
	reach := int(math.Ceil(dmax*(1+vardens*math.Sqrt2/2)/cell)) + 1

	var (
		points []Point
		kinds  []int
		active []int
	)
	place := func(p Point, kind int) {
		grid[cellIndex(p, cell, side)] = len(points)
		points = append(points, p)
		kinds = append(kinds, kind)
		active = append(active, len(points)-1)
	}

	fits := func(q Point, kind int) bool {
		cx := int(q[0] / cell)
		cy := int(q[1] / cell)
		for gy := cy - reach; gy <= cy+reach; gy++ {
			if gy < 0 || gy >= side {
				continue
			}
			for gx := cx - reach; gx <= cx+reach; gx++ {
				if gx < 0 || gx >= side {
					continue
				}
				idx := grid[gx+side*gy]
				if idx < 0 {
					continue
				}
				p := points[idx]
				need := dist[kind][kinds[idx]] * (densityScale(q, vardens) + densityScale(p, vardens)) / 2
				if math.Hypot(q[0]-p[0], q[1]-p[1]) < need {
					return false
				}
			}
		}
		return true
	}

	place(Point{rng.Float64(), rng.Float64()}, rng.Intn(classes))

	for len(active) > 0 && len(points) < max {
		ai := rng.Intn(len(active))
		p := points[active[ai]]

		placed := false
		for t := 0; t < tries; t++ {
			kind := rng.Intn(classes)
			base := dist[kind][kind] * densityScale(p, vardens)
			r := base * (1 + rng.Float64())
			theta := 2 * math.Pi * rng.Float64()
			q := Point{p[0] + r*math.Cos(theta), p[1] + r*math.Sin(theta)}
			if q[0] < 0 || q[0] >= 1 || q[1] < 0 || q[1] >= 1 {
				continue
			}
			if fits(q, kind) {
				place(q, kind)
				placed = true
				break
			}
		}
		if !placed {
			active[ai] = active[len(active)-1]
			active = active[:len(active)-1]
		}
	}

	logrus.Debugf("poisson: placed %d points (max %d, classes %d, vardens %g)", len(points), max, classes, vardens)
	return points, kinds
}

// Mask bins points onto an nx-by-ny grid: hit cells get 1, the rest stay 0.
// The layout matches the sampler convention with the x axis fastest.
func Mask(points []Point, nx, ny int) []complex128 {
	m := make([]complex128, nx*ny)
	for _, p := range points {
		x := int(p[0] * float64(nx))
		y := int(p[1] * float64(ny))
		if x >= nx {
			x = nx - 1
		}
		if y >= ny {
			y = ny - 1
		}
		m[x+nx*y] = 1
	}
	return m
}

func checkArgs(max, classes int, vardens float64, dist [][]float64) {
	if max < 1 {
		panic(fmt.Sprintf("poisson: max points must be >= 1, got %d", max))
	}
	if classes < 1 {
		panic(fmt.Sprintf("poisson: classes must be >= 1, got %d", classes))
	}
	if vardens < 0 {
		panic(fmt.Sprintf("poisson: vardens must be >= 0, got %g", vardens))
	}
	if len(dist) != classes {
		panic(fmt.Sprintf("poisson: distance matrix has %d rows for %d classes", len(dist), classes))
	}
	for i, row := range dist {
		if len(row) != classes {
			panic(fmt.Sprintf("poisson: distance matrix row %d has %d entries for %d classes", i, len(row), classes))
		}
		for j, d := range row {
			if d <= 0 || d >= 1 {
				panic(fmt.Sprintf("poisson: distance [%d][%d] = %g out of (0,1)", i, j, d))
			}
		}
	}
}

func distRange(dist [][]float64) (dmin, dmax float64) {
	dmin, dmax = dist[0][0], dist[0][0]
	for _, row := range dist {
		for _, d := range row {
			dmin = math.Min(dmin, d)
			dmax = math.Max(dmax, d)
		}
	}
	return dmin, dmax
}

func densityScale(p Point, vardens float64) float64 {
	return 1 + vardens*math.Hypot(p[0]-0.5, p[1]-0.5)
}

func cellIndex(p Point, cell float64, side int) int {
	x := int(p[0] / cell)
	y := int(p[1] / cell)
	if x >= side {
		x = side - 1
	}
	if y >= side {
		y = side - 1
	}
	return x + side*y
}
