// Package cfl reads and writes complex arrays as .hdr/.cfl file pairs, the
// interchange format of MRI reconstruction toolchains. The .hdr file is a
// short text header listing 16 extents under a "# Dimensions" marker; the
// .cfl file holds the samples as little-endian float32 real/imaginary pairs
// in column-major order, axis 0 fastest.
package cfl

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/andruw17/mrsim/nd"
)

// maxDims is the number of extents a header records. Trailing axes beyond
// the caller's dimension vector are padded with 1.
const maxDims = 16

// Write stores data under name.hdr and name.cfl. The data must be laid out
// column-major and its length must match the product of dims; a mismatch is
// a caller bug and panics.
func Write(name string, dims []int, data []complex128) error {
	if len(dims) > maxDims {
		panic(fmt.Sprintf("cfl: %d dimensions exceed the header limit of %d", len(dims), maxDims))
	}
	if n := nd.Size(dims); len(data) != n {
		panic(fmt.Sprintf("cfl: data length %d does not match dims %v (need %d)", len(data), dims, n))
	}

	if err := os.WriteFile(name+".hdr", []byte(formatHeader(dims)), 0644); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	file, err := os.Create(name + ".cfl")
	if err != nil {
		return fmt.Errorf("creating data file: %w", err)
	}
	defer func() { _ = file.Close() }()

	raw := make([]byte, 8*len(data))
	for i, v := range data {
		binary.LittleEndian.PutUint32(raw[8*i:], math.Float32bits(float32(real(v))))
		binary.LittleEndian.PutUint32(raw[8*i+4:], math.Float32bits(float32(imag(v))))
	}
	if _, err := file.Write(raw); err != nil {
		return fmt.Errorf("writing samples: %w", err)
	}
	return nil
}

// Read loads the array stored under name.hdr and name.cfl. The returned
// dimension vector is trimmed to the last axis with extent above 1, so a
// single-coil 128x128 image comes back as [128 128] rather than 16 entries.
func Read(name string) ([]int, []complex128, error) {
	hdr, err := os.ReadFile(name + ".hdr")
	if err != nil {
		return nil, nil, fmt.Errorf("reading header: %w", err)
	}
	dims, err := parseHeader(string(hdr))
	if err != nil {
		return nil, nil, err
	}

	raw, err := os.ReadFile(name + ".cfl")
	if err != nil {
		return nil, nil, fmt.Errorf("reading data file: %w", err)
	}
	n := nd.Size(dims)
	if len(raw) != 8*n {
		return nil, nil, fmt.Errorf("cfl: data file holds %d bytes, dims %v need %d", len(raw), dims, 8*n)
	}

	data := make([]complex128, n)
	for i := range data {
		re := math.Float32frombits(binary.LittleEndian.Uint32(raw[8*i:]))
		im := math.Float32frombits(binary.LittleEndian.Uint32(raw[8*i+4:]))
		data[i] = complex(float64(re), float64(im))
	}
	return dims, data, nil
}

func formatHeader(dims []int) string {
	var hdr strings.Builder
	hdr.WriteString("# Dimensions\n")
	for i := 0; i < maxDims; i++ {
		if i > 0 {
			hdr.WriteByte(' ')
		}
		d := 1
		if i < len(dims) {
			d = dims[i]
		}
		hdr.WriteString(strconv.Itoa(d))
	}
	hdr.WriteByte('\n')
	return hdr.String()
}

// parseHeader extracts the extents following the "# Dimensions" marker.
// Headers written by other tools may carry extra comment sections; anything
// before the marker is skipped.
func parseHeader(text string) ([]int, error) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) != "# Dimensions" {
			continue
		}
		if i+1 >= len(lines) {
			break
		}
		fields := strings.Fields(lines[i+1])
		if len(fields) == 0 {
			break
		}
		dims := make([]int, len(fields))
		n := 1
		for j, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil || v < 1 {
				return nil, fmt.Errorf("cfl: bad extent %q in header", f)
			}
			// The byte size 8*n must stay representable for the data
			// size check in Read.
			if v > math.MaxInt/8/n {
				return nil, fmt.Errorf("cfl: extent %q overflows the element count", f)
			}
			n *= v
			dims[j] = v
		}
		return trimDims(dims), nil
	}
	return nil, fmt.Errorf("cfl: header has no dimension line")
}

func trimDims(dims []int) []int {
	last := 0
	for i, d := range dims {
		if d > 1 {
			last = i
		}
	}
	return dims[:last+1]
}
