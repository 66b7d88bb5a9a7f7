package nd

import (
	"fmt"
	"runtime"
	"sync"
)

// Below this many elements the sampling loop is not worth splitting.
const minParallel = 4096

// ZSample evaluates fn at every index of dims and stores the results in out,
// which must hold exactly Size(dims) elements. Every index is visited exactly
// once and its slot written exactly once; fn must be safe for concurrent use
// and must not retain the position slice it is handed.
//
// Large outputs are split into contiguous flat ranges across GOMAXPROCS
// goroutines. Results do not depend on the split: each slot is a pure
// function of its own index.
func ZSample(dims []int, out []complex128, fn func(pos []int) complex128) {
	n := Size(dims)
	if len(out) != n {
		panic(fmt.Sprintf("nd: output length %d does not match dims %v (need %d)", len(out), dims, n))
	}

	workers := runtime.GOMAXPROCS(0)
	if n < minParallel || workers < 2 {
		sampleRange(dims, out, fn, 0, n)
		return
	}
	if workers > n/minParallel {
		workers = n / minParallel
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			sampleRange(dims, out, fn, start, end)
		}(start, end)
	}
	wg.Wait()
}

// sampleRange fills out[start:end]. The position is advanced odometer-style,
// axis 0 first, which is the column-major flat order.
func sampleRange(dims []int, out []complex128, fn func(pos []int) complex128, start, end int) {
	pos := make([]int, len(dims))
	Unravel(start, dims, pos)
	for idx := start; idx < end; idx++ {
		out[idx] = fn(pos)
		for i := range pos {
			pos[i]++
			if pos[i] < dims[i] {
				break
			}
			pos[i] = 0
		}
	}
}
