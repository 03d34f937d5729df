// Package raymarch implements the two coupled ray-march kernels of spec
// §4.3/§4.4: the per-voxel light precompute pass and the per-pixel camera
// pass, plus the ray traversal primitive and IOR-driven ray bending they
// share.
package raymarch

import (
	"runtime"
	"sync"
)

// parallelFor runs fn(i) for i in [0, n) across a fixed pool of worker
// goroutines, splitting the index space into contiguous chunks. Both
// kernels are embarrassingly parallel over their outer index space (§5:
// voxels for light precompute, pixels for the camera pass) with no
// cross-iteration dependencies, so a flat chunked split is sufficient —
// no work-stealing or dynamic scheduling is needed.
func parallelFor(n int, fn func(i int)) {
	if n == 0 {
		return
	}
	workers := runtime.NumCPU()
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		if start >= n {
			break
		}
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(i)
			}
		}(start, end)
	}
	wg.Wait()
}
