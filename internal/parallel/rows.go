package parallel

import "runtime"

// ForRows partitions [0, height) into contiguous row bands and runs fn for
// each band on a transient worker pool. fn receives the half-open row range
// [start, end) and must not touch rows outside it. workers <= 0 selects
// GOMAXPROCS.
//
// Rows are independent, so band order does not affect the result. With
// workers == 1 (or a single band) fn runs on the calling goroutine, which
// keeps small images allocation-free.
func ForRows(height, workers int, fn func(start, end int)) {
	if height <= 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	bands := workers * 4 // small bands smooth out uneven rows
	if bands > height {
		bands = height
	}

	if workers == 1 || bands == 1 {
		fn(0, height)
		return
	}

	work := make([]func(), 0, bands)
	step := (height + bands - 1) / bands
	for start := 0; start < height; start += step {
		end := start + step
		if end > height {
			end = height
		}
		s, e := start, end
		work = append(work, func() { fn(s, e) })
	}

	pool := NewWorkerPool(workers)
	defer pool.Close()
	pool.ExecuteAll(work)
}
