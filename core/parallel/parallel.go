// Package parallel provides chunked goroutine helpers for CPU-bound loops
// over matrix rows and columns.
package parallel

import (
	"runtime"
	"sync"
)

// Parallelize splits items into contiguous ranges, one per worker, and runs
// fn(start, end) for each range on its own goroutine. The number of workers
// is capped at the number of available CPUs. It blocks until all ranges are
// done. fn must not return an error; use this only for infallible loops.
func Parallelize(items int, fn func(start, end int)) {
	if items <= 0 {
		return
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > items {
		numWorkers = items
	}

	// ceiling division so the last chunk absorbs the remainder
	chunkSize := (items + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for start := 0; start < items; start += chunkSize {
		end := start + chunkSize
		if end > items {
			end = items
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

// ParallelizeWithThreshold runs fn sequentially over the whole range when
// items is at or below threshold, avoiding goroutine overhead on small data,
// and falls back to Parallelize otherwise.
func ParallelizeWithThreshold(items, threshold int, fn func(start, end int)) {
	if items <= threshold {
		fn(0, items)
		return
	}
	Parallelize(items, fn)
}
