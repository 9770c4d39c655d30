// Package parallel splits row loops into contiguous chunks run on separate
// goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Chunks divides [0, items) into at most workers contiguous ranges and runs
// fn on each range in its own goroutine, returning when all have finished.
// workers <= 0 means one per CPU.
func Chunks(items, workers int, fn func(start, end int)) {
	if items <= 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > items {
		workers = items
	}

	// 切り上げ除算
	size := (items + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < items; start += size {
		end := start + size
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

// ChunksAbove runs fn(0, items) on the calling goroutine when items does not
// exceed threshold, and behaves like Chunks otherwise.
func ChunksAbove(items, threshold, workers int, fn func(start, end int)) {
	if items <= threshold {
		if items > 0 {
			fn(0, items)
		}
		return
	}
	Chunks(items, workers, fn)
}
