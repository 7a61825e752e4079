// Package parallel splits index ranges across goroutines.
package parallel

import "sync"

// For splits [0, n) into at most workers contiguous chunks and runs fn on
// each in its own goroutine. Chunk boundaries depend only on n and workers.
// The first error by worker index is returned after all chunks finish.
func For(n, workers int, fn func(worker, start, end int) error) error {
	if n <= 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}

	chunkSize := (n + workers - 1) / workers
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(w, s, e int) {
			defer wg.Done()
			errs[w] = fn(w, s, e)
		}(w, start, end)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
