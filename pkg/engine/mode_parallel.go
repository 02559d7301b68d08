package engine

import (
	"context"
	"log/slog"
	"sync"
)

// runParallel implements spec.md §4.5.2: a bounded worker pool dispatches
// each classified input as an independent task. Results are written
// directly into the slot matching the input's index, so the returned
// slice is ordered by input index regardless of completion order —
// generalizing the teacher's channel-fed aggregator (Engine.startWorkers /
// processFilesWorker) into a shape that doesn't need a separate ordering
// pass afterward. Progress ticks still fire in completion order, counted
// with a shared mutex-protected counter.
func runParallel(ctx context.Context, r resolved, processor *FileProcessor, files []Classified) []FileResult {
	results := make([]FileResult, len(files))

	jobs := make(chan int, len(files))
	for i := range files {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	var mu sync.Mutex
	completed := 0

	for w := 0; w < r.maxWorkers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			wLogger := r.logger.With(slog.Int("worker_id", workerID))
			for idx := range jobs {
				results[idx] = runOneWithRecovery(ctx, r, processor, files[idx])

				mu.Lock()
				completed++
				n := completed
				mu.Unlock()
				r.sink.Update(n, len(files))
				wLogger.Debug("file processed", slog.String("path", files[idx].Path), slog.String("status", string(results[idx].Status)))
			}
		}(w)
	}

	wg.Wait()
	return results
}
