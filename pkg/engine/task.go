package engine

import (
	"context"
	"fmt"
)

// runOneWithRecovery runs a single classified input through the retry
// policy, bounded by the resolved per-file deadline and guarded against a
// panic inside the parser/metrics stack — spec.md §4.5.2 treats a worker
// crash the same way it treats a deadline expiry: a synthetic error
// result, with the rest of the run undisturbed. Applied uniformly across
// Sequential and Parallel so invariant 7 (identical results across modes)
// holds even when a file is slow enough to hit the deadline.
func runOneWithRecovery(ctx context.Context, r resolved, processor *FileProcessor, c Classified) (result FileResult) {
	taskCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	done := make(chan FileResult, 1)
	go func() {
		var out FileResult
		func() {
			defer func() {
				if rec := recover(); rec != nil {
					out = syntheticErrorResult(c.Path, c.Type, fmt.Sprintf("Task crashed or timed out: %v", rec))
				}
			}()
			out = withRetry(taskCtx, r.maxRetries, r.retryDelay, func() FileResult {
				return processor.Process(c)
			})
		}()
		done <- out
	}()

	select {
	case result = <-done:
		return result
	case <-taskCtx.Done():
		return syntheticErrorResult(c.Path, c.Type, fmt.Sprintf("Task crashed or timed out: %v", taskCtx.Err()))
	}
}
