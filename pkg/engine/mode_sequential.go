package engine

import "context"

// runSequential implements spec.md §4.5.1: iterate the classified input
// list in order, run each through the processor-with-retry, tick progress
// after each file, and return results in input order.
func runSequential(ctx context.Context, r resolved, processor *FileProcessor, files []Classified) []FileResult {
	results := make([]FileResult, len(files))
	for i, c := range files {
		results[i] = runOneWithRecovery(ctx, r, processor, c)
		r.sink.Update(i+1, len(files))
	}
	return results
}
