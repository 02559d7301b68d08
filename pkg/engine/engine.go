package engine

import (
	"context"
	"log/slog"
	"time"
)

// Engine runs the full parse → validate → metrics → aggregation pipeline
// over a classified input list, per spec.md §4.8. It holds no state
// between runs; a fresh Engine can be built per call or reused freely.
type Engine struct {
	opts Options
}

// New constructs an Engine from the supplied Options. Options are not
// validated here beyond what resolve() defaults and clamps; an unknown
// option name arriving from a dynamic config source should be rejected
// earlier with ValidateOptionNames.
func New(opts Options) *Engine {
	return &Engine{opts: opts}
}

// Process runs the engine over a directory or an explicit file list, as
// described by Input; when Input.Directory is set, Input.Paths is ignored.
// It returns ErrNoFiles when the input
// classified to nothing, and otherwise always returns a report, even when
// every file failed — failures are isolated to individual FileResults,
// never propagated as the facade's own error.
func (e *Engine) Process(ctx context.Context, input Input) (ExecutionReport, error) {
	r := resolve(e.opts)

	disc, err := discover(input)
	if err != nil {
		return ExecutionReport{}, err
	}
	if len(disc.Files) == 0 && len(disc.Skipped) == 0 {
		return ExecutionReport{}, ErrNoFiles
	}

	r.logger.Info("starting run",
		slog.String("mode", string(r.mode)),
		slog.Int("files", len(disc.Files)),
		slog.Int("skipped", len(disc.Skipped)),
		slog.Int("max_workers", r.maxWorkers),
	)

	processor := NewFileProcessor(loggerHandler(r.logger))
	r.sink.Start(len(disc.Files))
	defer r.sink.Stop()

	start := time.Now()

	var results []FileResult
	var benchmarkData *BenchmarkData

	switch r.mode {
	case ModeSequential:
		results = runSequential(ctx, r, processor, disc.Files)
	case ModeBenchmark:
		results, benchmarkData = runBenchmark(ctx, r, processor, disc.Files)
	default:
		results = runParallel(ctx, r, processor, disc.Files)
	}

	totalDuration := time.Since(start).Milliseconds()
	if benchmarkData != nil {
		totalDuration = benchmarkData.Parallel.DurationMs
	}

	report := aggregate(r.mode, input.Directory, start, totalDuration, results, disc.Skipped, benchmarkData)

	r.logger.Info("run finished",
		slog.Int("total_files", report.TotalFiles),
		slog.Int("success", report.SuccessCount),
		slog.Int("partial", report.PartialCount),
		slog.Int("error", report.ErrorCount),
	)

	return report, nil
}

// ProcessDirectory is a convenience wrapper over Process for a directory
// input, matching the shape callers reach for most often.
func (e *Engine) ProcessDirectory(ctx context.Context, dir string) (ExecutionReport, error) {
	return e.Process(ctx, Input{Directory: dir})
}

// ProcessFiles runs the engine over an explicit list of file paths.
func (e *Engine) ProcessFiles(ctx context.Context, paths []string) (ExecutionReport, error) {
	return e.Process(ctx, Input{Paths: paths})
}

// ProcessFile runs the engine over a single file path.
func (e *Engine) ProcessFile(ctx context.Context, path string) (ExecutionReport, error) {
	return e.Process(ctx, Input{Paths: []string{path}})
}

func loggerHandler(l *slog.Logger) slog.Handler {
	return l.Handler()
}
