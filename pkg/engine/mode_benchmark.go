package engine

import (
	"context"
	"runtime"
	"time"

	"github.com/stackvity/dataingest/pkg/progress"
)

// runBenchmark implements spec.md §4.5.3: run Sequential then Parallel
// over the same input with progress disabled, measuring wall-clock
// duration and an approximate peak memory figure (the larger of the heap
// allocation before and after, in KB) around each run. The
// parallel run's results are the "official" list the aggregator uses.
func runBenchmark(ctx context.Context, r resolved, processor *FileProcessor, files []Classified) ([]FileResult, *BenchmarkData) {
	silent := r
	silent.sink = progress.Noop{}

	seqResults, seqStats := timedRun(func() []FileResult {
		return runSequential(ctx, silent, processor, files)
	})
	parResults, parStats := timedRun(func() []FileResult {
		return runParallel(ctx, silent, processor, files)
	})

	data := &BenchmarkData{
		TotalFiles:    len(files),
		ProcessesUsed: len(files),
		Sequential:    buildRunStats(seqResults, seqStats),
		Parallel:      buildRunStats(parResults, parStats),
	}
	data.Comparison = compareRuns(data.Sequential, data.Parallel)

	return parResults, data
}

type runTiming struct {
	durationMs int64
	memoryKB   int64
}

func timedRun(run func() []FileResult) ([]FileResult, runTiming) {
	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	start := time.Now()

	results := run()

	elapsed := time.Since(start)
	runtime.ReadMemStats(&after)

	peak := before.Alloc
	if after.Alloc > peak {
		peak = after.Alloc
	}

	return results, runTiming{durationMs: elapsed.Milliseconds(), memoryKB: int64(peak / 1024)}
}

func buildRunStats(results []FileResult, t runTiming) RunStats {
	success, failed := 0, 0
	for _, r := range results {
		switch r.Status {
		case StatusOK, StatusPartial:
			success++
		case StatusError:
			failed++
		}
	}
	avg := 0.0
	if len(results) > 0 {
		avg = float64(t.durationMs) / float64(len(results))
	}
	return RunStats{
		DurationMs:     t.durationMs,
		DurationSec:    round2(float64(t.durationMs) / 1000),
		SuccessCount:   success,
		ErrorCount:     failed,
		AvgTimePerFile: round2(avg),
		MemoryKB:       t.memoryKB,
	}
}

func compareRuns(seq, par RunStats) Comparison {
	speedup := 0.0
	if par.DurationMs > 0 {
		speedup = round2(float64(seq.DurationMs) / float64(par.DurationMs))
	}
	timeSavedMs := seq.DurationMs - par.DurationMs
	timeSavedPercent := 0.0
	if seq.DurationMs > 0 {
		timeSavedPercent = round1(float64(timeSavedMs) / float64(seq.DurationMs) * 100)
	}
	faster := ModeSequential
	if par.DurationMs < seq.DurationMs {
		faster = ModeParallel
	}
	return Comparison{
		SpeedupFactor:    speedup,
		TimeSavedMs:      timeSavedMs,
		TimeSavedPercent: timeSavedPercent,
		FasterMode:       faster,
	}
}

func round2(f float64) float64 {
	return float64(int64(f*100+0.5)) / 100
}

func round1(f float64) float64 {
	return float64(int64(f*10+0.5)) / 10
}
