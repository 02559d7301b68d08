package engine

import "time"

// Default values applied to Options fields left at their zero value.
// Mirrors how the teacher seeds Viper defaults in internal/cli/config,
// kept here as the single source of truth for the library itself.
const (
	// DefaultMode is used when Options.Mode is empty and Benchmark is false.
	DefaultMode = ModeParallel

	// DefaultMaxWorkers is the worker pool size used when Options.MaxWorkers
	// is zero. It is clamped to [1, 2*runtime.NumCPU()] at engine start.
	DefaultMaxWorkers = 8

	// DefaultTimeout is the per-file deadline applied in every mode when
	// Options.Timeout is zero. A configured timeout below
	// MinTimeout is clamped up to MinTimeout.
	DefaultTimeout = 30 * time.Second

	// MinTimeout is the floor every configured timeout is clamped to.
	MinTimeout = 1 * time.Second

	// DefaultMaxRetries is the total attempt cap (including the first try)
	// applied when Options.MaxRetries is zero.
	DefaultMaxRetries = 3

	// DefaultRetryDelay is the base delay between retry attempts used when
	// Options.RetryDelay is zero. Actual delay grows exponentially, capped
	// at MaxRetryDelay.
	DefaultRetryDelay = 1 * time.Second

	// MaxRetryDelay caps the exponential backoff applied between retries.
	MaxRetryDelay = 5 * time.Second

	// DefaultOutputDir is used when Options.OutputDir is empty.
	DefaultOutputDir = "output"
)
