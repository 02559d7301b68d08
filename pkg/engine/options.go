package engine

import (
	"io"
	"log/slog"
	"runtime"
	"time"

	"github.com/stackvity/dataingest/pkg/progress"
)

// Options configures a single engine run. It is a plain configuration
// struct, not an open-ended key/value bag: every recognized field is
// named here, and RecognizedOptionNames lists them for validation against
// unknown keys arriving from a config file or CLI flag set.
type Options struct {
	// Mode selects the execution strategy. Empty defaults to ModeParallel.
	Mode Mode
	// Benchmark, when true, overrides Mode and always runs Sequential then
	// Parallel, comparing them.
	Benchmark bool

	// Timeout is the per-file deadline applied in every mode (sequential,
	// parallel and both benchmark passes). Zero defaults to DefaultTimeout; any configured value below
	// MinTimeout is clamped up to MinTimeout.
	Timeout time.Duration

	// MaxWorkers is the parallel pool size. Zero defaults to
	// DefaultMaxWorkers; the effective value is always clamped to
	// [1, 2*runtime.NumCPU()].
	MaxWorkers int

	// MaxRetries is the total attempt cap per file, including the first
	// try. Zero defaults to DefaultMaxRetries.
	MaxRetries int
	// RetryDelay is the base delay between retry attempts. Zero defaults
	// to DefaultRetryDelay.
	RetryDelay time.Duration

	// OutputDir is where a report formatter collaborator writes its
	// output; the engine itself never touches this path. Empty defaults
	// to DefaultOutputDir.
	OutputDir string

	// ShowProgress controls whether ProgressSink receives calls. When
	// false, a Noop sink is used regardless of what was supplied.
	ShowProgress bool

	// Verbose requests a discovery summary from external collaborators;
	// the core engine does not change behavior based on it.
	Verbose bool

	// ProgressSink receives Start/Update/Stop notifications. Nil is
	// treated as progress.Noop{}.
	ProgressSink progress.Sink

	// Logger is the slog.Handler backing every component's logger. Nil
	// defaults to a discard handler.
	Logger slog.Handler
}

// recognizedOptionNames is used by ValidateOptionNames (invoked from the
// CLI config loader, not from Process itself, since Options is a typed
// struct and Go already rejects unknown struct fields at compile time) to
// reject unrecognized keys arriving from a dynamic source such as a YAML
// config file before they are mapped onto Options.
var recognizedOptionNames = map[string]struct{}{
	"mode":          {},
	"benchmark":     {},
	"timeout_ms":    {},
	"max_workers":   {},
	"max_retries":   {},
	"retry_delay_ms": {},
	"output_dir":    {},
	"show_progress": {},
	"verbose":       {},
}

// ValidateOptionNames rejects a set of option keys (e.g. parsed from a
// config file) that contains any name outside the recognized set defined
// by spec.md §4.8. It is the typed-config equivalent of Go's built-in
// "unknown field" rejection for a dynamic source.
func ValidateOptionNames(keys []string) error {
	for _, k := range keys {
		if _, ok := recognizedOptionNames[k]; !ok {
			return &unknownOptionError{name: k}
		}
	}
	return nil
}

type unknownOptionError struct{ name string }

func (e *unknownOptionError) Error() string {
	return "unknown option: " + e.name
}

func (e *unknownOptionError) Unwrap() error { return ErrConfigValidation }

// resolved holds the effective (defaulted, clamped) values derived from
// Options at the start of a run.
type resolved struct {
	mode       Mode
	timeout    time.Duration
	maxWorkers int
	maxRetries int
	retryDelay time.Duration
	outputDir  string
	sink       progress.Sink
	logger     *slog.Logger
}

// resolve applies spec.md §4.8's defaulting and clamping rules to a raw
// Options value, producing the effective configuration a run executes
// with.
func resolve(opts Options) resolved {
	mode := opts.Mode
	if opts.Benchmark {
		mode = ModeBenchmark
	} else if mode == "" {
		mode = DefaultMode
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	if timeout < MinTimeout {
		timeout = MinTimeout
	}

	maxWorkers := opts.MaxWorkers
	if maxWorkers == 0 {
		maxWorkers = DefaultMaxWorkers
	}
	ceiling := 2 * runtime.NumCPU()
	if maxWorkers > ceiling {
		maxWorkers = ceiling
	}
	if maxWorkers < 1 {
		maxWorkers = 1
	}

	maxRetries := opts.MaxRetries
	if maxRetries == 0 {
		maxRetries = DefaultMaxRetries
	}

	retryDelay := opts.RetryDelay
	if retryDelay == 0 {
		retryDelay = DefaultRetryDelay
	}

	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = DefaultOutputDir
	}

	var sink progress.Sink = progress.Noop{}
	if opts.ShowProgress && opts.ProgressSink != nil {
		sink = opts.ProgressSink
	}

	handler := opts.Logger
	if handler == nil {
		handler = slog.NewTextHandler(io.Discard, nil)
	}
	logger := slog.New(handler).With(slog.String("component", "engine"))

	return resolved{
		mode:       mode,
		timeout:    timeout,
		maxWorkers: maxWorkers,
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		outputDir:  outputDir,
		sink:       sink,
		logger:     logger,
	}
}
