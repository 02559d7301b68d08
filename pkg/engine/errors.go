package engine

import "errors"

// Sentinel errors returned (wrapped with %w) or checked with errors.Is by
// callers of the engine facade.
var (
	// ErrConfigValidation indicates Options failed validation: an unknown
	// option name was supplied. Out-of-range values are clamped by resolve,
	// not rejected.
	ErrConfigValidation = errors.New("invalid configuration options provided")

	// ErrNoFiles indicates a directory input contained zero files with a
	// supported extension, or the classified input list and the skipped
	// list were both empty.
	ErrNoFiles = errors.New("no files to process")

	// ErrReadFailed indicates a file could not be read from disk. Retryable.
	ErrReadFailed = errors.New("failed to read file")

	// ErrTaskTimeout indicates a per-file task did not complete within its
	// deadline, or a worker panicked while processing it. Retryable.
	ErrTaskTimeout = errors.New("task crashed or timed out")

	// ErrValidation indicates a parser or metrics function rejected the
	// content of a file against its schema. Permanent, never retried.
	ErrValidation = errors.New("validation failed")
)
