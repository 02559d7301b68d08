package engine

import (
	"context"
	"strings"
	"time"
)

// retryableSubstrings and permanentSubstrings implement the classification
// rule from spec.md §4.6: a match against the retryable list, that is not
// also a match against the permanent list, is eligible for another attempt.
var retryableSubstrings = []string{
	"failed to read",
	"timeout",
	"timed out",
	"processing timeout",
	"worker process crashed",
	"killed",
	"exit:",
}

var permanentSubstrings = []string{
	"validation",
	"invalid",
	"invalid json",
	"csv validation",
}

// isRetryable reports whether a FileResult's accumulated error messages
// describe a transient condition worth retrying.
func isRetryable(r FileResult) bool {
	if r.Status != StatusError {
		return false
	}
	for _, e := range r.Errors {
		msg := strings.ToLower(e.Message)
		if containsAny(msg, permanentSubstrings) {
			return false
		}
	}
	for _, e := range r.Errors {
		msg := strings.ToLower(e.Message)
		if containsAny(msg, retryableSubstrings) {
			return true
		}
	}
	return false
}

func containsAny(haystack string, substrings []string) bool {
	for _, s := range substrings {
		if strings.Contains(haystack, s) {
			return true
		}
	}
	return false
}

// withRetry wraps a single File Processor invocation per spec.md §4.6:
// on a retryable error result, sleep an exponentially growing backoff
// (base × 2^(attempt-1), capped at MaxRetryDelay) and try again, up to
// maxRetries total attempts. Permanent errors and successes return
// immediately on the first attempt.
func withRetry(ctx context.Context, maxRetries int, baseDelay time.Duration, process func() FileResult) FileResult {
	var result FileResult
	for attempt := 1; attempt <= maxRetries; attempt++ {
		result = process()
		if !isRetryable(result) {
			return result
		}
		if attempt == maxRetries {
			break
		}

		delay := backoff(baseDelay, attempt)
		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return result
		}
	}
	return result
}

func backoff(base time.Duration, attempt int) time.Duration {
	d := base
	for i := 1; i < attempt; i++ {
		d *= 2
		if d >= MaxRetryDelay {
			return MaxRetryDelay
		}
	}
	if d > MaxRetryDelay {
		return MaxRetryDelay
	}
	return d
}
