package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// LogEntry is one validated line of a structured application log.
type LogEntry struct {
	Timestamp string
	Level     string
	Component string
	Message   string
	Hour      int
}

// LogData is the parsed payload of a log file.
type LogData struct {
	Entries []LogEntry
}

var logLineRE = regexp.MustCompile(
	`^(\d{4}-\d{2}-\d{2})\s+(\d{2}):(\d{2}):(\d{2})\s+\[(DEBUG|INFO|WARN|ERROR|FATAL)\]\s+\[([^\]]+)\]\s+(.+)$`,
)

// ParseLog implements the contract in spec.md §4.2 and resolves the "empty
// vs all-invalid" open question per spec.md §9: zero matching lines is an
// error; one or more matching lines alongside any non-matching line is a
// partial result.
func ParseLog(content []byte) Result {
	lines := strings.Split(string(content), "\n")

	var entries []LogEntry
	var failures []LineError
	var firstFailureReason string

	for i, line := range lines {
		lineNum := i + 1
		trimmed := strings.TrimRight(line, "\r")
		if strings.TrimSpace(trimmed) == "" {
			continue
		}

		m := logLineRE.FindStringSubmatch(trimmed)
		if m == nil {
			reason := "line does not match expected log format"
			failures = append(failures, LineError{Line: lineNum, Message: reason})
			if firstFailureReason == "" {
				firstFailureReason = fmt.Sprintf("line %d: %s", lineNum, reason)
			}
			continue
		}

		hour, err := strconv.Atoi(m[2])
		if err != nil || hour < 0 || hour > 23 {
			reason := fmt.Sprintf("invalid hour %q", m[2])
			failures = append(failures, LineError{Line: lineNum, Message: reason})
			if firstFailureReason == "" {
				firstFailureReason = fmt.Sprintf("line %d: %s", lineNum, reason)
			}
			continue
		}

		entries = append(entries, LogEntry{
			Timestamp: fmt.Sprintf("%s %s:%s:%s", m[1], m[2], m[3], m[4]),
			Level:     m[5],
			Component: m[6],
			Message:   m[7],
			Hour:      hour,
		})
	}

	if len(entries) == 0 {
		if firstFailureReason == "" {
			firstFailureReason = "no log lines present"
		}
		return fail(firstFailureReason)
	}

	if len(failures) > 0 {
		return partial(LogData{Entries: entries}, failures)
	}

	return ok(LogData{Entries: entries})
}
