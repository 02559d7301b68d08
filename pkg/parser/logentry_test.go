package parser_test

import (
	"testing"

	"github.com/stackvity/dataingest/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLog_Valid(t *testing.T) {
	content := "2024-01-15 09:12:00 [INFO] [api] request completed\n" +
		"2024-01-15 10:05:00 [ERROR] [db] connection refused\n"

	result := parser.ParseLog([]byte(content))
	require.Equal(t, parser.OutcomeOK, result.Outcome)

	data, ok := result.Data.(parser.LogData)
	require.True(t, ok)
	require.Len(t, data.Entries, 2)
	assert.Equal(t, 9, data.Entries[0].Hour)
	assert.Equal(t, "ERROR", data.Entries[1].Level)
}

func TestParseLog_Partial(t *testing.T) {
	content := "2024-01-15 09:12:00 [INFO] [api] ok\n" +
		"this line is bad\n" +
		"2024-01-15 10:05:00 [ERROR] [db] failure\n"

	result := parser.ParseLog([]byte(content))
	require.Equal(t, parser.OutcomePartial, result.Outcome)
	assert.Len(t, result.Errors, 1)

	data := result.Data.(parser.LogData)
	assert.Len(t, data.Entries, 2)
}

func TestParseLog_AllInvalidIsError(t *testing.T) {
	result := parser.ParseLog([]byte("nope\nnot a log line either\n"))
	assert.Equal(t, parser.OutcomeError, result.Outcome)
}

func TestParseLog_Empty(t *testing.T) {
	result := parser.ParseLog([]byte(""))
	assert.Equal(t, parser.OutcomeError, result.Outcome)
}
