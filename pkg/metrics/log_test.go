package metrics_test

import (
	"testing"

	"github.com/stackvity/dataingest/pkg/metrics"
	"github.com/stackvity/dataingest/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog(t *testing.T) {
	data := parser.LogData{Entries: []parser.LogEntry{
		{Timestamp: "2024-01-15 09:00:00", Level: "INFO", Component: "api", Message: "request ok", Hour: 9},
		{Timestamp: "2024-01-15 09:05:00", Level: "ERROR", Component: "db", Message: "connection refused", Hour: 9},
		{Timestamp: "2024-01-15 10:00:00", Level: "FATAL", Component: "db", Message: "connection refused", Hour: 10},
	}}

	result := metrics.Log(data)
	require.NoError(t, result.Err)

	assert.Equal(t, 3, result.Metrics["total_entries"])
	assert.Equal(t, 2, result.Metrics["critical_errors_count"])

	patterns := result.Metrics["error_patterns"].([]map[string]interface{})
	require.NotEmpty(t, patterns)
	assert.Equal(t, "Connection errors", patterns[0]["pattern"])
	assert.Equal(t, 2, patterns[0]["count"])

	components := result.Metrics["top_error_components"].([]map[string]interface{})
	require.NotEmpty(t, components)
	assert.Equal(t, "db", components[0]["component"])
	assert.Equal(t, 2, components[0]["error_count"])
}

func TestLog_Empty(t *testing.T) {
	result := metrics.Log(parser.LogData{})
	require.Error(t, result.Err)
}
