package metrics_test

import (
	"testing"

	"github.com/stackvity/dataingest/pkg/metrics"
	"github.com/stackvity/dataingest/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func TestJSON(t *testing.T) {
	data := parser.JSONData{
		Users: []parser.User{
			{ID: 1, Name: "Ana", Active: true},
			{ID: 2, Name: "Luis", Active: false},
		},
		Sessions: []parser.Session{
			{UserID: 1, Start: "2024-01-15T14:30:00", DurationSeconds: intPtr(300), PagesVisited: intPtr(4), Actions: []string{"login", "view"}},
			{UserID: 1, Start: "2024-01-15T14:45:00", DurationSeconds: intPtr(100), PagesVisited: intPtr(2), Actions: []string{"login"}},
		},
	}

	result := metrics.JSON(data)
	require.NoError(t, result.Err)

	assert.Equal(t, 2, result.Metrics["total_users"])
	assert.Equal(t, 1, result.Metrics["active_users"])
	assert.Equal(t, 50.0, result.Metrics["active_percentage"])
	assert.Equal(t, 200, result.Metrics["avg_session_duration"])
	assert.Equal(t, 6, result.Metrics["total_pages_visited"])

	peak := result.Metrics["peak_hour"].(map[string]interface{})
	assert.Equal(t, 14, peak["hour"])
	assert.Equal(t, 2, peak["session_count"])

	topActions := result.Metrics["top_actions"].([]map[string]interface{})
	require.NotEmpty(t, topActions)
	assert.Equal(t, "login", topActions[0]["action"])
	assert.Equal(t, 2, topActions[0]["count"])
}

func TestJSON_Empty(t *testing.T) {
	result := metrics.JSON(parser.JSONData{})
	require.Error(t, result.Err)
}
