package metrics

import (
	"strconv"
	"strings"

	"github.com/stackvity/dataingest/pkg/parser"
)

// JSON implements the contract in spec.md §4.3 for user/session documents.
// Empty input (no users and no sessions) yields an error.
func JSON(data parser.JSONData) Result {
	if len(data.Users) == 0 && len(data.Sessions) == 0 {
		return fail("no users or sessions to summarize")
	}

	activeUsers, inactiveUsers := 0, 0
	for _, u := range data.Users {
		if u.Active {
			activeUsers++
		} else {
			inactiveUsers++
		}
	}
	activePercentage := 0.0
	if len(data.Users) > 0 {
		activePercentage = round1(float64(activeUsers) / float64(len(data.Users)) * 100)
	}

	totalPagesVisited := 0
	durationSum, durationCount := 0, 0
	actionOrder := make([]string, 0)
	actionCount := make(map[string]int)
	hourOrder := make([]int, 0)
	hourCount := make(map[int]int)

	for _, s := range data.Sessions {
		if s.PagesVisited != nil {
			totalPagesVisited += *s.PagesVisited
		}
		if s.DurationSeconds != nil {
			durationSum += *s.DurationSeconds
			durationCount++
		}
		for _, a := range s.Actions {
			if _, seen := actionCount[a]; !seen {
				actionOrder = append(actionOrder, a)
			}
			actionCount[a]++
		}
		if hour, ok := hourFromISO(s.Start); ok {
			if _, seen := hourCount[hour]; !seen {
				hourOrder = append(hourOrder, hour)
			}
			hourCount[hour]++
		}
	}

	avgSessionDuration := 0
	if durationCount > 0 {
		avgSessionDuration = durationSum / durationCount
	}

	topActions := make([]map[string]interface{}, 0, 5)
	remaining := append([]string(nil), actionOrder...)
	for len(topActions) < 5 && len(remaining) > 0 {
		bestIdx := 0
		for i, a := range remaining {
			if actionCount[a] > actionCount[remaining[bestIdx]] {
				bestIdx = i
			}
		}
		best := remaining[bestIdx]
		topActions = append(topActions, map[string]interface{}{
			"action": best,
			"count":  actionCount[best],
		})
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	peakHour, peakCount := -1, -1
	for _, h := range hourOrder {
		if hourCount[h] > peakCount {
			peakHour, peakCount = h, hourCount[h]
		}
	}
	var peak map[string]interface{}
	if peakHour >= 0 {
		peak = map[string]interface{}{"hour": peakHour, "session_count": peakCount}
	} else {
		peak = map[string]interface{}{"hour": nil, "session_count": 0}
	}

	return ok(map[string]interface{}{
		"total_users":          len(data.Users),
		"active_users":         activeUsers,
		"inactive_users":       inactiveUsers,
		"active_percentage":    activePercentage,
		"total_sessions":       len(data.Sessions),
		"avg_session_duration": avgSessionDuration,
		"total_pages_visited":  totalPagesVisited,
		"top_actions":          topActions,
		"peak_hour":            peak,
	})
}

func round1(f float64) float64 {
	return float64(int64(f*10+sign(f)*0.5)) / 10
}

// hourFromISO extracts the HH component of an ISO-8601-like timestamp such
// as "2024-01-15T14:30:00" without pulling in a full datetime parser.
func hourFromISO(ts string) (int, bool) {
	idx := strings.IndexAny(ts, "T ")
	if idx < 0 || idx+3 > len(ts) {
		return 0, false
	}
	hh := ts[idx+1 : idx+3]
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	return hour, true
}
