package metrics

import (
	"sort"
	"strings"

	"github.com/stackvity/dataingest/pkg/parser"
)

var logLevels = []string{"DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

var errorPatternRules = []struct {
	substr string
	label  string
}{
	{"timeout", "Timeout errors"},
	{"connection", "Connection errors"},
	{"deadlock", "Database deadlock"},
	{"null", "Null pointer errors"},
	{"permission", "Permission errors"},
}

// Log implements the contract in spec.md §4.3 for application log files.
// Empty input yields an error.
func Log(data parser.LogData) Result {
	entries := data.Entries
	if len(entries) == 0 {
		return fail("no log entries to summarize")
	}

	levelCount := make(map[string]int, len(logLevels))
	hourCount := make(map[int]int)
	hourOrder := make([]int, 0)

	messageOrder := make([]string, 0)
	messageCount := make(map[string]int)

	componentOrder := make([]string, 0)
	componentErrorCount := make(map[string]int)

	patternOrder := make([]string, 0)
	patternCount := make(map[string]int)

	critical := 0

	for _, e := range entries {
		levelCount[e.Level]++

		if _, seen := hourCount[e.Hour]; !seen {
			hourOrder = append(hourOrder, e.Hour)
		}
		hourCount[e.Hour]++

		if e.Level != "ERROR" && e.Level != "FATAL" {
			continue
		}
		critical++

		msg := e.Message
		if len(msg) > 100 {
			msg = msg[:100]
		}
		if _, seen := messageCount[msg]; !seen {
			messageOrder = append(messageOrder, msg)
		}
		messageCount[msg]++

		if _, seen := componentErrorCount[e.Component]; !seen {
			componentOrder = append(componentOrder, e.Component)
		}
		componentErrorCount[e.Component]++

		label := classifyPattern(e.Message, e.Component)
		if _, seen := patternCount[label]; !seen {
			patternOrder = append(patternOrder, label)
		}
		patternCount[label]++
	}

	levelDistribution := make(map[string]interface{}, len(logLevels))
	for _, lvl := range logLevels {
		count := levelCount[lvl]
		pct := 0.0
		if len(entries) > 0 {
			pct = round1(float64(count) / float64(len(entries)) * 100)
		}
		levelDistribution[lvl] = map[string]interface{}{
			"count":      count,
			"percentage": pct,
		}
	}

	mostFrequentErrors := topByCount(messageOrder, messageCount, 5, func(k string, c int) map[string]interface{} {
		return map[string]interface{}{"message": k, "count": c}
	})

	topErrorComponents := topByCount(componentOrder, componentErrorCount, 5, func(k string, c int) map[string]interface{} {
		return map[string]interface{}{"component": k, "error_count": c}
	})

	errorPatterns := topByCount(patternOrder, patternCount, 3, func(k string, c int) map[string]interface{} {
		return map[string]interface{}{"pattern": k, "count": c}
	})

	sort.Ints(hourOrder)
	hourlyDistribution := make([]map[string]interface{}, 0, len(hourOrder))
	for _, h := range hourOrder {
		hourlyDistribution = append(hourlyDistribution, map[string]interface{}{
			"hour":  h,
			"count": hourCount[h],
		})
	}

	return ok(map[string]interface{}{
		"total_entries":        len(entries),
		"level_distribution":   levelDistribution,
		"most_frequent_errors": mostFrequentErrors,
		"top_error_components": topErrorComponents,
		"hourly_distribution":  hourlyDistribution,
		"critical_errors_count": critical,
		"error_patterns":        errorPatterns,
	})
}

// classifyPattern matches the first substring, case-insensitively, against
// the ordered rule list; falling back to a per-component bucket.
func classifyPattern(message, component string) string {
	lower := strings.ToLower(message)
	for _, rule := range errorPatternRules {
		if strings.Contains(lower, rule.substr) {
			return rule.label
		}
	}
	return component + " errors"
}

// topByCount returns up to limit entries from order, ranked by count desc
// with ties broken by first occurrence in order.
func topByCount(order []string, count map[string]int, limit int, build func(string, int) map[string]interface{}) []map[string]interface{} {
	remaining := append([]string(nil), order...)
	out := make([]map[string]interface{}, 0, limit)
	for len(out) < limit && len(remaining) > 0 {
		bestIdx := 0
		for i, k := range remaining {
			if count[k] > count[remaining[bestIdx]] {
				bestIdx = i
			}
		}
		best := remaining[bestIdx]
		out = append(out, build(best, count[best]))
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}
	return out
}
