package engine

import "time"

// ExecutionReport is the consolidated outcome of one engine run, assembled
// by the Report Aggregator from an ordered list of FileResults.
type ExecutionReport struct {
	Mode      Mode      `json:"mode"`
	StartTime time.Time `json:"start_time"`
	Directory string    `json:"directory,omitempty"`

	TotalFiles int `json:"total_files"`
	CSVCount   int `json:"csv_count"`
	JSONCount  int `json:"json_count"`
	LogCount   int `json:"log_count"`
	XMLCount   int `json:"xml_count"`

	SuccessCount int `json:"success_count"`
	ErrorCount   int `json:"error_count"`
	PartialCount int `json:"partial_count"`

	TotalDurationMs int64 `json:"total_duration_ms"`

	Results []FileResult `json:"results"`

	BenchmarkData *BenchmarkData `json:"benchmark_data,omitempty"`
}

// BenchmarkData compares a Sequential run against a Parallel run over the
// same classified input list, produced only in benchmark mode.
type BenchmarkData struct {
	TotalFiles    int `json:"total_files"`
	ProcessesUsed int `json:"processes_used"`

	Sequential RunStats `json:"sequential"`
	Parallel   RunStats `json:"parallel"`

	Comparison Comparison `json:"comparison"`
}

// RunStats summarizes one side (sequential or parallel) of a benchmark run.
type RunStats struct {
	DurationMs     int64   `json:"duration_ms"`
	DurationSec    float64 `json:"duration_sec"`
	SuccessCount   int     `json:"success_count"`
	ErrorCount     int     `json:"error_count"`
	AvgTimePerFile float64 `json:"avg_time_per_file"`
	MemoryKB       int64   `json:"memory_kb"`
}

// Comparison holds the derived speedup figures between the two runs.
type Comparison struct {
	SpeedupFactor    float64 `json:"speedup_factor"`
	TimeSavedMs      int64   `json:"time_saved_ms"`
	TimeSavedPercent float64 `json:"time_saved_percent"`
	FasterMode       Mode    `json:"faster_mode"`
}
