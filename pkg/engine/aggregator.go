package engine

import "time"

// aggregate implements spec.md §4.7: folds the ordered FileResult list
// (plus any synthetic entries for Discovery's skipped inputs) into an
// ExecutionReport, counting per-type and per-status tallies.
func aggregate(mode Mode, dir string, startTime time.Time, totalDurationMs int64, results []FileResult, skipped []SkippedInput, benchmarkData *BenchmarkData) ExecutionReport {
	report := ExecutionReport{
		Mode:            mode,
		StartTime:       startTime,
		Directory:       dir,
		TotalDurationMs: totalDurationMs,
		BenchmarkData:   benchmarkData,
	}

	all := make([]FileResult, 0, len(results)+len(skipped))
	all = append(all, results...)
	for _, s := range skipped {
		all = append(all, syntheticErrorResult(s.Path, FileTypeUnknown, s.Reason))
	}

	report.Results = all
	report.TotalFiles = len(all)

	for _, r := range all {
		switch r.Type {
		case FileTypeCSV:
			report.CSVCount++
		case FileTypeJSON:
			report.JSONCount++
		case FileTypeLog:
			report.LogCount++
		case FileTypeXML:
			report.XMLCount++
		}

		switch r.Status {
		case StatusOK:
			report.SuccessCount++
		case StatusError:
			report.ErrorCount++
		case StatusPartial:
			report.PartialCount++
		}
	}

	return report
}
