package engine

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/stackvity/dataingest/pkg/metrics"
	"github.com/stackvity/dataingest/pkg/parser"
)

// FileProcessor runs the single-file pipeline stage: read, decode, parse,
// validate, compute metrics, and fold the outcome into one FileResult.
// It generalizes the teacher's FileProcessor.ProcessFile: same shape
// (start timer, dispatch to parse stage, dispatch to metrics stage,
// normalize status, stop timer), but it never recovers its own panics —
// that is the calling mode's job, exactly as the teacher's
// processFilesWorker recovers panics around ProcessFile rather than the
// processor doing it itself.
type FileProcessor struct {
	logger *slog.Logger
}

// NewFileProcessor builds a FileProcessor logging under the given handler.
func NewFileProcessor(handler slog.Handler) *FileProcessor {
	return &FileProcessor{logger: slog.New(handler).With(slog.String("component", "processor"))}
}

// Process implements spec.md §4.4 steps 1-5 for a single classified input.
func (p *FileProcessor) Process(c Classified) FileResult {
	start := time.Now()
	result := newFileResult(c.Path, c.Type)

	raw, err := os.ReadFile(c.Path)
	if err != nil {
		result.Errors = []ErrorEntry{{Message: fmt.Sprintf("failed to read file: %v", err)}}
		result.Status = StatusError
		result.DurationMs = time.Since(start).Milliseconds()
		return result
	}

	content, err := detectAndDecode(raw)
	if err != nil {
		result.Errors = []ErrorEntry{{Message: fmt.Sprintf("failed to read file: %v", err)}}
		result.Status = StatusError
		result.DurationMs = time.Since(start).Milliseconds()
		return result
	}

	parseResult := p.parse(c.Type, content)
	metricsResult := p.computeMetrics(c.Type, parseResult)

	var errs []ErrorEntry
	for _, e := range parseResult.Errors {
		errs = append(errs, ErrorEntry{Line: e.Line, Message: e.Message})
	}
	if parseResult.Outcome == parser.OutcomeError {
		errs = append(errs, ErrorEntry{Message: parseResult.Reason})
	}
	if metricsResult.Err != nil {
		errs = append(errs, ErrorEntry{Message: metricsResult.Err.Error()})
	}

	hasMetrics := metricsResult.Err == nil
	result.Errors = errs
	if hasMetrics {
		result.Metrics = Metrics(metricsResult.Metrics)
	}
	result.Status = normalizeStatus(len(errs) > 0, hasMetrics)
	result.LinesProcessed = linesProcessed(c.Type, result.Metrics)
	result.LinesFailed = len(parseResult.Errors)
	result.DurationMs = time.Since(start).Milliseconds()
	return result
}

func (p *FileProcessor) parse(t FileType, content []byte) parser.Result {
	switch t {
	case FileTypeCSV:
		return parser.ParseCSV(content)
	case FileTypeJSON:
		return parser.ParseJSON(content)
	case FileTypeLog:
		return parser.ParseLog(content)
	case FileTypeXML:
		return parser.ParseXML(content)
	default:
		return parser.Result{Outcome: parser.OutcomeError, Reason: fmt.Sprintf("unsupported file type %q", t)}
	}
}

func (p *FileProcessor) computeMetrics(t FileType, pr parser.Result) metrics.Result {
	if pr.Outcome == parser.OutcomeError {
		return metrics.Result{Err: fmt.Errorf("%s", pr.Reason)}
	}
	switch t {
	case FileTypeCSV:
		return metrics.CSV(pr.Data.(parser.CSVData))
	case FileTypeJSON:
		return metrics.JSON(pr.Data.(parser.JSONData))
	case FileTypeLog:
		return metrics.Log(pr.Data.(parser.LogData))
	case FileTypeXML:
		return metrics.XML(pr.Data.(parser.XMLData))
	default:
		return metrics.Result{Err: fmt.Errorf("unsupported file type %q", t)}
	}
}

// linesProcessed picks the type-specific count named in spec.md §4.4 step
// 4, defaulting to zero when metrics were not produced.
func linesProcessed(t FileType, m Metrics) int {
	if m == nil {
		return 0
	}
	var key string
	switch t {
	case FileTypeCSV:
		key = "total_records"
	case FileTypeLog:
		key = "total_entries"
	case FileTypeXML:
		key = "total_products"
	case FileTypeJSON:
		key = "total_sessions"
	default:
		return 0
	}
	if v, ok := m[key].(int); ok {
		return v
	}
	return 0
}
