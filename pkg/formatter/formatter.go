// Package formatter renders an ExecutionReport as a fixed-width text
// report and writes it to disk, mirroring the collaborator role the
// teacher's template.TemplateExecutor plays for stack-converter: the
// engine never imports this package directly, it only depends on the
// generate_and_save shape described in spec.md §6.
package formatter

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
	"time"

	"github.com/stackvity/dataingest/pkg/engine"
)

//go:embed default.tmpl
var defaultTemplateContent string

const reportWidth = 80

// Formatter writes an ExecutionReport as a human-readable text report,
// adapted from the teacher's GoTemplateExecutor (pkg/converter/template)
// down to a single fixed report shape instead of a per-file template.
type Formatter struct {
	tmpl *template.Template
}

// New builds a Formatter using the embedded default template.
func New() (*Formatter, error) {
	return NewFromTemplate(defaultTemplateContent)
}

// NewFromTemplate builds a Formatter using caller-supplied template text,
// for the "optional custom text/template support" spec.md §6 leaves as an
// external concern the formatter still needs to expose a hook for.
func NewFromTemplate(text string) (*Formatter, error) {
	funcs := template.FuncMap{
		"wrap":       wrap80,
		"repeat":     repeatRule,
		"byType":     resultsByType,
		"firstError": firstError,
	}
	tmpl, err := template.New("report").Funcs(funcs).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing report template: %w", err)
	}
	return &Formatter{tmpl: tmpl}, nil
}

// GenerateAndSave implements the report-formatter collaborator interface
// from spec.md §6: render the report and write it under outputDir,
// returning the path written.
func (f *Formatter) GenerateAndSave(report engine.ExecutionReport, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("cannot create output directory %q: %w", outputDir, err)
	}

	name := fmt.Sprintf("execution-report-%s.txt", report.StartTime.UTC().Format("20060102-150405"))
	path := filepath.Join(outputDir, name)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("cannot create report file %q: %w", path, err)
	}
	defer file.Close()

	view := buildView(report)
	if err := f.tmpl.Execute(file, view); err != nil {
		return "", fmt.Errorf("rendering report: %w", err)
	}
	return path, nil
}

func repeatRule() string {
	line := make([]byte, reportWidth)
	for i := range line {
		line[i] = '='
	}
	return string(line)
}

func wrap80(s string) []string {
	var lines []string
	for len(s) > reportWidth {
		lines = append(lines, s[:reportWidth])
		s = s[reportWidth:]
	}
	if s != "" || len(lines) == 0 {
		lines = append(lines, s)
	}
	return lines
}

// reportView is the flattened, template-friendly projection of an
// ExecutionReport built by buildView.
type reportView struct {
	GeneratedAt string
	engine.ExecutionReport
	FailedResults []engine.FileResult
}

func resultsByType(results []engine.FileResult, t string) []engine.FileResult {
	var out []engine.FileResult
	for _, r := range results {
		if string(r.Type) == t && r.Status != engine.StatusError {
			out = append(out, r)
		}
	}
	return out
}

func firstError(r engine.FileResult) string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0].String()
}

func buildView(report engine.ExecutionReport) reportView {
	var failed []engine.FileResult
	for _, r := range report.Results {
		if r.Status != engine.StatusOK {
			failed = append(failed, r)
		}
	}
	return reportView{
		GeneratedAt:     time.Now().UTC().Format(time.RFC3339),
		ExecutionReport: report,
		FailedResults:   failed,
	}
}
