package engine_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stackvity/dataingest/pkg/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func seedMixedDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "sales.csv",
		"fecha,producto,categoria,precio_unitario,cantidad,descuento\n2024-01-01,Widget,Tools,10,5,0\n")
	writeFile(t, dir, "broken.csv", "not,a,valid,header\n1,2,3,4\n")
	writeFile(t, dir, "notes.txt", "ignored, unsupported extension")
	return dir
}

func TestEngine_ProcessDirectory_Sequential(t *testing.T) {
	dir := seedMixedDir(t)
	e := engine.New(engine.Options{Mode: engine.ModeSequential})

	report, err := e.ProcessDirectory(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 2, report.TotalFiles)
	assert.Equal(t, 2, report.CSVCount)
	assert.Equal(t, report.SuccessCount+report.ErrorCount+report.PartialCount, report.TotalFiles)
}

func TestEngine_ProcessDirectory_Parallel(t *testing.T) {
	dir := seedMixedDir(t)
	e := engine.New(engine.Options{Mode: engine.ModeParallel, MaxWorkers: 2})

	report, err := e.ProcessDirectory(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, 2, report.TotalFiles)

	for _, r := range report.Results {
		if r.Status == engine.StatusOK {
			assert.NotEmpty(t, r.Metrics)
			assert.Empty(t, r.Errors)
		}
		if r.Status == engine.StatusError {
			assert.Empty(t, r.Metrics)
		}
	}
}

func TestEngine_ProcessDirectory_NoFiles(t *testing.T) {
	dir := t.TempDir()
	e := engine.New(engine.Options{})

	_, err := e.ProcessDirectory(context.Background(), dir)
	assert.ErrorIs(t, err, engine.ErrNoFiles)
}

func TestEngine_Benchmark(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 5; i++ {
		writeFile(t, dir, filePrefix(i)+".csv",
			"fecha,producto,categoria,precio_unitario,cantidad,descuento\n2024-01-01,Widget,Tools,10,5,0\n")
	}
	e := engine.New(engine.Options{Benchmark: true})

	report, err := e.ProcessDirectory(context.Background(), dir)
	require.NoError(t, err)
	require.NotNil(t, report.BenchmarkData)
	assert.Equal(t, 5, report.BenchmarkData.TotalFiles)
	assert.Equal(t, 5, report.BenchmarkData.Sequential.SuccessCount)
	assert.Equal(t, 5, report.BenchmarkData.Parallel.SuccessCount)
}

func filePrefix(i int) string {
	return "f" + string(rune('a'+i))
}
