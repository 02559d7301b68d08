package parser_test

import (
	"testing"

	"github.com/stackvity/dataingest/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCSV = "fecha,producto,categoria,precio_unitario,cantidad,descuento\n" +
	"2024-01-01,Widget,Tools,10.00,5,0\n" +
	"2024-01-02,Gadget,Electronics,20.00,3,10\n"

func TestParseCSV_Valid(t *testing.T) {
	result := parser.ParseCSV([]byte(validCSV))
	require.Equal(t, parser.OutcomeOK, result.Outcome)

	data, ok := result.Data.(parser.CSVData)
	require.True(t, ok)
	require.Len(t, data.Sales, 2)
	assert.Equal(t, "Widget", data.Sales[0].Product)
	assert.Equal(t, 50.0, data.Sales[0].Total)
	assert.InDelta(t, 54.0, data.Sales[1].Total, 0.001)
}

func TestParseCSV_BadHeader(t *testing.T) {
	result := parser.ParseCSV([]byte("a,b,c\n1,2,3\n"))
	assert.Equal(t, parser.OutcomeError, result.Outcome)
	assert.Contains(t, result.Reason, "header")
}

func TestParseCSV_CorruptRowsFailWholeFile(t *testing.T) {
	content := "fecha,producto,categoria,precio_unitario,cantidad,descuento\n" +
		"2024-01-01,A,Tools,ERROR,5,0\n" +
		"2024-01-02,B,Tools,10,,0\n" +
		"2024-01-03,C,Tools,-5,1,0\n" +
		"2024-01-04,D,Tools,10,1,150\n"

	result := parser.ParseCSV([]byte(content))
	assert.Equal(t, parser.OutcomeError, result.Outcome)
	assert.Empty(t, result.Data)
	assert.GreaterOrEqual(t, len(result.Errors), 3)
}

func TestParseCSV_Empty(t *testing.T) {
	result := parser.ParseCSV([]byte(""))
	assert.Equal(t, parser.OutcomeError, result.Outcome)
}
