package metrics_test

import (
	"testing"

	"github.com/stackvity/dataingest/pkg/metrics"
	"github.com/stackvity/dataingest/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSV(t *testing.T) {
	data := parser.CSVData{Sales: []parser.Sale{
		{Date: "2024-01-01", Product: "Widget", Category: "Tools", UnitPrice: 10, Quantity: 5, Discount: 0, Total: 50},
		{Date: "2024-01-05", Product: "Gadget", Category: "Electronics", UnitPrice: 20, Quantity: 10, Discount: 10, Total: 180},
	}}

	result := metrics.CSV(data)
	require.NoError(t, result.Err)

	assert.Equal(t, 230.0, result.Metrics["total_sales"])
	assert.Equal(t, 2, result.Metrics["unique_products"])
	assert.Equal(t, 15, result.Metrics["total_quantity"])
	assert.Equal(t, 2, result.Metrics["total_records"])

	best := result.Metrics["best_selling_product"].(map[string]interface{})
	assert.Equal(t, "Gadget", best["name"])

	top := result.Metrics["top_category"].(map[string]interface{})
	assert.Equal(t, "Electronics", top["name"])

	dateRange := result.Metrics["date_range"].(map[string]interface{})
	assert.Equal(t, "2024-01-01", dateRange["from"])
	assert.Equal(t, "2024-01-05", dateRange["to"])
}

func TestCSV_Empty(t *testing.T) {
	result := metrics.CSV(parser.CSVData{})
	require.Error(t, result.Err)
}
