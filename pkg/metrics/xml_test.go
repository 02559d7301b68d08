package metrics_test

import (
	"testing"

	"github.com/stackvity/dataingest/pkg/metrics"
	"github.com/stackvity/dataingest/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXML(t *testing.T) {
	data := parser.XMLData{Products: []parser.Product{
		{ID: "p1", Name: "Widget", Category: "Tools", Price: 10, Currency: "USD", Stock: 100, Supplier: "Acme"},
		{ID: "p2", Name: "Gadget", Category: "Electronics", Price: 50, Currency: "USD", Stock: 5, Supplier: "Globex"},
	}}

	result := metrics.XML(data)
	require.NoError(t, result.Err)

	assert.Equal(t, 2, result.Metrics["total_products"])
	assert.Equal(t, 105, result.Metrics["total_stock_units"])
	assert.Equal(t, 1250.0, result.Metrics["total_inventory_value"])
	assert.Equal(t, 2, result.Metrics["categories_count"])

	lowStock := result.Metrics["low_stock_items"].([]map[string]interface{})
	require.Len(t, lowStock, 1)
	assert.Equal(t, "Gadget", lowStock[0]["name"])

	priceRange := result.Metrics["price_range"].(map[string]interface{})
	assert.Equal(t, 10.0, priceRange["min"])
	assert.Equal(t, 50.0, priceRange["max"])
}

func TestXML_Empty(t *testing.T) {
	result := metrics.XML(parser.XMLData{})
	require.Error(t, result.Err)
}
