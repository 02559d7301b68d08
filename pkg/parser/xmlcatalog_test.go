package parser_test

import (
	"testing"

	"github.com/stackvity/dataingest/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCatalog = `<?xml version="1.0"?>
<catalog>
  <metadata>
    <generated>2024-01-15</generated>
    <source>warehouse-1</source>
  </metadata>
  <products>
    <product id="p1" currency="EUR">
      <name>Widget</name>
      <category>Tools</category>
      <price>9.99</price>
      <stock>100</stock>
      <supplier>Acme</supplier>
    </product>
    <product id="p2">
      <name>Gadget</name>
      <category>Electronics</category>
      <price>49.99</price>
      <stock>5</stock>
      <supplier>Globex</supplier>
    </product>
  </products>
</catalog>`

func TestParseXML_Valid(t *testing.T) {
	result := parser.ParseXML([]byte(validCatalog))
	require.Equal(t, parser.OutcomeOK, result.Outcome)

	data, ok := result.Data.(parser.XMLData)
	require.True(t, ok)
	require.Len(t, data.Products, 2)
	assert.Equal(t, "EUR", data.Products[0].Currency)
	assert.Equal(t, "USD", data.Products[1].Currency)
	assert.Equal(t, "warehouse-1", data.Metadata.Source)
}

func TestParseXML_Malformed(t *testing.T) {
	result := parser.ParseXML([]byte("<catalog><products>"))
	assert.Equal(t, parser.OutcomeError, result.Outcome)
}

func TestParseXML_EmptyProductsIsOK(t *testing.T) {
	result := parser.ParseXML([]byte(`<catalog><products></products></catalog>`))
	require.Equal(t, parser.OutcomeOK, result.Outcome)
	data := result.Data.(parser.XMLData)
	assert.Empty(t, data.Products)
}
