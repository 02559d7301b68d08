package parser

import (
	"encoding/xml"
	"fmt"
)

// Product is one validated <product> entry from the catalog.
type Product struct {
	ID       string
	Name     string
	Category string
	Price    float64
	Currency string
	Stock    int
	Supplier string
}

// CatalogMetadata holds the optional <metadata> fields.
type CatalogMetadata struct {
	Generated string
	Source    string
}

// XMLData is the parsed payload of a product catalog file.
type XMLData struct {
	Metadata CatalogMetadata
	Products []Product
}

type xmlProduct struct {
	ID       string `xml:"id,attr"`
	Name     string `xml:"name"`
	Category string `xml:"category"`
	Price    float64 `xml:"price"`
	Currency string `xml:"currency,attr"`
	Stock    int    `xml:"stock"`
	Supplier string `xml:"supplier"`
}

type xmlMetadata struct {
	Generated string `xml:"generated"`
	Source    string `xml:"source"`
}

type xmlCatalog struct {
	XMLName  xml.Name     `xml:"catalog"`
	Metadata xmlMetadata  `xml:"metadata"`
	Products []xmlProduct `xml:"products>product"`
}

const defaultCurrency = "USD"

// ParseXML implements the contract in spec.md §4.2. An empty or absent
// products list is not an error: it yields OutcomeOK with zero totals.
func ParseXML(content []byte) Result {
	var doc xmlCatalog
	if err := xml.Unmarshal(content, &doc); err != nil {
		return fail(fmt.Sprintf("malformed XML: %v", err))
	}

	products := make([]Product, 0, len(doc.Products))
	for _, p := range doc.Products {
		currency := p.Currency
		if currency == "" {
			currency = defaultCurrency
		}
		products = append(products, Product{
			ID:       p.ID,
			Name:     p.Name,
			Category: p.Category,
			Price:    p.Price,
			Currency: currency,
			Stock:    p.Stock,
			Supplier: p.Supplier,
		})
	}

	return ok(XMLData{
		Metadata: CatalogMetadata{
			Generated: doc.Metadata.Generated,
			Source:    doc.Metadata.Source,
		},
		Products: products,
	})
}
