package metrics

import (
	"github.com/stackvity/dataingest/pkg/parser"
)

// CSV implements the contract in spec.md §4.3 for sales records. Empty
// input yields an error; every other shape yields a populated metrics map.
func CSV(data parser.CSVData) Result {
	sales := data.Sales
	if len(sales) == 0 {
		return fail("no sales records to summarize")
	}

	var totalSales, totalDiscount float64
	var totalQuantity int

	productOrder := make([]string, 0)
	productQty := make(map[string]int)
	categoryOrder := make([]string, 0)
	categoryRevenue := make(map[string]float64)

	minDate, maxDate := sales[0].Date, sales[0].Date

	for _, s := range sales {
		totalSales += s.Total
		totalDiscount += s.Discount
		totalQuantity += s.Quantity

		if _, seen := productQty[s.Product]; !seen {
			productOrder = append(productOrder, s.Product)
		}
		productQty[s.Product] += s.Quantity

		if _, seen := categoryRevenue[s.Category]; !seen {
			categoryOrder = append(categoryOrder, s.Category)
		}
		categoryRevenue[s.Category] += s.Total

		if s.Date < minDate {
			minDate = s.Date
		}
		if s.Date > maxDate {
			maxDate = s.Date
		}
	}

	bestProduct, bestQty := productOrder[0], productQty[productOrder[0]]
	for _, p := range productOrder[1:] {
		if productQty[p] > bestQty {
			bestProduct, bestQty = p, productQty[p]
		}
	}

	topCategory, topRevenue := categoryOrder[0], categoryRevenue[categoryOrder[0]]
	for _, c := range categoryOrder[1:] {
		if categoryRevenue[c] > topRevenue {
			topCategory, topRevenue = c, categoryRevenue[c]
		}
	}

	uniqueProducts := make(map[string]struct{}, len(productOrder))
	for _, p := range productOrder {
		uniqueProducts[p] = struct{}{}
	}

	return ok(map[string]interface{}{
		"total_sales":      round2(totalSales),
		"unique_products":  len(uniqueProducts),
		"total_quantity":   totalQuantity,
		"total_records":    len(sales),
		"average_discount": round2(totalDiscount / float64(len(sales))),
		"best_selling_product": map[string]interface{}{
			"name":     bestProduct,
			"quantity": bestQty,
		},
		"top_category": map[string]interface{}{
			"name":    topCategory,
			"revenue": round2(topRevenue),
		},
		"date_range": map[string]interface{}{
			"from": minDate,
			"to":   maxDate,
		},
	})
}
