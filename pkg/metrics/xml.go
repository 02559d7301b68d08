package metrics

import (
	"sort"

	"github.com/stackvity/dataingest/pkg/parser"
)

// XML implements the contract in spec.md §4.3 for product catalogs.
// Empty input yields an error.
func XML(data parser.XMLData) Result {
	products := data.Products
	if len(products) == 0 {
		return fail("no products to summarize")
	}

	var totalStock int
	var totalInventoryValue, totalPrice float64
	minPrice, maxPrice := products[0].Price, products[0].Price
	mostExpensive := products[0]

	categoryOrder := make([]string, 0)
	categoryProductCount := make(map[string]int)
	categoryStock := make(map[string]int)
	categoryValue := make(map[string]float64)

	supplierOrder := make([]string, 0)
	supplierProductCount := make(map[string]int)
	supplierStock := make(map[string]int)

	lowStock := make([]map[string]interface{}, 0)

	for _, p := range products {
		totalStock += p.Stock
		value := p.Price * float64(p.Stock)
		totalInventoryValue += value
		totalPrice += p.Price

		if p.Price < minPrice {
			minPrice = p.Price
		}
		if p.Price > maxPrice {
			maxPrice = p.Price
		}
		if p.Price > mostExpensive.Price {
			mostExpensive = p
		}

		if _, seen := categoryProductCount[p.Category]; !seen {
			categoryOrder = append(categoryOrder, p.Category)
		}
		categoryProductCount[p.Category]++
		categoryStock[p.Category] += p.Stock
		categoryValue[p.Category] += value

		if _, seen := supplierProductCount[p.Supplier]; !seen {
			supplierOrder = append(supplierOrder, p.Supplier)
		}
		supplierProductCount[p.Supplier]++
		supplierStock[p.Supplier] += p.Stock

		if p.Stock > 0 && p.Stock <= 10 {
			lowStock = append(lowStock, map[string]interface{}{
				"name":     p.Name,
				"stock":    p.Stock,
				"category": p.Category,
			})
		}
	}

	sort.Slice(lowStock, func(i, j int) bool {
		return lowStock[i]["stock"].(int) < lowStock[j]["stock"].(int)
	})

	type catAgg struct {
		name  string
		value float64
	}
	cats := make([]catAgg, 0, len(categoryOrder))
	for _, c := range categoryOrder {
		cats = append(cats, catAgg{c, categoryValue[c]})
	}
	sort.SliceStable(cats, func(i, j int) bool { return cats[i].value > cats[j].value })

	productsByCategory := make(map[string]interface{}, len(cats))
	for _, c := range cats {
		productsByCategory[c.name] = map[string]interface{}{
			"product_count": categoryProductCount[c.name],
			"total_stock":   categoryStock[c.name],
			"total_value":   round2(categoryValue[c.name]),
		}
	}

	topSuppliers := make([]map[string]interface{}, 0, 5)
	remaining := append([]string(nil), supplierOrder...)
	for len(topSuppliers) < 5 && len(remaining) > 0 {
		bestIdx := 0
		for i, s := range remaining {
			if supplierStock[s] > supplierStock[remaining[bestIdx]] {
				bestIdx = i
			}
		}
		best := remaining[bestIdx]
		topSuppliers = append(topSuppliers, map[string]interface{}{
			"supplier":      best,
			"product_count": supplierProductCount[best],
			"total_stock":   supplierStock[best],
		})
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	return ok(map[string]interface{}{
		"total_products":         len(products),
		"total_stock_units":      totalStock,
		"total_inventory_value":  round2(totalInventoryValue),
		"average_price":          round2(totalPrice / float64(len(products))),
		"categories_count":       len(categoryOrder),
		"products_by_category":   productsByCategory,
		"low_stock_items":        lowStock,
		"top_suppliers":          topSuppliers,
		"price_range":            map[string]interface{}{"min": minPrice, "max": maxPrice},
		"most_expensive_product": map[string]interface{}{"name": mostExpensive.Name, "price": mostExpensive.Price},
	})
}
