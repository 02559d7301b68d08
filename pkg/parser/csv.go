package parser

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Sale is one validated row of the CSV sales file.
type Sale struct {
	Date       string
	Product    string
	Category   string
	UnitPrice  float64
	Quantity   int
	Discount   float64
	Total      float64
}

// CSVData is the parsed payload of a sales CSV file.
type CSVData struct {
	Sales []Sale
}

const csvHeader = "fecha,producto,categoria,precio_unitario,cantidad,descuento"

// ParseCSV implements the contract in spec.md §4.2: a single invalid row
// fails the whole file with OutcomeError rather than producing a partial
// result, and the reason names up to the first three offending lines.
func ParseCSV(content []byte) Result {
	r := csv.NewReader(strings.NewReader(string(content)))
	r.FieldsPerRecord = -1 // validated manually, for precise per-row messages
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return fail(fmt.Sprintf("failed to parse CSV: %v", err))
	}
	if len(records) == 0 {
		return fail("empty file")
	}

	header := strings.ToLower(strings.Join(trimAll(records[0]), ","))
	if header != csvHeader {
		return fail(fmt.Sprintf("missing or invalid header: expected %q, got %q", csvHeader, header))
	}

	rows := records[1:]
	if len(rows) == 0 {
		return fail("empty file: no data rows")
	}

	var failures []LineError
	sales := make([]Sale, 0, len(rows))
	for i, row := range rows {
		lineNum := i + 2 // header is line 1
		sale, reason, ok := validateRow(row)
		if !ok {
			failures = append(failures, LineError{Line: lineNum, Message: reason})
			continue
		}
		sales = append(sales, sale)
	}

	if len(failures) > 0 {
		limit := failures
		if len(limit) > 3 {
			limit = limit[:3]
		}
		parts := make([]string, 0, len(limit))
		for _, f := range limit {
			parts = append(parts, fmt.Sprintf("line %d: %s", f.Line, f.Message))
		}
		res := fail(fmt.Sprintf("%d invalid row(s): %s", len(failures), strings.Join(parts, "; ")))
		res.Errors = limit
		return res
	}

	return ok(CSVData{Sales: sales})
}

func validateRow(row []string) (Sale, string, bool) {
	if len(row) != 6 {
		return Sale{}, fmt.Sprintf("expected 6 fields, got %d", len(row)), false
	}
	date := strings.TrimSpace(row[0])
	product := strings.TrimSpace(row[1])
	category := strings.TrimSpace(row[2])
	priceStr := strings.TrimSpace(row[3])
	qtyStr := strings.TrimSpace(row[4])
	discStr := strings.TrimSpace(row[5])

	if _, err := time.Parse("2006-01-02", date); err != nil {
		return Sale{}, fmt.Sprintf("invalid date %q", date), false
	}
	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil || price <= 0 {
		return Sale{}, fmt.Sprintf("invalid precio_unitario %q", priceStr), false
	}
	qty, err := strconv.Atoi(qtyStr)
	if err != nil || qty <= 0 {
		return Sale{}, fmt.Sprintf("invalid cantidad %q", qtyStr), false
	}
	discount, err := strconv.ParseFloat(discStr, 64)
	if err != nil || discount < 0 || discount > 100 {
		return Sale{}, fmt.Sprintf("invalid descuento %q", discStr), false
	}

	total := price * float64(qty) * (1 - discount/100)
	return Sale{
		Date:      date,
		Product:   product,
		Category:  category,
		UnitPrice: price,
		Quantity:  qty,
		Discount:  discount,
		Total:     total,
	}, "", true
}

func trimAll(fields []string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = strings.TrimSpace(f)
	}
	return out
}
