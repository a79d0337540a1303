package pipeline

import (
	"sort"
	"strings"

	"go-order-pipeline/internal/model"
	"go-order-pipeline/pkg/utils"
)

// LineData holds the three parallel sequences the aggregator produces.
// Positions correspond across all three slices; every transform below
// keeps them the same length.
type LineData struct {
	Descriptions []string
	Quantities   []interface{}
	Codes        []string
}

// CombineLines concatenates the reshaped table fields into parallel
// description/quantity/code sequences. Fields are taken in ascending order
// (stable for ties, so extractor order survives). Each field contributes
// its product code — the trimmed text before the first '-' — once per
// value; a field whose label has no dash contributes an empty code per
// value, which later resolves to the default product id. That placeholder
// keeps the three sequences aligned even for uncoded tables.
func CombineLines(tables []model.TableField) LineData {
	sorted := make([]model.TableField, len(tables))
	copy(sorted, tables)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})

	data := LineData{
		Descriptions: []string{},
		Quantities:   []interface{}{},
		Codes:        []string{},
	}

	for _, table := range sorted {
		data.Descriptions = append(data.Descriptions, table.Labels...)
		data.Quantities = append(data.Quantities, table.Values...)

		code := productCode(table.Text)
		for range table.Values {
			data.Codes = append(data.Codes, code)
		}
	}

	return data
}

// productCode extracts the code prefix from a field label: the trimmed
// text before the first '-', or "" when the label carries no dash.
func productCode(text string) string {
	if !strings.Contains(text, "-") {
		return ""
	}
	return strings.TrimSpace(strings.SplitN(text, "-", 2)[0])
}

// FilterNumeric drops every position whose quantity does not coerce to a
// number, removing it from all three sequences in lock-step. Zero is a
// valid quantity. Idempotent: rerunning on its own output changes nothing.
func FilterNumeric(data LineData) ([]string, []float64, []string) {
	descriptions := []string{}
	quantities := []float64{}
	codes := []string{}

	n := len(data.Quantities)
	if len(data.Descriptions) < n {
		n = len(data.Descriptions)
	}
	if len(data.Codes) < n {
		n = len(data.Codes)
	}

	for i := 0; i < n; i++ {
		qty, ok := utils.Numeric(data.Quantities[i])
		if !ok {
			// CoercionSkip: expected data noise, dropped silently
			continue
		}
		descriptions = append(descriptions, data.Descriptions[i])
		quantities = append(quantities, qty)
		codes = append(codes, data.Codes[i])
	}

	return descriptions, quantities, codes
}

// MapProductIDs replaces product codes with invoicing ids via the lookup
// table, using the default id for unknown codes.
func MapProductIDs(codes []string, lookup func(string) string) []string {
	ids := make([]string, len(codes))
	for i, code := range codes {
		ids[i] = lookup(code)
	}
	return ids
}
