package pipeline

import (
	"fmt"
	"strings"

	"go-order-pipeline/internal/model"
	"go-order-pipeline/pkg/utils"
)

// reportHeaderFields is how many leading answer fields the text report
// prints as "label: value" lines before the table section.
const reportHeaderFields = 4

// BuildReport renders the plain-text order summary: the first answer
// fields as "{label}: {value}" lines, a blank line, then one
// "{productCode} | {rowLabel} | {quantity}" line per retained order row.
// Descriptions, quantities and codes must be the aligned sequences coming
// out of the numeric filter.
func BuildReport(fields []model.Field, descriptions []string, quantities []float64, codes []string) string {
	var b strings.Builder

	count := 0
	for _, f := range fields {
		if count == reportHeaderFields {
			break
		}
		fmt.Fprintf(&b, "%s: %s\n", f.Text, utils.Stringify(f.Answer))
		count++
	}
	b.WriteString("\n")

	for i := range codes {
		fmt.Fprintf(&b, "%s | %s | %s\n", codes[i], descriptions[i], utils.Stringify(quantities[i]))
	}

	return b.String()
}
