package pipeline

import (
	"strings"

	"go-order-pipeline/internal/model"
)

// ReshapeMatrix turns matrix fields into flat TableFields. The row-label
// string is split on '|', then the answer grid is flattened: cell i pairs
// with row label i (empty when labels run out), and a list-valued cell
// (multi-select) fans out into one entry per element, each repeating the
// same row label so values and labels stay aligned.
//
// Non-matrix fields are skipped. The input fields are left untouched; the
// reshaped data lives only in the returned derived records.
func ReshapeMatrix(fields []model.Field) []model.TableField {
	tables := make([]model.TableField, 0, len(fields))
	for _, f := range fields {
		if f.Type != model.TypeMatrix {
			continue
		}
		tables = append(tables, reshapeField(f))
	}
	return tables
}

func reshapeField(f model.Field) model.TableField {
	table := model.TableField{
		ID:    f.ID,
		Order: f.Order,
		Text:  f.Text,
	}

	labels := splitRowLabels(f.Rows)

	list, ok := f.Answer.([]interface{})
	if !ok {
		// Scalar answer: wrap as a singleton and pass the labels through
		// unchanged. Lengths may disagree here; the upstream system has
		// the same quirk for non-grid matrix answers.
		table.Values = []interface{}{f.Answer}
		table.Labels = labels
		return table
	}

	table.Values = make([]interface{}, 0, len(list))
	table.Labels = make([]string, 0, len(list))
	for i, cell := range list {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		if nested, ok := cell.([]interface{}); ok {
			for _, item := range nested {
				table.Values = append(table.Values, item)
				table.Labels = append(table.Labels, label)
			}
			continue
		}
		table.Values = append(table.Values, cell)
		table.Labels = append(table.Labels, label)
	}

	return table
}

// splitRowLabels splits the mrows attribute on the literal '|' delimiter.
// Empty or absent mrows yield no labels.
func splitRowLabels(rows string) []string {
	if rows == "" {
		return []string{}
	}
	return strings.Split(rows, "|")
}
