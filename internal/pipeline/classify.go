package pipeline

import (
	"strings"

	"go-order-pipeline/internal/model"
)

// WithAnswer keeps only the fields whose wire object carried an "answer"
// key. Pure; the input slice is not modified.
func WithAnswer(fields []model.Field) []model.Field {
	kept := make([]model.Field, 0, len(fields))
	for _, f := range fields {
		if f.HasAnswer {
			kept = append(kept, f)
		}
	}
	return kept
}

// ByType keeps only the fields of the given declared type. Pure.
func ByType(fields []model.Field, fieldType string) []model.Field {
	kept := make([]model.Field, 0, len(fields))
	for _, f := range fields {
		if f.Type == fieldType {
			kept = append(kept, f)
		}
	}
	return kept
}

// EmailAndSalesRep scans the answer-bearing fields once, in extractor
// order: the first control_email answer becomes the customer email
// (trimmed, lowercased), the first control_dropdown answer the sales rep.
// Stops early once both are found.
func EmailAndSalesRep(fields []model.Field) (email, salesRep string) {
	for _, f := range fields {
		switch f.Type {
		case model.TypeEmail:
			if email == "" {
				if s, ok := f.Answer.(string); ok {
					email = strings.ToLower(strings.TrimSpace(s))
				}
			}
		case model.TypeDropdown:
			if salesRep == "" {
				if s, ok := f.Answer.(string); ok {
					salesRep = s
				}
			}
		}
		if email != "" && salesRep != "" {
			break
		}
	}
	return email, normalizeSalesRep(salesRep)
}

// normalizeSalesRep applies the one known alias: the rep recorded as JOHN
// on the form is billed under the initials JE. Literal special case, kept
// as-is rather than generalized into a mapping.
func normalizeSalesRep(rep string) string {
	if strings.EqualFold(rep, "JOHN") {
		return "JE"
	}
	return rep
}
