package pipeline

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"go-order-pipeline/internal/model"
	"go-order-pipeline/pkg/utils"
)

// ExtractAnswers locates the answers mapping inside a raw submission and
// returns it as typed fields. Two legal shapes exist: content is either a
// single object holding "answers", or a non-empty list whose first element
// holds it. Absent or malformed content degrades to an empty slice, never
// to an error.
//
// Go maps do not preserve the JSON key order the upstream platform emits,
// so the result is an explicit slice sorted by (order asc, field id). Both
// the classifier scan and the aggregator rely on this one ordering.
func ExtractAnswers(sub model.Submission) []model.Field {
	answers := answersMapping(sub.Content)

	fields := make([]model.Field, 0, len(answers))
	for id, raw := range answers {
		entry, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		fields = append(fields, decodeField(id, entry))
	}

	sort.SliceStable(fields, func(i, j int) bool {
		if fields[i].Order != fields[j].Order {
			return fields[i].Order < fields[j].Order
		}
		return lessFieldID(fields[i].ID, fields[j].ID)
	})

	return fields
}

// answersMapping digs the raw answers object out of content.
func answersMapping(content interface{}) map[string]interface{} {
	switch c := content.(type) {
	case []interface{}:
		if len(c) == 0 {
			return nil
		}
		first, ok := c[0].(map[string]interface{})
		if !ok {
			return nil
		}
		answers, _ := first["answers"].(map[string]interface{})
		return answers
	case map[string]interface{}:
		answers, _ := c["answers"].(map[string]interface{})
		return answers
	default:
		return nil
	}
}

func decodeField(id string, entry map[string]interface{}) model.Field {
	field := model.Field{
		ID:    id,
		Order: math.MaxInt,
	}

	if t, ok := entry["type"].(string); ok {
		field.Type = t
	}
	if text, ok := entry["text"].(string); ok {
		field.Text = text
	}
	if rows, ok := entry["mrows"].(string); ok {
		field.Rows = rows
	}
	if order, ok := utils.OrderValue(entry["order"]); ok {
		field.Order = order
	}
	if answer, ok := entry["answer"]; ok {
		field.Answer = answer
		field.HasAnswer = true
	}

	return field
}

// lessFieldID compares field ids numerically when both parse ("10" after
// "9"), lexically otherwise.
func lessFieldID(a, b string) bool {
	ai, aerr := strconv.Atoi(strings.TrimSpace(a))
	bi, berr := strconv.Atoi(strings.TrimSpace(b))
	if aerr == nil && berr == nil {
		return ai < bi
	}
	return a < b
}
