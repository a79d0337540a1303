package pipeline

import "strings"

// CollapseBulk groups line items by product id and sums their quantities.
// Groups appear in first-occurrence order. The representative description
// of a group is the longest common leading prefix of its descriptions,
// trimmed — which degrades to the full description for single-row groups.
func CollapseBulk(descriptions []string, quantities []float64, productIDs []string) ([]string, []float64, []string) {
	type group struct {
		descriptions []string
		total        float64
	}

	groups := map[string]*group{}
	orderedIDs := []string{}

	for i, id := range productIDs {
		g, ok := groups[id]
		if !ok {
			g = &group{}
			groups[id] = g
			orderedIDs = append(orderedIDs, id)
		}
		g.descriptions = append(g.descriptions, descriptions[i])
		g.total += quantities[i]
	}

	bulkDescriptions := make([]string, 0, len(orderedIDs))
	bulkQuantities := make([]float64, 0, len(orderedIDs))
	bulkIDs := make([]string, 0, len(orderedIDs))

	for _, id := range orderedIDs {
		g := groups[id]
		bulkDescriptions = append(bulkDescriptions, strings.TrimSpace(commonPrefix(g.descriptions)))
		bulkQuantities = append(bulkQuantities, g.total)
		bulkIDs = append(bulkIDs, id)
	}

	return bulkDescriptions, bulkQuantities, bulkIDs
}

// commonPrefix returns the longest leading substring shared by all inputs.
func commonPrefix(values []string) string {
	if len(values) == 0 {
		return ""
	}
	prefix := values[0]
	for _, v := range values[1:] {
		for !strings.HasPrefix(v, prefix) {
			prefix = prefix[:len(prefix)-1]
			if prefix == "" {
				return ""
			}
		}
	}
	return prefix
}
