package pipeline_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-order-pipeline/internal/model"
	"go-order-pipeline/internal/pipeline"
)

func TestBuildReport(t *testing.T) {
	fields := []model.Field{
		{Text: "E-mail", Answer: "buyer@example.com"},
		{Text: "Sales Rep", Answer: "Maria"},
		{Text: "PO Number", Answer: float64(42)},
		{Text: "Ship Date", Answer: "tomorrow"},
		{Text: "Fifth field", Answer: "not printed"},
	}

	report := pipeline.BuildReport(
		fields,
		[]string{"Widget A"},
		[]float64{2},
		[]string{"W100"},
	)

	lines := strings.Split(report, "\n")
	require.GreaterOrEqual(t, len(lines), 6)
	assert.Equal(t, "E-mail: buyer@example.com", lines[0])
	assert.Equal(t, "Sales Rep: Maria", lines[1])
	assert.Equal(t, "PO Number: 42", lines[2])
	assert.Equal(t, "Ship Date: tomorrow", lines[3])
	assert.Equal(t, "", lines[4])
	assert.Equal(t, "W100 | Widget A | 2", lines[5])
	assert.NotContains(t, report, "Fifth field")
}

func TestBuildReportFewerThanFourFields(t *testing.T) {
	report := pipeline.BuildReport(
		[]model.Field{{Text: "Only", Answer: "one"}},
		nil, nil, nil,
	)
	assert.Equal(t, "Only: one\n\n", report)
}

func TestBuildReportFractionalQuantity(t *testing.T) {
	report := pipeline.BuildReport(nil, []string{"Half pallet"}, []float64{2.5}, []string{"P1"})
	assert.Contains(t, report, "P1 | Half pallet | 2.5")
}
