package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-order-pipeline/internal/model"
	"go-order-pipeline/internal/pipeline"
)

func TestExtractAnswersMissingContent(t *testing.T) {
	fields := pipeline.ExtractAnswers(model.Submission{})
	assert.Empty(t, fields)
}

func TestExtractAnswersEmptyContentList(t *testing.T) {
	sub := model.Submission{Content: []interface{}{}}
	assert.Empty(t, pipeline.ExtractAnswers(sub))
}

func TestExtractAnswersContentObject(t *testing.T) {
	sub := model.Submission{Content: map[string]interface{}{
		"answers": map[string]interface{}{
			"3": map[string]interface{}{
				"type":   "control_email",
				"text":   "E-mail",
				"order":  "1",
				"answer": "buyer@example.com",
			},
		},
	}}

	fields := pipeline.ExtractAnswers(sub)
	require.Len(t, fields, 1)
	assert.Equal(t, "3", fields[0].ID)
	assert.Equal(t, model.TypeEmail, fields[0].Type)
	assert.Equal(t, 1, fields[0].Order)
	assert.True(t, fields[0].HasAnswer)
	assert.Equal(t, "buyer@example.com", fields[0].Answer)
}

func TestExtractAnswersContentList(t *testing.T) {
	sub := model.Submission{Content: []interface{}{
		map[string]interface{}{
			"answers": map[string]interface{}{
				"5": map[string]interface{}{"type": "control_dropdown", "answer": "Ann"},
			},
		},
		map[string]interface{}{
			"answers": map[string]interface{}{
				"9": map[string]interface{}{"type": "control_dropdown", "answer": "ignored"},
			},
		},
	}}

	fields := pipeline.ExtractAnswers(sub)
	require.Len(t, fields, 1)
	assert.Equal(t, "5", fields[0].ID)
}

func TestExtractAnswersMalformedShapesDegrade(t *testing.T) {
	cases := map[string]interface{}{
		"content is a string":     "nope",
		"content list of scalars": []interface{}{"nope"},
		"answers not a map": map[string]interface{}{
			"answers": []interface{}{"nope"},
		},
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Empty(t, pipeline.ExtractAnswers(model.Submission{Content: content}))
		})
	}
}

func TestExtractAnswersOrdering(t *testing.T) {
	sub := model.Submission{Content: map[string]interface{}{
		"answers": map[string]interface{}{
			"10": map[string]interface{}{"order": "2", "answer": "b"},
			"9":  map[string]interface{}{"order": "2", "answer": "a"},
			"2":  map[string]interface{}{"order": "1", "answer": "first"},
			"7":  map[string]interface{}{"answer": "no order, sorts last"},
		},
	}}

	fields := pipeline.ExtractAnswers(sub)
	require.Len(t, fields, 4)

	ids := []string{fields[0].ID, fields[1].ID, fields[2].ID, fields[3].ID}
	// order asc, numeric id tiebreak ("9" before "10"), absent order last
	assert.Equal(t, []string{"2", "9", "10", "7"}, ids)
}

func TestExtractAnswersSkipsNonObjectEntries(t *testing.T) {
	sub := model.Submission{Content: map[string]interface{}{
		"answers": map[string]interface{}{
			"1": "not an object",
			"2": map[string]interface{}{"answer": "kept"},
		},
	}}

	fields := pipeline.ExtractAnswers(sub)
	require.Len(t, fields, 1)
	assert.Equal(t, "2", fields[0].ID)
}
