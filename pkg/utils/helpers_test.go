package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-order-pipeline/pkg/utils"
)

func TestNumeric(t *testing.T) {
	cases := []struct {
		name  string
		input interface{}
		want  float64
		ok    bool
	}{
		{"json number", float64(3), 3, true},
		{"int", 7, 7, true},
		{"numeric string", "42", 42, true},
		{"float string", " 2.5 ", 2.5, true},
		{"zero", "0", 0, true},
		{"negative", "-1", -1, true},
		{"empty string", "", 0, false},
		{"blank string", "   ", 0, false},
		{"word", "abc", 0, false},
		{"bool", true, 0, false},
		{"nil", nil, 0, false},
		{"list", []interface{}{1}, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := utils.Numeric(tc.input)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestOrderValue(t *testing.T) {
	if v, ok := utils.OrderValue("12"); assert.True(t, ok) {
		assert.Equal(t, 12, v)
	}
	if v, ok := utils.OrderValue(float64(4)); assert.True(t, ok) {
		assert.Equal(t, 4, v)
	}
	_, ok := utils.OrderValue("")
	assert.False(t, ok)
	_, ok = utils.OrderValue(nil)
	assert.False(t, ok)
	_, ok = utils.OrderValue("abc")
	assert.False(t, ok)
}

func TestParseValue(t *testing.T) {
	assert.Equal(t, 5, utils.ParseValue(" 5 "))
	assert.Equal(t, 2.5, utils.ParseValue("2.5"))
	assert.Equal(t, "hello", utils.ParseValue("hello"))
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "8", utils.Stringify(float64(8)))
	assert.Equal(t, "2.5", utils.Stringify(2.5))
	assert.Equal(t, "text", utils.Stringify("text"))
	assert.Equal(t, "", utils.Stringify(nil))
}
