package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseValue converts a raw string into int, float or string, in that order
// of preference. Used when reading loosely typed config values.
func ParseValue(s string) interface{} {
	s = strings.TrimSpace(s)

	// try int
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	// try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// Numeric attempts to coerce an arbitrary decoded JSON value to float64.
// JSON numbers arrive as float64; strings are parsed after trimming.
// Everything else (bool, nil, lists, empty strings) fails the coercion.
func Numeric(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// OrderValue parses an "order" attribute that may arrive as a JSON number
// or a numeric string. Missing or unparseable orders report ok=false.
func OrderValue(v interface{}) (int, bool) {
	switch val := v.(type) {
	case float64:
		return int(val), true
	case int:
		return val, true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// Stringify renders a decoded JSON scalar the way it appeared on the wire:
// integral floats lose the trailing ".0" so quantities read naturally.
func Stringify(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", val)
	}
}
