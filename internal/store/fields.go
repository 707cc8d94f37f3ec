package store

import "encoding/json"

// Int64Field reads an integer field that may have round-tripped through
// JSON as a float64.
func Int64Field(data map[string]any, key string) int64 {
	switch v := data[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	case json.Number:
		n, _ := v.Int64()
		return n
	default:
		return 0
	}
}

// StringField reads a string field, returning "" when absent or mistyped.
func StringField(data map[string]any, key string) string {
	s, _ := data[key].(string)
	return s
}

// BoolField reads a bool field, returning false when absent or mistyped.
func BoolField(data map[string]any, key string) bool {
	b, _ := data[key].(bool)
	return b
}
