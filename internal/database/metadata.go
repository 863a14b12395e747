package database

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlainMetadata turns the primitive.D, primitive.M and primitive.A values the
// driver decodes nested documents into back into plain maps and slices, so a
// stored metadata map reads back the way it was written.
func PlainMetadata(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return nil
	}
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = plainValue(v)
	}
	return out
}

func plainValue(v interface{}) interface{} {
	switch val := v.(type) {
	case primitive.D:
		m := make(map[string]interface{}, len(val))
		for _, e := range val {
			m[e.Key] = plainValue(e.Value)
		}
		return m
	case primitive.M:
		return PlainMetadata(map[string]interface{}(val))
	case map[string]interface{}:
		return PlainMetadata(val)
	case primitive.A:
		s := make([]interface{}, len(val))
		for i, item := range val {
			s[i] = plainValue(item)
		}
		return s
	case []interface{}:
		s := make([]interface{}, len(val))
		for i, item := range val {
			s[i] = plainValue(item)
		}
		return s
	default:
		return v
	}
}
