// Package condition evaluates transition guard conditions against request metadata.
package condition

import (
	"reflect"

	"go-legal/internal/common/models"
)

const (
	OperatorEquals    = "equals"
	OperatorNotEquals = "not_equals"
	OperatorContains  = "contains"
	OperatorExists    = "exists"
	OperatorNotExists = "not_exists"
)

// Evaluate reports whether cond holds for metadata. Unknown operators never hold.
func Evaluate(cond models.RuleCondition, metadata map[string]interface{}) bool {
	val, present := metadata[cond.Field]

	switch cond.Operator {
	case OperatorEquals:
		return present && Equal(val, cond.Value)
	case OperatorNotEquals:
		return !present || !Equal(val, cond.Value)
	case OperatorContains:
		if !present {
			return false
		}
		return sequenceContains(val, cond.Value)
	case OperatorExists:
		return present && val != nil
	case OperatorNotExists:
		return !present || val == nil
	default:
		return false
	}
}

// Failing returns every condition in conds that does not hold, in declaration order.
func Failing(conds []models.RuleCondition, metadata map[string]interface{}) []models.RuleCondition {
	var failed []models.RuleCondition
	for _, cond := range conds {
		if !Evaluate(cond, metadata) {
			failed = append(failed, cond)
		}
	}
	return failed
}

// Equal compares two metadata values. Numbers of any Go kind compare by value,
// everything else by deep equality.
func Equal(a, b interface{}) bool {
	if fa, ok := ToNumber(a); ok {
		if fb, ok := ToNumber(b); ok {
			return fa == fb
		}
		return false
	}
	return reflect.DeepEqual(a, b)
}

func sequenceContains(seq interface{}, needle interface{}) bool {
	if seq == nil {
		return false
	}
	rv := reflect.ValueOf(seq)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return false
	}
	for i := 0; i < rv.Len(); i++ {
		if Equal(rv.Index(i).Interface(), needle) {
			return true
		}
	}
	return false
}

// ToNumber converts any Go numeric value to float64.
func ToNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
