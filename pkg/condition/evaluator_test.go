package condition

import (
	"testing"

	"go-legal/internal/common/models"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	metadata := map[string]interface{}{
		"riskAssessmentCompleted": true,
		"priority":                float64(3),
		"tags":                    []interface{}{"urgent", "pro_bono"},
		"witnesses":               []string{"alice", "bob"},
		"clientName":              "Jane Roe",
		"nullField":               nil,
	}

	tests := []struct {
		name string
		cond models.RuleCondition
		want bool
	}{
		{"equals bool", models.RuleCondition{Field: "riskAssessmentCompleted", Operator: "equals", Value: true}, true},
		{"equals wrong type", models.RuleCondition{Field: "riskAssessmentCompleted", Operator: "equals", Value: "true"}, false},
		{"equals int against float", models.RuleCondition{Field: "priority", Operator: "equals", Value: 3}, true},
		{"equals missing field", models.RuleCondition{Field: "missing", Operator: "equals", Value: true}, false},
		{"not_equals different", models.RuleCondition{Field: "clientName", Operator: "not_equals", Value: "John"}, true},
		{"not_equals same", models.RuleCondition{Field: "clientName", Operator: "not_equals", Value: "Jane Roe"}, false},
		{"not_equals missing field", models.RuleCondition{Field: "missing", Operator: "not_equals", Value: "x"}, true},
		{"contains any slice", models.RuleCondition{Field: "tags", Operator: "contains", Value: "urgent"}, true},
		{"contains typed slice", models.RuleCondition{Field: "witnesses", Operator: "contains", Value: "bob"}, true},
		{"contains absent element", models.RuleCondition{Field: "tags", Operator: "contains", Value: "criminal"}, false},
		{"contains on string is false", models.RuleCondition{Field: "clientName", Operator: "contains", Value: "Jane"}, false},
		{"contains missing field", models.RuleCondition{Field: "missing", Operator: "contains", Value: "x"}, false},
		{"exists present", models.RuleCondition{Field: "clientName", Operator: "exists"}, true},
		{"exists nil", models.RuleCondition{Field: "nullField", Operator: "exists"}, false},
		{"exists missing", models.RuleCondition{Field: "missing", Operator: "exists"}, false},
		{"not_exists missing", models.RuleCondition{Field: "missing", Operator: "not_exists"}, true},
		{"not_exists nil", models.RuleCondition{Field: "nullField", Operator: "not_exists"}, true},
		{"not_exists present", models.RuleCondition{Field: "clientName", Operator: "not_exists"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.cond, metadata))
		})
	}
}

func TestEvaluateUnknownOperatorFailsClosed(t *testing.T) {
	metadata := map[string]interface{}{"a": 1, "b": nil}
	for _, op := range []string{"", "gt", "EQUALS", "in", "regex"} {
		for _, field := range []string{"a", "b", "missing"} {
			for _, value := range []interface{}{nil, 1, "x", true} {
				cond := models.RuleCondition{Field: field, Operator: op, Value: value}
				assert.False(t, Evaluate(cond, metadata), "operator %q field %q value %v", op, field, value)
			}
		}
	}
}

func TestFailingCollectsEveryViolation(t *testing.T) {
	conds := []models.RuleCondition{
		{Field: "a", Operator: "equals", Value: 1},
		{Field: "b", Operator: "exists"},
		{Field: "c", Operator: "exists"},
	}
	failed := Failing(conds, map[string]interface{}{"a": 1})
	assert.Len(t, failed, 2)
	assert.Equal(t, "b", failed[0].Field)
	assert.Equal(t, "c", failed[1].Field)
}
