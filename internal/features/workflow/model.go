package workflow

import (
	common_models "go-legal/internal/common/models"
)

// StateTransition is a single legal move out of a phase.
type StateTransition struct {
	From           common_models.Phase           `json:"from" bson:"from"`
	To             common_models.Phase           `json:"to" bson:"to"`
	Label          string                        `json:"label,omitempty" bson:"label,omitempty"`
	AllowedRoles   []common_models.Role          `json:"allowed_roles" bson:"allowed_roles"`
	RequiredFields []string                      `json:"required_fields,omitempty" bson:"required_fields,omitempty"`
	Conditions     []common_models.RuleCondition `json:"conditions,omitempty" bson:"conditions,omitempty"`
}

func (t StateTransition) allows(role common_models.Role) bool {
	for _, r := range t.AllowedRoles {
		if r == role {
			return true
		}
	}
	return false
}

// RuleSet holds the base table and the per-case-type overlays. Overlays are
// merged additively with the base at lookup time.
type RuleSet struct {
	Base     map[common_models.Phase][]StateTransition
	Overlays map[common_models.CaseType]map[common_models.Phase][]StateTransition
}

// Decision is the outcome of a structural transition check.
type Decision struct {
	Allowed bool     `json:"allowed"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// ValidationResult is returned by the phase and case type validators.
type ValidationResult struct {
	IsValid         bool     `json:"is_valid"`
	Errors          []string `json:"errors,omitempty"`
	Warnings        []string `json:"warnings,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
}

func NewValidationResult() ValidationResult {
	return ValidationResult{IsValid: true}
}

func (r *ValidationResult) AddError(msg string) {
	r.IsValid = false
	r.Errors = append(r.Errors, msg)
}

func (r *ValidationResult) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

func (r *ValidationResult) AddRecommendation(msg string) {
	r.Recommendations = append(r.Recommendations, msg)
}

// Merge folds other into r.
func (r *ValidationResult) Merge(other ValidationResult) {
	if !other.IsValid {
		r.IsValid = false
	}
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.Recommendations = append(r.Recommendations, other.Recommendations...)
}
