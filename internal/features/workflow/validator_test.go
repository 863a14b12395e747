package workflow

import (
	"testing"

	common_models "go-legal/internal/common/models"

	"github.com/stretchr/testify/assert"
)

func TestPhaseValidatorTransitionRules(t *testing.T) {
	v := NewPhaseValidator()
	state := common_models.CaseState{Phase: common_models.PhasePreparation, CaseType: common_models.CaseTypeContractDispute}

	tests := []struct {
		name      string
		target    common_models.Phase
		metadata  map[string]interface{}
		wantValid bool
		wantWarn  bool
		wantRec   bool
	}{
		{
			name:      "high risk without supervisor",
			target:    common_models.PhasePreparation,
			metadata:  map[string]interface{}{"riskLevel": "high", "conflictCheckCompleted": true},
			wantValid: false,
		},
		{
			name:      "high risk with supervisor warns on missing conflict check",
			target:    common_models.PhasePreparation,
			metadata:  map[string]interface{}{"riskLevel": "high", "supervisingAttorney": "u1"},
			wantValid: true,
			wantWarn:  true,
		},
		{
			name:      "court date before filing date",
			target:    common_models.PhaseProceedings,
			metadata:  map[string]interface{}{"courtDate": "2026-01-01", "filingDate": "2026-02-01T00:00:00Z"},
			wantValid: false,
		},
		{
			name:      "missing court date only warns",
			target:    common_models.PhaseProceedings,
			metadata:  map[string]interface{}{},
			wantValid: true,
			wantWarn:  true,
		},
		{
			name:      "appeal outcome recommends deadline tracking",
			target:    common_models.PhaseResolution,
			metadata:  map[string]interface{}{"proceedingOutcome": "appeal"},
			wantValid: true,
			wantRec:   true,
		},
		{
			name:      "outstanding balance blocks closure",
			target:    common_models.PhaseClosure,
			metadata:  map[string]interface{}{"outstandingBalance": 1200.5},
			wantValid: false,
			wantRec:   true,
		},
		{
			name:      "waived balance allows closure",
			target:    common_models.PhaseClosure,
			metadata:  map[string]interface{}{"outstandingBalance": 1200, "balanceWaived": true},
			wantValid: true,
			wantRec:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := v.ValidatePhaseTransition(state, tt.target, tt.metadata)
			assert.Equal(t, tt.wantValid, res.IsValid, res.Errors)
			assert.Equal(t, tt.wantWarn, len(res.Warnings) > 0, res.Warnings)
			assert.Equal(t, tt.wantRec, len(res.Recommendations) > 0, res.Recommendations)
		})
	}
}

func TestPhaseValidatorStatusTransitions(t *testing.T) {
	v := NewPhaseValidator()

	tests := []struct {
		name  string
		phase common_models.Phase
		from  common_models.CaseStatus
		to    common_models.CaseStatus
		valid bool
	}{
		{"open to in progress at intake", common_models.PhaseIntake, common_models.CaseStatusOpen, common_models.CaseStatusInProgress, true},
		{"settled not allowed at intake", common_models.PhaseIntake, common_models.CaseStatusOpen, common_models.CaseStatusSettled, false},
		{"same status", common_models.PhasePreparation, common_models.CaseStatusOnHold, common_models.CaseStatusOnHold, false},
		{"closed to archived", common_models.PhaseClosure, common_models.CaseStatusClosed, common_models.CaseStatusArchived, true},
		{"closed reopened", common_models.PhaseResolution, common_models.CaseStatusClosed, common_models.CaseStatusInProgress, false},
		{"archived is terminal", common_models.PhaseClosure, common_models.CaseStatusArchived, common_models.CaseStatusClosed, false},
		{"unknown status", common_models.PhaseIntake, common_models.CaseStatusOpen, "frozen", false},
		{"in progress not allowed at closure", common_models.PhaseClosure, common_models.CaseStatusClosed, common_models.CaseStatusInProgress, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := v.ValidateStatusTransition(tt.phase, tt.from, tt.to)
			assert.Equal(t, tt.valid, res.IsValid, res.Errors)
		})
	}
}

func TestCaseTypeValidator(t *testing.T) {
	v := NewCaseTypeValidator()

	medmal := common_models.CaseState{Phase: common_models.PhaseIntake, CaseType: common_models.CaseTypeMedicalMalpractice}
	res := v.Validate(medmal, common_models.PhasePreparation, map[string]interface{}{"medicalRecordsReviewed": true})
	assert.False(t, res.IsValid)
	assert.Len(t, res.Errors, 1)

	res = v.Validate(medmal, common_models.PhasePreparation, map[string]interface{}{
		"medicalRecordsReviewed":      true,
		"expertConsultationCompleted": true,
	})
	assert.True(t, res.IsValid)

	criminal := common_models.CaseState{Phase: common_models.PhasePreparation, CaseType: common_models.CaseTypeCriminalDefense}
	res = v.Validate(criminal, common_models.PhaseProceedings, map[string]interface{}{"arraignmentCompleted": true})
	assert.True(t, res.IsValid)
	assert.NotEmpty(t, res.Recommendations)

	res = v.Validate(criminal, common_models.PhaseProceedings, map[string]interface{}{})
	assert.False(t, res.IsValid)

	family := common_models.CaseState{Phase: common_models.PhasePreparation, CaseType: common_models.CaseTypeDivorceFamily}
	res = v.Validate(family, common_models.PhaseProceedings, map[string]interface{}{"childrenInvolved": true})
	assert.False(t, res.IsValid)

	injury := common_models.CaseState{Phase: common_models.PhasePreparation, CaseType: common_models.CaseTypePersonalInjury}
	res = v.Validate(injury, common_models.PhaseResolution, map[string]interface{}{"settlementAmount": 250000})
	assert.True(t, res.IsValid, "court approval is advisory only")
	assert.Len(t, res.Recommendations, 1)
	assert.Contains(t, res.Recommendations[0], "court approval")

	contract := common_models.CaseState{Phase: common_models.PhasePreparation, CaseType: common_models.CaseTypeContractDispute}
	res = v.Validate(contract, common_models.PhaseProceedings, map[string]interface{}{})
	assert.True(t, res.IsValid)
	assert.NotEmpty(t, res.Warnings)
}

func TestValidationResultMerge(t *testing.T) {
	a := NewValidationResult()
	a.AddWarning("w1")
	b := NewValidationResult()
	b.AddError("e1")
	b.AddRecommendation("r1")

	a.Merge(b)

	assert.False(t, a.IsValid)
	assert.Equal(t, []string{"e1"}, a.Errors)
	assert.Equal(t, []string{"w1"}, a.Warnings)
	assert.Equal(t, []string{"r1"}, a.Recommendations)
}
