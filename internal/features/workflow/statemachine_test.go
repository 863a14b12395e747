package workflow

import (
	"testing"

	common_models "go-legal/internal/common/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMachine(t *testing.T) *StateMachine {
	t.Helper()
	sm, err := NewDefaultStateMachine()
	require.NoError(t, err)
	return sm
}

func intakeState(caseType common_models.CaseType) common_models.CaseState {
	return common_models.CaseState{
		Phase:    common_models.PhaseIntake,
		Status:   common_models.CaseStatusOpen,
		CaseType: caseType,
	}
}

func validIntakeMetadata() map[string]interface{} {
	return map[string]interface{}{
		"riskAssessmentCompleted": true,
		"clientInformation":       "x",
		"caseDescription":         "y",
		"initialEvidence":         "z",
	}
}

func TestCanTransitionAcceptsCompleteIntake(t *testing.T) {
	sm := newMachine(t)

	d := sm.CanTransition(intakeState(common_models.CaseTypeContractDispute), common_models.PhasePreparation, common_models.RoleAttorney, validIntakeMetadata())

	assert.True(t, d.Allowed)
	assert.Empty(t, d.Errors)
}

func TestCanTransitionReportsMissingFields(t *testing.T) {
	sm := newMachine(t)
	metadata := validIntakeMetadata()
	delete(metadata, "clientInformation")

	d := sm.CanTransition(intakeState(common_models.CaseTypeContractDispute), common_models.PhasePreparation, common_models.RoleAttorney, metadata)

	assert.False(t, d.Allowed)
	require.Len(t, d.Errors, 1)
	assert.Contains(t, d.Errors[0], "Missing required fields")
	assert.Contains(t, d.Errors[0], "clientInformation")
}

func TestCanTransitionChecksRoleBeforeFields(t *testing.T) {
	sm := newMachine(t)

	d := sm.CanTransition(intakeState(common_models.CaseTypeContractDispute), common_models.PhasePreparation, common_models.RoleAssistant, map[string]interface{}{})

	assert.False(t, d.Allowed)
	require.Len(t, d.Errors, 1)
	assert.Contains(t, d.Errors[0], "Insufficient permissions")
}

func TestCanTransitionRejectsUnknownPhaseAndTarget(t *testing.T) {
	sm := newMachine(t)

	d := sm.CanTransition(common_models.CaseState{Phase: "appeal", CaseType: common_models.CaseTypeContractDispute}, common_models.PhasePreparation, common_models.RoleAdmin, nil)
	assert.False(t, d.Allowed)
	assert.Contains(t, d.Message, "Invalid current phase")

	d = sm.CanTransition(intakeState(common_models.CaseTypeContractDispute), common_models.PhaseProceedings, common_models.RoleAdmin, validIntakeMetadata())
	assert.False(t, d.Allowed)
	assert.Contains(t, d.Message, "Invalid transition from")
}

func TestCanTransitionCollectsAllConditionFailures(t *testing.T) {
	rules := DefaultRules()
	rules.Base[common_models.PhaseProceedings] = []StateTransition{{
		From:         common_models.PhaseProceedings,
		To:           common_models.PhaseResolution,
		AllowedRoles: counsel,
		Conditions:   []common_models.RuleCondition{equals("a", 1), exists("b"), equals("c", "yes")},
	}}
	sm, err := NewStateMachine(rules)
	require.NoError(t, err)

	d := sm.CanTransition(common_models.CaseState{Phase: common_models.PhaseProceedings, CaseType: common_models.CaseTypeContractDispute},
		common_models.PhaseResolution, common_models.RoleAdmin, map[string]interface{}{"a": 1})

	assert.False(t, d.Allowed)
	assert.Len(t, d.Errors, 2)
}

func TestCanTransitionUsesOverlay(t *testing.T) {
	sm := newMachine(t)
	state := common_models.CaseState{Phase: common_models.PhasePreparation, CaseType: common_models.CaseTypeCriminalDefense}

	d := sm.CanTransition(state, common_models.PhaseResolution, common_models.RoleAttorney, map[string]interface{}{"pleaAgreement": "doc", "pleaAccepted": true})
	assert.True(t, d.Allowed, d.Errors)

	state.CaseType = common_models.CaseTypeMedicalMalpractice
	d = sm.CanTransition(state, common_models.PhaseResolution, common_models.RoleAttorney, map[string]interface{}{"pleaAgreement": "doc", "pleaAccepted": true})
	assert.False(t, d.Allowed)
}

// satisfyingMetadata builds metadata meeting every field and condition of t.
func satisfyingMetadata(tr StateTransition) map[string]interface{} {
	m := make(map[string]interface{})
	for _, f := range tr.RequiredFields {
		m[f] = "present"
	}
	for _, c := range tr.Conditions {
		switch c.Operator {
		case "equals":
			m[c.Field] = c.Value
		case "exists":
			m[c.Field] = "present"
		}
	}
	return m
}

func findTransition(rules RuleSet, from, to common_models.Phase, caseType common_models.CaseType) (StateTransition, bool) {
	candidates := append([]StateTransition{}, rules.Base[from]...)
	candidates = append(candidates, rules.Overlays[caseType][from]...)
	for _, tr := range candidates {
		if tr.To == to {
			return tr, true
		}
	}
	return StateTransition{}, false
}

func TestCanTransitionLegalityMatchesRuleTables(t *testing.T) {
	sm := newMachine(t)
	rules := DefaultRules()

	for _, from := range common_models.Phases {
		for _, caseType := range common_models.CaseTypes {
			for _, role := range common_models.Roles {
				for _, to := range common_models.Phases {
					state := common_models.CaseState{Phase: from, CaseType: caseType}
					tr, exists := findTransition(rules, from, to, caseType)

					full := sm.CanTransition(state, to, role, satisfyingMetadata(tr))
					assert.Equal(t, exists && tr.allows(role), full.Allowed, "%s %s %s -> %s", caseType, role, from, to)

					empty := sm.CanTransition(state, to, role, map[string]interface{}{})
					wantEmpty := exists && tr.allows(role) && len(tr.RequiredFields) == 0 && len(tr.Conditions) == 0
					assert.Equal(t, wantEmpty, empty.Allowed, "empty metadata %s %s %s -> %s", caseType, role, from, to)
				}
			}
		}
	}
}

func TestTerminalPhaseHasNoAvailableTransitions(t *testing.T) {
	sm := newMachine(t)
	for _, caseType := range common_models.CaseTypes {
		for _, role := range common_models.Roles {
			state := common_models.CaseState{Phase: common_models.PhaseClosure, CaseType: caseType}
			assert.Empty(t, sm.AvailableTransitions(state, role), "%s/%s", caseType, role)
		}
	}
}

func TestAvailableTransitionsFiltersByRole(t *testing.T) {
	sm := newMachine(t)
	state := intakeState(common_models.CaseTypeCriminalDefense)

	assert.ElementsMatch(t,
		[]common_models.Phase{common_models.PhasePreparation, common_models.PhaseClosure},
		sm.AvailableTransitions(state, common_models.RoleAttorney))
	assert.Empty(t, sm.AvailableTransitions(state, common_models.RoleClient))
}

func TestPhaseRequirements(t *testing.T) {
	sm := newMachine(t)

	assert.Equal(t,
		[]string{"caseDescription", "clientInformation", "declineReason", "initialEvidence"},
		sm.PhaseRequirements(common_models.PhaseIntake, common_models.CaseTypeCriminalDefense))
	assert.Empty(t, sm.PhaseRequirements(common_models.PhaseClosure, common_models.CaseTypeCriminalDefense))
}

func TestNewStateMachineRejectsBadRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *RuleSet)
		errMsg string
	}{
		{
			name: "duplicate target between base and overlay",
			mutate: func(r *RuleSet) {
				r.Overlays[common_models.CaseTypeDivorceFamily][common_models.PhaseIntake] = append(
					r.Overlays[common_models.CaseTypeDivorceFamily][common_models.PhaseIntake],
					StateTransition{From: common_models.PhaseIntake, To: common_models.PhasePreparation, AllowedRoles: counsel})
			},
			errMsg: "duplicate transition",
		},
		{
			name: "overlay out of terminal phase",
			mutate: func(r *RuleSet) {
				r.Overlays[common_models.CaseTypeCriminalDefense][common_models.PhaseClosure] = []StateTransition{
					{From: common_models.PhaseClosure, To: common_models.PhaseIntake, AllowedRoles: counsel},
				}
			},
			errMsg: "terminal phase",
		},
		{
			name:   "missing base phase",
			mutate: func(r *RuleSet) { delete(r.Base, common_models.PhaseResolution) },
			errMsg: "no entry for phase",
		},
		{
			name: "mismatched from",
			mutate: func(r *RuleSet) {
				r.Base[common_models.PhaseIntake][0].From = common_models.PhaseProceedings
			},
			errMsg: "declares from",
		},
		{
			name: "unknown case type",
			mutate: func(r *RuleSet) {
				r.Overlays["tax"] = map[common_models.Phase][]StateTransition{}
			},
			errMsg: "unknown overlay case type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := DefaultRules()
			tt.mutate(&rules)
			_, err := NewStateMachine(rules)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
