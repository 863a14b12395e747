package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhaseOrdering(t *testing.T) {
	assert.Equal(t, 0, PhaseIntake.Index())
	assert.Equal(t, 4, PhaseClosure.Index())
	assert.Equal(t, -1, Phase("appeal").Index())

	assert.True(t, PhaseClosure.IsTerminal())
	for _, p := range Phases[:len(Phases)-1] {
		assert.False(t, p.IsTerminal(), p)
	}
}

func TestEnumValidation(t *testing.T) {
	assert.True(t, CaseTypeCriminalDefense.IsValid())
	assert.False(t, CaseType("tax").IsValid())
	assert.True(t, RoleParalegal.IsValid())
	assert.False(t, Role("judge").IsValid())
	assert.True(t, CaseStatusArchived.IsValid())
	assert.False(t, CaseStatus("").IsValid())
}

func TestApprovalStatusTerminal(t *testing.T) {
	assert.False(t, ApprovalStatusPending.IsTerminal())
	assert.True(t, ApprovalStatusApproved.IsTerminal())
	assert.True(t, ApprovalStatusRejected.IsTerminal())
}
