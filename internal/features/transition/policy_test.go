package transition

import (
	"testing"

	common_models "go-legal/internal/common/models"

	"github.com/stretchr/testify/assert"
)

func TestDefaultApprovalPolicy(t *testing.T) {
	p := DefaultApprovalPolicy()

	tests := []struct {
		name     string
		caseType common_models.CaseType
		target   common_models.Phase
		role     common_models.Role
		want     bool
	}{
		{"criminal proceedings by attorney", common_models.CaseTypeCriminalDefense, common_models.PhaseProceedings, common_models.RoleAttorney, true},
		{"criminal proceedings by admin", common_models.CaseTypeCriminalDefense, common_models.PhaseProceedings, common_models.RoleAdmin, false},
		{"medmal proceedings by attorney", common_models.CaseTypeMedicalMalpractice, common_models.PhaseProceedings, common_models.RoleAttorney, true},
		{"contract proceedings is ungated", common_models.CaseTypeContractDispute, common_models.PhaseProceedings, common_models.RoleParalegal, false},
		{"closure always gated", common_models.CaseTypeContractDispute, common_models.PhaseClosure, common_models.RoleAttorney, true},
		{"closure by admin", common_models.CaseTypeDivorceFamily, common_models.PhaseClosure, common_models.RoleAdmin, false},
		{"injury settlement by attorney", common_models.CaseTypePersonalInjury, common_models.PhaseResolution, common_models.RoleAttorney, true},
		{"family resolution is ungated", common_models.CaseTypeDivorceFamily, common_models.PhaseResolution, common_models.RoleAttorney, false},
		{"unknown case type is ungated", "tax", common_models.PhaseClosure, common_models.RoleAttorney, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.RequiresApproval(tt.caseType, tt.target, tt.role))
		})
	}

	assert.True(t, p.IsApprover(common_models.RoleAdmin))
	assert.False(t, p.IsApprover(common_models.RoleAttorney))
}
