package transition

import (
	"slices"

	common_models "go-legal/internal/common/models"
)

// ApprovalPolicy decides which transitions must be approved before they run.
// Exempt lists, per case type and target phase, the roles that may skip
// approval. A pair missing from Exempt never needs approval.
type ApprovalPolicy struct {
	Exempt    map[common_models.CaseType]map[common_models.Phase][]common_models.Role
	Approvers []common_models.Role
}

// DefaultApprovalPolicy gates entry to proceedings for criminal defense and
// medical malpractice, settlement of personal injury cases, and every
// closure. Only admins are exempt, and only admins approve.
func DefaultApprovalPolicy() ApprovalPolicy {
	adminOnly := []common_models.Role{common_models.RoleAdmin}

	exempt := make(map[common_models.CaseType]map[common_models.Phase][]common_models.Role, len(common_models.CaseTypes))
	for _, ct := range common_models.CaseTypes {
		exempt[ct] = map[common_models.Phase][]common_models.Role{
			common_models.PhaseClosure: adminOnly,
		}
	}
	exempt[common_models.CaseTypeCriminalDefense][common_models.PhaseProceedings] = adminOnly
	exempt[common_models.CaseTypeMedicalMalpractice][common_models.PhaseProceedings] = adminOnly
	exempt[common_models.CaseTypePersonalInjury][common_models.PhaseResolution] = adminOnly

	return ApprovalPolicy{
		Exempt:    exempt,
		Approvers: adminOnly,
	}
}

func (p ApprovalPolicy) RequiresApproval(caseType common_models.CaseType, target common_models.Phase, role common_models.Role) bool {
	exempt, gated := p.Exempt[caseType][target]
	if !gated {
		return false
	}
	return !slices.Contains(exempt, role)
}

func (p ApprovalPolicy) IsApprover(role common_models.Role) bool {
	return slices.Contains(p.Approvers, role)
}
