package workflow

import (
	"fmt"

	common_models "go-legal/internal/common/models"
	"go-legal/pkg/condition"
)

// CourtApprovalThreshold is the settlement amount above which court approval
// is recommended.
const CourtApprovalThreshold = 100000.0

// CaseTypeValidator checks requirements specific to a case type.
type CaseTypeValidator struct {
	courtApprovalThreshold float64
}

func NewCaseTypeValidator() *CaseTypeValidator {
	return &CaseTypeValidator{courtApprovalThreshold: CourtApprovalThreshold}
}

func (v *CaseTypeValidator) Validate(state common_models.CaseState, target common_models.Phase, metadata map[string]interface{}) ValidationResult {
	result := NewValidationResult()

	switch state.CaseType {
	case common_models.CaseTypeMedicalMalpractice:
		if target == common_models.PhasePreparation {
			if metadata["medicalRecordsReviewed"] != true {
				result.AddError("Medical records must be reviewed before preparation")
			}
			if metadata["expertConsultationCompleted"] != true {
				result.AddError("Expert consultation must be completed before preparation")
			}
		}
		if target == common_models.PhaseProceedings {
			if _, ok := metadata["certificateOfMerit"]; !ok {
				result.AddWarning("Many jurisdictions require a certificate of merit before filing")
			}
		}
		v.checkSettlement(&result, metadata)
	case common_models.CaseTypeCriminalDefense:
		if target == common_models.PhaseProceedings {
			if metadata["arraignmentCompleted"] != true {
				result.AddError("Arraignment must be completed before formal proceedings")
			}
			result.AddRecommendation("Review prosecution discovery before the first hearing")
		}
	case common_models.CaseTypeDivorceFamily:
		if target == common_models.PhaseProceedings {
			if metadata["childrenInvolved"] == true {
				if _, ok := metadata["custodyProposal"]; !ok {
					result.AddError("A custody proposal is required when children are involved")
				}
			}
			result.AddRecommendation("Consider mediation before litigation")
		}
	case common_models.CaseTypePersonalInjury:
		v.checkSettlement(&result, metadata)
	case common_models.CaseTypeContractDispute:
		if target == common_models.PhaseProceedings {
			if _, ok := metadata["contractCopy"]; !ok {
				result.AddWarning("No copy of the disputed contract is on file")
			}
		}
	}

	return result
}

func (v *CaseTypeValidator) checkSettlement(result *ValidationResult, metadata map[string]interface{}) {
	amount, ok := condition.ToNumber(metadata["settlementAmount"])
	if ok && amount > v.courtApprovalThreshold {
		result.AddRecommendation(fmt.Sprintf("Obtain court approval for settlement amounts over %.0f", v.courtApprovalThreshold))
	}
}
