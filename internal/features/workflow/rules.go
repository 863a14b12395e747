package workflow

import (
	common_models "go-legal/internal/common/models"
	"go-legal/pkg/condition"
)

var counsel = []common_models.Role{common_models.RoleAdmin, common_models.RoleAttorney}

func equals(field string, value interface{}) common_models.RuleCondition {
	return common_models.RuleCondition{Field: field, Operator: condition.OperatorEquals, Value: value}
}

func exists(field string) common_models.RuleCondition {
	return common_models.RuleCondition{Field: field, Operator: condition.OperatorExists}
}

// DefaultRules returns the built-in transition tables.
func DefaultRules() RuleSet {
	return RuleSet{
		Base: map[common_models.Phase][]StateTransition{
			common_models.PhaseIntake: {
				{
					From:           common_models.PhaseIntake,
					To:             common_models.PhasePreparation,
					Label:          "Accept case",
					AllowedRoles:   counsel,
					RequiredFields: []string{"clientInformation", "caseDescription", "initialEvidence"},
					Conditions:     []common_models.RuleCondition{equals("riskAssessmentCompleted", true)},
				},
			},
			common_models.PhasePreparation: {
				{
					From:           common_models.PhasePreparation,
					To:             common_models.PhaseProceedings,
					Label:          "Commence proceedings",
					AllowedRoles:   counsel,
					RequiredFields: []string{"caseStrategy", "evidenceSummary"},
					Conditions:     []common_models.RuleCondition{equals("documentsFiled", true)},
				},
			},
			common_models.PhaseProceedings: {
				{
					From:           common_models.PhaseProceedings,
					To:             common_models.PhaseResolution,
					Label:          "Record outcome",
					AllowedRoles:   counsel,
					RequiredFields: []string{"proceedingOutcome"},
				},
			},
			common_models.PhaseResolution: {
				{
					From:           common_models.PhaseResolution,
					To:             common_models.PhaseClosure,
					Label:          "Close case",
					AllowedRoles:   counsel,
					RequiredFields: []string{"resolutionSummary"},
					Conditions:     []common_models.RuleCondition{equals("finalBillingCompleted", true)},
				},
			},
			common_models.PhaseClosure: {},
		},
		Overlays: map[common_models.CaseType]map[common_models.Phase][]StateTransition{
			common_models.CaseTypeContractDispute: {
				common_models.PhaseIntake: {
					{
						From:           common_models.PhaseIntake,
						To:             common_models.PhaseClosure,
						Label:          "Decline representation",
						AllowedRoles:   counsel,
						RequiredFields: []string{"closureReason"},
					},
				},
				common_models.PhasePreparation: {
					{
						From:           common_models.PhasePreparation,
						To:             common_models.PhaseResolution,
						Label:          "Settle before filing",
						AllowedRoles:   counsel,
						RequiredFields: []string{"settlementTerms"},
						Conditions:     []common_models.RuleCondition{equals("settlementReached", true)},
					},
				},
			},
			common_models.CaseTypeCriminalDefense: {
				common_models.PhaseIntake: {
					{
						From:           common_models.PhaseIntake,
						To:             common_models.PhaseClosure,
						Label:          "Decline representation",
						AllowedRoles:   counsel,
						RequiredFields: []string{"declineReason"},
					},
				},
				common_models.PhasePreparation: {
					{
						From:           common_models.PhasePreparation,
						To:             common_models.PhaseResolution,
						Label:          "Plea agreement",
						AllowedRoles:   counsel,
						RequiredFields: []string{"pleaAgreement"},
						Conditions:     []common_models.RuleCondition{equals("pleaAccepted", true)},
					},
					{
						From:         common_models.PhasePreparation,
						To:           common_models.PhaseClosure,
						Label:        "Charges dropped",
						AllowedRoles: counsel,
						Conditions:   []common_models.RuleCondition{equals("chargesDropped", true)},
					},
				},
				common_models.PhaseProceedings: {
					{
						From:           common_models.PhaseProceedings,
						To:             common_models.PhaseClosure,
						Label:          "Case dismissed",
						AllowedRoles:   counsel,
						RequiredFields: []string{"dismissalOrder"},
						Conditions:     []common_models.RuleCondition{equals("caseDismissed", true)},
					},
				},
			},
			common_models.CaseTypeDivorceFamily: {
				common_models.PhaseIntake: {
					{
						From:           common_models.PhaseIntake,
						To:             common_models.PhaseClosure,
						Label:          "Reconciliation",
						AllowedRoles:   counsel,
						RequiredFields: []string{"closureReason"},
					},
				},
				common_models.PhasePreparation: {
					{
						From:           common_models.PhasePreparation,
						To:             common_models.PhaseResolution,
						Label:          "Mediated settlement",
						AllowedRoles:   counsel,
						RequiredFields: []string{"settlementAgreement"},
						Conditions:     []common_models.RuleCondition{equals("mediationSuccessful", true)},
					},
				},
			},
			common_models.CaseTypeMedicalMalpractice: {
				common_models.PhaseIntake: {
					{
						From:           common_models.PhaseIntake,
						To:             common_models.PhaseClosure,
						Label:          "No merit",
						AllowedRoles:   counsel,
						RequiredFields: []string{"expertOpinion"},
						Conditions:     []common_models.RuleCondition{equals("meritReviewOutcome", "no_merit")},
					},
				},
			},
			common_models.CaseTypePersonalInjury: {
				common_models.PhaseIntake: {
					{
						From:           common_models.PhaseIntake,
						To:             common_models.PhaseClosure,
						Label:          "Decline representation",
						AllowedRoles:   counsel,
						RequiredFields: []string{"closureReason"},
					},
				},
				common_models.PhasePreparation: {
					{
						From:           common_models.PhasePreparation,
						To:             common_models.PhaseResolution,
						Label:          "Pre-litigation settlement",
						AllowedRoles:   counsel,
						RequiredFields: []string{"settlementAmount"},
						Conditions:     []common_models.RuleCondition{exists("settlementOffer")},
					},
				},
			},
		},
	}
}
