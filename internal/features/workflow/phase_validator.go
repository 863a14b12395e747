package workflow

import (
	"fmt"
	"time"

	common_models "go-legal/internal/common/models"
	"go-legal/pkg/condition"
)

// allowedStatuses lists the statuses a case may hold in each phase.
var allowedStatuses = map[common_models.Phase][]common_models.CaseStatus{
	common_models.PhaseIntake: {
		common_models.CaseStatusOpen,
		common_models.CaseStatusInProgress,
		common_models.CaseStatusOnHold,
		common_models.CaseStatusDismissed,
	},
	common_models.PhasePreparation: {
		common_models.CaseStatusInProgress,
		common_models.CaseStatusOnHold,
		common_models.CaseStatusSettled,
		common_models.CaseStatusDismissed,
	},
	common_models.PhaseProceedings: {
		common_models.CaseStatusInProgress,
		common_models.CaseStatusOnHold,
		common_models.CaseStatusSettled,
		common_models.CaseStatusDismissed,
	},
	common_models.PhaseResolution: {
		common_models.CaseStatusInProgress,
		common_models.CaseStatusOnHold,
		common_models.CaseStatusSettled,
		common_models.CaseStatusDismissed,
		common_models.CaseStatusClosed,
	},
	common_models.PhaseClosure: {
		common_models.CaseStatusClosed,
		common_models.CaseStatusArchived,
	},
}

// PhaseValidator checks phase-level domain rules that do not fit the
// field/condition shape of the rule tables.
type PhaseValidator struct{}

func NewPhaseValidator() *PhaseValidator {
	return &PhaseValidator{}
}

func (v *PhaseValidator) ValidatePhaseTransition(state common_models.CaseState, target common_models.Phase, metadata map[string]interface{}) ValidationResult {
	result := NewValidationResult()

	switch target {
	case common_models.PhaseIntake:
		// no entry rules
	case common_models.PhasePreparation:
		if metadata["riskLevel"] == "high" {
			if _, ok := metadata["supervisingAttorney"]; !ok {
				result.AddError("High risk cases require a supervisingAttorney before preparation begins")
			}
		}
		if metadata["conflictCheckCompleted"] != true {
			result.AddWarning("Conflict of interest check has not been recorded")
		}
	case common_models.PhaseProceedings:
		courtDate, hasCourt := parseDate(metadata["courtDate"])
		filingDate, hasFiling := parseDate(metadata["filingDate"])
		if hasCourt && hasFiling && courtDate.Before(filingDate) {
			result.AddError("courtDate cannot be earlier than filingDate")
		}
		if !hasCourt {
			result.AddWarning("No court date has been scheduled")
		}
	case common_models.PhaseResolution:
		if metadata["proceedingOutcome"] == "appeal" {
			result.AddRecommendation("Track the appeal filing deadline")
		}
	case common_models.PhaseClosure:
		if balance, ok := condition.ToNumber(metadata["outstandingBalance"]); ok && balance > 0 && metadata["balanceWaived"] != true {
			result.AddError(fmt.Sprintf("Outstanding balance of %.2f must be settled or waived before closure", balance))
		}
		result.AddRecommendation("Send the client feedback survey")
	}

	return result
}

// ValidateStatusTransition checks that a case in phase may move from one
// status to another.
func (v *PhaseValidator) ValidateStatusTransition(phase common_models.Phase, from, to common_models.CaseStatus) ValidationResult {
	result := NewValidationResult()

	if !to.IsValid() {
		result.AddError(fmt.Sprintf("Unknown status %q", to))
		return result
	}
	if from == to {
		result.AddError(fmt.Sprintf("Case is already %s", to))
		return result
	}
	switch from {
	case common_models.CaseStatusArchived:
		result.AddError("Archived cases cannot change status")
		return result
	case common_models.CaseStatusClosed:
		if to != common_models.CaseStatusArchived {
			result.AddError("Closed cases can only be archived")
			return result
		}
	}

	allowed := false
	for _, s := range allowedStatuses[phase] {
		if s == to {
			allowed = true
			break
		}
	}
	if !allowed {
		result.AddError(fmt.Sprintf("Status %s is not allowed in phase %s", to, phase))
	}
	if to == common_models.CaseStatusOnHold {
		result.AddWarning("Deadlines keep running while a case is on hold")
	}
	return result
}

func parseDate(v interface{}) (time.Time, bool) {
	switch d := v.(type) {
	case time.Time:
		return d, true
	case string:
		if t, err := time.Parse(time.RFC3339, d); err == nil {
			return t, true
		}
		if t, err := time.Parse("2006-01-02", d); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
