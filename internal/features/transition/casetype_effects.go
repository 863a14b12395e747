package transition

import (
	"time"

	common_models "go-legal/internal/common/models"
	"go-legal/internal/features/appointment"
	"go-legal/internal/features/cases"
	"go-legal/internal/features/sideeffect"
	"go-legal/internal/features/task"
)

const appointmentLength = 2 * time.Hour

type effectKey struct {
	caseType common_models.CaseType
	phase    common_models.Phase
}

// caseTypeEffects builds the follow-on work for entering a phase on a given
// case type. Pairs without an entry have no extra effects.
var caseTypeEffects = map[effectKey]func(c *cases.Case, now time.Time) sideeffect.Effect{
	{common_models.CaseTypeCriminalDefense, common_models.PhaseProceedings}: func(c *cases.Case, now time.Time) sideeffect.Effect {
		return courtAppointment(c, now, appointment.KindCourtAppearance, "Court appearance", 7)
	},
	{common_models.CaseTypeDivorceFamily, common_models.PhasePreparation}: func(c *cases.Case, now time.Time) sideeffect.Effect {
		return courtAppointment(c, now, appointment.KindMediation, "Mediation session", 10)
	},
	{common_models.CaseTypeMedicalMalpractice, common_models.PhasePreparation}: func(c *cases.Case, now time.Time) sideeffect.Effect {
		return sideeffect.TaskEffect(source(c), task.NewTask{
			CaseID:      c.ID.Hex(),
			Title:       "Schedule expert consultation",
			Description: "Retain a medical expert to review the standard of care",
			AssigneeID:  c.AttorneyID,
			DueDate:     now.AddDate(0, 0, 14),
			Priority:    task.PriorityHigh,
		})
	},
	{common_models.CaseTypePersonalInjury, common_models.PhaseResolution}: func(c *cases.Case, now time.Time) sideeffect.Effect {
		return sideeffect.TaskEffect(source(c), task.NewTask{
			CaseID:      c.ID.Hex(),
			Title:       "Process settlement disbursement",
			Description: "Distribute settlement funds and settle liens",
			AssigneeID:  c.AttorneyID,
			DueDate:     now.AddDate(0, 0, 7),
			Priority:    task.PriorityHigh,
		})
	},
}

func postTransitionEffects(c *cases.Case, now time.Time) []sideeffect.Effect {
	build, ok := caseTypeEffects[effectKey{c.CaseType, c.Phase}]
	if !ok {
		return nil
	}
	return []sideeffect.Effect{build(c, now)}
}

func courtAppointment(c *cases.Case, now time.Time, kind appointment.Kind, title string, inDays int) sideeffect.Effect {
	start := now.AddDate(0, 0, inDays)
	return sideeffect.AppointmentEffect(source(c), appointment.NewAppointment{
		CaseID:     c.ID.Hex(),
		Title:      title + ": " + c.Title,
		Kind:       kind,
		AttorneyID: c.AttorneyID,
		ClientID:   c.ClientID,
		StartTime:  start,
		EndTime:    start.Add(appointmentLength),
	})
}

func source(c *cases.Case) string {
	return "case_type:" + string(c.CaseType)
}
