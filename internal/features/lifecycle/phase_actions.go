package lifecycle

import (
	"time"

	common_models "go-legal/internal/common/models"
	"go-legal/internal/features/cases"
	"go-legal/internal/features/sideeffect"
	"go-legal/internal/features/task"
)

type plannedTask struct {
	title       string
	description string
	dueInDays   int
	priority    task.Priority
}

// phaseEntryTasks holds the follow-on work created when a case enters a
// phase. Every phase has an entry, even when the list is empty.
var phaseEntryTasks = map[common_models.Phase][]plannedTask{
	common_models.PhaseIntake: {
		{title: "Complete intake form", description: "Record client details and the matter summary", dueInDays: 3, priority: task.PriorityHigh},
		{title: "Conduct risk assessment", description: "Assess merits, conflicts and exposure", dueInDays: 5, priority: task.PriorityHigh},
	},
	common_models.PhasePreparation: {
		{title: "Collect evidence and documents", description: "Gather and index supporting evidence", dueInDays: 14, priority: task.PriorityMedium},
		{title: "Draft case strategy", description: "Prepare the litigation or negotiation strategy", dueInDays: 10, priority: task.PriorityMedium},
	},
	common_models.PhaseProceedings: {
		{title: "Prepare hearing bundle", description: "Assemble pleadings, exhibits and witness statements", dueInDays: 5, priority: task.PriorityHigh},
	},
	common_models.PhaseResolution: {},
	common_models.PhaseClosure: {
		{title: "Archive case files", description: "Archive documents and close out the file", dueInDays: 7, priority: task.PriorityLow},
	},
}

// phaseMilestones marks phases whose entry is a milestone.
var phaseMilestones = map[common_models.Phase]string{
	common_models.PhaseProceedings: "Formal proceedings commenced",
	common_models.PhaseClosure:     "Case closed",
}

// phaseDurations is the nominal time a case spends in each phase.
var phaseDurations = map[common_models.Phase]time.Duration{
	common_models.PhaseIntake:      7 * 24 * time.Hour,
	common_models.PhasePreparation: 30 * 24 * time.Hour,
	common_models.PhaseProceedings: 90 * 24 * time.Hour,
	common_models.PhaseResolution:  30 * 24 * time.Hour,
	common_models.PhaseClosure:     14 * 24 * time.Hour,
}

func entryEffects(c *cases.Case, phase common_models.Phase, now time.Time) []sideeffect.Effect {
	planned := phaseEntryTasks[phase]
	effects := make([]sideeffect.Effect, 0, len(planned))
	for _, p := range planned {
		effects = append(effects, sideeffect.TaskEffect("phase_entry:"+string(phase), task.NewTask{
			CaseID:      c.ID.Hex(),
			Title:       p.title,
			Description: p.description,
			AssigneeID:  c.AttorneyID,
			DueDate:     now.AddDate(0, 0, p.dueInDays),
			Priority:    p.priority,
		}))
	}
	return effects
}

// remainingDuration sums the nominal durations of the phases after phase.
func remainingDuration(phase common_models.Phase) time.Duration {
	var total time.Duration
	for _, p := range common_models.Phases[phase.Index()+1:] {
		total += phaseDurations[p]
	}
	return total
}
