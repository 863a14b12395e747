package lifecycle

import (
	"time"

	common_models "go-legal/internal/common/models"
	"go-legal/internal/features/cases"
	"go-legal/internal/features/task"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EventType string

const (
	EventPhaseEntered     EventType = "phase_entered"
	EventPhaseCompleted   EventType = "phase_completed"
	EventStatusChanged    EventType = "status_changed"
	EventMilestoneReached EventType = "milestone_reached"
)

// LifecycleEvent is an append-only record of what happened to a case.
type LifecycleEvent struct {
	ID          primitive.ObjectID       `bson:"_id,omitempty" json:"id"`
	CaseID      string                   `bson:"case_id" json:"case_id"`
	Type        EventType                `bson:"type" json:"type"`
	Phase       common_models.Phase      `bson:"phase" json:"phase"`
	FromStatus  common_models.CaseStatus `bson:"from_status,omitempty" json:"from_status,omitempty"`
	ToStatus    common_models.CaseStatus `bson:"to_status,omitempty" json:"to_status,omitempty"`
	ActorID     string                   `bson:"actor_id" json:"actor_id"`
	Description string                   `bson:"description" json:"description"`
	Reason      string                   `bson:"reason,omitempty" json:"reason,omitempty"`
	Timestamp   time.Time                `bson:"timestamp" json:"timestamp"`
}

// PhaseTransitionOutcome reports a TransitionToPhase call. Rule and
// validator failures set Success=false and fill Errors; they are not Go errors.
type PhaseTransitionOutcome struct {
	Success         bool                `json:"success"`
	FromPhase       common_models.Phase `json:"from_phase"`
	ToPhase         common_models.Phase `json:"to_phase"`
	Events          []LifecycleEvent    `json:"events,omitempty"`
	Errors          []string            `json:"errors,omitempty"`
	Warnings        []string            `json:"warnings,omitempty"`
	Recommendations []string            `json:"recommendations,omitempty"`
	Case            *cases.Case         `json:"case,omitempty"`
}

type CaseProgress struct {
	CaseID              string                   `json:"case_id"`
	CurrentPhase        common_models.Phase      `json:"current_phase"`
	PhaseLabel          string                   `json:"phase_label"`
	PhaseIndex          int                      `json:"phase_index"`
	TotalPhases         int                      `json:"total_phases"`
	ProgressPercentage  float64                  `json:"progress_percentage"`
	Status              common_models.CaseStatus `json:"status"`
	UpcomingTasks       []task.Task              `json:"upcoming_tasks"`
	OverdueTasks        []task.Task              `json:"overdue_tasks"`
	EstimatedCompletion time.Time                `json:"estimated_completion"`
	Milestones          []LifecycleEvent         `json:"milestones"`
	NextRequirements    []string                 `json:"next_requirements"`
}
