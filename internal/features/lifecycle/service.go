package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	common_models "go-legal/internal/common/models"
	"go-legal/internal/features/cases"
	"go-legal/internal/features/sideeffect"
	"go-legal/internal/features/task"
	"go-legal/internal/features/workflow"
	"go-legal/pkg/utils"

	"go.uber.org/zap"
)

const maxUpcomingTasks = 5

var (
	ErrConcurrentModification  = errors.New("case state changed, retry")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)

// TaskLister reads the tasks of a case for progress reporting.
type TaskLister interface {
	ListByCase(ctx context.Context, caseID string) ([]task.Task, error)
}

type LifecycleService interface {
	// Validate is a dry run of the state machine and both validators.
	Validate(c *cases.Case, target common_models.Phase, role common_models.Role, metadata map[string]interface{}) workflow.ValidationResult
	// ValidateStatusChange checks a status move for a case in phase.
	ValidateStatusChange(phase common_models.Phase, from, to common_models.CaseStatus) workflow.ValidationResult
	TransitionToPhase(ctx context.Context, caseID string, target common_models.Phase, actorID string, role common_models.Role, metadata map[string]interface{}) (*PhaseTransitionOutcome, error)
	UpdateCaseStatus(ctx context.Context, caseID string, status common_models.CaseStatus, actorID, reason string) (*LifecycleEvent, error)
	GetCaseProgress(ctx context.Context, caseID string) (*CaseProgress, error)
	GetLifecycleEvents(ctx context.Context, caseID string) ([]LifecycleEvent, error)
	AvailableTransitions(c *cases.Case, role common_models.Role) []common_models.Phase
	OnCaseOpened(ctx context.Context, c *cases.Case) error
}

type LifecycleServiceImpl struct {
	Cases             cases.CaseRepository
	Events            EventRepository
	Tasks             TaskLister
	Dispatcher        sideeffect.Dispatcher
	StateMachine      *workflow.StateMachine
	PhaseValidator    *workflow.PhaseValidator
	CaseTypeValidator *workflow.CaseTypeValidator
	Logger            *zap.Logger
	Now               func() time.Time
}

func NewLifecycleService(
	caseRepo cases.CaseRepository,
	events EventRepository,
	tasks task.TaskService,
	dispatcher sideeffect.Dispatcher,
	stateMachine *workflow.StateMachine,
	logger *zap.Logger,
) LifecycleService {
	return &LifecycleServiceImpl{
		Cases:             caseRepo,
		Events:            events,
		Tasks:             tasks,
		Dispatcher:        dispatcher,
		StateMachine:      stateMachine,
		PhaseValidator:    workflow.NewPhaseValidator(),
		CaseTypeValidator: workflow.NewCaseTypeValidator(),
		Logger:            logger,
		Now:               time.Now,
	}
}

// Validate stops at the first failing stage: rules, then phase rules, then
// case type rules. Warnings and recommendations of the stages that ran are kept.
func (s *LifecycleServiceImpl) Validate(c *cases.Case, target common_models.Phase, role common_models.Role, metadata map[string]interface{}) workflow.ValidationResult {
	result := workflow.NewValidationResult()
	state := c.State()

	decision := s.StateMachine.CanTransition(state, target, role, metadata)
	if !decision.Allowed {
		for _, msg := range decision.Errors {
			result.AddError(msg)
		}
		return result
	}

	result.Merge(s.PhaseValidator.ValidatePhaseTransition(state, target, metadata))
	if !result.IsValid {
		return result
	}

	result.Merge(s.CaseTypeValidator.Validate(state, target, metadata))
	return result
}

func (s *LifecycleServiceImpl) ValidateStatusChange(phase common_models.Phase, from, to common_models.CaseStatus) workflow.ValidationResult {
	return s.PhaseValidator.ValidateStatusTransition(phase, from, to)
}

func (s *LifecycleServiceImpl) AvailableTransitions(c *cases.Case, role common_models.Role) []common_models.Phase {
	return s.StateMachine.AvailableTransitions(c.State(), role)
}

func (s *LifecycleServiceImpl) TransitionToPhase(ctx context.Context, caseID string, target common_models.Phase, actorID string, role common_models.Role, metadata map[string]interface{}) (*PhaseTransitionOutcome, error) {
	c, err := s.loadCase(ctx, caseID)
	if err != nil {
		return nil, err
	}
	from := c.Phase

	validation := s.Validate(c, target, role, metadata)
	outcome := &PhaseTransitionOutcome{
		FromPhase:       from,
		ToPhase:         target,
		Warnings:        validation.Warnings,
		Recommendations: validation.Recommendations,
	}
	if !validation.IsValid {
		outcome.Errors = validation.Errors
		return outcome, nil
	}

	if err := s.Cases.UpdatePhase(ctx, caseID, c.Version, target, metadata); err != nil {
		if errors.Is(err, cases.ErrVersionConflict) {
			return nil, ErrConcurrentModification
		}
		return nil, fmt.Errorf("persist phase: %w", err)
	}
	c.Phase = target
	c.Version++
	if c.Metadata == nil {
		c.Metadata = map[string]interface{}{}
	}
	for k, v := range metadata {
		c.Metadata[k] = v
	}

	// The phase write is committed; everything below is best effort.
	now := s.Now()
	completed := s.record(ctx, LifecycleEvent{
		CaseID:      caseID,
		Type:        EventPhaseCompleted,
		Phase:       from,
		ActorID:     actorID,
		Description: fmt.Sprintf("Completed %s", from.Label()),
		Timestamp:   now,
	})
	entered := s.record(ctx, LifecycleEvent{
		CaseID:      caseID,
		Type:        EventPhaseEntered,
		Phase:       target,
		ActorID:     actorID,
		Description: fmt.Sprintf("Entered %s", target.Label()),
		Timestamp:   now,
	})

	s.enterPhase(ctx, c, actorID, now)

	outcome.Success = true
	outcome.Events = []LifecycleEvent{completed, entered}
	outcome.Case = c
	return outcome, nil
}

// OnCaseOpened runs the first phase's entry actions for a new case.
func (s *LifecycleServiceImpl) OnCaseOpened(ctx context.Context, c *cases.Case) error {
	now := s.Now()
	s.record(ctx, LifecycleEvent{
		CaseID:      c.ID.Hex(),
		Type:        EventPhaseEntered,
		Phase:       c.Phase,
		ActorID:     actorFrom(ctx),
		Description: fmt.Sprintf("Entered %s", c.Phase.Label()),
		Timestamp:   now,
	})
	return s.Dispatcher.Dispatch(ctx, entryEffects(c, c.Phase, now)...)
}

// enterPhase runs the entry actions of c.Phase. The phase tables cover every
// phase; Closure additionally closes the case.
func (s *LifecycleServiceImpl) enterPhase(ctx context.Context, c *cases.Case, actorID string, now time.Time) {
	caseID := c.ID.Hex()

	if milestone, ok := phaseMilestones[c.Phase]; ok {
		s.record(ctx, LifecycleEvent{
			CaseID:      caseID,
			Type:        EventMilestoneReached,
			Phase:       c.Phase,
			ActorID:     actorID,
			Description: milestone,
			Timestamp:   now,
		})
	}

	if c.Phase == common_models.PhaseClosure && c.Status != common_models.CaseStatusClosed {
		closedAt := now
		if err := s.Cases.UpdateStatus(ctx, caseID, c.Version, common_models.CaseStatusClosed, &closedAt); err != nil {
			s.Logger.Error("Failed to close case on closure entry",
				zap.String("case_id", caseID),
				zap.Error(err),
			)
		} else {
			s.record(ctx, LifecycleEvent{
				CaseID:      caseID,
				Type:        EventStatusChanged,
				Phase:       c.Phase,
				FromStatus:  c.Status,
				ToStatus:    common_models.CaseStatusClosed,
				ActorID:     actorID,
				Description: "Case closed on entering closure",
				Timestamp:   now,
			})
			c.Status = common_models.CaseStatusClosed
			c.ClosedAt = &closedAt
			c.Version++
		}
	}

	if _, ok := phaseEntryTasks[c.Phase]; !ok {
		s.Logger.Error("No entry actions defined for phase", zap.String("phase", string(c.Phase)))
		return
	}
	// Dispatch logs and parks its own failures.
	_ = s.Dispatcher.Dispatch(ctx, entryEffects(c, c.Phase, now)...)
}

func (s *LifecycleServiceImpl) UpdateCaseStatus(ctx context.Context, caseID string, status common_models.CaseStatus, actorID, reason string) (*LifecycleEvent, error) {
	c, err := s.loadCase(ctx, caseID)
	if err != nil {
		return nil, err
	}

	validation := s.PhaseValidator.ValidateStatusTransition(c.Phase, c.Status, status)
	if !validation.IsValid {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatusTransition, strings.Join(validation.Errors, "; "))
	}

	now := s.Now()
	var closedAt *time.Time
	if status == common_models.CaseStatusClosed && c.ClosedAt == nil {
		closedAt = &now
	}
	if err := s.Cases.UpdateStatus(ctx, caseID, c.Version, status, closedAt); err != nil {
		if errors.Is(err, cases.ErrVersionConflict) {
			return nil, ErrConcurrentModification
		}
		return nil, fmt.Errorf("persist status: %w", err)
	}

	description := fmt.Sprintf("Status changed from %s to %s", c.Status, status)
	event := s.record(ctx, LifecycleEvent{
		CaseID:      caseID,
		Type:        EventStatusChanged,
		Phase:       c.Phase,
		FromStatus:  c.Status,
		ToStatus:    status,
		ActorID:     actorID,
		Description: description,
		Reason:      reason,
		Timestamp:   now,
	})
	return &event, nil
}

func (s *LifecycleServiceImpl) GetCaseProgress(ctx context.Context, caseID string) (*CaseProgress, error) {
	c, err := s.loadCase(ctx, caseID)
	if err != nil {
		return nil, err
	}

	index := c.Phase.Index()
	if index < 0 {
		return nil, fmt.Errorf("case %s is in unknown phase %q", caseID, c.Phase)
	}
	total := len(common_models.Phases)
	now := s.Now()

	progress := &CaseProgress{
		CaseID:              caseID,
		CurrentPhase:        c.Phase,
		PhaseLabel:          c.Phase.Label(),
		PhaseIndex:          index,
		TotalPhases:         total,
		ProgressPercentage:  float64(index) / float64(total-1) * 100,
		Status:              c.Status,
		UpcomingTasks:       []task.Task{},
		OverdueTasks:        []task.Task{},
		EstimatedCompletion: now.Add(remainingDuration(c.Phase)),
		Milestones:          []LifecycleEvent{},
		NextRequirements:    s.StateMachine.PhaseRequirements(c.Phase, c.CaseType),
	}

	tasks, err := s.Tasks.ListByCase(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	for _, t := range tasks {
		if !t.Status.IsOpen() {
			continue
		}
		if t.DueDate.Before(now) {
			progress.OverdueTasks = append(progress.OverdueTasks, t)
		} else {
			progress.UpcomingTasks = append(progress.UpcomingTasks, t)
		}
	}
	sort.SliceStable(progress.UpcomingTasks, func(i, j int) bool {
		return progress.UpcomingTasks[i].DueDate.Before(progress.UpcomingTasks[j].DueDate)
	})
	if len(progress.UpcomingTasks) > maxUpcomingTasks {
		progress.UpcomingTasks = progress.UpcomingTasks[:maxUpcomingTasks]
	}

	milestones, err := s.Events.ListByCase(ctx, caseID, EventMilestoneReached)
	if err != nil {
		s.Logger.Warn("Failed to load milestones", zap.String("case_id", caseID), zap.Error(err))
	} else if milestones != nil {
		progress.Milestones = milestones
	}

	return progress, nil
}

func (s *LifecycleServiceImpl) GetLifecycleEvents(ctx context.Context, caseID string) ([]LifecycleEvent, error) {
	if _, err := s.loadCase(ctx, caseID); err != nil {
		return nil, err
	}
	return s.Events.ListByCase(ctx, caseID)
}

func (s *LifecycleServiceImpl) loadCase(ctx context.Context, caseID string) (*cases.Case, error) {
	c, err := s.Cases.GetByID(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("load case: %w", err)
	}
	if c == nil {
		return nil, cases.ErrCaseNotFound
	}
	return c, nil
}

// record appends event and returns it with its id. A failed append is
// logged; the event log never blocks a committed change.
func (s *LifecycleServiceImpl) record(ctx context.Context, event LifecycleEvent) LifecycleEvent {
	if err := s.Events.Append(ctx, &event); err != nil {
		s.Logger.Error("Failed to record lifecycle event",
			zap.String("case_id", event.CaseID),
			zap.String("type", string(event.Type)),
			zap.Error(err),
		)
	}
	return event
}

func actorFrom(ctx context.Context) string {
	if claims := utils.ClaimsFromContext(ctx); claims != nil {
		return claims.UserID
	}
	return "system"
}
