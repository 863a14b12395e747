package lifecycle

import (
	"context"
	"sync"
	"testing"
	"time"

	common_models "go-legal/internal/common/models"
	"go-legal/internal/features/cases"
	"go-legal/internal/features/cases/casestest"
	"go-legal/internal/features/sideeffect"
	"go-legal/internal/features/task"
	"go-legal/internal/features/workflow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

type MemoryEventRepo struct {
	mu     sync.Mutex
	Events []LifecycleEvent
}

func (m *MemoryEventRepo) Append(ctx context.Context, event *LifecycleEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, *event)
	return nil
}

func (m *MemoryEventRepo) ListByCase(ctx context.Context, caseID string, types ...EventType) ([]LifecycleEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []LifecycleEvent
	for _, e := range m.Events {
		if e.CaseID != caseID {
			continue
		}
		if len(types) > 0 && !containsType(types, e.Type) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func containsType(types []EventType, t EventType) bool {
	for _, x := range types {
		if x == t {
			return true
		}
	}
	return false
}

type MockTaskLister struct {
	Tasks []task.Task
}

func (m *MockTaskLister) ListByCase(ctx context.Context, caseID string) ([]task.Task, error) {
	return m.Tasks, nil
}

type RecordingDispatcher struct {
	mu      sync.Mutex
	Effects []sideeffect.Effect
}

func (d *RecordingDispatcher) Dispatch(ctx context.Context, effects ...sideeffect.Effect) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Effects = append(d.Effects, effects...)
	return nil
}

func (d *RecordingDispatcher) Execute(ctx context.Context, effect sideeffect.Effect) error {
	return d.Dispatch(ctx, effect)
}

type fixture struct {
	svc        *LifecycleServiceImpl
	cases      *casestest.MemoryCaseRepository
	events     *MemoryEventRepo
	tasks      *MockTaskLister
	dispatcher *RecordingDispatcher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	sm, err := workflow.NewDefaultStateMachine()
	require.NoError(t, err)

	f := &fixture{
		cases:      casestest.NewMemoryCaseRepository(),
		events:     &MemoryEventRepo{},
		tasks:      &MockTaskLister{},
		dispatcher: &RecordingDispatcher{},
	}
	f.svc = &LifecycleServiceImpl{
		Cases:             f.cases,
		Events:            f.events,
		Tasks:             f.tasks,
		Dispatcher:        f.dispatcher,
		StateMachine:      sm,
		PhaseValidator:    workflow.NewPhaseValidator(),
		CaseTypeValidator: workflow.NewCaseTypeValidator(),
		Logger:            zap.NewNop(),
		Now:               func() time.Time { return fixedNow },
	}
	return f
}

func (f *fixture) seed(t *testing.T, caseType common_models.CaseType, phase common_models.Phase, status common_models.CaseStatus) string {
	t.Helper()
	c := &cases.Case{
		CaseNumber: "2026-100",
		Title:      "Test matter",
		CaseType:   caseType,
		Phase:      phase,
		Status:     status,
		AttorneyID: "att-1",
		ClientID:   "cli-1",
		Version:    1,
	}
	require.NoError(t, f.cases.Create(context.Background(), c))
	return c.ID.Hex()
}

func intakeMetadata() map[string]interface{} {
	return map[string]interface{}{
		"riskAssessmentCompleted": true,
		"clientInformation":       "x",
		"caseDescription":         "y",
		"initialEvidence":         "z",
		"conflictCheckCompleted":  true,
	}
}

func taskTitles(effects []sideeffect.Effect) []string {
	var titles []string
	for _, e := range effects {
		if e.Task != nil {
			titles = append(titles, e.Task.Title)
		}
	}
	return titles
}

func TestTransitionToPhaseCommitsAndRunsEntryActions(t *testing.T) {
	f := newFixture(t)
	id := f.seed(t, common_models.CaseTypeContractDispute, common_models.PhaseIntake, common_models.CaseStatusInProgress)

	outcome, err := f.svc.TransitionToPhase(context.Background(), id, common_models.PhasePreparation, "att-1", common_models.RoleAttorney, intakeMetadata())
	require.NoError(t, err)
	require.True(t, outcome.Success, outcome.Errors)

	require.Len(t, outcome.Events, 2)
	assert.Equal(t, EventPhaseCompleted, outcome.Events[0].Type)
	assert.Equal(t, common_models.PhaseIntake, outcome.Events[0].Phase)
	assert.Equal(t, EventPhaseEntered, outcome.Events[1].Type)
	assert.Equal(t, common_models.PhasePreparation, outcome.Events[1].Phase)

	stored, _ := f.cases.GetByID(context.Background(), id)
	assert.Equal(t, common_models.PhasePreparation, stored.Phase)
	assert.Equal(t, int64(2), stored.Version)
	assert.Equal(t, true, stored.Metadata["riskAssessmentCompleted"])

	assert.Equal(t, []string{"Collect evidence and documents", "Draft case strategy"}, taskTitles(f.dispatcher.Effects))
	assert.Equal(t, fixedNow.AddDate(0, 0, 14), f.dispatcher.Effects[0].Task.DueDate)
	assert.Equal(t, "att-1", f.dispatcher.Effects[0].Task.AssigneeID)
}

func TestTransitionToPhaseRejectsWithoutSideEffects(t *testing.T) {
	f := newFixture(t)
	id := f.seed(t, common_models.CaseTypeContractDispute, common_models.PhaseIntake, common_models.CaseStatusOpen)
	metadata := intakeMetadata()
	delete(metadata, "clientInformation")

	outcome, err := f.svc.TransitionToPhase(context.Background(), id, common_models.PhasePreparation, "att-1", common_models.RoleAttorney, metadata)
	require.NoError(t, err)

	assert.False(t, outcome.Success)
	require.NotEmpty(t, outcome.Errors)
	assert.Contains(t, outcome.Errors[0], "clientInformation")
	assert.Empty(t, f.events.Events)
	assert.Empty(t, f.dispatcher.Effects)

	stored, _ := f.cases.GetByID(context.Background(), id)
	assert.Equal(t, common_models.PhaseIntake, stored.Phase)
}

func TestValidateStopsAtFirstFailingStage(t *testing.T) {
	f := newFixture(t)
	c := &cases.Case{Phase: common_models.PhaseIntake, CaseType: common_models.CaseTypeMedicalMalpractice}
	metadata := intakeMetadata()
	metadata["riskLevel"] = "high"

	res := f.svc.Validate(c, common_models.PhasePreparation, common_models.RoleAttorney, metadata)

	assert.False(t, res.IsValid)
	require.Len(t, res.Errors, 1, "case type errors must not be reported once the phase validator fails")
	assert.Contains(t, res.Errors[0], "supervisingAttorney")

	metadata["supervisingAttorney"] = "sup-1"
	res = f.svc.Validate(c, common_models.PhasePreparation, common_models.RoleAttorney, metadata)
	assert.False(t, res.IsValid)
	assert.Len(t, res.Errors, 2)
}

func TestTransitionToPhaseLosesVersionRace(t *testing.T) {
	f := newFixture(t)
	id := f.seed(t, common_models.CaseTypeContractDispute, common_models.PhaseIntake, common_models.CaseStatusOpen)

	fired := false
	f.cases.BeforeWrite = func() {
		if fired {
			return
		}
		fired = true
		require.NoError(t, f.cases.UpdateStatus(context.Background(), id, 1, common_models.CaseStatusOnHold, nil))
	}

	_, err := f.svc.TransitionToPhase(context.Background(), id, common_models.PhasePreparation, "att-1", common_models.RoleAttorney, intakeMetadata())
	assert.ErrorIs(t, err, ErrConcurrentModification)
	assert.Equal(t, "case state changed, retry", err.Error())

	stored, _ := f.cases.GetByID(context.Background(), id)
	assert.Equal(t, common_models.PhaseIntake, stored.Phase)
	assert.Empty(t, f.events.Events)
}

func TestEnteringClosureClosesCase(t *testing.T) {
	f := newFixture(t)
	id := f.seed(t, common_models.CaseTypeContractDispute, common_models.PhaseResolution, common_models.CaseStatusSettled)

	outcome, err := f.svc.TransitionToPhase(context.Background(), id, common_models.PhaseClosure, "att-1", common_models.RoleAttorney, map[string]interface{}{
		"resolutionSummary":     "settled",
		"finalBillingCompleted": true,
	})
	require.NoError(t, err)
	require.True(t, outcome.Success, outcome.Errors)
	assert.NotEmpty(t, outcome.Recommendations)

	stored, _ := f.cases.GetByID(context.Background(), id)
	assert.Equal(t, common_models.CaseStatusClosed, stored.Status)
	require.NotNil(t, stored.ClosedAt)
	assert.Equal(t, fixedNow, *stored.ClosedAt)
	assert.Equal(t, int64(3), stored.Version)
	assert.Equal(t, common_models.CaseStatusClosed, outcome.Case.Status)

	assert.Equal(t, []string{"Archive case files"}, taskTitles(f.dispatcher.Effects))
	assert.Equal(t, fixedNow.AddDate(0, 0, 7), f.dispatcher.Effects[0].Task.DueDate)

	statusEvents, _ := f.events.ListByCase(context.Background(), id, EventStatusChanged)
	require.Len(t, statusEvents, 1)
	assert.Equal(t, common_models.CaseStatusClosed, statusEvents[0].ToStatus)
	milestones, _ := f.events.ListByCase(context.Background(), id, EventMilestoneReached)
	require.Len(t, milestones, 1)
	assert.Equal(t, "Case closed", milestones[0].Description)
}

func TestEveryPhaseHasEntryActions(t *testing.T) {
	assert.Len(t, phaseEntryTasks, len(common_models.Phases))
	for _, phase := range common_models.Phases {
		_, ok := phaseEntryTasks[phase]
		assert.True(t, ok, "no entry actions for %s", phase)
		_, ok = phaseDurations[phase]
		assert.True(t, ok, "no duration for %s", phase)
	}
	assert.Empty(t, phaseEntryTasks[common_models.PhaseResolution])
}

func TestOnCaseOpenedSchedulesIntakeTasks(t *testing.T) {
	f := newFixture(t)
	id := f.seed(t, common_models.CaseTypeDivorceFamily, common_models.PhaseIntake, common_models.CaseStatusOpen)
	c, _ := f.cases.GetByID(context.Background(), id)

	require.NoError(t, f.svc.OnCaseOpened(context.Background(), c))

	assert.Equal(t, []string{"Complete intake form", "Conduct risk assessment"}, taskTitles(f.dispatcher.Effects))
	assert.Equal(t, fixedNow.AddDate(0, 0, 3), f.dispatcher.Effects[0].Task.DueDate)
	assert.Equal(t, fixedNow.AddDate(0, 0, 5), f.dispatcher.Effects[1].Task.DueDate)
	require.Len(t, f.events.Events, 1)
	assert.Equal(t, EventPhaseEntered, f.events.Events[0].Type)
}

func TestUpdateCaseStatus(t *testing.T) {
	f := newFixture(t)
	id := f.seed(t, common_models.CaseTypeContractDispute, common_models.PhaseIntake, common_models.CaseStatusOpen)

	_, err := f.svc.UpdateCaseStatus(context.Background(), id, common_models.CaseStatusSettled, "att-1", "")
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)

	event, err := f.svc.UpdateCaseStatus(context.Background(), id, common_models.CaseStatusInProgress, "att-1", "work started")
	require.NoError(t, err)
	assert.Equal(t, EventStatusChanged, event.Type)
	assert.Equal(t, common_models.CaseStatusOpen, event.FromStatus)
	assert.Equal(t, "work started", event.Reason)

	stored, _ := f.cases.GetByID(context.Background(), id)
	assert.Equal(t, common_models.CaseStatusInProgress, stored.Status)

	_, err = f.svc.UpdateCaseStatus(context.Background(), "missing", common_models.CaseStatusOnHold, "att-1", "")
	assert.ErrorIs(t, err, cases.ErrCaseNotFound)
}

func TestGetCaseProgressPercentageIsMonotonic(t *testing.T) {
	f := newFixture(t)
	last := -1.0
	for i, phase := range common_models.Phases {
		id := f.seed(t, common_models.CaseTypePersonalInjury, phase, common_models.CaseStatusInProgress)
		progress, err := f.svc.GetCaseProgress(context.Background(), id)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, progress.ProgressPercentage, last)
		last = progress.ProgressPercentage
		assert.Equal(t, i, progress.PhaseIndex)
		switch i {
		case 0:
			assert.Equal(t, 0.0, progress.ProgressPercentage)
		case len(common_models.Phases) - 1:
			assert.Equal(t, 100.0, progress.ProgressPercentage)
			assert.Equal(t, fixedNow, progress.EstimatedCompletion)
		}
	}
}

func TestGetCaseProgressTasksAndEstimate(t *testing.T) {
	f := newFixture(t)
	id := f.seed(t, common_models.CaseTypeContractDispute, common_models.PhasePreparation, common_models.CaseStatusInProgress)

	day := 24 * time.Hour
	for i := 7; i >= 1; i-- {
		f.tasks.Tasks = append(f.tasks.Tasks, task.Task{Title: "upcoming", DueDate: fixedNow.Add(time.Duration(i) * day), Status: task.StatusPending})
	}
	f.tasks.Tasks = append(f.tasks.Tasks,
		task.Task{Title: "late", DueDate: fixedNow.Add(-day), Status: task.StatusInProgress},
		task.Task{Title: "late but done", DueDate: fixedNow.Add(-day), Status: task.StatusCompleted},
		task.Task{Title: "future but cancelled", DueDate: fixedNow.Add(day), Status: task.StatusCancelled},
	)

	progress, err := f.svc.GetCaseProgress(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, 25.0, progress.ProgressPercentage)
	require.Len(t, progress.UpcomingTasks, maxUpcomingTasks)
	assert.Equal(t, fixedNow.Add(day), progress.UpcomingTasks[0].DueDate)
	assert.Equal(t, fixedNow.Add(5*day), progress.UpcomingTasks[4].DueDate)
	require.Len(t, progress.OverdueTasks, 1)
	assert.Equal(t, "late", progress.OverdueTasks[0].Title)

	// Proceedings 90 + Resolution 30 + Closure 14
	assert.Equal(t, fixedNow.Add(134*day), progress.EstimatedCompletion)
	assert.Equal(t, []string{"caseStrategy", "evidenceSummary", "settlementTerms"}, progress.NextRequirements)
}
