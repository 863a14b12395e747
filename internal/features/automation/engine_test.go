package automation

import (
	"context"
	"errors"
	"testing"
	"time"

	common_models "go-legal/internal/common/models"
	"go-legal/internal/features/sideeffect"
	"go-legal/internal/features/task"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockRuleSource struct {
	Rules []AutomationRule
	Err   error
}

func (m *MockRuleSource) ListActive(ctx context.Context, caseType common_models.CaseType, toPhase common_models.Phase) ([]AutomationRule, error) {
	return m.Rules, m.Err
}

func sampleContext() TransitionContext {
	return TransitionContext{
		CaseID:     "c1",
		CaseNumber: "2026-007",
		CaseType:   common_models.CaseTypePersonalInjury,
		AttorneyID: "att-1",
		FromPhase:  common_models.PhasePreparation,
		ToPhase:    common_models.PhaseProceedings,
		Metadata:   map[string]interface{}{"injurySeverity": "severe", "claimants": 2},
	}
}

const severeInjuryScript = `
if metadata.injurySeverity == "severe" {
	tasks = append(tasks, {title: "Commission life care plan for " + case.case_number, due_in_days: 21, priority: "high"})
}
if to_phase == "formal_proceedings" && metadata.claimants > 1 {
	tasks = append(tasks, {title: "Coordinate co-claimant counsel", description: "joint filing"})
}
`

func TestRunScriptProducesTasks(t *testing.T) {
	tasks, err := RunScript(context.Background(), severeInjuryScript, sampleContext())
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	assert.Equal(t, "Commission life care plan for 2026-007", tasks[0].Title)
	assert.Equal(t, 21, tasks[0].DueInDays)
	assert.Equal(t, task.PriorityHigh, tasks[0].Priority)
	assert.Equal(t, "joint filing", tasks[1].Description)
	assert.Equal(t, task.PriorityMedium, tasks[1].Priority)
}

func TestRunScriptRejectsBadOutput(t *testing.T) {
	_, err := RunScript(context.Background(), `tasks = "nope"`, sampleContext())
	assert.Error(t, err)

	_, err = RunScript(context.Background(), `tasks = [{description: "untitled"}]`, sampleContext())
	assert.Error(t, err)

	_, err = RunScript(context.Background(), `tasks = [`, sampleContext())
	assert.Error(t, err)
}

func TestEngineSkipsFailingRules(t *testing.T) {
	source := &MockRuleSource{Rules: []AutomationRule{
		{Name: "broken", Script: `x := undefined_var + 1`},
		{Name: "severe", Script: severeInjuryScript},
	}}
	engine := &Engine{Rules: source, Logger: zap.NewNop()}
	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

	effects := engine.Effects(context.Background(), sampleContext(), now)

	require.Len(t, effects, 2)
	assert.Equal(t, sideeffect.KindCreateTask, effects[0].Kind)
	assert.Equal(t, "att-1", effects[0].Task.AssigneeID)
	assert.Equal(t, now.AddDate(0, 0, 21), effects[0].Task.DueDate)
	assert.Equal(t, "automation:severe", effects[0].Source)
}

func TestEngineToleratesRuleSourceFailure(t *testing.T) {
	engine := &Engine{Rules: &MockRuleSource{Err: errors.New("db down")}, Logger: zap.NewNop()}

	assert.Empty(t, engine.Effects(context.Background(), sampleContext(), time.Now()))
}

func TestCompileCheck(t *testing.T) {
	assert.NoError(t, CompileCheck(severeInjuryScript))
	assert.Error(t, CompileCheck(`if {`))
}
