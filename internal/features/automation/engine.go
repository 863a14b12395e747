package automation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	common_models "go-legal/internal/common/models"
	"go-legal/internal/features/sideeffect"
	"go-legal/internal/features/task"

	"github.com/d5/tengo/v2"
	"go.uber.org/zap"
)

const (
	scriptTimeout   = 2 * time.Second
	scriptMaxAllocs = 10000
)

// RuleSource supplies the active rules for a phase entry.
type RuleSource interface {
	ListActive(ctx context.Context, caseType common_models.CaseType, toPhase common_models.Phase) ([]AutomationRule, error)
}

// Engine turns matching automation rules into side effects.
type Engine struct {
	Rules  RuleSource
	Logger *zap.Logger
}

func NewEngine(rules AutomationRepository, logger *zap.Logger) *Engine {
	return &Engine{Rules: rules, Logger: logger}
}

// Effects runs every matching rule's script. A failing rule is logged and
// skipped so one bad script cannot block the others.
func (e *Engine) Effects(ctx context.Context, tc TransitionContext, now time.Time) []sideeffect.Effect {
	rules, err := e.Rules.ListActive(ctx, tc.CaseType, tc.ToPhase)
	if err != nil {
		e.Logger.Error("Failed to load automation rules",
			zap.String("case_id", tc.CaseID),
			zap.String("to_phase", string(tc.ToPhase)),
			zap.Error(err),
		)
		return nil
	}

	var effects []sideeffect.Effect
	for _, rule := range rules {
		tasks, err := RunScript(ctx, rule.Script, tc)
		if err != nil {
			e.Logger.Warn("Automation rule failed",
				zap.String("rule_id", rule.ID.Hex()),
				zap.String("rule", rule.Name),
				zap.String("case_id", tc.CaseID),
				zap.Error(err),
			)
			continue
		}
		for _, st := range tasks {
			effects = append(effects, sideeffect.TaskEffect("automation:"+rule.Name, task.NewTask{
				CaseID:      tc.CaseID,
				Title:       st.Title,
				Description: st.Description,
				AssigneeID:  tc.AttorneyID,
				DueDate:     now.AddDate(0, 0, st.DueInDays),
				Priority:    st.Priority,
			}))
		}
	}
	return effects
}

// ScriptTask is one entry of the `tasks` array a script produces.
type ScriptTask struct {
	Title       string
	Description string
	DueInDays   int
	Priority    task.Priority
}

// RunScript executes source with the transition bound to `case`,
// `from_phase`, `to_phase` and `metadata`, and reads back `tasks`.
func RunScript(ctx context.Context, source string, tc TransitionContext) ([]ScriptTask, error) {
	metadata, err := plain(tc.Metadata)
	if err != nil {
		return nil, fmt.Errorf("metadata not representable in script: %w", err)
	}

	script := tengo.NewScript([]byte(source))
	script.SetMaxAllocs(scriptMaxAllocs)

	vars := map[string]interface{}{
		"case": map[string]interface{}{
			"id":          tc.CaseID,
			"case_number": tc.CaseNumber,
			"title":       tc.Title,
			"case_type":   string(tc.CaseType),
			"status":      string(tc.Status),
			"attorney_id": tc.AttorneyID,
			"client_id":   tc.ClientID,
		},
		"from_phase": string(tc.FromPhase),
		"to_phase":   string(tc.ToPhase),
		"metadata":   metadata,
		"tasks":      []interface{}{},
	}
	for name, value := range vars {
		if err := script.Add(name, value); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", name, err)
		}
	}

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("failed to compile script: %w", err)
	}

	runCtx, cancel := context.WithTimeout(ctx, scriptTimeout)
	defer cancel()
	if err := compiled.RunContext(runCtx); err != nil {
		return nil, fmt.Errorf("failed to run script: %w", err)
	}

	return readTasks(compiled.Get("tasks").Value())
}

// CompileCheck reports whether source is a valid script.
func CompileCheck(source string) error {
	script := tengo.NewScript([]byte(source))
	for _, name := range []string{"case", "from_phase", "to_phase", "metadata", "tasks"} {
		if err := script.Add(name, nil); err != nil {
			return err
		}
	}
	_, err := script.Compile()
	return err
}

func readTasks(v interface{}) ([]ScriptTask, error) {
	if v == nil {
		return nil, nil
	}
	items, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("tasks must be an array, got %T", v)
	}

	out := make([]ScriptTask, 0, len(items))
	for i, item := range items {
		m, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("tasks[%d] must be a map, got %T", i, item)
		}
		title, _ := m["title"].(string)
		if title == "" {
			return nil, fmt.Errorf("tasks[%d] has no title", i)
		}
		st := ScriptTask{Title: title, Priority: task.PriorityMedium}
		st.Description, _ = m["description"].(string)
		switch d := m["due_in_days"].(type) {
		case int64:
			st.DueInDays = int(d)
		case float64:
			st.DueInDays = int(d)
		}
		if p, ok := m["priority"].(string); ok && task.Priority(p).IsValid() {
			st.Priority = task.Priority(p)
		}
		out = append(out, st)
	}
	return out, nil
}

// plain reduces metadata to the JSON value shapes tengo can convert.
func plain(m map[string]interface{}) (map[string]interface{}, error) {
	if len(m) == 0 {
		return map[string]interface{}{}, nil
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	out := map[string]interface{}{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
