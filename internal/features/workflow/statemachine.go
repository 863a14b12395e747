package workflow

import (
	"fmt"
	"sort"
	"strings"

	common_models "go-legal/internal/common/models"
	"go-legal/pkg/condition"
)

type ruleKey struct {
	phase    common_models.Phase
	caseType common_models.CaseType
}

// StateMachine decides whether a case may move between phases. The index is
// built once by NewStateMachine and never mutated.
type StateMachine struct {
	index map[ruleKey][]StateTransition
	base  map[common_models.Phase][]StateTransition
}

// NewStateMachine validates rules and flattens base and overlays into a
// (phase, case type) lookup table.
func NewStateMachine(rules RuleSet) (*StateMachine, error) {
	if err := validateRuleSet(rules); err != nil {
		return nil, err
	}

	sm := &StateMachine{
		index: make(map[ruleKey][]StateTransition),
		base:  make(map[common_models.Phase][]StateTransition, len(rules.Base)),
	}

	for phase, transitions := range rules.Base {
		sm.base[phase] = append([]StateTransition(nil), transitions...)
	}

	for caseType, overlay := range rules.Overlays {
		for phase, extra := range overlay {
			merged := make([]StateTransition, 0, len(sm.base[phase])+len(extra))
			merged = append(merged, sm.base[phase]...)
			merged = append(merged, extra...)
			sm.index[ruleKey{phase: phase, caseType: caseType}] = merged
		}
	}

	return sm, nil
}

// NewDefaultStateMachine builds a machine over DefaultRules.
func NewDefaultStateMachine() (*StateMachine, error) {
	return NewStateMachine(DefaultRules())
}

func validateRuleSet(rules RuleSet) error {
	for _, phase := range common_models.Phases {
		if _, ok := rules.Base[phase]; !ok {
			return fmt.Errorf("rule set: base table has no entry for phase %s", phase)
		}
	}

	for phase, transitions := range rules.Base {
		if !phase.IsValid() {
			return fmt.Errorf("rule set: unknown base phase %q", phase)
		}
		if phase.IsTerminal() && len(transitions) > 0 {
			return fmt.Errorf("rule set: terminal phase %s cannot have outgoing transitions", phase)
		}
		if err := checkTransitions(phase, transitions, nil); err != nil {
			return fmt.Errorf("rule set: base: %w", err)
		}
	}

	for caseType, overlay := range rules.Overlays {
		if !caseType.IsValid() {
			return fmt.Errorf("rule set: unknown overlay case type %q", caseType)
		}
		for phase, transitions := range overlay {
			if !phase.IsValid() {
				return fmt.Errorf("rule set: overlay %s: unknown phase %q", caseType, phase)
			}
			if phase.IsTerminal() && len(transitions) > 0 {
				return fmt.Errorf("rule set: overlay %s cannot add transitions out of terminal phase %s", caseType, phase)
			}
			if err := checkTransitions(phase, transitions, rules.Base[phase]); err != nil {
				return fmt.Errorf("rule set: overlay %s: %w", caseType, err)
			}
		}
	}
	return nil
}

func checkTransitions(phase common_models.Phase, transitions []StateTransition, base []StateTransition) error {
	seen := make(map[common_models.Phase]bool, len(base)+len(transitions))
	for _, t := range base {
		seen[t.To] = true
	}
	for _, t := range transitions {
		if t.From != phase {
			return fmt.Errorf("transition keyed under %s declares from %s", phase, t.From)
		}
		if !t.To.IsValid() {
			return fmt.Errorf("transition from %s targets unknown phase %q", phase, t.To)
		}
		if t.To == phase {
			return fmt.Errorf("transition from %s targets itself", phase)
		}
		if seen[t.To] {
			return fmt.Errorf("duplicate transition from %s to %s", phase, t.To)
		}
		if len(t.AllowedRoles) == 0 {
			return fmt.Errorf("transition from %s to %s allows no roles", phase, t.To)
		}
		seen[t.To] = true
	}
	return nil
}

func (sm *StateMachine) transitionsFor(phase common_models.Phase, caseType common_models.CaseType) ([]StateTransition, bool) {
	base, ok := sm.base[phase]
	if !ok {
		return nil, false
	}
	if merged, ok := sm.index[ruleKey{phase: phase, caseType: caseType}]; ok {
		return merged, true
	}
	return base, true
}

// CanTransition runs phase validity, transition existence, role, required
// field and condition checks in that order. The first four stop at the first
// failure; condition failures are all reported.
func (sm *StateMachine) CanTransition(state common_models.CaseState, target common_models.Phase, role common_models.Role, metadata map[string]interface{}) Decision {
	transitions, ok := sm.transitionsFor(state.Phase, state.CaseType)
	if !ok {
		return deny(fmt.Sprintf("Invalid current phase: %s", state.Phase))
	}

	var match *StateTransition
	for i := range transitions {
		if transitions[i].To == target {
			match = &transitions[i]
			break
		}
	}
	if match == nil {
		return deny(fmt.Sprintf("Invalid transition from %s to %s", state.Phase, target))
	}

	if !match.allows(role) {
		return deny(fmt.Sprintf("Insufficient permissions: role %s cannot transition from %s to %s", role, state.Phase, target))
	}

	var missing []string
	for _, field := range match.RequiredFields {
		if _, ok := metadata[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return deny(fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", ")))
	}

	failed := condition.Failing(match.Conditions, metadata)
	if len(failed) > 0 {
		errs := make([]string, 0, len(failed))
		for _, cond := range failed {
			errs = append(errs, describeFailure(cond))
		}
		return Decision{Allowed: false, Message: "Transition conditions not met", Errors: errs}
	}

	return Decision{Allowed: true, Message: fmt.Sprintf("Transition from %s to %s allowed", state.Phase, target)}
}

// AvailableTransitions lists the phases role can move the case to, ignoring
// field and condition checks.
func (sm *StateMachine) AvailableTransitions(state common_models.CaseState, role common_models.Role) []common_models.Phase {
	transitions, _ := sm.transitionsFor(state.Phase, state.CaseType)
	targets := make([]common_models.Phase, 0, len(transitions))
	for _, t := range transitions {
		if t.allows(role) {
			targets = append(targets, t.To)
		}
	}
	return targets
}

// PhaseRequirements is the sorted union of required fields over every
// transition out of phase for caseType.
func (sm *StateMachine) PhaseRequirements(phase common_models.Phase, caseType common_models.CaseType) []string {
	transitions, _ := sm.transitionsFor(phase, caseType)
	set := make(map[string]struct{})
	for _, t := range transitions {
		for _, f := range t.RequiredFields {
			set[f] = struct{}{}
		}
	}
	fields := make([]string, 0, len(set))
	for f := range set {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

func deny(msg string) Decision {
	return Decision{Allowed: false, Message: msg, Errors: []string{msg}}
}

func describeFailure(cond common_models.RuleCondition) string {
	switch cond.Operator {
	case condition.OperatorExists:
		return fmt.Sprintf("Condition not met: %s must be provided", cond.Field)
	case condition.OperatorNotExists:
		return fmt.Sprintf("Condition not met: %s must not be provided", cond.Field)
	case condition.OperatorEquals, condition.OperatorNotEquals, condition.OperatorContains:
		return fmt.Sprintf("Condition not met: %s %s %v", cond.Field, cond.Operator, cond.Value)
	}
	return fmt.Sprintf("Condition not met: unsupported operator %q on %s", cond.Operator, cond.Field)
}
