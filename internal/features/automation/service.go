package automation

import (
	"context"
	"errors"
	"fmt"

	common_models "go-legal/internal/common/models"

	"go.uber.org/zap"
)

var (
	ErrRuleNotFound = errors.New("automation rule not found")
	ErrInvalidRule  = errors.New("invalid automation rule")
)

type AutomationService interface {
	CreateRule(ctx context.Context, rule *AutomationRule) error
	GetRule(ctx context.Context, id string) (*AutomationRule, error)
	ListRules(ctx context.Context) ([]AutomationRule, error)
	SetActive(ctx context.Context, id string, active bool) error
	DeleteRule(ctx context.Context, id string) error
}

type AuditLogger interface {
	LogChange(ctx context.Context, action common_models.AuditAction, module string, recordID string, changes map[string]common_models.Change) error
}

type AutomationServiceImpl struct {
	Repo         AutomationRepository
	AuditService AuditLogger
	Logger       *zap.Logger
}

func NewAutomationService(repo AutomationRepository, auditService AuditLogger, logger *zap.Logger) AutomationService {
	return &AutomationServiceImpl{
		Repo:         repo,
		AuditService: auditService,
		Logger:       logger,
	}
}

func (s *AutomationServiceImpl) CreateRule(ctx context.Context, rule *AutomationRule) error {
	if rule.Name == "" || !rule.ToPhase.IsValid() {
		return fmt.Errorf("%w: name and a known to_phase are required", ErrInvalidRule)
	}
	if rule.CaseType != "" && !rule.CaseType.IsValid() {
		return fmt.Errorf("%w: unknown case type %q", ErrInvalidRule, rule.CaseType)
	}
	if err := CompileCheck(rule.Script); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRule, err)
	}

	if err := s.Repo.Create(ctx, rule); err != nil {
		return err
	}
	s.recordAudit(ctx, common_models.AuditActionCreate, "automation_rules", rule.ID.Hex(), map[string]common_models.Change{
		"name":     {New: rule.Name},
		"to_phase": {New: rule.ToPhase},
	})
	return nil
}

func (s *AutomationServiceImpl) GetRule(ctx context.Context, id string) (*AutomationRule, error) {
	rule, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, ErrRuleNotFound
	}
	return rule, nil
}

func (s *AutomationServiceImpl) ListRules(ctx context.Context) ([]AutomationRule, error) {
	return s.Repo.List(ctx)
}

func (s *AutomationServiceImpl) SetActive(ctx context.Context, id string, active bool) error {
	if _, err := s.GetRule(ctx, id); err != nil {
		return err
	}
	if err := s.Repo.Enable(ctx, id, active); err != nil {
		return err
	}
	s.recordAudit(ctx, common_models.AuditActionUpdate, "automation_rules", id, map[string]common_models.Change{
		"active": {Old: !active, New: active},
	})
	return nil
}

func (s *AutomationServiceImpl) DeleteRule(ctx context.Context, id string) error {
	if _, err := s.GetRule(ctx, id); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.recordAudit(ctx, common_models.AuditActionAutomation, "automation_rules", id, nil)
	return nil
}

func (s *AutomationServiceImpl) recordAudit(ctx context.Context, action common_models.AuditAction, module, recordID string, changes map[string]common_models.Change) {
	if err := s.AuditService.LogChange(ctx, action, module, recordID, changes); err != nil {
		s.Logger.Warn("Failed to write audit log",
			zap.String("action", string(action)),
			zap.String("rule_id", recordID),
			zap.Error(err))
	}
}
