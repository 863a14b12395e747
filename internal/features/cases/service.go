package cases

import (
	"context"
	"errors"
	"fmt"
	"time"

	common_models "go-legal/internal/common/models"

	"go.uber.org/zap"
)

var (
	ErrCaseNotFound     = errors.New("case not found")
	ErrInvalidCaseInput = errors.New("invalid case input")
)

// AuditLogger records case creation.
type AuditLogger interface {
	LogChange(ctx context.Context, action common_models.AuditAction, module string, recordID string, changes map[string]common_models.Change) error
}

// IntakeHook runs the entry actions of the first phase for a newly opened
// case. It is satisfied by the lifecycle service, which depends on this
// package, so the dependency is inverted here.
type IntakeHook interface {
	OnCaseOpened(ctx context.Context, c *Case) error
}

type CaseService interface {
	CreateCase(ctx context.Context, input CreateCaseInput) (*Case, error)
	GetCase(ctx context.Context, id string) (*Case, error)
	ListCases(ctx context.Context, filters map[string]interface{}, page, limit int64) ([]Case, error)
}

type CaseServiceImpl struct {
	Repo         CaseRepository
	AuditService AuditLogger
	Intake       IntakeHook
	Logger       *zap.Logger
}

func NewCaseService(repo CaseRepository, auditService AuditLogger, intake IntakeHook, logger *zap.Logger) CaseService {
	return &CaseServiceImpl{
		Repo:         repo,
		AuditService: auditService,
		Intake:       intake,
		Logger:       logger,
	}
}

func (s *CaseServiceImpl) CreateCase(ctx context.Context, input CreateCaseInput) (*Case, error) {
	if input.Title == "" || input.CaseNumber == "" {
		return nil, fmt.Errorf("%w: title and case_number are required", ErrInvalidCaseInput)
	}
	if !input.CaseType.IsValid() {
		return nil, fmt.Errorf("%w: unknown case type %q", ErrInvalidCaseInput, input.CaseType)
	}
	if input.AttorneyID == "" {
		return nil, fmt.Errorf("%w: attorney_id is required", ErrInvalidCaseInput)
	}

	now := time.Now()
	c := &Case{
		CaseNumber: input.CaseNumber,
		Title:      input.Title,
		CaseType:   input.CaseType,
		Phase:      common_models.PhaseIntake,
		Status:     common_models.CaseStatusOpen,
		AttorneyID: input.AttorneyID,
		ClientID:   input.ClientID,
		Metadata:   input.Metadata,
		Version:    1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if c.Metadata == nil {
		c.Metadata = map[string]interface{}{}
	}

	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, err
	}

	err := s.AuditService.LogChange(ctx, common_models.AuditActionCreate, "cases", c.ID.Hex(), map[string]common_models.Change{
		"phase":  {Old: nil, New: c.Phase},
		"status": {Old: nil, New: c.Status},
	})
	if err != nil {
		s.Logger.Warn("Failed to write audit log",
			zap.String("case_id", c.ID.Hex()),
			zap.Error(err),
		)
	}

	if s.Intake != nil {
		if err := s.Intake.OnCaseOpened(ctx, c); err != nil {
			s.Logger.Warn("Intake entry actions failed",
				zap.String("case_id", c.ID.Hex()),
				zap.Error(err),
			)
		}
	}

	return c, nil
}

func (s *CaseServiceImpl) GetCase(ctx context.Context, id string) (*Case, error) {
	c, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCaseNotFound
	}
	return c, nil
}

func (s *CaseServiceImpl) ListCases(ctx context.Context, filters map[string]interface{}, page, limit int64) ([]Case, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	return s.Repo.List(ctx, filters, limit, (page-1)*limit)
}
