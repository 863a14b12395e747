package audit

import (
	"context"
	"strings"
	"time"

	common_models "go-legal/internal/common/models"
	"go-legal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserFinder interface {
	FindByIDs(ctx context.Context, ids []string) ([]common_models.User, error)
}

type AuditService interface {
	LogChange(ctx context.Context, action common_models.AuditAction, module string, recordID string, changes map[string]common_models.Change) error
	ListLogs(ctx context.Context, filter LogFilter, page, limit int64) ([]common_models.AuditLog, error)
	CaseTrail(ctx context.Context, caseID string, page, limit int64) ([]common_models.AuditLog, error)
}

// CaseModule is the module name case changes are logged under.
const CaseModule = "cases"

type AuditServiceImpl struct {
	Repo     AuditRepository
	UserRepo UserFinder
}

func NewAuditService(repo AuditRepository, userRepo UserFinder) AuditService {
	return &AuditServiceImpl{
		Repo:     repo,
		UserRepo: userRepo,
	}
}

func (s *AuditServiceImpl) LogChange(ctx context.Context, action common_models.AuditAction, module string, recordID string, changes map[string]common_models.Change) error {
	actorID := "system"
	if claims := utils.ClaimsFromContext(ctx); claims != nil && claims.UserID != "" {
		actorID = claims.UserID
	}

	log := common_models.AuditLog{
		ID:        primitive.NewObjectID(),
		Action:    action,
		Module:    module,
		RecordID:  recordID,
		ActorID:   actorID,
		Changes:   changes,
		Timestamp: time.Now(),
	}

	return s.Repo.Create(ctx, log)
}

func (s *AuditServiceImpl) ListLogs(ctx context.Context, filter LogFilter, page, limit int64) ([]common_models.AuditLog, error) {
	limit, offset := pageWindow(page, limit)
	logs, err := s.Repo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, err
	}
	return s.withActorNames(ctx, logs), nil
}

// CaseTrail lists the changes recorded against one case, newest first.
func (s *AuditServiceImpl) CaseTrail(ctx context.Context, caseID string, page, limit int64) ([]common_models.AuditLog, error) {
	limit, offset := pageWindow(page, limit)
	logs, err := s.Repo.ListByRecord(ctx, CaseModule, caseID, limit, offset)
	if err != nil {
		return nil, err
	}
	return s.withActorNames(ctx, logs), nil
}

func pageWindow(page, limit int64) (int64, int64) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return limit, (page - 1) * limit
}

func (s *AuditServiceImpl) withActorNames(ctx context.Context, logs []common_models.AuditLog) []common_models.AuditLog {
	actorIDs := make([]string, 0)
	uniqueIDs := make(map[string]bool)
	for _, log := range logs {
		if log.ActorID != "system" && log.ActorID != "" && !uniqueIDs[log.ActorID] {
			uniqueIDs[log.ActorID] = true
			actorIDs = append(actorIDs, log.ActorID)
		}
	}

	// Batch fetch actor names
	userMap := make(map[string]string)
	if len(actorIDs) > 0 {
		users, err := s.UserRepo.FindByIDs(ctx, actorIDs)
		if err == nil {
			for _, user := range users {
				userMap[user.ID.Hex()] = displayName(user)
			}
		}
	}

	for i, log := range logs {
		switch name, ok := userMap[log.ActorID]; {
		case log.ActorID == "system" || log.ActorID == "":
			logs[i].ActorName = "System"
		case ok:
			logs[i].ActorName = name
		default:
			logs[i].ActorName = "Unknown User"
		}
	}

	return logs
}

func displayName(u common_models.User) string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Email
	}
	return name
}
