package audit

import (
	"context"
	"testing"

	common_models "go-legal/internal/common/models"
	"go-legal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockAuditRepo struct {
	Logs []common_models.AuditLog

	Module, RecordID string
	Limit, Offset    int64
}

func (m *MockAuditRepo) Create(ctx context.Context, log common_models.AuditLog) error {
	m.Logs = append(m.Logs, log)
	return nil
}

func (m *MockAuditRepo) List(ctx context.Context, filter LogFilter, limit, offset int64) ([]common_models.AuditLog, error) {
	return append([]common_models.AuditLog(nil), m.Logs...), nil
}

func (m *MockAuditRepo) ListByRecord(ctx context.Context, module, recordID string, limit, offset int64) ([]common_models.AuditLog, error) {
	m.Module, m.RecordID, m.Limit, m.Offset = module, recordID, limit, offset
	var out []common_models.AuditLog
	for _, l := range m.Logs {
		if l.Module == module && l.RecordID == recordID {
			out = append(out, l)
		}
	}
	return out, nil
}

type MockUserFinder struct {
	Users []common_models.User
}

func (m *MockUserFinder) FindByIDs(ctx context.Context, ids []string) ([]common_models.User, error) {
	return m.Users, nil
}

func TestLogChangeTakesActorFromContext(t *testing.T) {
	repo := &MockAuditRepo{}
	svc := NewAuditService(repo, &MockUserFinder{})

	_ = svc.LogChange(context.Background(), common_models.AuditActionCreate, "cases", "c1", nil)
	ctx := utils.ContextWithClaims(context.Background(), &utils.UserClaims{UserID: "att-1", Role: common_models.RoleAttorney})
	_ = svc.LogChange(ctx, common_models.AuditActionTransition, "cases", "c1", nil)

	require.Len(t, repo.Logs, 2)
	assert.Equal(t, "system", repo.Logs[0].ActorID)
	assert.Equal(t, "att-1", repo.Logs[1].ActorID)
}

func TestListLogsResolvesActorNames(t *testing.T) {
	known := primitive.NewObjectID()
	repo := &MockAuditRepo{Logs: []common_models.AuditLog{
		{ActorID: "system"},
		{ActorID: known.Hex()},
		{ActorID: primitive.NewObjectID().Hex()},
	}}
	users := &MockUserFinder{Users: []common_models.User{{ID: known, FirstName: "Ada", LastName: "Lovelace"}}}
	svc := NewAuditService(repo, users)

	logs, err := svc.ListLogs(context.Background(), LogFilter{}, 1, 10)
	require.NoError(t, err)

	assert.Equal(t, "System", logs[0].ActorName)
	assert.Equal(t, "Ada Lovelace", logs[1].ActorName)
	assert.Equal(t, "Unknown User", logs[2].ActorName)
}

func TestCaseTrailReadsOneCase(t *testing.T) {
	actor := primitive.NewObjectID()
	repo := &MockAuditRepo{Logs: []common_models.AuditLog{
		{Module: CaseModule, RecordID: "c1", Action: common_models.AuditActionTransition, ActorID: actor.Hex()},
		{Module: CaseModule, RecordID: "c2", Action: common_models.AuditActionCreate},
		{Module: "transition_approvals", RecordID: "c1", Action: common_models.AuditActionApproval},
		{Module: CaseModule, RecordID: "c1", Action: common_models.AuditActionCreate, ActorID: "system"},
	}}
	users := &MockUserFinder{Users: []common_models.User{{ID: actor, Email: "att@example.com"}}}
	svc := NewAuditService(repo, users)

	logs, err := svc.CaseTrail(context.Background(), "c1", 3, 5)
	require.NoError(t, err)

	assert.Equal(t, CaseModule, repo.Module)
	assert.Equal(t, "c1", repo.RecordID)
	assert.Equal(t, int64(5), repo.Limit)
	assert.Equal(t, int64(10), repo.Offset)

	require.Len(t, logs, 2)
	assert.Equal(t, common_models.AuditActionTransition, logs[0].Action)
	assert.Equal(t, "att@example.com", logs[0].ActorName)
	assert.Equal(t, "System", logs[1].ActorName)
}

func TestCaseTrailDefaultsPaging(t *testing.T) {
	repo := &MockAuditRepo{}
	svc := NewAuditService(repo, &MockUserFinder{})

	_, err := svc.CaseTrail(context.Background(), "c1", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(10), repo.Limit)
	assert.Equal(t, int64(0), repo.Offset)
}
