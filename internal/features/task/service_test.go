package task

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockTaskRepo struct {
	Created []Task
	Found   bool
}

func (m *MockTaskRepo) Create(ctx context.Context, t *Task) error {
	m.Created = append(m.Created, *t)
	return nil
}

func (m *MockTaskRepo) ListByCase(ctx context.Context, caseID string) ([]Task, error) {
	return m.Created, nil
}

func (m *MockTaskRepo) UpdateStatus(ctx context.Context, id string, status Status) (bool, error) {
	return m.Found, nil
}

func TestCreateTaskDefaultsPriorityAndStatus(t *testing.T) {
	repo := &MockTaskRepo{}
	svc := NewTaskService(repo)

	created, err := svc.CreateTask(context.Background(), NewTask{CaseID: "c1", Title: "Draft", AssigneeID: "a1"})
	require.NoError(t, err)

	assert.Equal(t, PriorityMedium, created.Priority)
	assert.Equal(t, StatusPending, created.Status)
	assert.Len(t, repo.Created, 1)
}

func TestCreateTaskValidates(t *testing.T) {
	svc := NewTaskService(&MockTaskRepo{})

	_, err := svc.CreateTask(context.Background(), NewTask{CaseID: "c1", Title: "Draft"})
	assert.ErrorIs(t, err, ErrInvalidTask)
}

func TestUpdateStatus(t *testing.T) {
	repo := &MockTaskRepo{}
	svc := NewTaskService(repo)

	assert.ErrorIs(t, svc.UpdateStatus(context.Background(), "x", StatusCompleted), ErrTaskNotFound)

	repo.Found = true
	assert.NoError(t, svc.UpdateStatus(context.Background(), "x", StatusCompleted))
	assert.Error(t, svc.UpdateStatus(context.Background(), "x", "paused"))
}

func TestStatusIsOpen(t *testing.T) {
	assert.True(t, StatusPending.IsOpen())
	assert.True(t, StatusInProgress.IsOpen())
	assert.False(t, StatusCompleted.IsOpen())
	assert.False(t, StatusCancelled.IsOpen())
}
