package task

import (
	"context"
	"errors"
	"time"
)

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrInvalidTask  = errors.New("task requires a case, a title and an assignee")
)

type TaskService interface {
	CreateTask(ctx context.Context, input NewTask) (*Task, error)
	ListByCase(ctx context.Context, caseID string) ([]Task, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
}

type TaskServiceImpl struct {
	Repo TaskRepository
}

func NewTaskService(repo TaskRepository) TaskService {
	return &TaskServiceImpl{Repo: repo}
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, input NewTask) (*Task, error) {
	if input.CaseID == "" || input.Title == "" || input.AssigneeID == "" {
		return nil, ErrInvalidTask
	}
	if !input.Priority.IsValid() {
		input.Priority = PriorityMedium
	}

	now := time.Now()
	t := &Task{
		CaseID:      input.CaseID,
		Title:       input.Title,
		Description: input.Description,
		AssigneeID:  input.AssigneeID,
		DueDate:     input.DueDate,
		Priority:    input.Priority,
		Status:      StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TaskServiceImpl) ListByCase(ctx context.Context, caseID string) ([]Task, error) {
	return s.Repo.ListByCase(ctx, caseID)
}

func (s *TaskServiceImpl) UpdateStatus(ctx context.Context, id string, status Status) error {
	switch status {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
	default:
		return errors.New("unknown task status")
	}
	found, err := s.Repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return err
	}
	if !found {
		return ErrTaskNotFound
	}
	return nil
}
