package notification

import (
	"context"
	"errors"
	"time"

	common_models "go-legal/internal/common/models"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNoRecipient          = errors.New("notification needs a recipient id or role")
)

const listLimit = 100

// Publisher pushes a stored notification to live listeners.
type Publisher interface {
	Publish(n TransitionNotification)
}

type NotificationService interface {
	Notify(ctx context.Context, input NewNotification) (*TransitionNotification, error)
	ListForRecipient(ctx context.Context, recipientID string, role common_models.Role) ([]TransitionNotification, error)
	MarkAsRead(ctx context.Context, id string) error
}

type NotificationServiceImpl struct {
	Repo      NotificationRepository
	Publisher Publisher
}

func NewNotificationService(repo NotificationRepository, hub *Hub) NotificationService {
	s := &NotificationServiceImpl{Repo: repo}
	// A nil *Hub must not become a non-nil Publisher.
	if hub != nil {
		s.Publisher = hub
	}
	return s
}

func (s *NotificationServiceImpl) Notify(ctx context.Context, input NewNotification) (*TransitionNotification, error) {
	if input.RecipientID == "" && input.RecipientRole == "" {
		return nil, ErrNoRecipient
	}

	n := &TransitionNotification{
		CaseID:        input.CaseID,
		RecipientID:   input.RecipientID,
		RecipientRole: input.RecipientRole,
		Type:          input.Type,
		Title:         input.Title,
		Message:       input.Message,
		ApprovalID:    input.ApprovalID,
		CreatedAt:     time.Now(),
	}
	if err := s.Repo.Create(ctx, n); err != nil {
		return nil, err
	}
	if s.Publisher != nil {
		s.Publisher.Publish(*n)
	}
	return n, nil
}

func (s *NotificationServiceImpl) ListForRecipient(ctx context.Context, recipientID string, role common_models.Role) ([]TransitionNotification, error) {
	return s.Repo.ListForRecipient(ctx, recipientID, role, listLimit)
}

func (s *NotificationServiceImpl) MarkAsRead(ctx context.Context, id string) error {
	found, err := s.Repo.MarkAsRead(ctx, id, time.Now())
	if err != nil {
		return err
	}
	if !found {
		return ErrNotificationNotFound
	}
	return nil
}
