package notification

import (
	"context"
	"testing"
	"time"

	common_models "go-legal/internal/common/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockNotificationRepo struct {
	Stored []TransitionNotification
}

func (m *MockNotificationRepo) Create(ctx context.Context, n *TransitionNotification) error {
	m.Stored = append(m.Stored, *n)
	return nil
}

func (m *MockNotificationRepo) ListForRecipient(ctx context.Context, recipientID string, role common_models.Role, limit int64) ([]TransitionNotification, error) {
	var out []TransitionNotification
	for _, n := range m.Stored {
		if addressedTo(n, recipientID, role) {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id string, at time.Time) (bool, error) {
	for i := range m.Stored {
		if m.Stored[i].ID.Hex() == id {
			m.Stored[i].IsRead = true
			return true, nil
		}
	}
	return false, nil
}

func TestNotifyStoresAndPublishes(t *testing.T) {
	repo := &MockNotificationRepo{}
	hub := NewHub()
	svc := NewNotificationService(repo, hub)

	ch, cancel := hub.Subscribe("att-1", common_models.RoleAttorney)
	defer cancel()

	_, err := svc.Notify(context.Background(), NewNotification{
		CaseID:      "c1",
		RecipientID: "att-1",
		Type:        NotificationTypePhaseChanged,
		Title:       "Phase changed",
	})
	require.NoError(t, err)

	require.Len(t, repo.Stored, 1)
	select {
	case n := <-ch:
		assert.Equal(t, "c1", n.CaseID)
	default:
		t.Fatal("expected a published notification")
	}
}

func TestNotifyRequiresRecipient(t *testing.T) {
	svc := NewNotificationService(&MockNotificationRepo{}, NewHub())

	_, err := svc.Notify(context.Background(), NewNotification{CaseID: "c1"})
	assert.ErrorIs(t, err, ErrNoRecipient)
}

func TestListForRecipientIncludesRoleBroadcasts(t *testing.T) {
	repo := &MockNotificationRepo{}
	svc := NewNotificationService(repo, nil)
	ctx := context.Background()

	_, _ = svc.Notify(ctx, NewNotification{CaseID: "c1", RecipientRole: common_models.RoleAdmin, Type: NotificationTypeApprovalRequested})
	_, _ = svc.Notify(ctx, NewNotification{CaseID: "c1", RecipientID: "admin-1", Type: NotificationTypeApprovalApproved})
	_, _ = svc.Notify(ctx, NewNotification{CaseID: "c1", RecipientID: "att-1", Type: NotificationTypePhaseChanged})

	list, err := svc.ListForRecipient(ctx, "admin-1", common_models.RoleAdmin)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestMarkAsRead(t *testing.T) {
	repo := &MockNotificationRepo{}
	svc := NewNotificationService(repo, nil)

	n, err := svc.Notify(context.Background(), NewNotification{RecipientID: "u1"})
	require.NoError(t, err)

	assert.NoError(t, svc.MarkAsRead(context.Background(), n.ID.Hex()))
	assert.True(t, repo.Stored[0].IsRead)
	assert.ErrorIs(t, svc.MarkAsRead(context.Background(), "nope"), ErrNotificationNotFound)
}

func TestHubSkipsOtherRecipientsAndFullBuffers(t *testing.T) {
	hub := NewHub()
	mine, cancelMine := hub.Subscribe("u1", common_models.RoleParalegal)
	other, cancelOther := hub.Subscribe("u2", common_models.RoleParalegal)
	defer cancelOther()

	for i := 0; i < subscriberBuffer+5; i++ {
		hub.Publish(TransitionNotification{RecipientID: "u1"})
	}

	assert.Len(t, mine, subscriberBuffer)
	assert.Len(t, other, 0)

	cancelMine()
	cancelMine()
	hub.Publish(TransitionNotification{RecipientID: "u1"})
}

func TestNotifyWithoutHub(t *testing.T) {
	repo := &MockNotificationRepo{}
	svc := NewNotificationService(repo, nil)

	assert.Nil(t, svc.(*NotificationServiceImpl).Publisher)
	require.NotPanics(t, func() {
		_, err := svc.Notify(context.Background(), NewNotification{RecipientID: "u1", Type: NotificationTypePhaseChanged})
		assert.NoError(t, err)
	})
	assert.Len(t, repo.Stored, 1)

	var hub *Hub
	assert.NotPanics(t, func() { hub.Publish(TransitionNotification{RecipientID: "u1"}) })
}
