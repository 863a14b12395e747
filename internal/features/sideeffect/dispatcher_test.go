package sideeffect

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go-legal/internal/config"
	"go-legal/internal/features/appointment"
	"go-legal/internal/features/notification"
	"go-legal/internal/features/task"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type MockTaskCreator struct {
	FailTimes int
	Calls     int
	Created   []task.NewTask
}

func (m *MockTaskCreator) CreateTask(ctx context.Context, input task.NewTask) (*task.Task, error) {
	m.Calls++
	if m.Calls <= m.FailTimes {
		return nil, errors.New("tasks collection unavailable")
	}
	m.Created = append(m.Created, input)
	return &task.Task{Title: input.Title}, nil
}

type MockAppointmentCreator struct {
	Err     error
	Created []appointment.NewAppointment
}

func (m *MockAppointmentCreator) CreateAppointment(ctx context.Context, input appointment.NewAppointment) (*appointment.Appointment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.Created = append(m.Created, input)
	return &appointment.Appointment{Title: input.Title}, nil
}

type MockNotifier struct {
	Sent []notification.NewNotification
}

func (m *MockNotifier) Notify(ctx context.Context, input notification.NewNotification) (*notification.TransitionNotification, error) {
	m.Sent = append(m.Sent, input)
	return &notification.TransitionNotification{}, nil
}

type MemoryOutbox struct {
	mu      sync.Mutex
	Entries []OutboxEntry
}

func (m *MemoryOutbox) Save(ctx context.Context, entry *OutboxEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	m.Entries = append(m.Entries, *entry)
	return nil
}

func (m *MemoryOutbox) ListPending(ctx context.Context, limit int64) ([]OutboxEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []OutboxEntry
	for _, e := range m.Entries {
		if e.Status == OutboxStatusPending {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *MemoryOutbox) MarkDone(ctx context.Context, id primitive.ObjectID) error {
	return m.update(id, func(e *OutboxEntry) { e.Status = OutboxStatusDone })
}

func (m *MemoryOutbox) RecordFailure(ctx context.Context, id primitive.ObjectID, lastErr string, dead bool) error {
	return m.update(id, func(e *OutboxEntry) {
		e.Attempts++
		e.LastError = lastErr
		if dead {
			e.Status = OutboxStatusDead
		}
	})
}

func (m *MemoryOutbox) update(id primitive.ObjectID, fn func(e *OutboxEntry)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.Entries {
		if m.Entries[i].ID == id {
			fn(&m.Entries[i])
		}
	}
	return nil
}

func newTestDispatcher(tasks *MockTaskCreator, appts *MockAppointmentCreator, notes *MockNotifier, outbox *MemoryOutbox) *DispatcherImpl {
	return &DispatcherImpl{
		Tasks:           tasks,
		Appointments:    appts,
		Notifications:   notes,
		Outbox:          outbox,
		Logger:          zap.NewNop(),
		InitialInterval: time.Millisecond,
		MaxElapsed:      30 * time.Millisecond,
	}
}

func sampleEffects() []Effect {
	due := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	return []Effect{
		TaskEffect("test", task.NewTask{CaseID: "c1", Title: "Draft", AssigneeID: "a1", DueDate: due}),
		AppointmentEffect("test", appointment.NewAppointment{CaseID: "c1", Title: "Hearing", AttorneyID: "a1", StartTime: due, EndTime: due.Add(time.Hour)}),
		NotificationEffect("test", notification.NewNotification{CaseID: "c1", RecipientID: "a1"}),
	}
}

func TestDispatchRetriesTransientFailures(t *testing.T) {
	tasks := &MockTaskCreator{FailTimes: 2}
	outbox := &MemoryOutbox{}
	d := newTestDispatcher(tasks, &MockAppointmentCreator{}, &MockNotifier{}, outbox)

	err := d.Dispatch(context.Background(), sampleEffects()[0])

	assert.NoError(t, err)
	assert.Equal(t, 3, tasks.Calls)
	assert.Len(t, tasks.Created, 1)
	assert.Empty(t, outbox.Entries)
}

func TestDispatchFailureDoesNotStopSiblings(t *testing.T) {
	tasks := &MockTaskCreator{}
	appts := &MockAppointmentCreator{Err: errors.New("calendar down")}
	notes := &MockNotifier{}
	outbox := &MemoryOutbox{}
	d := newTestDispatcher(tasks, appts, notes, outbox)

	err := d.Dispatch(context.Background(), sampleEffects()...)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "calendar down")
	assert.Len(t, tasks.Created, 1)
	assert.Len(t, notes.Sent, 1)
	require.Len(t, outbox.Entries, 1)
	assert.Equal(t, KindCreateAppointment, outbox.Entries[0].Effect.Kind)
	assert.Equal(t, OutboxStatusPending, outbox.Entries[0].Status)
}

func TestDispatchParksMalformedEffectsAsDead(t *testing.T) {
	outbox := &MemoryOutbox{}
	d := newTestDispatcher(&MockTaskCreator{}, &MockAppointmentCreator{}, &MockNotifier{}, outbox)

	err := d.Dispatch(context.Background(), Effect{Kind: KindCreateTask, CaseID: "c1"}, Effect{Kind: "send_fax", CaseID: "c1"})

	require.Error(t, err)
	require.Len(t, outbox.Entries, 2)
	for _, e := range outbox.Entries {
		assert.Equal(t, OutboxStatusDead, e.Status)
	}
}

func TestRetryPendingDrainsOutbox(t *testing.T) {
	tasks := &MockTaskCreator{}
	appts := &MockAppointmentCreator{Err: errors.New("calendar down")}
	outbox := &MemoryOutbox{}
	d := newTestDispatcher(tasks, appts, &MockNotifier{}, outbox)
	effects := sampleEffects()

	require.NoError(t, outbox.Save(context.Background(), &OutboxEntry{Effect: effects[0], Status: OutboxStatusPending, Attempts: 1}))
	require.NoError(t, outbox.Save(context.Background(), &OutboxEntry{Effect: effects[1], Status: OutboxStatusPending, Attempts: MaxAttempts - 1}))

	s := NewRetryScheduler(&config.Config{}, d, outbox, zap.NewNop())
	n, err := s.RetryPending(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, OutboxStatusDone, outbox.Entries[0].Status)
	assert.Equal(t, OutboxStatusDead, outbox.Entries[1].Status)
	assert.Equal(t, MaxAttempts, outbox.Entries[1].Attempts)
}

func TestRetrySchedulerRejectsBadSchedule(t *testing.T) {
	s := NewRetryScheduler(&config.Config{SideEffectRetrySchedule: "every tuesday"}, nil, &MemoryOutbox{}, zap.NewNop())

	assert.Error(t, s.Start())
	s.Stop()
}
