package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockAppointmentRepo struct {
	Created []Appointment
}

func (m *MockAppointmentRepo) Create(ctx context.Context, a *Appointment) error {
	m.Created = append(m.Created, *a)
	return nil
}

func (m *MockAppointmentRepo) ListByCase(ctx context.Context, caseID string) ([]Appointment, error) {
	return m.Created, nil
}

func TestCreateAppointment(t *testing.T) {
	repo := &MockAppointmentRepo{}
	svc := NewAppointmentService(repo)
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	a, err := svc.CreateAppointment(context.Background(), NewAppointment{
		CaseID:     "c1",
		Title:      "Hearing",
		AttorneyID: "a1",
		StartTime:  start,
		EndTime:    start.Add(2 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, KindMeeting, a.Kind)
	assert.Len(t, repo.Created, 1)
}

func TestCreateAppointmentRejectsInvertedWindow(t *testing.T) {
	svc := NewAppointmentService(&MockAppointmentRepo{})
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	_, err := svc.CreateAppointment(context.Background(), NewAppointment{
		CaseID:     "c1",
		Title:      "Hearing",
		AttorneyID: "a1",
		StartTime:  start,
		EndTime:    start,
	})
	assert.ErrorIs(t, err, ErrInvalidAppointment)
}
