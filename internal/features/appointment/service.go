package appointment

import (
	"context"
	"errors"
	"time"
)

var ErrInvalidAppointment = errors.New("appointment requires a case, a title, an attorney and an end after its start")

type AppointmentService interface {
	CreateAppointment(ctx context.Context, input NewAppointment) (*Appointment, error)
	ListByCase(ctx context.Context, caseID string) ([]Appointment, error)
}

type AppointmentServiceImpl struct {
	Repo AppointmentRepository
}

func NewAppointmentService(repo AppointmentRepository) AppointmentService {
	return &AppointmentServiceImpl{Repo: repo}
}

func (s *AppointmentServiceImpl) CreateAppointment(ctx context.Context, input NewAppointment) (*Appointment, error) {
	if input.CaseID == "" || input.Title == "" || input.AttorneyID == "" || !input.EndTime.After(input.StartTime) {
		return nil, ErrInvalidAppointment
	}
	if input.Kind == "" {
		input.Kind = KindMeeting
	}

	a := &Appointment{
		CaseID:      input.CaseID,
		Title:       input.Title,
		Description: input.Description,
		Kind:        input.Kind,
		AttorneyID:  input.AttorneyID,
		ClientID:    input.ClientID,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		CreatedAt:   time.Now(),
	}
	if err := s.Repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AppointmentServiceImpl) ListByCase(ctx context.Context, caseID string) ([]Appointment, error) {
	return s.Repo.ListByCase(ctx, caseID)
}
