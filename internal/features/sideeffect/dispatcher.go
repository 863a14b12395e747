package sideeffect

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-legal/internal/features/appointment"
	"go-legal/internal/features/notification"
	"go-legal/internal/features/task"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

const (
	defaultInitialInterval = 200 * time.Millisecond
	defaultMaxElapsed      = 5 * time.Second
)

type TaskCreator interface {
	CreateTask(ctx context.Context, input task.NewTask) (*task.Task, error)
}

type AppointmentCreator interface {
	CreateAppointment(ctx context.Context, input appointment.NewAppointment) (*appointment.Appointment, error)
}

type Notifier interface {
	Notify(ctx context.Context, input notification.NewNotification) (*notification.TransitionNotification, error)
}

// Dispatcher runs effects after a transition has committed. A failing effect
// never stops its siblings and never surfaces to the transition caller.
type Dispatcher interface {
	Dispatch(ctx context.Context, effects ...Effect) error
	Execute(ctx context.Context, effect Effect) error
}

type DispatcherImpl struct {
	Tasks         TaskCreator
	Appointments  AppointmentCreator
	Notifications Notifier
	Outbox        OutboxRepository
	Logger        *zap.Logger

	InitialInterval time.Duration
	MaxElapsed      time.Duration
}

func NewDispatcher(tasks task.TaskService, appointments appointment.AppointmentService, notifications notification.NotificationService, outbox OutboxRepository, logger *zap.Logger) Dispatcher {
	return &DispatcherImpl{
		Tasks:           tasks,
		Appointments:    appointments,
		Notifications:   notifications,
		Outbox:          outbox,
		Logger:          logger,
		InitialInterval: defaultInitialInterval,
		MaxElapsed:      defaultMaxElapsed,
	}
}

// Dispatch attempts every effect with exponential backoff. Effects that still
// fail are parked in the outbox for the retry scheduler. The returned error
// joins the final failures and is informational.
func (d *DispatcherImpl) Dispatch(ctx context.Context, effects ...Effect) error {
	var errs []error
	for _, effect := range effects {
		permanent := false
		err := backoff.Retry(func() error {
			err := d.Execute(ctx, effect)
			var pe *backoff.PermanentError
			permanent = errors.As(err, &pe)
			return err
		}, backoff.WithContext(d.newBackoff(), ctx))
		if err == nil {
			continue
		}

		errs = append(errs, fmt.Errorf("%s for case %s: %w", effect.Kind, effect.CaseID, err))
		d.Logger.Error("Side effect failed",
			zap.String("case_id", effect.CaseID),
			zap.String("kind", string(effect.Kind)),
			zap.String("source", effect.Source),
			zap.Error(err),
		)
		d.park(ctx, effect, err, permanent)
	}
	return errors.Join(errs...)
}

// Execute makes one attempt at effect. Malformed effects come back as
// permanent errors so Dispatch does not retry them.
func (d *DispatcherImpl) Execute(ctx context.Context, effect Effect) error {
	switch effect.Kind {
	case KindCreateTask:
		if effect.Task == nil {
			return backoff.Permanent(errors.New("create_task effect without task payload"))
		}
		_, err := d.Tasks.CreateTask(ctx, *effect.Task)
		if errors.Is(err, task.ErrInvalidTask) {
			return backoff.Permanent(err)
		}
		return err
	case KindCreateAppointment:
		if effect.Appointment == nil {
			return backoff.Permanent(errors.New("create_appointment effect without appointment payload"))
		}
		_, err := d.Appointments.CreateAppointment(ctx, *effect.Appointment)
		if errors.Is(err, appointment.ErrInvalidAppointment) {
			return backoff.Permanent(err)
		}
		return err
	case KindCreateNotification:
		if effect.Notification == nil {
			return backoff.Permanent(errors.New("create_notification effect without notification payload"))
		}
		_, err := d.Notifications.Notify(ctx, *effect.Notification)
		if errors.Is(err, notification.ErrNoRecipient) {
			return backoff.Permanent(err)
		}
		return err
	}
	return backoff.Permanent(fmt.Errorf("unknown side effect kind %q", effect.Kind))
}

func (d *DispatcherImpl) park(ctx context.Context, effect Effect, cause error, permanent bool) {
	if d.Outbox == nil {
		return
	}
	status := OutboxStatusPending
	if permanent {
		status = OutboxStatusDead
	}

	now := time.Now()
	entry := &OutboxEntry{
		Effect:    effect,
		Status:    status,
		Attempts:  1,
		LastError: cause.Error(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	// The request context may already be done once the HTTP call returns.
	if err := d.Outbox.Save(context.WithoutCancel(ctx), entry); err != nil {
		d.Logger.Error("Failed to park side effect in outbox",
			zap.String("case_id", effect.CaseID),
			zap.String("kind", string(effect.Kind)),
			zap.Error(err),
		)
	}
}

func (d *DispatcherImpl) newBackoff() backoff.BackOff {
	bo := backoff.NewExponentialBackOff()
	if d.InitialInterval > 0 {
		bo.InitialInterval = d.InitialInterval
	}
	bo.MaxElapsedTime = d.MaxElapsed
	if bo.MaxElapsedTime <= 0 {
		bo.MaxElapsedTime = defaultMaxElapsed
	}
	return bo
}
