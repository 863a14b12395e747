package sideeffect

import (
	"time"

	"go-legal/internal/features/appointment"
	"go-legal/internal/features/notification"
	"go-legal/internal/features/task"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Kind string

const (
	KindCreateTask         Kind = "create_task"
	KindCreateAppointment  Kind = "create_appointment"
	KindCreateNotification Kind = "create_notification"
)

// Effect is a unit of follow-up work emitted by a committed transition.
// Exactly one payload matching Kind is set.
type Effect struct {
	Kind         Kind                          `bson:"kind" json:"kind"`
	CaseID       string                        `bson:"case_id" json:"case_id"`
	Source       string                        `bson:"source,omitempty" json:"source,omitempty"` // what emitted it, for logs
	Task         *task.NewTask                 `bson:"task,omitempty" json:"task,omitempty"`
	Appointment  *appointment.NewAppointment   `bson:"appointment,omitempty" json:"appointment,omitempty"`
	Notification *notification.NewNotification `bson:"notification,omitempty" json:"notification,omitempty"`
}

func TaskEffect(source string, t task.NewTask) Effect {
	return Effect{Kind: KindCreateTask, CaseID: t.CaseID, Source: source, Task: &t}
}

func AppointmentEffect(source string, a appointment.NewAppointment) Effect {
	return Effect{Kind: KindCreateAppointment, CaseID: a.CaseID, Source: source, Appointment: &a}
}

func NotificationEffect(source string, n notification.NewNotification) Effect {
	return Effect{Kind: KindCreateNotification, CaseID: n.CaseID, Source: source, Notification: &n}
}

type OutboxStatus string

const (
	OutboxStatusPending OutboxStatus = "pending"
	OutboxStatusDone    OutboxStatus = "done"
	OutboxStatusDead    OutboxStatus = "dead"
)

// OutboxEntry keeps an effect that failed its inline retries.
type OutboxEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Effect    Effect             `bson:"effect" json:"effect"`
	Status    OutboxStatus       `bson:"status" json:"status"`
	Attempts  int                `bson:"attempts" json:"attempts"`
	LastError string             `bson:"last_error,omitempty" json:"last_error,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
