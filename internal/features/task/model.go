package task

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// IsOpen reports whether the task still needs work.
func (s Status) IsOpen() bool {
	return s != StatusCompleted && s != StatusCancelled
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type Task struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CaseID      string             `bson:"case_id" json:"case_id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	AssigneeID  string             `bson:"assignee_id" json:"assignee_id"`
	DueDate     time.Time          `bson:"due_date" json:"due_date"`
	Priority    Priority           `bson:"priority" json:"priority"`
	Status      Status             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// NewTask is the creation payload. It is also persisted verbatim inside
// side-effect outbox entries, hence the bson tags.
type NewTask struct {
	CaseID      string    `bson:"case_id" json:"case_id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	AssigneeID  string    `bson:"assignee_id" json:"assignee_id"`
	DueDate     time.Time `bson:"due_date" json:"due_date"`
	Priority    Priority  `bson:"priority" json:"priority"`
}
