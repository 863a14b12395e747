package notification

import (
	"time"

	common_models "go-legal/internal/common/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NotificationType string

const (
	NotificationTypeApprovalRequested NotificationType = "approval_requested"
	NotificationTypeApprovalApproved  NotificationType = "approval_approved"
	NotificationTypeApprovalRejected  NotificationType = "approval_rejected"
	NotificationTypePhaseChanged      NotificationType = "phase_changed"
	NotificationTypeStatusChanged     NotificationType = "status_changed"
	NotificationTypeAutomation        NotificationType = "automation"
)

// TransitionNotification is addressed either to one user (RecipientID) or,
// when RecipientID is empty, to everyone holding RecipientRole.
type TransitionNotification struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CaseID        string             `bson:"case_id" json:"case_id"`
	RecipientID   string             `bson:"recipient_id,omitempty" json:"recipient_id,omitempty"`
	RecipientRole common_models.Role `bson:"recipient_role,omitempty" json:"recipient_role,omitempty"`
	Type          NotificationType   `bson:"type" json:"type"`
	Title         string             `bson:"title" json:"title"`
	Message       string             `bson:"message" json:"message"`
	ApprovalID    string             `bson:"approval_id,omitempty" json:"approval_id,omitempty"`
	IsRead        bool               `bson:"is_read" json:"is_read"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	ReadAt        *time.Time         `bson:"read_at,omitempty" json:"read_at,omitempty"`
}

type NewNotification struct {
	CaseID        string             `bson:"case_id" json:"case_id"`
	RecipientID   string             `bson:"recipient_id,omitempty" json:"recipient_id,omitempty"`
	RecipientRole common_models.Role `bson:"recipient_role,omitempty" json:"recipient_role,omitempty"`
	Type          NotificationType   `bson:"type" json:"type"`
	Title         string             `bson:"title" json:"title"`
	Message       string             `bson:"message" json:"message"`
	ApprovalID    string             `bson:"approval_id,omitempty" json:"approval_id,omitempty"`
}
