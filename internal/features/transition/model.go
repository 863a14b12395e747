package transition

import (
	"time"

	common_models "go-legal/internal/common/models"
	"go-legal/internal/features/lifecycle"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TransitionRequest asks for a case to move to TargetPhase, optionally
// changing its status in the same step.
type TransitionRequest struct {
	CaseID       string                   `bson:"case_id" json:"case_id"`
	TargetPhase  common_models.Phase      `bson:"target_phase" json:"target_phase"`
	TargetStatus common_models.CaseStatus `bson:"target_status,omitempty" json:"target_status,omitempty"`
	ActorID      string                   `bson:"actor_id" json:"actor_id"`
	ActorRole    common_models.Role       `bson:"actor_role" json:"actor_role"`
	Reason       string                   `bson:"reason,omitempty" json:"reason,omitempty"`
	Metadata     map[string]interface{}   `bson:"metadata,omitempty" json:"metadata,omitempty"`
}

type TransitionResult struct {
	Success          bool                       `json:"success"`
	Message          string                     `json:"message"`
	TransitionID     string                     `json:"transition_id,omitempty"`
	ApprovalID       string                     `json:"approval_id,omitempty"`
	RequiresApproval bool                       `json:"requires_approval"`
	Events           []lifecycle.LifecycleEvent `json:"events,omitempty"`
	Errors           []string                   `json:"errors,omitempty"`
	Warnings         []string                   `json:"warnings,omitempty"`
	Recommendations  []string                   `json:"recommendations,omitempty"`
}

// TransitionHistory is written once per executed transition and never
// modified.
type TransitionHistory struct {
	ID         primitive.ObjectID       `bson:"_id,omitempty" json:"id"`
	CaseID     string                   `bson:"case_id" json:"case_id"`
	FromPhase  common_models.Phase      `bson:"from_phase" json:"from_phase"`
	ToPhase    common_models.Phase      `bson:"to_phase" json:"to_phase"`
	FromStatus common_models.CaseStatus `bson:"from_status" json:"from_status"`
	ToStatus   common_models.CaseStatus `bson:"to_status" json:"to_status"`
	UserID     string                   `bson:"user_id" json:"user_id"`
	UserRole   common_models.Role       `bson:"user_role" json:"user_role"`
	ApprovalID string                   `bson:"approval_id,omitempty" json:"approval_id,omitempty"`
	Reason     string                   `bson:"reason,omitempty" json:"reason,omitempty"`
	Metadata   map[string]interface{}   `bson:"metadata,omitempty" json:"metadata,omitempty"`
	Timestamp  time.Time                `bson:"timestamp" json:"timestamp"`
}

// TransitionApproval parks a request until an approver decides it. The
// request is stored verbatim and replayed on approval.
type TransitionApproval struct {
	ID              primitive.ObjectID           `bson:"_id,omitempty" json:"id"`
	CaseID          string                       `bson:"case_id" json:"case_id"`
	TargetPhase     common_models.Phase          `bson:"target_phase" json:"target_phase"`
	TargetStatus    common_models.CaseStatus     `bson:"target_status,omitempty" json:"target_status,omitempty"`
	RequestedBy     string                       `bson:"requested_by" json:"requested_by"`
	RequestedByRole common_models.Role           `bson:"requested_by_role" json:"requested_by_role"`
	Request         TransitionRequest            `bson:"request" json:"request"`
	Status          common_models.ApprovalStatus `bson:"status" json:"status"`
	ApprovedBy      string                       `bson:"approved_by,omitempty" json:"approved_by,omitempty"`
	ApprovedByRole  common_models.Role           `bson:"approved_by_role,omitempty" json:"approved_by_role,omitempty"`
	DecisionReason  string                       `bson:"decision_reason,omitempty" json:"decision_reason,omitempty"`
	CreatedAt       time.Time                    `bson:"created_at" json:"created_at"`
	DecidedAt       *time.Time                   `bson:"decided_at,omitempty" json:"decided_at,omitempty"`
}

// Decision is the outcome written when an approval leaves Pending.
type Decision struct {
	Status    common_models.ApprovalStatus
	ActorID   string
	Role      common_models.Role
	Reason    string
	DecidedAt time.Time
}
