package automation

import (
	"time"

	common_models "go-legal/internal/common/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AutomationRule runs Script whenever a case enters ToPhase. An empty
// CaseType matches every case type.
type AutomationRule struct {
	ID        primitive.ObjectID     `json:"id" bson:"_id,omitempty"`
	TenantID  primitive.ObjectID     `json:"tenant_id,omitempty" bson:"tenant_id,omitempty"`
	Name      string                 `json:"name" bson:"name"`
	CaseType  common_models.CaseType `json:"case_type,omitempty" bson:"case_type,omitempty"`
	ToPhase   common_models.Phase    `json:"to_phase" bson:"to_phase"`
	Script    string                 `json:"script" bson:"script"`
	Active    bool                   `json:"active" bson:"active"`
	CreatedAt time.Time              `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time              `json:"updated_at" bson:"updated_at"`
}

// TransitionContext is what a rule script can see about the transition.
type TransitionContext struct {
	CaseID     string
	CaseNumber string
	Title      string
	CaseType   common_models.CaseType
	Status     common_models.CaseStatus
	AttorneyID string
	ClientID   string
	FromPhase  common_models.Phase
	ToPhase    common_models.Phase
	Metadata   map[string]interface{}
}
