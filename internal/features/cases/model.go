package cases

import (
	"time"

	common_models "go-legal/internal/common/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Case is the source of truth for a matter's current phase and status.
type Case struct {
	ID         primitive.ObjectID       `bson:"_id,omitempty" json:"id"`
	TenantID   primitive.ObjectID       `bson:"tenant_id,omitempty" json:"tenant_id,omitempty"`
	CaseNumber string                   `bson:"case_number" json:"case_number"`
	Title      string                   `bson:"title" json:"title"`
	CaseType   common_models.CaseType   `bson:"case_type" json:"case_type"`
	Phase      common_models.Phase      `bson:"phase" json:"phase"`
	Status     common_models.CaseStatus `bson:"status" json:"status"`
	AttorneyID string                   `bson:"attorney_id" json:"attorney_id"`
	ClientID   string                   `bson:"client_id" json:"client_id"`
	Metadata   map[string]interface{}   `bson:"metadata,omitempty" json:"metadata,omitempty"`
	Version    int64                    `bson:"version" json:"version"` // Bumped on every phase/status write
	ClosedAt   *time.Time               `bson:"closed_at,omitempty" json:"closed_at,omitempty"`
	CreatedAt  time.Time                `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time                `bson:"updated_at" json:"updated_at"`
}

// State returns the rule-evaluation view of the case.
func (c *Case) State() common_models.CaseState {
	return common_models.CaseState{
		Phase:    c.Phase,
		Status:   c.Status,
		CaseType: c.CaseType,
		Metadata: c.Metadata,
	}
}

// CreateCaseInput is the payload for opening a new case.
type CreateCaseInput struct {
	CaseNumber string                 `json:"case_number"`
	Title      string                 `json:"title"`
	CaseType   common_models.CaseType `json:"case_type"`
	AttorneyID string                 `json:"attorney_id"`
	ClientID   string                 `json:"client_id"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}
