package transition

import (
	"testing"

	common_models "go-legal/internal/common/models"
	"go-legal/pkg/condition"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStoredApprovalReplaysNestedMetadata(t *testing.T) {
	req := TransitionRequest{
		CaseID:      primitive.NewObjectID().Hex(),
		TargetPhase: common_models.PhaseResolution,
		ActorID:     "att-1",
		ActorRole:   common_models.RoleAttorney,
		Reason:      "settled",
		Metadata: map[string]interface{}{
			"settlementTerms": map[string]interface{}{
				"amount":  250000.0,
				"payer":   "insurer",
				"parties": []interface{}{"plaintiff", map[string]interface{}{"role": "defendant"}},
			},
			"documentsFiled": true,
		},
	}
	approval := TransitionApproval{
		ID:          primitive.NewObjectID(),
		CaseID:      req.CaseID,
		TargetPhase: req.TargetPhase,
		RequestedBy: req.ActorID,
		Request:     req,
		Status:      common_models.ApprovalStatusPending,
	}

	raw, err := bson.Marshal(approval)
	require.NoError(t, err)
	var stored TransitionApproval
	require.NoError(t, bson.Unmarshal(raw, &stored))

	got := plainApproval(&stored)
	assert.Equal(t, req, got.Request)

	nested := common_models.RuleCondition{
		Field:    "settlementTerms",
		Operator: condition.OperatorEquals,
		Value:    req.Metadata["settlementTerms"],
	}
	assert.True(t, condition.Evaluate(nested, got.Request.Metadata))
}
