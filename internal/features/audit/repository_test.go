package audit

import (
	"context"
	"testing"

	common_models "go-legal/internal/common/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFilterQuerySetsOnlyGivenFields(t *testing.T) {
	assert.Equal(t, bson.M{}, filterQuery(context.Background(), LogFilter{}))

	q := filterQuery(context.Background(), LogFilter{Module: CaseModule, RecordID: "c1", Action: common_models.AuditActionTransition})
	assert.Equal(t, bson.M{"module": "cases", "record_id": "c1", "action": "TRANSITION"}, q)
}

func TestFilterQueryScopesToTenant(t *testing.T) {
	tenant := primitive.NewObjectID()
	ctx := context.WithValue(context.Background(), common_models.TenantIDKey, tenant.Hex())

	q := filterQuery(ctx, LogFilter{RecordID: "c1"})
	assert.Equal(t, bson.M{"tenant_id": tenant, "record_id": "c1"}, q)

	bad := context.WithValue(context.Background(), common_models.TenantIDKey, "not-an-id")
	assert.Equal(t, bson.M{}, filterQuery(bad, LogFilter{}))
}
