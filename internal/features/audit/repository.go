package audit

import (
	"context"

	common_models "go-legal/internal/common/models"
	"go-legal/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LogFilter narrows an audit trail query. Empty fields match everything.
type LogFilter struct {
	Module   string
	RecordID string
	Action   common_models.AuditAction
}

type AuditRepository interface {
	Create(ctx context.Context, log common_models.AuditLog) error
	List(ctx context.Context, filter LogFilter, limit, offset int64) ([]common_models.AuditLog, error)
	ListByRecord(ctx context.Context, module, recordID string, limit, offset int64) ([]common_models.AuditLog, error)
}

type AuditRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewAuditRepository(mongodb *database.MongodbDB) AuditRepository {
	return &AuditRepositoryImpl{
		Collection: mongodb.DB.Collection("audit_logs"),
	}
}

// EnsureIndexes creates the index behind per-record trails.
func (r *AuditRepositoryImpl) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "tenant_id", Value: 1},
			{Key: "module", Value: 1},
			{Key: "record_id", Value: 1},
			{Key: "timestamp", Value: -1},
		},
	})
	return err
}

func (r *AuditRepositoryImpl) Create(ctx context.Context, log common_models.AuditLog) error {
	if oid, ok := tenantFromContext(ctx); ok {
		log.TenantID = oid
	}
	_, err := r.Collection.InsertOne(ctx, log)
	return err
}

func (r *AuditRepositoryImpl) List(ctx context.Context, filter LogFilter, limit, offset int64) ([]common_models.AuditLog, error) {
	return r.find(ctx, filterQuery(ctx, filter), limit, offset)
}

// ListByRecord returns the trail of one record, newest first.
func (r *AuditRepositoryImpl) ListByRecord(ctx context.Context, module, recordID string, limit, offset int64) ([]common_models.AuditLog, error) {
	if module == "" || recordID == "" {
		return []common_models.AuditLog{}, nil
	}
	return r.find(ctx, filterQuery(ctx, LogFilter{Module: module, RecordID: recordID}), limit, offset)
}

func (r *AuditRepositoryImpl) find(ctx context.Context, query bson.M, limit, offset int64) ([]common_models.AuditLog, error) {
	opts := options.Find().SetLimit(limit).SetSkip(offset).SetSort(bson.D{{Key: "timestamp", Value: -1}})

	cursor, err := r.Collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	logs := []common_models.AuditLog{}
	if err = cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// filterQuery only ever sets plain string equality, so caller input cannot
// smuggle operators into the query.
func filterQuery(ctx context.Context, f LogFilter) bson.M {
	query := bson.M{}
	if oid, ok := tenantFromContext(ctx); ok {
		query["tenant_id"] = oid
	}
	if f.Module != "" {
		query["module"] = f.Module
	}
	if f.RecordID != "" {
		query["record_id"] = f.RecordID
	}
	if f.Action != "" {
		query["action"] = string(f.Action)
	}
	return query
}

func tenantFromContext(ctx context.Context) (primitive.ObjectID, bool) {
	tenantID, ok := ctx.Value(common_models.TenantIDKey).(string)
	if !ok || tenantID == "" {
		return primitive.NilObjectID, false
	}
	oid, err := primitive.ObjectIDFromHex(tenantID)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}
