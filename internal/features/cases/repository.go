package cases

import (
	"context"
	"errors"
	"strings"
	"time"

	common_models "go-legal/internal/common/models"
	"go-legal/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrVersionConflict is returned when a write loses against a concurrent one.
var ErrVersionConflict = errors.New("case was modified concurrently")

type CaseRepository interface {
	Create(ctx context.Context, c *Case) error
	GetByID(ctx context.Context, id string) (*Case, error)
	List(ctx context.Context, filter map[string]interface{}, limit, offset int64) ([]Case, error)
	// UpdatePhase sets phase and merges metadata if the stored version still equals expectedVersion.
	UpdatePhase(ctx context.Context, id string, expectedVersion int64, phase common_models.Phase, metadata map[string]interface{}) error
	// UpdateStatus sets status (and closed_at when given) under the same version check.
	UpdateStatus(ctx context.Context, id string, expectedVersion int64, status common_models.CaseStatus, closedAt *time.Time) error
}

type CaseRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewCaseRepository(mongodb *database.MongodbDB) CaseRepository {
	return &CaseRepositoryImpl{
		Collection: mongodb.DB.Collection("cases"),
	}
}

func (r *CaseRepositoryImpl) Create(ctx context.Context, c *Case) error {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	if tenantID, ok := ctx.Value(common_models.TenantIDKey).(string); ok && tenantID != "" {
		if oid, err := primitive.ObjectIDFromHex(tenantID); err == nil {
			c.TenantID = oid
		}
	}
	_, err := r.Collection.InsertOne(ctx, c)
	return err
}

func (r *CaseRepositoryImpl) GetByID(ctx context.Context, id string) (*Case, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil // a malformed id can never match a case
	}
	var c Case
	err = r.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&c)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	c.Metadata = database.PlainMetadata(c.Metadata)
	return &c, nil
}

func (r *CaseRepositoryImpl) List(ctx context.Context, filter map[string]interface{}, limit, offset int64) ([]Case, error) {
	opts := options.Find().SetLimit(limit).SetSkip(offset).SetSort(bson.M{"updated_at": -1})

	query := bson.M{}
	for k, v := range filter {
		if v == nil {
			continue
		}
		if str, ok := v.(string); ok && str == "" {
			continue
		}
		query[k] = v
	}

	cursor, err := r.Collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []Case
	if err = cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	for i := range result {
		result[i].Metadata = database.PlainMetadata(result[i].Metadata)
	}
	return result, nil
}

func (r *CaseRepositoryImpl) UpdatePhase(ctx context.Context, id string, expectedVersion int64, phase common_models.Phase, metadata map[string]interface{}) error {
	set := bson.M{
		"phase":      phase,
		"updated_at": time.Now(),
	}
	for k, v := range metadata {
		if !SafeMetadataKey(k) {
			continue
		}
		set["metadata."+k] = v
	}
	return r.casUpdate(ctx, id, expectedVersion, set)
}

func (r *CaseRepositoryImpl) UpdateStatus(ctx context.Context, id string, expectedVersion int64, status common_models.CaseStatus, closedAt *time.Time) error {
	set := bson.M{
		"status":     status,
		"updated_at": time.Now(),
	}
	if closedAt != nil {
		set["closed_at"] = *closedAt
	}
	return r.casUpdate(ctx, id, expectedVersion, set)
}

func (r *CaseRepositoryImpl) casUpdate(ctx context.Context, id string, expectedVersion int64, set bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	res, err := r.Collection.UpdateOne(ctx,
		bson.M{"_id": oid, "version": expectedVersion},
		bson.M{"$set": set, "$inc": bson.M{"version": 1}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrVersionConflict
	}
	return nil
}

// EnsureIndexes creates the indexes used by case listing.
func (r *CaseRepositoryImpl) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "case_number", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "attorney_id", Value: 1}, {Key: "phase", Value: 1}}},
	})
	return err
}

// SafeMetadataKey rejects keys that Mongo would read as an operator or a path.
func SafeMetadataKey(k string) bool {
	return k != "" && !strings.HasPrefix(k, "$") && !strings.Contains(k, ".")
}
