package transition

import (
	"context"
	"errors"

	common_models "go-legal/internal/common/models"
	"go-legal/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotPending is returned by Decide when the approval has already left Pending.
var ErrNotPending = errors.New("approval is not pending")

type HistoryRepository interface {
	Append(ctx context.Context, h *TransitionHistory) error
	ListByCase(ctx context.Context, caseID string) ([]TransitionHistory, error)
}

type HistoryRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewHistoryRepository(mongodb *database.MongodbDB) HistoryRepository {
	return &HistoryRepositoryImpl{
		Collection: mongodb.DB.Collection("transition_history"),
	}
}

func (r *HistoryRepositoryImpl) Append(ctx context.Context, h *TransitionHistory) error {
	if h.ID.IsZero() {
		h.ID = primitive.NewObjectID()
	}
	_, err := r.Collection.InsertOne(ctx, h)
	return err
}

func (r *HistoryRepositoryImpl) ListByCase(ctx context.Context, caseID string) ([]TransitionHistory, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.Collection.Find(ctx, bson.M{"case_id": caseID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var history []TransitionHistory
	if err = cursor.All(ctx, &history); err != nil {
		return nil, err
	}
	for i := range history {
		history[i].Metadata = database.PlainMetadata(history[i].Metadata)
	}
	return history, nil
}

type ApprovalRepository interface {
	Create(ctx context.Context, a *TransitionApproval) error
	GetByID(ctx context.Context, id string) (*TransitionApproval, error)
	// Decide moves a Pending approval to d.Status. It returns ErrNotPending
	// when the approval is missing or already decided.
	Decide(ctx context.Context, id string, d Decision) (*TransitionApproval, error)
	// ListPending returns pending approvals, only those of requestedBy when it is set.
	ListPending(ctx context.Context, requestedBy string) ([]TransitionApproval, error)
}

type ApprovalRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewApprovalRepository(mongodb *database.MongodbDB) ApprovalRepository {
	return &ApprovalRepositoryImpl{
		Collection: mongodb.DB.Collection("transition_approvals"),
	}
}

func (r *ApprovalRepositoryImpl) Create(ctx context.Context, a *TransitionApproval) error {
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	_, err := r.Collection.InsertOne(ctx, a)
	return err
}

func (r *ApprovalRepositoryImpl) GetByID(ctx context.Context, id string) (*TransitionApproval, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var a TransitionApproval
	err = r.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&a)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return plainApproval(&a), nil
}

func (r *ApprovalRepositoryImpl) Decide(ctx context.Context, id string, d Decision) (*TransitionApproval, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotPending
	}

	update := bson.M{"$set": bson.M{
		"status":           d.Status,
		"approved_by":      d.ActorID,
		"approved_by_role": d.Role,
		"decision_reason":  d.Reason,
		"decided_at":       d.DecidedAt,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var a TransitionApproval
	err = r.Collection.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "status": common_models.ApprovalStatusPending},
		update, opts,
	).Decode(&a)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotPending
		}
		return nil, err
	}
	return plainApproval(&a), nil
}

func (r *ApprovalRepositoryImpl) ListPending(ctx context.Context, requestedBy string) ([]TransitionApproval, error) {
	filter := bson.M{"status": common_models.ApprovalStatusPending}
	if requestedBy != "" {
		filter["requested_by"] = requestedBy
	}
	cursor, err := r.Collection.Find(ctx, filter, options.Find().SetSort(bson.M{"created_at": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var approvals []TransitionApproval
	if err = cursor.All(ctx, &approvals); err != nil {
		return nil, err
	}
	for i := range approvals {
		plainApproval(&approvals[i])
	}
	return approvals, nil
}

// plainApproval restores the stored request's metadata to plain Go values so
// it replays exactly as submitted.
func plainApproval(a *TransitionApproval) *TransitionApproval {
	a.Request.Metadata = database.PlainMetadata(a.Request.Metadata)
	return a
}

// EnsureIndexes creates the history and approval lookup indexes.
func EnsureIndexes(ctx context.Context, mongodb *database.MongodbDB) error {
	if _, err := mongodb.DB.Collection("transition_history").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "case_id", Value: 1}, {Key: "timestamp", Value: 1}},
	}); err != nil {
		return err
	}
	_, err := mongodb.DB.Collection("transition_approvals").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "status", Value: 1}, {Key: "requested_by", Value: 1}},
	})
	return err
}
