package sideeffect

import (
	"context"
	"time"

	"go-legal/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OutboxRepository interface {
	Save(ctx context.Context, entry *OutboxEntry) error
	ListPending(ctx context.Context, limit int64) ([]OutboxEntry, error)
	MarkDone(ctx context.Context, id primitive.ObjectID) error
	RecordFailure(ctx context.Context, id primitive.ObjectID, lastErr string, dead bool) error
}

type OutboxRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewOutboxRepository(mongodb *database.MongodbDB) OutboxRepository {
	return &OutboxRepositoryImpl{
		Collection: mongodb.DB.Collection("side_effect_outbox"),
	}
}

func (r *OutboxRepositoryImpl) Save(ctx context.Context, entry *OutboxEntry) error {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	_, err := r.Collection.InsertOne(ctx, entry)
	return err
}

func (r *OutboxRepositoryImpl) ListPending(ctx context.Context, limit int64) ([]OutboxEntry, error) {
	opts := options.Find().SetSort(bson.M{"created_at": 1}).SetLimit(limit)
	cursor, err := r.Collection.Find(ctx, bson.M{"status": OutboxStatusPending}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []OutboxEntry
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *OutboxRepositoryImpl) MarkDone(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.Collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": OutboxStatusDone, "updated_at": time.Now()}},
	)
	return err
}

func (r *OutboxRepositoryImpl) RecordFailure(ctx context.Context, id primitive.ObjectID, lastErr string, dead bool) error {
	set := bson.M{"last_error": lastErr, "updated_at": time.Now()}
	if dead {
		set["status"] = OutboxStatusDead
	}
	_, err := r.Collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set, "$inc": bson.M{"attempts": 1}},
	)
	return err
}
