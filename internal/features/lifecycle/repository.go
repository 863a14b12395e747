package lifecycle

import (
	"context"

	"go-legal/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type EventRepository interface {
	Append(ctx context.Context, event *LifecycleEvent) error
	ListByCase(ctx context.Context, caseID string, types ...EventType) ([]LifecycleEvent, error)
}

type EventRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewEventRepository(mongodb *database.MongodbDB) EventRepository {
	return &EventRepositoryImpl{
		Collection: mongodb.DB.Collection("lifecycle_events"),
	}
}

func (r *EventRepositoryImpl) Append(ctx context.Context, event *LifecycleEvent) error {
	if event.ID.IsZero() {
		event.ID = primitive.NewObjectID()
	}
	_, err := r.Collection.InsertOne(ctx, event)
	return err
}

func (r *EventRepositoryImpl) ListByCase(ctx context.Context, caseID string, types ...EventType) ([]LifecycleEvent, error) {
	filter := bson.M{"case_id": caseID}
	if len(types) > 0 {
		filter["type"] = bson.M{"$in": types}
	}
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []LifecycleEvent
	if err = cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}
