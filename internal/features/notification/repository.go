package notification

import (
	"context"
	"time"

	common_models "go-legal/internal/common/models"
	"go-legal/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *TransitionNotification) error
	ListForRecipient(ctx context.Context, recipientID string, role common_models.Role, limit int64) ([]TransitionNotification, error)
	MarkAsRead(ctx context.Context, id string, at time.Time) (bool, error)
}

type NotificationRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewNotificationRepository(mongodb *database.MongodbDB) NotificationRepository {
	return &NotificationRepositoryImpl{
		Collection: mongodb.DB.Collection("transition_notifications"),
	}
}

func (r *NotificationRepositoryImpl) Create(ctx context.Context, n *TransitionNotification) error {
	if n.ID.IsZero() {
		n.ID = primitive.NewObjectID()
	}
	_, err := r.Collection.InsertOne(ctx, n)
	return err
}

func (r *NotificationRepositoryImpl) ListForRecipient(ctx context.Context, recipientID string, role common_models.Role, limit int64) ([]TransitionNotification, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"recipient_id": recipientID},
		bson.M{"recipient_id": bson.M{"$in": bson.A{"", nil}}, "recipient_role": role},
	}}
	opts := options.Find().SetSort(bson.M{"created_at": -1}).SetLimit(limit)

	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []TransitionNotification
	if err = cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *NotificationRepositoryImpl) MarkAsRead(ctx context.Context, id string, at time.Time) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	res, err := r.Collection.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"is_read": true, "read_at": at}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}
