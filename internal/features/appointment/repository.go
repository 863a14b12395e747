package appointment

import (
	"context"

	"go-legal/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentRepository interface {
	Create(ctx context.Context, a *Appointment) error
	ListByCase(ctx context.Context, caseID string) ([]Appointment, error)
}

type AppointmentRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewAppointmentRepository(mongodb *database.MongodbDB) AppointmentRepository {
	return &AppointmentRepositoryImpl{
		Collection: mongodb.DB.Collection("appointments"),
	}
}

func (r *AppointmentRepositoryImpl) Create(ctx context.Context, a *Appointment) error {
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	_, err := r.Collection.InsertOne(ctx, a)
	return err
}

func (r *AppointmentRepositoryImpl) ListByCase(ctx context.Context, caseID string) ([]Appointment, error) {
	opts := options.Find().SetSort(bson.M{"start_time": 1})
	cursor, err := r.Collection.Find(ctx, bson.M{"case_id": caseID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []Appointment
	if err = cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}
