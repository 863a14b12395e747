package appointment

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Kind string

const (
	KindCourtAppearance Kind = "court_appearance"
	KindMediation       Kind = "mediation"
	KindConsultation    Kind = "consultation"
	KindMeeting         Kind = "meeting"
)

type Appointment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CaseID      string             `bson:"case_id" json:"case_id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Kind        Kind               `bson:"kind" json:"kind"`
	AttorneyID  string             `bson:"attorney_id" json:"attorney_id"`
	ClientID    string             `bson:"client_id,omitempty" json:"client_id,omitempty"`
	StartTime   time.Time          `bson:"start_time" json:"start_time"`
	EndTime     time.Time          `bson:"end_time" json:"end_time"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

type NewAppointment struct {
	CaseID      string    `bson:"case_id" json:"case_id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Kind        Kind      `bson:"kind" json:"kind"`
	AttorneyID  string    `bson:"attorney_id" json:"attorney_id"`
	ClientID    string    `bson:"client_id,omitempty" json:"client_id,omitempty"`
	StartTime   time.Time `bson:"start_time" json:"start_time"`
	EndTime     time.Time `bson:"end_time" json:"end_time"`
}
