package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Goal is a learner-defined study target. Deadline counts weeks from
// creation (1 to 5) and Level pins the goal to a course tier; both are
// optional.
type Goal struct {
	ObjectID  primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID        string             `bson:"id" json:"id"`
	UserID    string             `bson:"userId" json:"userId"`
	Text      string             `bson:"text" json:"text"`
	Progress  int                `bson:"progress" json:"progress"`
	Deadline  *int               `bson:"deadline,omitempty" json:"deadline,omitempty"`
	Level     *Level             `bson:"level,omitempty" json:"level,omitempty"`
	Completed bool               `bson:"completed" json:"completed"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
