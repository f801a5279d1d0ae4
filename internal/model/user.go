package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Progress tracks how far a learner has advanced through each course
// level. Each field holds a percentage contribution; Total is always
// derived from the four level fields, never stored independently.
type Progress struct {
	Foundation   int `bson:"foundation" json:"foundation"`
	Beginner     int `bson:"beginner" json:"beginner"`
	Intermediate int `bson:"intermediate" json:"intermediate"`
	Advance      int `bson:"advance" json:"advance"`
	Total        int `bson:"total" json:"total"`
}

// ComputeTotal recalculates Total from the four level fields.
func (p *Progress) ComputeTotal() {
	p.Total = p.Foundation + p.Beginner + p.Intermediate + p.Advance
}

type User struct {
	ObjectID  primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID        string             `bson:"id" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Age       int                `bson:"age" json:"age"`
	Phone     string             `bson:"phone" json:"phone"`
	Username  string             `bson:"username" json:"username"`
	Password  string             `bson:"password" json:"password"`
	Admin     bool               `bson:"admin" json:"admin"`
	Progress  Progress           `bson:"progress" json:"progress"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
