package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Student struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Name       string             `bson:"name" json:"name"`
	Username   string             `bson:"username" json:"username"`
	Password   string             `bson:"password" json:"-"` // bcrypt hash
	ClassGrade ClassGrade         `bson:"class_grade" json:"class_grade"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}

type Admin struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"` // bcrypt hash, provisioned out-of-band
}
