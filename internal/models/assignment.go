package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Assignment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	DueDate     string             `bson:"due_date" json:"due_date"` // YYYY-MM-DD
	ClassGrade  ClassGrade         `bson:"class_grade" json:"class_grade"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

type Schedule struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ClassGrade ClassGrade         `bson:"class_grade" json:"class_grade"`
	Subject    string             `bson:"subject" json:"subject"`
	Day        string             `bson:"day" json:"day"`
	StartTime  string             `bson:"start_time" json:"start_time"`
	EndTime    string             `bson:"end_time" json:"end_time"`
}

type Query struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	StudentName string             `bson:"studentName" json:"studentName"`
	ClassGrade  ClassGrade         `bson:"class_grade" json:"class_grade"`
	Query       string             `bson:"query" json:"query"`
	SubmittedAt time.Time          `bson:"submitted_at" json:"submitted_at"`
}
