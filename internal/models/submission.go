package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Submission struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	StudentName     string             `bson:"student_name" json:"student_name"`
	ClassGrade      ClassGrade         `bson:"class_grade" json:"class_grade"`
	AssignmentTitle string             `bson:"assignment_title" json:"assignment_title"`
	DueDate         string             `bson:"due_date" json:"due_date"`
	Filename        string             `bson:"filename" json:"filename"`
	FileURL         string             `bson:"file_url" json:"file_url"`
	ViewableURL     string             `bson:"viewable_url" json:"viewable_url"`
	DownloadURL     string             `bson:"download_url" json:"download_url"`
	ContentType     string             `bson:"content_type" json:"content_type"`
	SubmittedAt     time.Time          `bson:"submitted_at" json:"submitted_at"`
	Status          string             `bson:"status" json:"status"`
}

type SubmissionStatus string

const (
	SubmissionStatusPending  SubmissionStatus = "Pending"
	SubmissionStatusApproved SubmissionStatus = "Approved"
	SubmissionStatusRejected SubmissionStatus = "Rejected"
)

func (ss SubmissionStatus) String() string {
	return string(ss)
}
