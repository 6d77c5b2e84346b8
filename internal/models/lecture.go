package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LectureGroup aggregates all video-lecture content for one
// (class_grade, subject) pair in a single document.
type LectureGroup struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ClassGrade ClassGrade         `bson:"class_grade" json:"class_grade"`
	Subject    string             `bson:"subject" json:"subject"`
	Chapters   []Chapter          `bson:"chapters" json:"chapters"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}

type Chapter struct {
	Name   string  `bson:"name" json:"name"`
	Videos []Video `bson:"videos" json:"videos"`
}

type Video struct {
	Title       string `bson:"title" json:"title"`
	VideoURL    string `bson:"video_url" json:"video_url"`
	PDFURL      string `bson:"pdf_url,omitempty" json:"pdf_url,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

// ChapterContent is the response-friendly shape the mobile and admin
// clients consume: videos and PDFs split into parallel lists.
type ChapterContent struct {
	Videos []VideoEntry `json:"videos"`
	PDFs   []PDFEntry   `json:"pdfs"`
}

type VideoEntry struct {
	Title       string `json:"title"`
	VideoURL    string `json:"video_url"`
	Description string `json:"description,omitempty"`
}

type PDFEntry struct {
	Title       string `json:"title"`
	PDFURL      string `json:"pdf_url"`
	Description string `json:"description,omitempty"`
}

// LectureListing maps subject -> chapter -> content.
type LectureListing map[string]map[string]ChapterContent
