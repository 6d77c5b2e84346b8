package models

type SubmissionReceivedEvent struct {
	SubmissionID    string `json:"submission_id"`
	StudentName     string `json:"student_name"`
	ClassGrade      int    `json:"class_grade"`
	AssignmentTitle string `json:"assignment_title"`
	FileURL         string `json:"file_url"`
	Timestamp       int64  `json:"timestamp"`
}
