package models

import "time"

// Data Transfer Objects

type AdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type StudentLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type StudentProfileResponse struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Username   string     `json:"username"`
	ClassGrade ClassGrade `json:"class_grade"`
}

type CreateStudentRequest struct {
	Name       string `json:"name"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	ClassGrade string `json:"class_grade"`
}

type CreateStudentResponse struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Username   string     `json:"username"`
	ClassGrade ClassGrade `json:"class_grade"`
}

type StudentView struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Username   string     `json:"username"`
	ClassGrade ClassGrade `json:"class_grade"`
	CreatedAt  time.Time  `json:"created_at"`
}

type CreateAssignmentRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	ClassGrade  string `json:"class_grade"`
}

type AssignmentView struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     string     `json:"due_date"`
	ClassGrade  ClassGrade `json:"class_grade"`
	CreatedAt   time.Time  `json:"created_at"`
}

type SubmitAssignmentRequest struct {
	StudentName     string `json:"student_name"`
	ClassGrade      string `json:"class_grade"`
	AssignmentTitle string `json:"assignment_title"`
	DueDate         string `json:"due_date"`
	Filename        string `json:"-"`
	ContentType     string `json:"-"`
	FileSize        int64  `json:"-"`
	FileContent     []byte `json:"-"`
}

type SubmitAssignmentResponse struct {
	ID          string `json:"id"`
	ViewableURL string `json:"viewable_url"`
	DownloadURL string `json:"download_url"`
	Status      string `json:"status"`
}

type SubmissionView struct {
	ID              string     `json:"id"`
	StudentName     string     `json:"student_name"`
	ClassGrade      ClassGrade `json:"class_grade"`
	AssignmentTitle string     `json:"assignment_title"`
	DueDate         string     `json:"due_date"`
	Filename        string     `json:"filename"`
	FileURL         string     `json:"file_url"`
	ViewableURL     string     `json:"viewable_url"`
	DownloadURL     string     `json:"download_url"`
	ContentType     string     `json:"content_type"`
	SubmittedAt     time.Time  `json:"submitted_at"`
	Status          string     `json:"status"`
}

type UpdateSubmissionStatusRequest struct {
	Status string `json:"status"`
}

type AddVideoRequest struct {
	ClassGrade  string `json:"class_grade"`
	Subject     string `json:"subject"`
	Chapter     string `json:"chapter"`
	Title       string `json:"title"`
	VideoURL    string `json:"video_url"`
	PDFURL      string `json:"pdf_url"`
	Description string `json:"description"`
}

type DeleteVideoRequest struct {
	ClassGrade string `json:"class_grade"`
	Subject    string `json:"subject"`
	Chapter    string `json:"chapter"`
	Title      string `json:"title"`
}

type DeleteChapterRequest struct {
	ClassGrade string `json:"class_grade"`
	Subject    string `json:"subject"`
	Chapter    string `json:"chapter"`
}

type CreateScheduleRequest struct {
	ClassGrade string `json:"class_grade"`
	Subject    string `json:"subject"`
	Day        string `json:"day"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
}

type ScheduleView struct {
	ID         string     `json:"id"`
	ClassGrade ClassGrade `json:"class_grade"`
	Subject    string     `json:"subject"`
	Day        string     `json:"day"`
	StartTime  string     `json:"start_time"`
	EndTime    string     `json:"end_time"`
}

type CreateQueryRequest struct {
	StudentName string `json:"studentName"`
	ClassGrade  string `json:"class_grade"`
	Query       string `json:"query"`
}

type QueryView struct {
	ID          string     `json:"id"`
	StudentName string     `json:"studentName"`
	ClassGrade  ClassGrade `json:"class_grade"`
	Query       string     `json:"query"`
	SubmittedAt time.Time  `json:"submitted_at"`
}
