package service

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/studentapp/backend/internal/config"
	"github.com/studentapp/backend/internal/models"
)

type fakeSubmissionRepo struct {
	submissions []models.Submission
}

func (f *fakeSubmissionRepo) Create(ctx context.Context, submission *models.Submission) (primitive.ObjectID, error) {
	submission.ID = primitive.NewObjectID()
	f.submissions = append(f.submissions, *submission)
	return submission.ID, nil
}

func (f *fakeSubmissionRepo) GetAll(ctx context.Context, classGrade *models.ClassGrade) ([]models.Submission, error) {
	var out []models.Submission
	for _, s := range f.submissions {
		if classGrade != nil && s.ClassGrade != *classGrade {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSubmissionRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (bool, error) {
	for i := range f.submissions {
		if f.submissions[i].ID == id && f.submissions[i].Status != status {
			f.submissions[i].Status = status
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSubmissionRepo) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	for i := range f.submissions {
		if f.submissions[i].ID == id {
			f.submissions = append(f.submissions[:i], f.submissions[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// fakeStorage fails the first failCount uploads, then succeeds.
type fakeStorage struct {
	failCount int
	attempts  int
	keys      []string
}

func (f *fakeStorage) Upload(ctx context.Context, key string, data io.Reader, size int64, contentType string) error {
	f.attempts++
	if f.attempts <= f.failCount {
		return errors.New("connection refused")
	}
	f.keys = append(f.keys, key)
	return nil
}

func (f *fakeStorage) Delete(ctx context.Context, key string) error { return nil }

func (f *fakeStorage) ObjectURL(key string) string {
	return "https://files.example.com/bucket/" + key
}

func (f *fakeStorage) DownloadURL(key string) string {
	return f.ObjectURL(key) + "?response-content-disposition=attachment"
}

type fakePublisher struct {
	events []*models.SubmissionReceivedEvent
}

func (f *fakePublisher) PublishSubmissionReceived(ctx context.Context, event *models.SubmissionReceivedEvent) error {
	f.events = append(f.events, event)
	return nil
}

func (f *fakePublisher) Close() error { return nil }

func uploadConfig() config.UploadConfig {
	return config.UploadConfig{
		MaxFileSize:       1024,
		AllowedExtensions: []string{"pdf", "docx"},
		Folder:            "assignments",
		RetryCount:        3,
		RetryDelay:        time.Millisecond,
		Timeout:           time.Second,
	}
}

func validSubmitRequest() *models.SubmitAssignmentRequest {
	return &models.SubmitAssignmentRequest{
		StudentName:     "Alice",
		ClassGrade:      "9",
		AssignmentTitle: "Essay on photosynthesis",
		DueDate:         "2026-09-15",
		Filename:        "essay.pdf",
		ContentType:     "application/pdf",
		FileSize:        512,
		FileContent:     make([]byte, 512),
	}
}

func TestSubmissionServiceSubmit(t *testing.T) {
	repo := &fakeSubmissionRepo{}
	storage := &fakeStorage{}
	publisher := &fakePublisher{}
	svc := NewSubmissionService(repo, storage, publisher, zerolog.Nop(), uploadConfig())

	response, err := svc.Submit(context.Background(), validSubmitRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, response.ID)
	assert.Equal(t, models.SubmissionStatusPending.String(), response.Status)
	assert.Contains(t, response.ViewableURL, "https://files.example.com/bucket/assignments/class-9/")
	assert.Contains(t, response.DownloadURL, "response-content-disposition=attachment")

	require.Len(t, repo.submissions, 1)
	saved := repo.submissions[0]
	assert.Equal(t, "Alice", saved.StudentName)
	assert.Equal(t, models.ClassGrade(9), saved.ClassGrade)
	assert.Equal(t, models.SubmissionStatusPending.String(), saved.Status)
	assert.Equal(t, response.ViewableURL, saved.ViewableURL)
	assert.Equal(t, response.DownloadURL, saved.DownloadURL)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, response.ID, publisher.events[0].SubmissionID)
}

func TestSubmissionServiceSubmitMissingFields(t *testing.T) {
	svc := NewSubmissionService(&fakeSubmissionRepo{}, &fakeStorage{}, nil, zerolog.Nop(), uploadConfig())

	tests := []struct {
		name      string
		mutate    func(*models.SubmitAssignmentRequest)
		wantField string
	}{
		{name: "student_name", mutate: func(r *models.SubmitAssignmentRequest) { r.StudentName = "" }, wantField: "student_name"},
		{name: "class_grade", mutate: func(r *models.SubmitAssignmentRequest) { r.ClassGrade = "" }, wantField: "class_grade"},
		{name: "assignment_title", mutate: func(r *models.SubmitAssignmentRequest) { r.AssignmentTitle = "" }, wantField: "assignment_title"},
		{name: "due_date", mutate: func(r *models.SubmitAssignmentRequest) { r.DueDate = "" }, wantField: "due_date"},
		{name: "file", mutate: func(r *models.SubmitAssignmentRequest) { r.Filename = ""; r.FileContent = nil }, wantField: "file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSubmitRequest()
			tt.mutate(req)

			_, err := svc.Submit(context.Background(), req)
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}

func TestSubmissionServiceSubmitRejectsExtension(t *testing.T) {
	svc := NewSubmissionService(&fakeSubmissionRepo{}, &fakeStorage{}, nil, zerolog.Nop(), uploadConfig())

	req := validSubmitRequest()
	req.Filename = "essay.txt"

	_, err := svc.Submit(context.Background(), req)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "file", validationErr.Field)
}

func TestSubmissionServiceSubmitSizeLimit(t *testing.T) {
	svc := NewSubmissionService(&fakeSubmissionRepo{}, &fakeStorage{}, nil, zerolog.Nop(), uploadConfig())

	t.Run("at limit", func(t *testing.T) {
		req := validSubmitRequest()
		req.FileSize = 1024
		req.FileContent = make([]byte, 1024)

		_, err := svc.Submit(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("over limit", func(t *testing.T) {
		req := validSubmitRequest()
		req.FileSize = 1025
		req.FileContent = make([]byte, 1025)

		_, err := svc.Submit(context.Background(), req)
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "file", validationErr.Field)
	})
}

func TestSubmissionServiceSubmitBadDueDate(t *testing.T) {
	svc := NewSubmissionService(&fakeSubmissionRepo{}, &fakeStorage{}, nil, zerolog.Nop(), uploadConfig())

	req := validSubmitRequest()
	req.DueDate = "15/09/2026"

	_, err := svc.Submit(context.Background(), req)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "due_date", validationErr.Field)
}

func TestSubmissionServiceSubmitRetriesUpload(t *testing.T) {
	repo := &fakeSubmissionRepo{}
	storage := &fakeStorage{failCount: 2}
	svc := NewSubmissionService(repo, storage, nil, zerolog.Nop(), uploadConfig())

	_, err := svc.Submit(context.Background(), validSubmitRequest())
	require.NoError(t, err)
	assert.Equal(t, 3, storage.attempts)
	assert.Len(t, repo.submissions, 1)
}

func TestSubmissionServiceSubmitUploadExhausted(t *testing.T) {
	repo := &fakeSubmissionRepo{}
	storage := &fakeStorage{failCount: 10}
	svc := NewSubmissionService(repo, storage, nil, zerolog.Nop(), uploadConfig())

	_, err := svc.Submit(context.Background(), validSubmitRequest())
	assert.ErrorIs(t, err, ErrUploadFailed)
	assert.Equal(t, 3, storage.attempts)
	assert.Empty(t, repo.submissions, "nothing persisted when the upload never succeeds")
}

func TestSubmissionServiceUpdateStatus(t *testing.T) {
	repo := &fakeSubmissionRepo{}
	svc := NewSubmissionService(repo, &fakeStorage{}, nil, zerolog.Nop(), uploadConfig())

	response, err := svc.Submit(context.Background(), validSubmitRequest())
	require.NoError(t, err)

	err = svc.UpdateStatus(context.Background(), response.ID, models.SubmissionStatusApproved.String())
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionStatusApproved.String(), repo.submissions[0].Status)

	t.Run("missing status", func(t *testing.T) {
		err := svc.UpdateStatus(context.Background(), response.ID, "")
		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("malformed id", func(t *testing.T) {
		err := svc.UpdateStatus(context.Background(), "not-an-id", models.SubmissionStatusRejected.String())
		assert.ErrorIs(t, err, ErrInvalidIdentifier)
	})

	t.Run("unknown id", func(t *testing.T) {
		err := svc.UpdateStatus(context.Background(), primitive.NewObjectID().Hex(), models.SubmissionStatusRejected.String())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSubmissionServiceListAndDelete(t *testing.T) {
	repo := &fakeSubmissionRepo{}
	svc := NewSubmissionService(repo, &fakeStorage{}, nil, zerolog.Nop(), uploadConfig())

	response, err := svc.Submit(context.Background(), validSubmitRequest())
	require.NoError(t, err)

	other := validSubmitRequest()
	other.ClassGrade = "11"
	_, err = svc.Submit(context.Background(), other)
	require.NoError(t, err)

	all, err := svc.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	grade := models.ClassGrade(9)
	filtered, err := svc.List(context.Background(), &grade)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, models.ClassGrade(9), filtered[0].ClassGrade)

	require.NoError(t, svc.Delete(context.Background(), response.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), response.ID), ErrNotFound)
}
