package service

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/studentapp/backend/internal/config"
	"github.com/studentapp/backend/internal/models"
	"github.com/studentapp/backend/internal/repository"
	"github.com/studentapp/backend/internal/service/integration"
	"github.com/studentapp/backend/pkg/identifier"
)

type SubmissionService interface {
	Submit(ctx context.Context, req *models.SubmitAssignmentRequest) (*models.SubmitAssignmentResponse, error)
	List(ctx context.Context, classGrade *models.ClassGrade) ([]models.SubmissionView, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

type submissionService struct {
	submissionRepo repository.SubmissionRepository
	storageRepo    repository.StorageRepository
	eventPublisher integration.EventPublisher
	logger         zerolog.Logger
	config         config.UploadConfig
}

func NewSubmissionService(
	submissionRepo repository.SubmissionRepository,
	storageRepo repository.StorageRepository,
	eventPublisher integration.EventPublisher,
	logger zerolog.Logger,
	cfg config.UploadConfig,
) SubmissionService {
	return &submissionService{
		submissionRepo: submissionRepo,
		storageRepo:    storageRepo,
		eventPublisher: eventPublisher,
		logger:         logger,
		config:         cfg,
	}
}

func (s *submissionService) Submit(ctx context.Context, req *models.SubmitAssignmentRequest) (*models.SubmitAssignmentResponse, error) {
	switch {
	case req.StudentName == "":
		return nil, missingField("student_name")
	case req.ClassGrade == "":
		return nil, missingField("class_grade")
	case req.AssignmentTitle == "":
		return nil, missingField("assignment_title")
	case req.DueDate == "":
		return nil, missingField("due_date")
	case req.Filename == "" || len(req.FileContent) == 0:
		return nil, missingField("file")
	}

	grade, ok := models.ParseClassGrade(req.ClassGrade)
	if !ok {
		return nil, invalidField("class_grade", "must be between 1 and 12")
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(req.Filename), "."))
	if !s.extensionAllowed(ext) {
		return nil, invalidField("file", fmt.Sprintf("only %s files are allowed", strings.Join(s.config.AllowedExtensions, ", ")))
	}

	if req.FileSize > s.config.MaxFileSize {
		return nil, invalidField("file", fmt.Sprintf("too large, max size is %d bytes", s.config.MaxFileSize))
	}

	if _, err := time.Parse("2006-01-02", req.DueDate); err != nil {
		return nil, invalidField("due_date", "must be YYYY-MM-DD")
	}

	key := s.objectKey(grade, req.Filename)
	if err := s.uploadWithRetry(ctx, key, req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	viewableURL := s.storageRepo.ObjectURL(key)
	downloadURL := s.storageRepo.DownloadURL(key)

	submission := &models.Submission{
		StudentName:     req.StudentName,
		ClassGrade:      grade,
		AssignmentTitle: req.AssignmentTitle,
		DueDate:         req.DueDate,
		Filename:        req.Filename,
		FileURL:         viewableURL,
		ViewableURL:     viewableURL,
		DownloadURL:     downloadURL,
		ContentType:     req.ContentType,
		SubmittedAt:     time.Now().UTC(),
		Status:          models.SubmissionStatusPending.String(),
	}

	// Known gap: if this insert fails the uploaded object stays behind
	// as an orphan. There is no compensation step.
	id, err := s.submissionRepo.Create(ctx, submission)
	if err != nil {
		return nil, fmt.Errorf("failed to save submission: %w", err)
	}

	s.publishReceived(ctx, id.Hex(), submission)

	s.logger.Info().
		Str("submission_id", identifier.Encode(id)).
		Str("student_name", submission.StudentName).
		Str("assignment_title", submission.AssignmentTitle).
		Int64("size", req.FileSize).
		Msg("Submission received")

	return &models.SubmitAssignmentResponse{
		ID:          identifier.Encode(id),
		ViewableURL: viewableURL,
		DownloadURL: downloadURL,
		Status:      submission.Status,
	}, nil
}

func (s *submissionService) extensionAllowed(ext string) bool {
	for _, allowed := range s.config.AllowedExtensions {
		if ext == strings.ToLower(allowed) {
			return true
		}
	}
	return false
}

func (s *submissionService) objectKey(grade models.ClassGrade, filename string) string {
	safe := strings.ReplaceAll(filepath.Base(filename), " ", "_")
	return fmt.Sprintf("%s/class-%d/%s_%s", s.config.Folder, grade.Int(), uuid.New().String()[:8], safe)
}

func (s *submissionService) uploadWithRetry(ctx context.Context, key string, req *models.SubmitAssignmentRequest) error {
	attempts := s.config.RetryCount
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			s.logger.Warn().Int("attempt", i+1).Str("key", key).Msg("Retrying upload")
			time.Sleep(s.config.RetryDelay)
		}

		uploadCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
		lastErr = s.storageRepo.Upload(uploadCtx, key, bytes.NewReader(req.FileContent), req.FileSize, req.ContentType)
		cancel()

		if lastErr == nil {
			return nil
		}
	}

	return fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}

func (s *submissionService) publishReceived(ctx context.Context, id string, submission *models.Submission) {
	if s.eventPublisher == nil {
		return
	}

	event := &models.SubmissionReceivedEvent{
		SubmissionID:    id,
		StudentName:     submission.StudentName,
		ClassGrade:      submission.ClassGrade.Int(),
		AssignmentTitle: submission.AssignmentTitle,
		FileURL:         submission.FileURL,
		Timestamp:       time.Now().Unix(),
	}

	if err := s.eventPublisher.PublishSubmissionReceived(ctx, event); err != nil {
		// Best effort only; the submission itself already succeeded.
		s.logger.Error().Err(err).Str("submission_id", id).Msg("Failed to publish submission event")
	}
}

func (s *submissionService) List(ctx context.Context, classGrade *models.ClassGrade) ([]models.SubmissionView, error) {
	submissions, err := s.submissionRepo.GetAll(ctx, classGrade)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	views := make([]models.SubmissionView, 0, len(submissions))
	for _, sub := range submissions {
		views = append(views, models.SubmissionView{
			ID:              identifier.Encode(sub.ID),
			StudentName:     sub.StudentName,
			ClassGrade:      sub.ClassGrade,
			AssignmentTitle: sub.AssignmentTitle,
			DueDate:         sub.DueDate,
			Filename:        sub.Filename,
			FileURL:         sub.FileURL,
			ViewableURL:     sub.ViewableURL,
			DownloadURL:     sub.DownloadURL,
			ContentType:     sub.ContentType,
			SubmittedAt:     sub.SubmittedAt,
			Status:          sub.Status,
		})
	}

	return views, nil
}

func (s *submissionService) UpdateStatus(ctx context.Context, id, status string) error {
	if status == "" {
		return missingField("status")
	}

	oid, err := identifier.Decode(id)
	if err != nil {
		return ErrInvalidIdentifier
	}

	updated, err := s.submissionRepo.UpdateStatus(ctx, oid, status)
	if err != nil {
		return fmt.Errorf("failed to update submission status: %w", err)
	}
	if !updated {
		return ErrNotFound
	}

	s.logger.Info().Str("submission_id", id).Str("status", status).Msg("Submission status updated")
	return nil
}

func (s *submissionService) Delete(ctx context.Context, id string) error {
	oid, err := identifier.Decode(id)
	if err != nil {
		return ErrInvalidIdentifier
	}

	deleted, err := s.submissionRepo.Delete(ctx, oid)
	if err != nil {
		return fmt.Errorf("failed to delete submission: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}

	s.logger.Info().Str("submission_id", id).Msg("Submission deleted")
	return nil
}
