package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/studentapp/backend/internal/models"
	"github.com/studentapp/backend/internal/repository"
	"github.com/studentapp/backend/pkg/identifier"
)

type AssignmentService interface {
	Create(ctx context.Context, req *models.CreateAssignmentRequest) (*models.AssignmentView, error)
	List(ctx context.Context, classGrade *models.ClassGrade) ([]models.AssignmentView, error)
	Delete(ctx context.Context, id string) error
}

type assignmentService struct {
	assignmentRepo repository.AssignmentRepository
	logger         zerolog.Logger
}

func NewAssignmentService(assignmentRepo repository.AssignmentRepository, logger zerolog.Logger) AssignmentService {
	return &assignmentService{
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

func (s *assignmentService) Create(ctx context.Context, req *models.CreateAssignmentRequest) (*models.AssignmentView, error) {
	switch {
	case req.Title == "":
		return nil, missingField("title")
	case req.Description == "":
		return nil, missingField("description")
	case req.DueDate == "":
		return nil, missingField("due_date")
	case req.ClassGrade == "":
		return nil, missingField("class_grade")
	}

	grade, ok := models.ParseClassGrade(req.ClassGrade)
	if !ok {
		return nil, invalidField("class_grade", "must be between 1 and 12")
	}

	if _, err := time.Parse("2006-01-02", req.DueDate); err != nil {
		return nil, invalidField("due_date", "must be YYYY-MM-DD")
	}

	assignment := &models.Assignment{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		ClassGrade:  grade,
		CreatedAt:   time.Now().UTC(),
	}

	id, err := s.assignmentRepo.Create(ctx, assignment)
	if err != nil {
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	s.logger.Info().
		Str("assignment_id", identifier.Encode(id)).
		Str("title", assignment.Title).
		Int("class_grade", grade.Int()).
		Msg("Assignment created")

	return &models.AssignmentView{
		ID:          identifier.Encode(id),
		Title:       assignment.Title,
		Description: assignment.Description,
		DueDate:     assignment.DueDate,
		ClassGrade:  assignment.ClassGrade,
		CreatedAt:   assignment.CreatedAt,
	}, nil
}

func (s *assignmentService) List(ctx context.Context, classGrade *models.ClassGrade) ([]models.AssignmentView, error) {
	assignments, err := s.assignmentRepo.GetAll(ctx, classGrade)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	views := make([]models.AssignmentView, 0, len(assignments))
	for _, a := range assignments {
		views = append(views, models.AssignmentView{
			ID:          identifier.Encode(a.ID),
			Title:       a.Title,
			Description: a.Description,
			DueDate:     a.DueDate,
			ClassGrade:  a.ClassGrade,
			CreatedAt:   a.CreatedAt,
		})
	}

	return views, nil
}

func (s *assignmentService) Delete(ctx context.Context, id string) error {
	oid, err := identifier.Decode(id)
	if err != nil {
		return ErrInvalidIdentifier
	}

	deleted, err := s.assignmentRepo.Delete(ctx, oid)
	if err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}

	s.logger.Info().Str("assignment_id", id).Msg("Assignment deleted")
	return nil
}
