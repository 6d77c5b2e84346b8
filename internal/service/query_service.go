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

type QueryService interface {
	Create(ctx context.Context, req *models.CreateQueryRequest) (*models.QueryView, error)
	List(ctx context.Context, classGrade *models.ClassGrade) ([]models.QueryView, error)
	Delete(ctx context.Context, id string) error
}

type queryService struct {
	queryRepo repository.QueryRepository
	logger    zerolog.Logger
}

func NewQueryService(queryRepo repository.QueryRepository, logger zerolog.Logger) QueryService {
	return &queryService{
		queryRepo: queryRepo,
		logger:    logger,
	}
}

func (s *queryService) Create(ctx context.Context, req *models.CreateQueryRequest) (*models.QueryView, error) {
	switch {
	case req.StudentName == "":
		return nil, missingField("studentName")
	case req.ClassGrade == "":
		return nil, missingField("class_grade")
	case req.Query == "":
		return nil, missingField("query")
	}

	grade, ok := models.ParseClassGrade(req.ClassGrade)
	if !ok {
		return nil, invalidField("class_grade", "must be between 1 and 12")
	}

	query := &models.Query{
		StudentName: req.StudentName,
		ClassGrade:  grade,
		Query:       req.Query,
		SubmittedAt: time.Now().UTC(),
	}

	id, err := s.queryRepo.Create(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to create query: %w", err)
	}

	s.logger.Info().
		Str("query_id", identifier.Encode(id)).
		Str("student_name", query.StudentName).
		Msg("Query submitted")

	return &models.QueryView{
		ID:          identifier.Encode(id),
		StudentName: query.StudentName,
		ClassGrade:  grade,
		Query:       query.Query,
		SubmittedAt: query.SubmittedAt,
	}, nil
}

func (s *queryService) List(ctx context.Context, classGrade *models.ClassGrade) ([]models.QueryView, error) {
	queries, err := s.queryRepo.GetAll(ctx, classGrade)
	if err != nil {
		return nil, fmt.Errorf("failed to list queries: %w", err)
	}

	views := make([]models.QueryView, 0, len(queries))
	for _, query := range queries {
		views = append(views, models.QueryView{
			ID:          identifier.Encode(query.ID),
			StudentName: query.StudentName,
			ClassGrade:  query.ClassGrade,
			Query:       query.Query,
			SubmittedAt: query.SubmittedAt,
		})
	}

	return views, nil
}

func (s *queryService) Delete(ctx context.Context, id string) error {
	oid, err := identifier.Decode(id)
	if err != nil {
		return ErrInvalidIdentifier
	}

	deleted, err := s.queryRepo.Delete(ctx, oid)
	if err != nil {
		return fmt.Errorf("failed to delete query: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}

	s.logger.Info().Str("query_id", id).Msg("Query deleted")
	return nil
}
