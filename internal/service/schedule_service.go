package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/studentapp/backend/internal/models"
	"github.com/studentapp/backend/internal/repository"
	"github.com/studentapp/backend/pkg/identifier"
)

type ScheduleService interface {
	Create(ctx context.Context, req *models.CreateScheduleRequest) (*models.ScheduleView, error)
	List(ctx context.Context, classGrade *models.ClassGrade) ([]models.ScheduleView, error)
	Delete(ctx context.Context, id string) error
}

type scheduleService struct {
	scheduleRepo repository.ScheduleRepository
	logger       zerolog.Logger
}

func NewScheduleService(scheduleRepo repository.ScheduleRepository, logger zerolog.Logger) ScheduleService {
	return &scheduleService{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

func (s *scheduleService) Create(ctx context.Context, req *models.CreateScheduleRequest) (*models.ScheduleView, error) {
	switch {
	case req.ClassGrade == "":
		return nil, missingField("class_grade")
	case req.Subject == "":
		return nil, missingField("subject")
	case req.Day == "":
		return nil, missingField("day")
	case req.StartTime == "":
		return nil, missingField("start_time")
	case req.EndTime == "":
		return nil, missingField("end_time")
	}

	grade, ok := models.ParseClassGrade(req.ClassGrade)
	if !ok {
		return nil, invalidField("class_grade", "must be between 1 and 12")
	}

	schedule := &models.Schedule{
		ClassGrade: grade,
		Subject:    req.Subject,
		Day:        req.Day,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
	}

	id, err := s.scheduleRepo.Create(ctx, schedule)
	if err != nil {
		return nil, fmt.Errorf("failed to create schedule: %w", err)
	}

	s.logger.Info().
		Str("schedule_id", identifier.Encode(id)).
		Int("class_grade", grade.Int()).
		Str("subject", req.Subject).
		Msg("Schedule created")

	return &models.ScheduleView{
		ID:         identifier.Encode(id),
		ClassGrade: grade,
		Subject:    schedule.Subject,
		Day:        schedule.Day,
		StartTime:  schedule.StartTime,
		EndTime:    schedule.EndTime,
	}, nil
}

func (s *scheduleService) List(ctx context.Context, classGrade *models.ClassGrade) ([]models.ScheduleView, error) {
	schedules, err := s.scheduleRepo.GetAll(ctx, classGrade)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}

	views := make([]models.ScheduleView, 0, len(schedules))
	for _, schedule := range schedules {
		views = append(views, models.ScheduleView{
			ID:         identifier.Encode(schedule.ID),
			ClassGrade: schedule.ClassGrade,
			Subject:    schedule.Subject,
			Day:        schedule.Day,
			StartTime:  schedule.StartTime,
			EndTime:    schedule.EndTime,
		})
	}

	return views, nil
}

func (s *scheduleService) Delete(ctx context.Context, id string) error {
	oid, err := identifier.Decode(id)
	if err != nil {
		return ErrInvalidIdentifier
	}

	deleted, err := s.scheduleRepo.Delete(ctx, oid)
	if err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}

	s.logger.Info().Str("schedule_id", id).Msg("Schedule deleted")
	return nil
}
