package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/studentapp/backend/internal/models"
	"github.com/studentapp/backend/internal/repository"
	"github.com/studentapp/backend/pkg/identifier"
)

type StudentService interface {
	Create(ctx context.Context, req *models.CreateStudentRequest) (*models.CreateStudentResponse, error)
	List(ctx context.Context, classGrade *models.ClassGrade) ([]models.StudentView, error)
	Delete(ctx context.Context, id string) error
	Login(ctx context.Context, req *models.StudentLoginRequest) (*models.StudentProfileResponse, error)
	Profile(ctx context.Context, id string) (*models.StudentProfileResponse, error)
}

type studentService struct {
	studentRepo repository.StudentRepository
	logger      zerolog.Logger
}

func NewStudentService(studentRepo repository.StudentRepository, logger zerolog.Logger) StudentService {
	return &studentService{
		studentRepo: studentRepo,
		logger:      logger,
	}
}

func (s *studentService) Create(ctx context.Context, req *models.CreateStudentRequest) (*models.CreateStudentResponse, error) {
	switch {
	case req.Name == "":
		return nil, missingField("name")
	case req.Username == "":
		return nil, missingField("username")
	case req.Password == "":
		return nil, missingField("password")
	case req.ClassGrade == "":
		return nil, missingField("class_grade")
	}

	grade, ok := models.ParseClassGrade(req.ClassGrade)
	if !ok {
		return nil, invalidField("class_grade", "must be between 1 and 12")
	}

	existing, err := s.studentRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return nil, invalidField("username", "already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	student := &models.Student{
		Name:       req.Name,
		Username:   req.Username,
		Password:   string(hash),
		ClassGrade: grade,
		CreatedAt:  time.Now().UTC(),
	}

	id, err := s.studentRepo.Create(ctx, student)
	if err != nil {
		return nil, fmt.Errorf("failed to create student: %w", err)
	}

	s.logger.Info().
		Str("student_id", identifier.Encode(id)).
		Str("username", student.Username).
		Int("class_grade", grade.Int()).
		Msg("Student created")

	return &models.CreateStudentResponse{
		ID:         identifier.Encode(id),
		Name:       student.Name,
		Username:   student.Username,
		ClassGrade: student.ClassGrade,
	}, nil
}

func (s *studentService) List(ctx context.Context, classGrade *models.ClassGrade) ([]models.StudentView, error) {
	students, err := s.studentRepo.GetAll(ctx, classGrade)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}

	views := make([]models.StudentView, 0, len(students))
	for _, st := range students {
		views = append(views, models.StudentView{
			ID:         identifier.Encode(st.ID),
			Name:       st.Name,
			Username:   st.Username,
			ClassGrade: st.ClassGrade,
			CreatedAt:  st.CreatedAt,
		})
	}

	return views, nil
}

func (s *studentService) Delete(ctx context.Context, id string) error {
	oid, err := identifier.Decode(id)
	if err != nil {
		return ErrInvalidIdentifier
	}

	deleted, err := s.studentRepo.Delete(ctx, oid)
	if err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}

	s.logger.Info().Str("student_id", id).Msg("Student deleted")
	return nil
}

// Login deliberately returns the same error for an unknown username and a
// wrong password, so responses cannot be used to enumerate usernames.
func (s *studentService) Login(ctx context.Context, req *models.StudentLoginRequest) (*models.StudentProfileResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	student, err := s.studentRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up student: %w", err)
	}
	if student == nil {
		return nil, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(student.Password), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return &models.StudentProfileResponse{
		ID:         identifier.Encode(student.ID),
		Name:       student.Name,
		Username:   student.Username,
		ClassGrade: student.ClassGrade,
	}, nil
}

func (s *studentService) Profile(ctx context.Context, id string) (*models.StudentProfileResponse, error) {
	oid, err := identifier.Decode(id)
	if err != nil {
		return nil, ErrInvalidIdentifier
	}

	student, err := s.studentRepo.GetByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	if student == nil {
		return nil, ErrNotFound
	}

	return &models.StudentProfileResponse{
		ID:         identifier.Encode(student.ID),
		Name:       student.Name,
		Username:   student.Username,
		ClassGrade: student.ClassGrade,
	}, nil
}
