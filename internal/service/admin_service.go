package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/studentapp/backend/internal/models"
	"github.com/studentapp/backend/internal/repository"
)

type AdminService interface {
	Login(ctx context.Context, req *models.AdminLoginRequest) error
}

type adminService struct {
	adminRepo repository.AdminRepository
	logger    zerolog.Logger
}

func NewAdminService(adminRepo repository.AdminRepository, logger zerolog.Logger) AdminService {
	return &adminService{
		adminRepo: adminRepo,
		logger:    logger,
	}
}

// Login mirrors the student flow: unknown email and wrong password are
// indistinguishable to the caller.
func (s *adminService) Login(ctx context.Context, req *models.AdminLoginRequest) error {
	if req.Email == "" || req.Password == "" {
		return ErrInvalidCredentials
	}

	admin, err := s.adminRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return fmt.Errorf("failed to look up admin: %w", err)
	}
	if admin == nil {
		return ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)) != nil {
		return ErrInvalidCredentials
	}

	s.logger.Info().Str("email", req.Email).Msg("Admin logged in")
	return nil
}
