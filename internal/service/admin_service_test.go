package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/studentapp/backend/internal/models"
)

type fakeAdminRepo struct {
	admins []models.Admin
}

func (f *fakeAdminRepo) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	for i := range f.admins {
		if f.admins[i].Email == email {
			return &f.admins[i], nil
		}
	}
	return nil, nil
}

func TestAdminServiceLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatal(err)
	}

	repo := &fakeAdminRepo{admins: []models.Admin{{Email: "admin@school.test", Password: string(hash)}}}
	svc := NewAdminService(repo, zerolog.Nop())

	tests := []struct {
		name    string
		req     models.AdminLoginRequest
		wantErr error
	}{
		{name: "valid", req: models.AdminLoginRequest{Email: "admin@school.test", Password: "hunter2"}},
		{name: "unknown email", req: models.AdminLoginRequest{Email: "other@school.test", Password: "hunter2"}, wantErr: ErrInvalidCredentials},
		{name: "wrong password", req: models.AdminLoginRequest{Email: "admin@school.test", Password: "hunter3"}, wantErr: ErrInvalidCredentials},
		{name: "empty", req: models.AdminLoginRequest{}, wantErr: ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Login(context.Background(), &tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
