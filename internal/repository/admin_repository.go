package repository

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/studentapp/backend/internal/database"
	"github.com/studentapp/backend/internal/models"
)

// Admins are provisioned out-of-band; the repository only reads.
type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
}

type adminRepository struct {
	*MongoRepository
}

func NewAdminRepository(db *mongo.Database, logger zerolog.Logger) AdminRepository {
	return &adminRepository{
		MongoRepository: NewMongoRepository(db, logger),
	}
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	admin := &models.Admin{}
	err := r.db.Collection(database.CollectionAdmins).FindOne(ctx, bson.M{"email": email}).Decode(admin)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return admin, nil
}
