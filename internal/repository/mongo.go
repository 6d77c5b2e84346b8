package repository

import (
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoRepository struct {
	db     *mongo.Database
	logger zerolog.Logger
}

func NewMongoRepository(db *mongo.Database, logger zerolog.Logger) *MongoRepository {
	return &MongoRepository{
		db:     db,
		logger: logger,
	}
}
