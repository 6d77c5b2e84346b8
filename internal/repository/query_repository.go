package repository

import (
	"context"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/studentapp/backend/internal/database"
	"github.com/studentapp/backend/internal/models"
)

type QueryRepository interface {
	Create(ctx context.Context, query *models.Query) (primitive.ObjectID, error)
	GetAll(ctx context.Context, classGrade *models.ClassGrade) ([]models.Query, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type queryRepository struct {
	*MongoRepository
}

func NewQueryRepository(db *mongo.Database, logger zerolog.Logger) QueryRepository {
	return &queryRepository{
		MongoRepository: NewMongoRepository(db, logger),
	}
}

func (r *queryRepository) collection() *mongo.Collection {
	return r.db.Collection(database.CollectionQueries)
}

func (r *queryRepository) Create(ctx context.Context, query *models.Query) (primitive.ObjectID, error) {
	result, err := r.collection().InsertOne(ctx, query)
	if err != nil {
		return primitive.NilObjectID, err
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *queryRepository) GetAll(ctx context.Context, classGrade *models.ClassGrade) ([]models.Query, error) {
	filter := bson.M{}
	if classGrade != nil {
		filter["class_grade"] = *classGrade
	}

	cursor, err := r.collection().Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var queries []models.Query
	if err := cursor.All(ctx, &queries); err != nil {
		return nil, err
	}

	return queries, nil
}

func (r *queryRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}

	return result.DeletedCount > 0, nil
}
