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

type AssignmentRepository interface {
	Create(ctx context.Context, assignment *models.Assignment) (primitive.ObjectID, error)
	GetAll(ctx context.Context, classGrade *models.ClassGrade) ([]models.Assignment, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type assignmentRepository struct {
	*MongoRepository
}

func NewAssignmentRepository(db *mongo.Database, logger zerolog.Logger) AssignmentRepository {
	return &assignmentRepository{
		MongoRepository: NewMongoRepository(db, logger),
	}
}

func (r *assignmentRepository) collection() *mongo.Collection {
	return r.db.Collection(database.CollectionAssignments)
}

func (r *assignmentRepository) Create(ctx context.Context, assignment *models.Assignment) (primitive.ObjectID, error) {
	result, err := r.collection().InsertOne(ctx, assignment)
	if err != nil {
		return primitive.NilObjectID, err
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *assignmentRepository) GetAll(ctx context.Context, classGrade *models.ClassGrade) ([]models.Assignment, error) {
	filter := bson.M{}
	if classGrade != nil {
		filter["class_grade"] = *classGrade
	}

	cursor, err := r.collection().Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var assignments []models.Assignment
	if err := cursor.All(ctx, &assignments); err != nil {
		return nil, err
	}

	return assignments, nil
}

func (r *assignmentRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}

	return result.DeletedCount > 0, nil
}
