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

type ScheduleRepository interface {
	Create(ctx context.Context, schedule *models.Schedule) (primitive.ObjectID, error)
	GetAll(ctx context.Context, classGrade *models.ClassGrade) ([]models.Schedule, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type scheduleRepository struct {
	*MongoRepository
}

func NewScheduleRepository(db *mongo.Database, logger zerolog.Logger) ScheduleRepository {
	return &scheduleRepository{
		MongoRepository: NewMongoRepository(db, logger),
	}
}

func (r *scheduleRepository) collection() *mongo.Collection {
	return r.db.Collection(database.CollectionSchedules)
}

func (r *scheduleRepository) Create(ctx context.Context, schedule *models.Schedule) (primitive.ObjectID, error) {
	result, err := r.collection().InsertOne(ctx, schedule)
	if err != nil {
		return primitive.NilObjectID, err
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *scheduleRepository) GetAll(ctx context.Context, classGrade *models.ClassGrade) ([]models.Schedule, error) {
	filter := bson.M{}
	if classGrade != nil {
		filter["class_grade"] = *classGrade
	}

	cursor, err := r.collection().Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var schedules []models.Schedule
	if err := cursor.All(ctx, &schedules); err != nil {
		return nil, err
	}

	return schedules, nil
}

func (r *scheduleRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}

	return result.DeletedCount > 0, nil
}
