package repository

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/studentapp/backend/internal/database"
	"github.com/studentapp/backend/internal/models"
)

type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Student, error)
	GetByUsername(ctx context.Context, username string) (*models.Student, error)
	GetAll(ctx context.Context, classGrade *models.ClassGrade) ([]models.Student, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type studentRepository struct {
	*MongoRepository
}

func NewStudentRepository(db *mongo.Database, logger zerolog.Logger) StudentRepository {
	return &studentRepository{
		MongoRepository: NewMongoRepository(db, logger),
	}
}

func (r *studentRepository) collection() *mongo.Collection {
	return r.db.Collection(database.CollectionStudents)
}

func (r *studentRepository) Create(ctx context.Context, student *models.Student) (primitive.ObjectID, error) {
	result, err := r.collection().InsertOne(ctx, student)
	if err != nil {
		return primitive.NilObjectID, err
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *studentRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Student, error) {
	student := &models.Student{}
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(student)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return student, nil
}

func (r *studentRepository) GetByUsername(ctx context.Context, username string) (*models.Student, error) {
	student := &models.Student{}
	err := r.collection().FindOne(ctx, bson.M{"username": username}).Decode(student)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return student, nil
}

func (r *studentRepository) GetAll(ctx context.Context, classGrade *models.ClassGrade) ([]models.Student, error) {
	filter := bson.M{}
	if classGrade != nil {
		filter["class_grade"] = *classGrade
	}

	cursor, err := r.collection().Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var students []models.Student
	if err := cursor.All(ctx, &students); err != nil {
		return nil, err
	}

	return students, nil
}

func (r *studentRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}

	return result.DeletedCount > 0, nil
}
