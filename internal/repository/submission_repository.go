package repository

import (
	"context"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/studentapp/backend/internal/database"
	"github.com/studentapp/backend/internal/models"
)

type SubmissionRepository interface {
	Create(ctx context.Context, submission *models.Submission) (primitive.ObjectID, error)
	GetAll(ctx context.Context, classGrade *models.ClassGrade) ([]models.Submission, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type submissionRepository struct {
	*MongoRepository
}

func NewSubmissionRepository(db *mongo.Database, logger zerolog.Logger) SubmissionRepository {
	return &submissionRepository{
		MongoRepository: NewMongoRepository(db, logger),
	}
}

func (r *submissionRepository) collection() *mongo.Collection {
	return r.db.Collection(database.CollectionSubmissions)
}

func (r *submissionRepository) Create(ctx context.Context, submission *models.Submission) (primitive.ObjectID, error) {
	result, err := r.collection().InsertOne(ctx, submission)
	if err != nil {
		return primitive.NilObjectID, err
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *submissionRepository) GetAll(ctx context.Context, classGrade *models.ClassGrade) ([]models.Submission, error) {
	filter := bson.M{}
	if classGrade != nil {
		filter["class_grade"] = *classGrade
	}

	// Newest first, matching the admin review screen.
	opts := options.Find().SetSort(bson.D{{Key: "submitted_at", Value: -1}})

	cursor, err := r.collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var submissions []models.Submission
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, err
	}

	return submissions, nil
}

func (r *submissionRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (bool, error) {
	result, err := r.collection().UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return false, err
	}

	// ModifiedCount, not MatchedCount: setting the status a submission
	// already has reports "nothing changed" to the caller.
	return result.ModifiedCount > 0, nil
}

func (r *submissionRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}

	return result.DeletedCount > 0, nil
}
