package repository

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/studentapp/backend/internal/database"
	"github.com/studentapp/backend/internal/models"
)

// LectureRepository mutates the nested class_grade/subject/chapters/videos
// documents exclusively through conditional $push/$pull updates. Concurrent
// writers targeting the same document therefore cannot lose each other's
// appends, which a read-modify-write of the chapters list would.
type LectureRepository interface {
	// AppendVideo pushes the video onto the named chapter, but only when
	// that chapter does not already contain a video with the same title.
	// Returns false when nothing was modified (no document, no chapter,
	// or a duplicate title).
	AppendVideo(ctx context.Context, grade models.ClassGrade, subject, chapter string, video models.Video) (bool, error)

	// UpsertChapter appends a new chapter holding the single video,
	// creating the (class_grade, subject) document if absent.
	UpsertChapter(ctx context.Context, grade models.ClassGrade, subject, chapter string, video models.Video) error

	HasChapter(ctx context.Context, grade models.ClassGrade, subject, chapter string) (bool, error)

	// RemoveVideo pulls the video by exact title match; reports whether
	// anything was removed. The chapter itself stays, even when emptied.
	RemoveVideo(ctx context.Context, grade models.ClassGrade, subject, chapter, title string) (bool, error)

	// RemoveChapter pulls the whole chapter entry.
	RemoveChapter(ctx context.Context, grade models.ClassGrade, subject, chapter string) (bool, error)

	Get(ctx context.Context, grade models.ClassGrade, subject string) (*models.LectureGroup, error)
	GetByClass(ctx context.Context, grade models.ClassGrade, subject *string) ([]models.LectureGroup, error)
	Subjects(ctx context.Context, grade models.ClassGrade) ([]string, error)
}

type lectureRepository struct {
	*MongoRepository
}

func NewLectureRepository(db *mongo.Database, logger zerolog.Logger) LectureRepository {
	return &lectureRepository{
		MongoRepository: NewMongoRepository(db, logger),
	}
}

func (r *lectureRepository) collection() *mongo.Collection {
	return r.db.Collection(database.CollectionLectures)
}

func (r *lectureRepository) AppendVideo(ctx context.Context, grade models.ClassGrade, subject, chapter string, video models.Video) (bool, error) {
	filter := bson.M{
		"class_grade": grade,
		"subject":     subject,
		"chapters": bson.M{"$elemMatch": bson.M{
			"name":         chapter,
			"videos.title": bson.M{"$ne": video.Title},
		}},
	}
	update := bson.M{"$push": bson.M{"chapters.$.videos": video}}

	result, err := r.collection().UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}

	return result.ModifiedCount > 0, nil
}

func (r *lectureRepository) UpsertChapter(ctx context.Context, grade models.ClassGrade, subject, chapter string, video models.Video) error {
	filter := bson.M{
		"class_grade":   grade,
		"subject":       subject,
		"chapters.name": bson.M{"$ne": chapter},
	}
	update := bson.M{
		"$push":        bson.M{"chapters": models.Chapter{Name: chapter, Videos: []models.Video{video}}},
		"$setOnInsert": bson.M{"created_at": time.Now().UTC()},
	}

	_, err := r.collection().UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if mongo.IsDuplicateKeyError(err) {
		// The document appeared (or the chapter was pushed) between our
		// conditional update and the upsert; the caller retries.
		return ErrConcurrentUpdate
	}

	return err
}

// ErrConcurrentUpdate signals that a racing writer changed the document
// between two conditional updates.
var ErrConcurrentUpdate = errors.New("concurrent lecture update")

func (r *lectureRepository) HasChapter(ctx context.Context, grade models.ClassGrade, subject, chapter string) (bool, error) {
	filter := bson.M{
		"class_grade":   grade,
		"subject":       subject,
		"chapters.name": chapter,
	}

	count, err := r.collection().CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *lectureRepository) RemoveVideo(ctx context.Context, grade models.ClassGrade, subject, chapter, title string) (bool, error) {
	filter := bson.M{
		"class_grade":   grade,
		"subject":       subject,
		"chapters.name": chapter,
	}
	update := bson.M{"$pull": bson.M{"chapters.$.videos": bson.M{"title": title}}}

	result, err := r.collection().UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}

	return result.ModifiedCount > 0, nil
}

func (r *lectureRepository) RemoveChapter(ctx context.Context, grade models.ClassGrade, subject, chapter string) (bool, error) {
	filter := bson.M{
		"class_grade": grade,
		"subject":     subject,
	}
	update := bson.M{"$pull": bson.M{"chapters": bson.M{"name": chapter}}}

	result, err := r.collection().UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}

	return result.ModifiedCount > 0, nil
}

func (r *lectureRepository) Get(ctx context.Context, grade models.ClassGrade, subject string) (*models.LectureGroup, error) {
	group := &models.LectureGroup{}
	err := r.collection().FindOne(ctx, bson.M{"class_grade": grade, "subject": subject}).Decode(group)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return group, nil
}

func (r *lectureRepository) GetByClass(ctx context.Context, grade models.ClassGrade, subject *string) ([]models.LectureGroup, error) {
	filter := bson.M{"class_grade": grade}
	if subject != nil {
		filter["subject"] = *subject
	}

	cursor, err := r.collection().Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var groups []models.LectureGroup
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, err
	}

	return groups, nil
}

func (r *lectureRepository) Subjects(ctx context.Context, grade models.ClassGrade) ([]string, error) {
	values, err := r.collection().Distinct(ctx, "subject", bson.M{"class_grade": grade})
	if err != nil {
		return nil, err
	}

	subjects := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			subjects = append(subjects, s)
		}
	}

	return subjects, nil
}
