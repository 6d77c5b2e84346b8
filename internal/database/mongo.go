package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/studentapp/backend/internal/config"
)

// Collection names. Every repository addresses the store through these.
const (
	CollectionStudents    = "students"
	CollectionAdmins      = "admins"
	CollectionAssignments = "assignments"
	CollectionSubmissions = "submissions"
	CollectionSchedules   = "schedules"
	CollectionLectures    = "video_lectures"
	CollectionQueries     = "queries"
)

func NewMongo(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}

// EnsureIndexes builds the indexes the services rely on. Called once at
// process start; index builds are idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		CollectionStudents: {
			{
				Keys:    bson.D{{Key: "username", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{Keys: bson.D{{Key: "class_grade", Value: 1}}},
		},
		CollectionAssignments: {
			{Keys: bson.D{{Key: "class_grade", Value: 1}}},
		},
		CollectionSubmissions: {
			{Keys: bson.D{{Key: "class_grade", Value: 1}, {Key: "submitted_at", Value: -1}}},
		},
		CollectionSchedules: {
			{Keys: bson.D{{Key: "class_grade", Value: 1}}},
		},
		CollectionLectures: {
			{
				Keys:    bson.D{{Key: "class_grade", Value: 1}, {Key: "subject", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes for %s: %w", collection, err)
		}
	}

	return nil
}
