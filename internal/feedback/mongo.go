// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

package feedback

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tomtom215/jobmatch/internal/logging"
	"github.com/tomtom215/jobmatch/internal/recommend"
)

// FeedbackCollection is the default collection name.
const FeedbackCollection = "feedbacks"

// mongoFeedback is the stored document. A unique index on (userId, jobId)
// makes recording the same pair twice replace the document.
type mongoFeedback struct {
	UserID    string    `bson:"userId"`
	JobID     string    `bson:"jobId"`
	Feedback  string    `bson:"feedback"`
	Timestamp time.Time `bson:"timestamp"`
}

func (d *mongoFeedback) event() (recommend.FeedbackEvent, error) {
	signal, err := recommend.ParseSignal(d.Feedback)
	if err != nil {
		return recommend.FeedbackEvent{}, err
	}
	return recommend.FeedbackEvent{
		UserID:    d.UserID,
		ItemID:    d.JobID,
		Signal:    signal,
		Timestamp: d.Timestamp,
	}, nil
}

func pairFilter(userID, itemID string) bson.D {
	return bson.D{{Key: "userId", Value: userID}, {Key: "jobId", Value: itemID}}
}

// MongoStore keeps feedback in a MongoDB collection. The client is owned by
// the caller; Close is a no-op.
type MongoStore struct {
	col *mongo.Collection
}

// NewMongoStore binds to the collection and ensures its indexes exist.
func NewMongoStore(ctx context.Context, db *mongo.Database, collection string) (*MongoStore, error) {
	if collection == "" {
		collection = FeedbackCollection
	}
	col := db.Collection(collection)

	_, err := col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "jobId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "userId", Value: 1}, {Key: "timestamp", Value: -1}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create feedback indexes: %w", err)
	}

	logging.Info().Str("database", db.Name()).Str("collection", collection).Msg("mongo feedback store ready")
	return &MongoStore{col: col}, nil
}

// Record implements Store.
func (s *MongoStore) Record(ctx context.Context, event recommend.FeedbackEvent) error {
	if err := checkEvent(&event); err != nil {
		return err
	}

	doc := mongoFeedback{
		UserID:    event.UserID,
		JobID:     event.ItemID,
		Feedback:  event.Signal.String(),
		Timestamp: event.Timestamp.UTC(),
	}

	_, err := s.col.ReplaceOne(ctx, pairFilter(event.UserID, event.ItemID), doc, options.Replace().SetUpsert(true))
	if err != nil {
		err = fmt.Errorf("upsert feedback: %w", err)
	}
	return observe(BackendMongo, "record", err)
}

// Remove implements Store.
func (s *MongoStore) Remove(ctx context.Context, userID, itemID string) error {
	res, err := s.col.DeleteOne(ctx, pairFilter(userID, itemID))
	switch {
	case err != nil:
		err = fmt.Errorf("delete feedback: %w", err)
	case res.DeletedCount == 0:
		err = ErrNotFound
	}
	return observe(BackendMongo, "remove", err)
}

// ForUser implements Store.
func (s *MongoStore) ForUser(ctx context.Context, userID string) ([]recommend.FeedbackEvent, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}, {Key: "jobId", Value: 1}})
	events, err := s.find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, observe(BackendMongo, "for_user", err)
	}
	sortNewestFirst(events)
	return events, observe(BackendMongo, "for_user", nil)
}

// All implements Store.
func (s *MongoStore) All(ctx context.Context) ([]recommend.FeedbackEvent, error) {
	opts := options.Find().SetSort(bson.D{{Key: "userId", Value: 1}, {Key: "jobId", Value: 1}})
	events, err := s.find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, observe(BackendMongo, "all", err)
	}
	sortByUserItem(events)
	return events, observe(BackendMongo, "all", nil)
}

func (s *MongoStore) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]recommend.FeedbackEvent, error) {
	cur, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("query feedback: %w", err)
	}
	defer cur.Close(ctx)

	events := make([]recommend.FeedbackEvent, 0)
	for cur.Next(ctx) {
		var doc mongoFeedback
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode feedback: %w", err)
		}
		event, err := doc.event()
		if err != nil {
			logging.Warn().Err(err).Str("user_id", doc.UserID).Str("job_id", doc.JobID).Msg("skipping feedback document with unknown signal")
			continue
		}
		events = append(events, event)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate feedback: %w", err)
	}
	return events, nil
}

// Close implements Store.
func (s *MongoStore) Close() error {
	return nil
}
