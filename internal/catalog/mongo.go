// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

package catalog

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tomtom215/jobmatch/internal/breaker"
	"github.com/tomtom215/jobmatch/internal/recommend"
)

// JobsCollection is the default collection name.
const JobsCollection = "jobs"

// MongoCatalog reads listings from MongoDB through a circuit breaker.
type MongoCatalog struct {
	col *mongo.Collection
	cb  *breaker.Breaker
}

// NewMongoCatalog binds to the collection.
//
//nolint:gocritic // cfg passed by value at construction time
func NewMongoCatalog(db *mongo.Database, collection string, cfg breaker.Config) *MongoCatalog {
	if collection == "" {
		collection = JobsCollection
	}
	if cfg.Name == "" {
		cfg.Name = "catalog-mongo"
	}
	return &MongoCatalog{
		col: db.Collection(collection),
		cb:  breaker.New(cfg, ErrItemNotFound),
	}
}

// Items implements Catalog. Listings are sorted by ID.
func (c *MongoCatalog) Items(ctx context.Context) ([]recommend.Item, error) {
	return breaker.Cast[[]recommend.Item](c.cb.Execute(ctx, func() (any, error) {
		cur, err := c.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
		if err != nil {
			return nil, fmt.Errorf("query jobs: %w", err)
		}
		defer cur.Close(ctx)

		items := make([]recommend.Item, 0)
		for cur.Next(ctx) {
			var it recommend.Item
			if err := cur.Decode(&it); err != nil {
				return nil, fmt.Errorf("decode job: %w", err)
			}
			items = append(items, it)
		}
		if err := cur.Err(); err != nil {
			return nil, fmt.Errorf("iterate jobs: %w", err)
		}
		return items, nil
	}))
}

// Get implements Catalog.
func (c *MongoCatalog) Get(ctx context.Context, id string) (recommend.Item, error) {
	return breaker.Cast[recommend.Item](c.cb.Execute(ctx, func() (any, error) {
		var it recommend.Item
		err := c.col.FindOne(ctx, bson.M{"_id": id}).Decode(&it)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrItemNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("find job %s: %w", id, err)
		}
		return it, nil
	}))
}

// Upsert writes listings by ID. Used to seed the collection from a file.
func (c *MongoCatalog) Upsert(ctx context.Context, items []recommend.Item) error {
	if len(items) == 0 {
		return nil
	}
	models := make([]mongo.WriteModel, len(items))
	for i := range items {
		models[i] = mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": items[i].ID}).
			SetReplacement(items[i]).
			SetUpsert(true)
	}
	return c.cb.Do(ctx, func() error {
		if _, err := c.col.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false)); err != nil {
			return fmt.Errorf("upsert jobs: %w", err)
		}
		return nil
	})
}
