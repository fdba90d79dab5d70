// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/tomtom215/jobmatch/internal/logging"
)

// Config holds MongoDB connection settings shared by the feedback store and
// the job catalog.
type Config struct {
	// URI is the mongodb:// connection string. Empty disables MongoDB.
	URI string `koanf:"uri"`

	// Database is the database name.
	Database string `koanf:"database"`

	// ConnectTimeout bounds the initial connect and ping.
	ConnectTimeout time.Duration `koanf:"connect_timeout"`

	// MaxPoolSize caps open connections; zero keeps the driver default.
	MaxPoolSize uint64 `koanf:"max_pool_size"`
}

// Enabled reports whether a URI is configured.
func (c *Config) Enabled() bool {
	return c.URI != ""
}

// DB wraps a connected MongoDB client.
type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

// New connects and pings the primary.
func New(ctx context.Context, cfg *Config) (*DB, error) {
	if !cfg.Enabled() {
		return nil, errors.New("mongodb uri is not configured")
	}
	if cfg.Database == "" {
		return nil, errors.New("mongodb database name is required")
	}

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := options.Client().ApplyURI(cfg.URI)
	if cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(cfg.MaxPoolSize)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	logging.Info().Str("database", cfg.Database).Msg("connected to mongodb")
	return &DB{client: client, db: client.Database(cfg.Database)}, nil
}

// Database returns the configured database handle.
func (d *DB) Database() *mongo.Database {
	return d.db
}

// Ping checks that the primary is reachable.
func (d *DB) Ping(ctx context.Context) error {
	return d.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (d *DB) Close(ctx context.Context) error {
	if err := d.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect mongodb: %w", err)
	}
	return nil
}
