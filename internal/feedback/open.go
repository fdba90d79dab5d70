// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

package feedback

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tomtom215/jobmatch/internal/breaker"
)

// Config selects and configures the backend.
type Config struct {
	// Backend is one of memory, badger, redis, mongo.
	Backend string `koanf:"backend" validate:"oneof=memory badger redis mongo"`

	Badger BadgerConfig `koanf:"badger"`
	Redis  RedisConfig  `koanf:"redis"`

	// Collection is the MongoDB collection for the mongo backend.
	Collection string `koanf:"collection"`

	// Breaker guards the network backends (redis, mongo).
	Breaker breaker.Config `koanf:"breaker"`
}

// Open builds the configured store. db is required for the mongo backend
// and ignored otherwise. Network backends are wrapped in a GuardedStore.
//
//nolint:gocritic // cfg passed by value at construction time
func Open(ctx context.Context, cfg Config, db *mongo.Database) (Store, error) {
	switch cfg.Backend {
	case "", BackendMemory:
		return NewMemoryStore(), nil

	case BackendBadger:
		s, err := OpenBadger(cfg.Badger)
		if err != nil {
			return nil, err
		}
		return s, nil

	case BackendRedis:
		s, err := NewRedisStore(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		return NewGuardedStore(s, withName(cfg.Breaker, "feedback-redis")), nil

	case BackendMongo:
		if db == nil {
			return nil, errors.New("mongo feedback store: database is not configured")
		}
		s, err := NewMongoStore(ctx, db, cfg.Collection)
		if err != nil {
			return nil, err
		}
		return NewGuardedStore(s, withName(cfg.Breaker, "feedback-mongo")), nil

	default:
		return nil, fmt.Errorf("unknown feedback backend %q", cfg.Backend)
	}
}

//nolint:gocritic // small config copy
func withName(cfg breaker.Config, name string) breaker.Config {
	if cfg.Name == "" {
		cfg.Name = name
	}
	return cfg
}
