// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/tomtom215/jobmatch/internal/breaker"
	"github.com/tomtom215/jobmatch/internal/database"
	"github.com/tomtom215/jobmatch/internal/feedback"
	"github.com/tomtom215/jobmatch/internal/logging"
	"github.com/tomtom215/jobmatch/internal/recommend"
)

// Catalog backends.
const (
	CatalogFile  = "file"
	CatalogMongo = "mongo"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
	Recommend RecommendConfig `koanf:"recommend"`
	Feedback  feedback.Config `koanf:"feedback"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Mongo     database.Config `koanf:"mongo"`
	Matrix    MatrixConfig    `koanf:"matrix"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port" validate:"gte=1,lte=65535"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"gt=0"`
	IdleTimeout     time.Duration `koanf:"idle_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`

	CORSOrigins []string `koanf:"cors_origins"`

	// RateLimitReqs requests are allowed per RateLimitWindow per client IP.
	RateLimitReqs     int           `koanf:"rate_limit_reqs" validate:"gte=1"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window" validate:"gt=0"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// Addr returns the listen address.
func (s *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error fatal panic disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// ToLogging converts to the logging package configuration writing to stderr.
func (l *LoggingConfig) ToLogging() logging.Config {
	return logging.Config{
		Level:     l.Level,
		Format:    l.Format,
		Caller:    l.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	}
}

// RecommendConfig holds the request defaults and scoring constants.
type RecommendConfig struct {
	SimilarUsersCount int     `koanf:"similar_users_count" validate:"gte=1"`
	MinCommonItems    int     `koanf:"min_common_items" validate:"gte=1"`
	SimilarityMethod  string  `koanf:"similarity_method" validate:"simmethod"`
	MaxCandidates     int     `koanf:"max_candidates" validate:"gte=1"`
	MinRecommendScore float64 `koanf:"min_recommend_score" validate:"gte=0,lte=1"`

	CollaborativeWeight float64 `koanf:"collaborative_weight" validate:"gte=0,lte=1"`
	ContentWeight       float64 `koanf:"content_weight" validate:"gte=0,lte=1"`

	Tuning recommend.Tuning `koanf:"tuning"`
}

// HybridOptions builds the service defaults. The method has already been
// validated by Validate, so a parse failure falls back to hybrid.
func (r *RecommendConfig) HybridOptions() recommend.HybridOptions {
	method, err := recommend.ParseSimilarityMethod(r.SimilarityMethod)
	if err != nil {
		method = recommend.MethodHybrid
	}
	return recommend.HybridOptions{
		Options: recommend.Options{
			SimilarUsersCount: r.SimilarUsersCount,
			MinCommonItems:    r.MinCommonItems,
			SimilarityMethod:  method,
			MaxCandidates:     r.MaxCandidates,
			MinRecommendScore: r.MinRecommendScore,
		},
		CollaborativeWeight: r.CollaborativeWeight,
		ContentWeight:       r.ContentWeight,
	}
}

// CatalogConfig selects where job listings come from.
type CatalogConfig struct {
	Backend    string         `koanf:"backend" validate:"oneof=file mongo"`
	Path       string         `koanf:"path"`
	Collection string         `koanf:"collection"`
	Breaker    breaker.Config `koanf:"breaker"`
}

// MatrixConfig controls the periodic similarity matrix job.
type MatrixConfig struct {
	Enabled  bool          `koanf:"enabled"`
	Interval time.Duration `koanf:"interval"`
	Method   string        `koanf:"method" validate:"simmethod"`

	// Output is the JSON file each run overwrites.
	Output string `koanf:"output"`
}

// SimilarityMethod parses Method, defaulting to hybrid.
func (m *MatrixConfig) SimilarityMethod() recommend.SimilarityMethod {
	method, err := recommend.ParseSimilarityMethod(m.Method)
	if err != nil {
		return recommend.MethodHybrid
	}
	return method
}

// NeedsMongo reports whether any backend requires the MongoDB connection.
func (c *Config) NeedsMongo() bool {
	return c.Feedback.Backend == feedback.BackendMongo || c.Catalog.Backend == CatalogMongo
}
