// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/tomtom215/jobmatch/internal/feedback"
	"github.com/tomtom215/jobmatch/internal/recommend"
)

// writeConfig writes a YAML file into a temp dir and points CONFIG_PATH at it.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Feedback.Backend != feedback.BackendMemory {
		t.Errorf("Feedback.Backend = %q, want memory", cfg.Feedback.Backend)
	}
	if cfg.Catalog.Backend != CatalogFile {
		t.Errorf("Catalog.Backend = %q, want file", cfg.Catalog.Backend)
	}
	if cfg.Matrix.Enabled {
		t.Error("Matrix should be disabled by default")
	}
	if cfg.NeedsMongo() {
		t.Error("defaults should not need MongoDB")
	}

	got := cfg.Recommend.HybridOptions()
	want := recommend.DefaultHybridOptions()
	if got != want {
		t.Errorf("HybridOptions() = %+v, want %+v", got, want)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"HTTP_PORT", "server.port"},
		{"LOG_LEVEL", "logging.level"},
		{"FEEDBACK_BACKEND", "feedback.backend"},
		{"REDIS_ADDR", "feedback.redis.addr"},
		{"MONGODB_URI", "mongo.uri"},
		{"RECOMMEND_MATRIX_WORKERS", "recommend.tuning.matrix_workers"},
		{"matrix_enabled", "matrix.enabled"},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if result := envTransformFunc(tt.input); result != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)

	t.Run("no config file exists", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "")
		if result := findConfigFile(); result != "" {
			t.Errorf("findConfigFile() = %q, want empty string", result)
		}
	})

	t.Run("config.yaml exists", func(t *testing.T) {
		configPath := filepath.Join(tmpDir, "config.yaml")
		if err := os.WriteFile(configPath, []byte("server:\n  port: 1\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		defer os.Remove(configPath)

		t.Setenv(ConfigPathEnvVar, "")
		if result := findConfigFile(); result != "config.yaml" {
			t.Errorf("findConfigFile() = %q, want config.yaml", result)
		}
	})

	t.Run("CONFIG_PATH takes precedence", func(t *testing.T) {
		customPath := filepath.Join(tmpDir, "custom.yaml")
		if err := os.WriteFile(customPath, []byte("{}"), 0o600); err != nil {
			t.Fatal(err)
		}

		t.Setenv(ConfigPathEnvVar, customPath)
		if result := findConfigFile(); result != customPath {
			t.Errorf("findConfigFile() = %q, want %q", result, customPath)
		}
	})

	t.Run("CONFIG_PATH with non-existent file", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "/non/existent/config.yaml")
		if result := findConfigFile(); result != "" {
			t.Errorf("findConfigFile() = %q, want empty string", result)
		}
	})
}

func TestLoadEnvVars(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(ConfigPathEnvVar, "")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("RECOMMEND_SIMILARITY_METHOD", "pearson")
	t.Setenv("RECOMMEND_MIN_SCORE", "0.5")
	t.Setenv("FEEDBACK_BACKEND", "badger")
	t.Setenv("BADGER_IN_MEMORY", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if want := []string{"https://a.example", "https://b.example"}; !slices.Equal(cfg.Server.CORSOrigins, want) {
		t.Errorf("CORSOrigins = %v, want %v", cfg.Server.CORSOrigins, want)
	}
	if cfg.Server.RateLimitWindow != 30*time.Second {
		t.Errorf("RateLimitWindow = %v, want 30s", cfg.Server.RateLimitWindow)
	}
	if !cfg.Feedback.Badger.InMemory || cfg.Feedback.Backend != feedback.BackendBadger {
		t.Errorf("Feedback = %+v, want in-memory badger", cfg.Feedback)
	}

	opts := cfg.Recommend.HybridOptions()
	if opts.SimilarityMethod != recommend.MethodPearson || opts.MinRecommendScore != 0.5 {
		t.Errorf("HybridOptions() = %+v, want pearson with min score 0.5", opts)
	}

	// Unset values keep their defaults.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0 (default)", cfg.Server.Host)
	}
	if cfg.Recommend.Tuning != recommend.DefaultTuning() {
		t.Errorf("Tuning = %+v, want defaults", cfg.Recommend.Tuning)
	}
}

func TestLoadConfigFile(t *testing.T) {
	writeConfig(t, `
server:
  port: 7070
  read_timeout: 5s
  cors_origins:
    - https://jobs.example
logging:
  level: warn
  format: console
recommend:
  similar_users_count: 25
  collaborative_weight: 0.6
  content_weight: 0.4
  tuning:
    matrix_workers: 4
catalog:
  backend: mongo
mongo:
  uri: mongodb://mongo:27017
  database: jobs
matrix:
  enabled: true
  interval: 1h
  method: jaccard
  output: /tmp/matrix.json
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 7070 || cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if !slices.Equal(cfg.Server.CORSOrigins, []string{"https://jobs.example"}) {
		t.Errorf("CORSOrigins = %v", cfg.Server.CORSOrigins)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "warn" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
	if cfg.Recommend.SimilarUsersCount != 25 || cfg.Recommend.Tuning.MatrixWorkers != 4 {
		t.Errorf("Recommend = %+v", cfg.Recommend)
	}
	if cfg.Recommend.Tuning.HybridPearsonCap != 0.6 {
		t.Errorf("unset tuning field lost its default: %+v", cfg.Recommend.Tuning)
	}
	if !cfg.NeedsMongo() || cfg.Mongo.URI != "mongodb://mongo:27017" {
		t.Errorf("Mongo = %+v, NeedsMongo = %v", cfg.Mongo, cfg.NeedsMongo())
	}
	if cfg.Matrix.SimilarityMethod() != recommend.MethodJaccard || cfg.Matrix.Interval != time.Hour {
		t.Errorf("Matrix = %+v", cfg.Matrix)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	writeConfig(t, `
server:
  port: 7070
feedback:
  backend: redis
  redis:
    addr: redis-from-file:6379
`)
	t.Setenv("HTTP_PORT", "6060")
	t.Setenv("REDIS_ADDR", "redis-from-env:6379")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 6060 {
		t.Errorf("Server.Port = %d, want env value 6060", cfg.Server.Port)
	}
	if cfg.Feedback.Redis.Addr != "redis-from-env:6379" {
		t.Errorf("Redis.Addr = %q, want env value", cfg.Feedback.Redis.Addr)
	}
	if cfg.Feedback.Redis.KeyPrefix != "fb" {
		t.Errorf("Redis.KeyPrefix = %q, want default fb", cfg.Feedback.Redis.KeyPrefix)
	}
}

func TestLoadValidationFailure(t *testing.T) {
	writeConfig(t, "feedback:\n  backend: cassandra\n")

	if _, err := Load(); err == nil {
		t.Error("Load() should reject an unknown feedback backend")
	}
}
