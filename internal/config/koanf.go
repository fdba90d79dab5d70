// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/jobmatch/internal/breaker"
	"github.com/tomtom215/jobmatch/internal/catalog"
	"github.com/tomtom215/jobmatch/internal/database"
	"github.com/tomtom215/jobmatch/internal/feedback"
	"github.com/tomtom215/jobmatch/internal/recommend"
)

// DefaultConfigPaths are searched in order when CONFIG_PATH is unset.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/jobmatch/config.yaml",
	"/etc/jobmatch/config.yml",
}

// ConfigPathEnvVar names a config file that takes precedence over DefaultConfigPaths.
const ConfigPathEnvVar = "CONFIG_PATH"

func defaultConfig() *Config {
	opts := recommend.DefaultHybridOptions()
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Recommend: RecommendConfig{
			SimilarUsersCount:   opts.SimilarUsersCount,
			MinCommonItems:      opts.MinCommonItems,
			SimilarityMethod:    opts.SimilarityMethod.String(),
			MaxCandidates:       opts.MaxCandidates,
			MinRecommendScore:   opts.MinRecommendScore,
			CollaborativeWeight: opts.CollaborativeWeight,
			ContentWeight:       opts.ContentWeight,
			Tuning:              recommend.DefaultTuning(),
		},
		Feedback: feedback.Config{
			Backend: feedback.BackendMemory,
			Badger: feedback.BadgerConfig{
				Path:         "/data/feedback",
				CloseTimeout: 30 * time.Second,
			},
			Redis: feedback.RedisConfig{
				Addr:      "localhost:6379",
				KeyPrefix: "fb",
			},
			Collection: feedback.FeedbackCollection,
			Breaker:    breaker.DefaultConfig(""),
		},
		Catalog: CatalogConfig{
			Backend:    CatalogFile,
			Path:       "jobs.yaml",
			Collection: catalog.JobsCollection,
			Breaker:    breaker.DefaultConfig("catalog-mongo"),
		},
		Mongo: database.Config{
			Database:       "jobmatch",
			ConnectTimeout: 10 * time.Second,
		},
		Matrix: MatrixConfig{
			Enabled:  false,
			Interval: 6 * time.Hour,
			Method:   recommend.MethodHybrid.String(),
			Output:   "/data/similarity-matrix.json",
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file and
// environment variables, in increasing order of precedence.
func Load() (*Config, error) {
	k, err := load(findConfigFile())
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func load(configPath string) (*koanf.Koanf, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}
	return k, nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths accept comma-separated strings from the environment.
var sliceConfigPaths = []string{
	"server.cors_origins",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps flat environment variable names (lowercased) to koanf keys.
var envMappings = map[string]string{
	"http_host":             "server.host",
	"http_port":             "server.port",
	"http_read_timeout":     "server.read_timeout",
	"http_write_timeout":    "server.write_timeout",
	"http_idle_timeout":     "server.idle_timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",
	"cors_origins":          "server.cors_origins",
	"rate_limit_requests":   "server.rate_limit_reqs",
	"rate_limit_window":     "server.rate_limit_window",
	"disable_rate_limit":    "server.rate_limit_disabled",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	"recommend_similar_users":        "recommend.similar_users_count",
	"recommend_min_common_items":     "recommend.min_common_items",
	"recommend_similarity_method":    "recommend.similarity_method",
	"recommend_max_candidates":       "recommend.max_candidates",
	"recommend_min_score":            "recommend.min_recommend_score",
	"recommend_collaborative_weight": "recommend.collaborative_weight",
	"recommend_content_weight":       "recommend.content_weight",
	"recommend_matrix_workers":       "recommend.tuning.matrix_workers",

	"feedback_backend":         "feedback.backend",
	"feedback_collection":      "feedback.collection",
	"badger_path":              "feedback.badger.path",
	"badger_in_memory":         "feedback.badger.in_memory",
	"badger_sync_writes":       "feedback.badger.sync_writes",
	"redis_addr":               "feedback.redis.addr",
	"redis_password":           "feedback.redis.password",
	"redis_db":                 "feedback.redis.db",
	"redis_key_prefix":         "feedback.redis.key_prefix",
	"feedback_breaker_timeout": "feedback.breaker.timeout",
	"feedback_rate_limit":      "feedback.breaker.rate_limit",
	"feedback_rate_burst":      "feedback.breaker.rate_burst",

	"catalog_backend":    "catalog.backend",
	"catalog_path":       "catalog.path",
	"catalog_collection": "catalog.collection",

	"mongodb_uri":             "mongo.uri",
	"mongodb_database":        "mongo.database",
	"mongodb_connect_timeout": "mongo.connect_timeout",
	"mongodb_max_pool_size":   "mongo.max_pool_size",

	"matrix_enabled":  "matrix.enabled",
	"matrix_interval": "matrix.interval",
	"matrix_method":   "matrix.method",
	"matrix_output":   "matrix.output",
}

// envTransformFunc maps known variables and drops everything else from the
// process environment.
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}
	return ""
}
