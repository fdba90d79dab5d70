// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

/*
Package config loads and validates Jobmatch configuration.

Configuration is layered with koanf, later sources overriding earlier ones:

 1. Built-in defaults (defaultConfig)
 2. A YAML file from CONFIG_PATH, or the first of DefaultConfigPaths that exists
 3. Environment variables

# Sections

  - server: listen address, timeouts, CORS origins, per-IP rate limit
  - logging: zerolog level, format and caller info
  - recommend: request defaults, hybrid weights and scoring tuning
  - feedback: store backend (memory, badger, redis, mongo) and its circuit breaker
  - catalog: job listings from a YAML/JSON seed file or a MongoDB collection
  - mongo: connection shared by the mongo feedback store and catalog
  - matrix: the optional periodic similarity matrix export

# Environment Variables

Environment names are flat and mapped onto keys by envTransformFunc, for
example HTTP_PORT → server.port, FEEDBACK_BACKEND → feedback.backend and
MONGODB_URI → mongo.uri. Unmapped variables are ignored. CORS_ORIGINS takes a
comma-separated list.

# Example

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}
	logging.Init(cfg.Logging.ToLogging())
*/
package config
