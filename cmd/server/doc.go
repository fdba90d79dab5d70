// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

/*
Command server runs the Jobmatch HTTP API.

Startup order:

 1. Configuration: Koanf v2 (defaults, config.yaml, environment)
 2. Logging: zerolog, level and format from LOG_LEVEL / LOG_FORMAT
 3. Backends: MongoDB when FEEDBACK_BACKEND or CATALOG_BACKEND is mongo,
    then the feedback store (memory, badger, redis, mongo) and the job
    catalog (YAML/JSON file or MongoDB)
 4. Recommendation engine and service
 5. Supervisor tree: the HTTP server and, with MATRIX_ENABLED=true, the
    periodic similarity matrix job

Minimal run with an in-memory feedback store and a YAML catalog:

	export CATALOG_PATH=./jobs.yaml
	./server

Persistent feedback in Redis and listings in MongoDB:

	export FEEDBACK_BACKEND=redis REDIS_ADDR=redis:6379
	export CATALOG_BACKEND=mongo MONGODB_URI=mongodb://mongo:27017
	./server

SIGINT and SIGTERM stop the supervisor; in-flight requests get
HTTP_SHUTDOWN_TIMEOUT to finish before the stores are closed.
*/
package main
