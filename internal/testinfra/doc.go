// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

// Package testinfra starts Redis and MongoDB containers for integration tests
// of the network feedback stores and the Mongo job catalog.
//
// Everything here is behind the integration build tag:
//
//	go test -tags integration ./internal/feedback/...
//
// Tests call SkipIfNoDocker first so they skip cleanly on machines without
// Docker. The first run pulls images; later runs use the local cache.
package testinfra
