// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

// Package feedback stores like/dislike events and serves them to the
// recommender.
//
// Backends:
//
//   - memory: process-local maps (default, tests)
//   - badger: embedded BadgerDB, durable on a single node
//   - redis: one hash per user plus a user index set
//   - mongo: one document per (user, job) pair in the "feedbacks" collection
//
// Every backend keeps at most one event per (user, item) pair. All returns
// events ordered by user then item so downstream computation is repeatable.
//
// Network backends are wrapped in a GuardedStore, which adds a circuit
// breaker and an optional client-side rate limit.
package feedback
