// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

// Package database owns the MongoDB connection used by the mongo feedback
// backend and the mongo job catalog. One client is shared by both; each
// component binds its own collection.
package database
