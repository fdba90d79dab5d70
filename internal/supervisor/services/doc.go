// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

// Package services adapts server components to suture.Service.
//
// HTTPServerService translates ListenAndServe/Shutdown into a context-aware
// Serve. MatrixService runs the similarity matrix on a ticker and writes the
// result as JSON. Both return ctx.Err() on cancellation so the supervisor
// treats shutdown as normal termination.
package services
