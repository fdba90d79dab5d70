// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

// Package logging provides centralized zerolog-based structured logging.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Str("backend", "badger").Msg("feedback store opened")
//	logging.Error().Err(err).Msg("recommendation failed")
//
//	// Request-scoped fields (request_id, user_id)
//	logging.Ctx(ctx).Info().Int("results", n).Msg("recommendations served")
//
// # Components
//
// Long-lived components receive a zerolog.Logger and derive a child:
//
//	logger = logger.With().Str("component", "recommend").Logger()
//
// # Supervisor Integration
//
// NewSlogLogger returns an slog.Logger backed by zerolog, which sutureslog
// uses to report service restarts and failures.
//
// # Best Practices
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("key", "value").Msg("message")  // Correct
//	logging.Info().Str("key", "value")                 // WRONG - log not emitted
package logging
