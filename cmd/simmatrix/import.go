// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/jobmatch/internal/catalog"
	"github.com/tomtom215/jobmatch/internal/config"
	"github.com/tomtom215/jobmatch/internal/logging"
	"github.com/tomtom215/jobmatch/internal/recommend"
)

var importJobsCommand = &cobra.Command{
	Use:   "import-jobs FILE",
	Short: "Upsert job listings from a YAML or JSON seed file into the MongoDB catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, err := catalog.LoadFile(args[0])
		if err != nil {
			return err
		}
		items, err := seed.Items(cmd.Context())
		if err != nil {
			return err
		}

		return withSession(cmd.Context(), func(s *session) error {
			if s.cfg.Catalog.Backend != config.CatalogMongo {
				return errors.New("import-jobs requires CATALOG_BACKEND=mongo")
			}
			target := catalog.NewMongoCatalog(s.mongo(), s.cfg.Catalog.Collection, s.cfg.Catalog.Breaker)
			if err := target.Upsert(cmd.Context(), items); err != nil {
				return err
			}
			logging.Debug().Strs("job_ids", catalog.IDs(items)).Msg("jobs upserted")
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d jobs\n", len(items))
			return nil
		})
	},
}

var importFeedbackCommand = &cobra.Command{
	Use:   "import-feedback FILE",
	Short: "Record feedback events from a JSON array into the configured store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0]) //nolint:gosec // operator-supplied path
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}
		var events []recommend.FeedbackEvent
		if err := json.Unmarshal(data, &events); err != nil {
			return fmt.Errorf("parse %s: %w", args[0], err)
		}

		return withSession(cmd.Context(), func(s *session) error {
			store, err := s.feedbackStore(cmd.Context())
			if err != nil {
				return err
			}
			for i, e := range events {
				if err := store.Record(cmd.Context(), e); err != nil {
					return fmt.Errorf("event %d (%s/%s): %w", i, e.UserID, e.ItemID, err)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d feedback events\n", len(events))
			return nil
		})
	},
}
