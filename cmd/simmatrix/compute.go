// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomtom215/jobmatch/internal/logging"
	"github.com/tomtom215/jobmatch/internal/recommend"
)

var computeCommand = &cobra.Command{
	Use:   "compute",
	Short: "Compute the all-pairs user similarity matrix",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		methodName, _ := cmd.Flags().GetString("method")
		output, _ := cmd.Flags().GetString("output")

		method, err := recommend.ParseSimilarityMethod(methodName)
		if err != nil {
			return err
		}

		return withSession(cmd.Context(), func(s *session) error {
			store, err := s.feedbackStore(cmd.Context())
			if err != nil {
				return err
			}
			engine, err := recommend.NewEngine(s.cfg.Recommend.Tuning, logging.Logger())
			if err != nil {
				return err
			}

			start := time.Now()
			events, err := store.All(cmd.Context())
			if err != nil {
				return fmt.Errorf("load feedback: %w", err)
			}
			m, err := engine.SimilarityMatrix(cmd.Context(), events, method)
			if err != nil {
				return err
			}
			logging.Info().Int("users", len(m.Users)).Dur("duration", time.Since(start)).Msg("matrix computed")

			if output == "" || output == "-" {
				return writeJSON(cmd.OutOrStdout(), m)
			}
			f, err := os.Create(output) //nolint:gosec // operator-supplied path
			if err != nil {
				return fmt.Errorf("create %s: %w", output, err)
			}
			if err := writeJSON(f, m); err != nil {
				_ = f.Close()
				return err
			}
			return f.Close()
		})
	},
}

func init() {
	computeCommand.Flags().StringP("method", "m", "hybrid", "similarity method: hybrid, cosine, pearson, jaccard")
	computeCommand.Flags().StringP("output", "o", "-", "output file, - for stdout")
}
