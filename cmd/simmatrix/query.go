// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

package main

import (
	"github.com/spf13/cobra"

	"github.com/tomtom215/jobmatch/internal/recommend"
)

var similarCommand = &cobra.Command{
	Use:   "similar",
	Short: "List a user's most similar peers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		user, _ := cmd.Flags().GetString("user")
		top, _ := cmd.Flags().GetInt("top")
		minCommon, _ := cmd.Flags().GetInt("min-common")
		methodName, _ := cmd.Flags().GetString("method")

		method, err := recommend.ParseSimilarityMethod(methodName)
		if err != nil {
			return err
		}

		return withSession(cmd.Context(), func(s *session) error {
			svc, err := s.service(cmd.Context())
			if err != nil {
				return err
			}
			users, err := svc.SimilarUsers(cmd.Context(), user, top, method, minCommon)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), users)
		})
	},
}

var recommendCommand = &cobra.Command{
	Use:   "recommend",
	Short: "Rank unseen jobs for a user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		user, _ := cmd.Flags().GetString("user")
		top, _ := cmd.Flags().GetInt("top")
		hybrid, _ := cmd.Flags().GetBool("hybrid")
		minScore, _ := cmd.Flags().GetFloat64("min-score")

		return withSession(cmd.Context(), func(s *session) error {
			svc, err := s.service(cmd.Context())
			if err != nil {
				return err
			}
			// Method -1 selects the configured default.
			opts := recommend.Options{
				SimilarityMethod:  recommend.SimilarityMethod(-1),
				MinRecommendScore: minScore,
			}

			var recs []recommend.Recommendation
			if hybrid {
				recs, err = svc.RecommendHybrid(cmd.Context(), user, top, recommend.HybridOptions{Options: opts})
			} else {
				recs, err = svc.Recommend(cmd.Context(), user, top, opts)
			}
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), recs)
		})
	},
}

func init() {
	similarCommand.Flags().StringP("user", "u", "", "target user ID")
	similarCommand.Flags().IntP("top", "n", 10, "number of peers")
	similarCommand.Flags().Int("min-common", 0, "minimum co-rated jobs (0 uses the configured default)")
	similarCommand.Flags().StringP("method", "m", "hybrid", "similarity method")
	_ = similarCommand.MarkFlagRequired("user")

	recommendCommand.Flags().StringP("user", "u", "", "target user ID")
	recommendCommand.Flags().IntP("top", "n", recommend.DefaultTopN, "number of jobs")
	recommendCommand.Flags().Bool("hybrid", false, "blend in the content score")
	recommendCommand.Flags().Float64("min-score", -1, "minimum score (negative uses the configured default)")
	_ = recommendCommand.MarkFlagRequired("user")
}
