// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

/*
Command simmatrix runs the recommender offline against the configured stores.

	simmatrix compute --method pearson --output matrix.json
	simmatrix similar --user u-17 --top 5
	simmatrix recommend --user u-17 --top 10 --hybrid
	simmatrix import-jobs jobs.yaml
	simmatrix import-feedback events.json

Backends and defaults come from the same configuration as the server
(config.yaml plus environment); --config selects another file.
*/
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/jobmatch/internal/config"
	"github.com/tomtom215/jobmatch/internal/logging"
)

var rootCommand = &cobra.Command{
	Use:           "simmatrix",
	Short:         "Offline similarity and recommendation tooling for Jobmatch",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if path, _ := cmd.Flags().GetString("config"); path != "" {
			if err := os.Setenv(config.ConfigPathEnvVar, path); err != nil {
				return err
			}
		}
		level, _ := cmd.Flags().GetString("log-level")
		logging.Init(logging.Config{Level: level, Format: "console", Timestamp: true, Output: os.Stderr})
		return nil
	},
}

func init() {
	rootCommand.PersistentFlags().StringP("config", "c", "", "configuration file (overrides CONFIG_PATH)")
	rootCommand.PersistentFlags().String("log-level", "warn", "log level for progress output on stderr")

	rootCommand.AddCommand(computeCommand, similarCommand, recommendCommand, importJobsCommand, importFeedbackCommand)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCommand.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "simmatrix:", err)
		stop()
		os.Exit(1) //nolint:gocritic // stop is called explicitly above
	}
}

// writeJSON prints v indented to w.
func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
