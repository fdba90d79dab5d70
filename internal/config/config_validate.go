// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

package config

import (
	"errors"
	"fmt"

	"github.com/tomtom215/jobmatch/internal/feedback"
	"github.com/tomtom215/jobmatch/internal/validation"
)

// Validate checks struct tags first, then the rules that span sections.
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return verr
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	if err := c.validateFeedback(); err != nil {
		return err
	}

	if err := c.validateCatalog(); err != nil {
		return err
	}

	if err := c.validateMongo(); err != nil {
		return err
	}

	return c.validateMatrix()
}

func (c *Config) validateRecommend() error {
	if c.Recommend.CollaborativeWeight+c.Recommend.ContentWeight <= 0 {
		return errors.New("RECOMMEND_COLLABORATIVE_WEIGHT and RECOMMEND_CONTENT_WEIGHT cannot both be zero")
	}
	if err := c.Recommend.Tuning.Validate(); err != nil {
		return fmt.Errorf("recommend.tuning: %w", err)
	}
	return nil
}

func (c *Config) validateFeedback() error {
	switch c.Feedback.Backend {
	case feedback.BackendBadger:
		if c.Feedback.Badger.Path == "" && !c.Feedback.Badger.InMemory {
			return errors.New("BADGER_PATH is required when FEEDBACK_BACKEND=badger")
		}
	case feedback.BackendRedis:
		if err := validateHostPort(c.Feedback.Redis.Addr); err != nil {
			return fmt.Errorf("REDIS_ADDR is invalid: %w", err)
		}
	}
	return nil
}

func (c *Config) validateCatalog() error {
	if c.Catalog.Backend == CatalogFile && c.Catalog.Path == "" {
		return errors.New("CATALOG_PATH is required when CATALOG_BACKEND=file")
	}
	return nil
}

// validateMongo only applies when a backend needs the connection.
func (c *Config) validateMongo() error {
	if !c.NeedsMongo() {
		return nil
	}
	if c.Mongo.URI == "" {
		return errors.New("MONGODB_URI is required when a mongo backend is selected")
	}
	if err := validateMongoURI(c.Mongo.URI); err != nil {
		return fmt.Errorf("MONGODB_URI is invalid: %w", err)
	}
	if c.Mongo.Database == "" {
		return errors.New("MONGODB_DATABASE is required when a mongo backend is selected")
	}
	return nil
}

func (c *Config) validateMatrix() error {
	if !c.Matrix.Enabled {
		return nil
	}
	if c.Matrix.Interval <= 0 {
		return fmt.Errorf("MATRIX_INTERVAL must be positive, got %s", c.Matrix.Interval)
	}
	if c.Matrix.Output == "" {
		return errors.New("MATRIX_OUTPUT is required when MATRIX_ENABLED=true")
	}
	return nil
}
