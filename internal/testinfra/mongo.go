// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

//go:build integration

package testinfra

import (
	"context"
	"time"

	"github.com/testcontainers/testcontainers-go"
)

// DefaultMongoImage is the MongoDB image used by integration tests.
const DefaultMongoImage = "mongo:7"

// MongoContainer is a running single-node MongoDB.
type MongoContainer struct {
	testcontainers.Container

	// URI is a mongodb:// connection string without credentials.
	URI string
}

// NewMongoContainer starts MongoDB. Startup takes longer than Redis, so the
// wait budget is larger.
func NewMongoContainer(ctx context.Context) (*MongoContainer, error) {
	container, addr, err := serviceContainer(ctx, DefaultMongoImage, "27017", 120*time.Second)
	if err != nil {
		return nil, err
	}
	return &MongoContainer{Container: container, URI: "mongodb://" + addr}, nil
}
