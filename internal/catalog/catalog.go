// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

// Package catalog supplies the job listings that can be recommended.
//
// Listings come from a seed file (YAML or JSON) held in memory, or from the
// "jobs" collection in MongoDB. Both return items in a stable order.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/tomtom215/jobmatch/internal/recommend"
	"github.com/tomtom215/jobmatch/internal/validation"
)

// ErrItemNotFound is returned by Get for unknown job IDs.
var ErrItemNotFound = errors.New("job not found")

// Catalog lists candidate jobs.
type Catalog interface {
	// Items returns every listing.
	Items(ctx context.Context) ([]recommend.Item, error)

	// Get returns one listing or ErrItemNotFound.
	Get(ctx context.Context, id string) (recommend.Item, error)
}

// MemoryCatalog is an immutable in-memory catalog.
type MemoryCatalog struct {
	items []recommend.Item
	byID  map[string]int
}

// NewMemoryCatalog validates items and rejects duplicate IDs.
func NewMemoryCatalog(items []recommend.Item) (*MemoryCatalog, error) {
	byID := make(map[string]int, len(items))
	for i := range items {
		if verr := validation.ValidateStruct(&items[i]); verr != nil {
			return nil, fmt.Errorf("job %d: %w", i, verr)
		}
		if _, dup := byID[items[i].ID]; dup {
			return nil, fmt.Errorf("duplicate job id %q", items[i].ID)
		}
		byID[items[i].ID] = i
	}
	return &MemoryCatalog{items: items, byID: byID}, nil
}

// Items implements Catalog. The returned slice is a copy.
func (c *MemoryCatalog) Items(ctx context.Context) ([]recommend.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]recommend.Item, len(c.items))
	copy(out, c.items)
	return out, nil
}

// Get implements Catalog.
func (c *MemoryCatalog) Get(ctx context.Context, id string) (recommend.Item, error) {
	if err := ctx.Err(); err != nil {
		return recommend.Item{}, err
	}
	i, ok := c.byID[id]
	if !ok {
		return recommend.Item{}, ErrItemNotFound
	}
	return c.items[i], nil
}

// Len returns the number of listings.
func (c *MemoryCatalog) Len() int {
	return len(c.items)
}

// seedFile is the on-disk layout:
//
//	jobs:
//	  - id: job-001
//	    title: Backend Engineer
//	    ...
type seedFile struct {
	Jobs []recommend.Item `json:"jobs" yaml:"jobs"`
}

// LoadFile reads a YAML (.yaml/.yml) or JSON (.json) seed file.
func LoadFile(path string) (*MemoryCatalog, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator config
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	items, err := parseSeed(filepath.Ext(path), data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", path, err)
	}
	return NewMemoryCatalog(items)
}

func parseSeed(ext string, data []byte) ([]recommend.Item, error) {
	var seed seedFile
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &seed); err != nil {
			return nil, err
		}
	case ".json":
		if err := json.Unmarshal(data, &seed); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", ext)
	}
	return seed.Jobs, nil
}

// IDs returns the listing IDs in catalog order.
func IDs(items []recommend.Item) []string {
	return lo.Map(items, func(it recommend.Item, _ int) string { return it.ID })
}
