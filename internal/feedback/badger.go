// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

package feedback

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/jobmatch/internal/logging"
	"github.com/tomtom215/jobmatch/internal/recommend"
)

// Keys are "fb\x00<user>\x00<item>". Identifiers never contain control
// characters, so the separator cannot collide.
const (
	badgerPrefix = "fb\x00"
	badgerSep    = "\x00"
)

// BadgerConfig controls the embedded store.
type BadgerConfig struct {
	// Path is the database directory. Ignored when InMemory is set.
	Path string `koanf:"path"`

	// InMemory keeps all data in RAM (tests, demos).
	InMemory bool `koanf:"in_memory"`

	// SyncWrites fsyncs each write.
	SyncWrites bool `koanf:"sync_writes"`

	// CloseTimeout bounds Close.
	CloseTimeout time.Duration `koanf:"close_timeout"`
}

// BadgerStore persists feedback in an embedded BadgerDB.
type BadgerStore struct {
	db      *badger.DB
	timeout time.Duration

	mu     sync.RWMutex
	closed bool
}

// OpenBadger opens (or creates) the store described by cfg.
func OpenBadger(cfg BadgerConfig) (*BadgerStore, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("badger feedback store: path is required")
	}

	opts := badger.DefaultOptions(cfg.Path)
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts.SyncWrites = cfg.SyncWrites

	// Badger's own logger is far too chatty at info level.
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open BadgerDB: %w", err)
	}

	timeout := cfg.CloseTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	logging.Info().
		Str("path", cfg.Path).
		Bool("in_memory", cfg.InMemory).
		Bool("sync_writes", cfg.SyncWrites).
		Msg("badger feedback store opened")

	return &BadgerStore{db: db, timeout: timeout}, nil
}

func badgerKey(userID, itemID string) []byte {
	return []byte(badgerPrefix + userID + badgerSep + itemID)
}

func badgerUserPrefix(userID string) []byte {
	return []byte(badgerPrefix + userID + badgerSep)
}

func (s *BadgerStore) checkOpen() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrClosed
	}
	return nil
}

// Record implements Store.
func (s *BadgerStore) Record(ctx context.Context, event recommend.FeedbackEvent) error {
	if err := checkEvent(&event); err != nil {
		return err
	}
	if err := s.checkOpen(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal feedback: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(badgerKey(event.UserID, event.ItemID), data)
	})
	if err != nil {
		err = fmt.Errorf("write feedback: %w", err)
	}
	return observe(BackendBadger, "record", err)
}

// Remove implements Store.
func (s *BadgerStore) Remove(ctx context.Context, userID, itemID string) error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	key := badgerKey(userID, itemID)
	err := s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrNotFound
			}
			return err
		}
		return txn.Delete(key)
	})
	if err != nil && !errors.Is(err, ErrNotFound) {
		err = fmt.Errorf("delete feedback: %w", err)
	}
	return observe(BackendBadger, "remove", err)
}

// ForUser implements Store.
func (s *BadgerStore) ForUser(ctx context.Context, userID string) ([]recommend.FeedbackEvent, error) {
	events, err := s.scan(ctx, badgerUserPrefix(userID))
	if err != nil {
		return nil, observe(BackendBadger, "for_user", err)
	}
	sortNewestFirst(events)
	return events, observe(BackendBadger, "for_user", nil)
}

// All implements Store.
func (s *BadgerStore) All(ctx context.Context) ([]recommend.FeedbackEvent, error) {
	events, err := s.scan(ctx, []byte(badgerPrefix))
	if err != nil {
		return nil, observe(BackendBadger, "all", err)
	}
	sortByUserItem(events)
	return events, observe(BackendBadger, "all", nil)
}

func (s *BadgerStore) scan(ctx context.Context, prefix []byte) ([]recommend.FeedbackEvent, error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	events := make([]recommend.FeedbackEvent, 0)
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			item := it.Item()
			var event recommend.FeedbackEvent
			err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &event)
			})
			if err != nil {
				logging.Warn().Err(err).Str("key", string(item.Key())).Msg("skipping unreadable feedback entry")
				continue
			}
			events = append(events, event)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterate feedback: %w", err)
	}
	return events, nil
}

// Close implements Store. It gives up after the configured timeout.
func (s *BadgerStore) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	done := make(chan error, 1)
	go func() {
		done <- s.db.Close()
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("close BadgerDB: %w", err)
		}
		logging.Info().Msg("badger feedback store closed")
		return nil
	case <-time.After(s.timeout):
		logging.Warn().Dur("timeout", s.timeout).Msg("BadgerDB close timed out")
		return fmt.Errorf("badgerdb close timeout after %v", s.timeout)
	}
}
