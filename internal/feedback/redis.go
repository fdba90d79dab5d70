// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

package feedback

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/tomtom215/jobmatch/internal/logging"
	"github.com/tomtom215/jobmatch/internal/recommend"
)

// RedisConfig controls the shared KV store.
type RedisConfig struct {
	Addr      string `koanf:"addr"`
	Password  string `koanf:"password"`
	DB        int    `koanf:"db" validate:"gte=0"`
	KeyPrefix string `koanf:"key_prefix"`
}

// Layout:
//
//	<prefix>:user:<userID>  hash  itemID -> {"signal":"like","timestamp":...}
//	<prefix>:users          set   user IDs with at least one event
type redisValue struct {
	Signal    recommend.Signal `json:"signal"`
	Timestamp time.Time        `json:"timestamp"`
}

// removeScript deletes one field and drops the user from the index when the
// hash becomes empty, atomically.
var removeScript = redis.NewScript(`
local n = redis.call('HDEL', KEYS[1], ARGV[1])
if n == 1 and redis.call('HLEN', KEYS[1]) == 0 then
  redis.call('SREM', KEYS[2], ARGV[2])
end
return n
`)

// RedisStore keeps feedback in Redis hashes, one per user.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore connects and pings the server.
//
//nolint:gocritic // cfg passed by value at construction time
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = "fb"
	}

	logging.Info().Str("addr", cfg.Addr).Int("db", cfg.DB).Str("prefix", prefix).Msg("redis feedback store connected")
	return &RedisStore{client: client, prefix: prefix}, nil
}

func (s *RedisStore) userKey(userID string) string {
	return s.prefix + ":user:" + userID
}

func (s *RedisStore) usersKey() string {
	return s.prefix + ":users"
}

// Record implements Store.
func (s *RedisStore) Record(ctx context.Context, event recommend.FeedbackEvent) error {
	if err := checkEvent(&event); err != nil {
		return err
	}

	data, err := json.Marshal(redisValue{Signal: event.Signal, Timestamp: event.Timestamp})
	if err != nil {
		return fmt.Errorf("marshal feedback: %w", err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, s.userKey(event.UserID), event.ItemID, data)
		pipe.SAdd(ctx, s.usersKey(), event.UserID)
		return nil
	})
	if err != nil {
		err = fmt.Errorf("write feedback: %w", err)
	}
	return observe(BackendRedis, "record", err)
}

// Remove implements Store.
func (s *RedisStore) Remove(ctx context.Context, userID, itemID string) error {
	n, err := removeScript.Run(ctx, s.client, []string{s.userKey(userID), s.usersKey()}, itemID, userID).Int()
	switch {
	case err != nil:
		err = fmt.Errorf("delete feedback: %w", err)
	case n == 0:
		err = ErrNotFound
	}
	return observe(BackendRedis, "remove", err)
}

// ForUser implements Store.
func (s *RedisStore) ForUser(ctx context.Context, userID string) ([]recommend.FeedbackEvent, error) {
	fields, err := s.client.HGetAll(ctx, s.userKey(userID)).Result()
	if err != nil {
		return nil, observe(BackendRedis, "for_user", fmt.Errorf("read feedback: %w", err))
	}

	events := decodeUserHash(userID, fields)
	sortNewestFirst(events)
	return events, observe(BackendRedis, "for_user", nil)
}

// All implements Store. Per-user hashes are fetched in a single pipeline.
func (s *RedisStore) All(ctx context.Context) ([]recommend.FeedbackEvent, error) {
	users, err := s.client.SMembers(ctx, s.usersKey()).Result()
	if err != nil {
		return nil, observe(BackendRedis, "all", fmt.Errorf("list users: %w", err))
	}

	pipe := s.client.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, len(users))
	for i, userID := range users {
		cmds[i] = pipe.HGetAll(ctx, s.userKey(userID))
	}
	if len(users) > 0 {
		if _, err := pipe.Exec(ctx); err != nil {
			return nil, observe(BackendRedis, "all", fmt.Errorf("read feedback: %w", err))
		}
	}

	events := make([]recommend.FeedbackEvent, 0, len(users))
	for i, userID := range users {
		events = append(events, decodeUserHash(userID, cmds[i].Val())...)
	}
	sortByUserItem(events)
	return events, observe(BackendRedis, "all", nil)
}

func decodeUserHash(userID string, fields map[string]string) []recommend.FeedbackEvent {
	events := make([]recommend.FeedbackEvent, 0, len(fields))
	for itemID, raw := range fields {
		var v redisValue
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			logging.Warn().Err(err).Str("user_id", userID).Str("item_id", itemID).Msg("skipping unreadable feedback entry")
			continue
		}
		events = append(events, recommend.FeedbackEvent{
			UserID:    userID,
			ItemID:    itemID,
			Signal:    v.Signal,
			Timestamp: v.Timestamp,
		})
	}
	return events
}

// Close implements Store.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
