/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
// Package realtime is a Redis-backed swiss.Section store for
// deployments where more than one process may pair or score the same
// section concurrently (the Discord bot and the HTTP API sharing a
// section, for instance). It follows leaderboard-redis's
// internal/redis package shape — a thin client wrapper with
// context-first methods and fmt.Errorf-wrapped errors — but where that
// package only ever issues single-command writes, Mutate needs a real
// read-modify-write, so it reaches for go-redis's WATCH/MULTI
// transaction pipeline instead.
package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/mikeb26/swisstd/swiss"
)

// Store is a Redis-backed section store.
type Store struct {
	client *redis.Client
	prefix string
}

// Config names the Redis connection details, mirroring the
// RedisConfig shape leaderboard-redis passes into NewLeaderboardService.
type Config struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// New connects to Redis and verifies the connection with a Ping, same
// as leaderboard-redis's NewLeaderboardService.
func New(ctx context.Context, cfg Config) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "swiss"
	}
	return &Store{client: client, prefix: prefix}, nil
}

// Close closes the underlying Redis connection.
func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) sectionKey(name string) string {
	return fmt.Sprintf("%s:section:%s", s.prefix, name)
}

// Load fetches and decodes the named section, returning (nil, nil) if
// it doesn't exist yet.
func (s *Store) Load(ctx context.Context, name string) (*swiss.Section, error) {
	raw, err := s.client.Get(ctx, s.sectionKey(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading section %q: %w", name, err)
	}
	var sec swiss.Section
	if err := json.Unmarshal(raw, &sec); err != nil {
		return nil, fmt.Errorf("decoding section %q: %w", name, err)
	}
	return &sec, nil
}

// Save encodes and stores sec under its Name, with no concurrency
// check — callers that need read-modify-write safety use Mutate.
func (s *Store) Save(ctx context.Context, sec *swiss.Section) error {
	raw, err := json.Marshal(sec)
	if err != nil {
		return fmt.Errorf("encoding section %q: %w", sec.Name, err)
	}
	if err := s.client.Set(ctx, s.sectionKey(sec.Name), raw, 0).Err(); err != nil {
		return fmt.Errorf("saving section %q: %w", sec.Name, err)
	}
	return nil
}

// Mutate performs an optimistic-concurrency read-modify-write: WATCH
// the section key, load its current value, run fn against it, and
// commit the new value inside a MULTI transaction. If another client
// writes the key between the WATCH and the commit, go-redis returns
// redis.TxFailedErr and Mutate retries the whole cycle — fn must be
// safe to call more than once for the same logical call.
func (s *Store) Mutate(ctx context.Context, name string, fn func(*swiss.Section) error) error {
	key := s.sectionKey(name)

	txf := func(tx *redis.Tx) error {
		sec, err := loadWithTx(ctx, tx, key)
		if err != nil {
			return err
		}
		if sec == nil {
			sec = swiss.NewSection(name, 0)
		}
		if err := fn(sec); err != nil {
			return err
		}
		raw, err := json.Marshal(sec)
		if err != nil {
			return fmt.Errorf("encoding section %q: %w", name, err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, raw, 0)
			return nil
		})
		return err
	}

	const maxRetries = 10
	for i := 0; i < maxRetries; i++ {
		err := s.client.Watch(ctx, txf, key)
		if err == nil {
			return nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return fmt.Errorf("mutating section %q: %w", name, err)
	}
	return fmt.Errorf("mutating section %q: too much contention after %d retries", name, maxRetries)
}

func loadWithTx(ctx context.Context, tx *redis.Tx, key string) (*swiss.Section, error) {
	raw, err := tx.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading key %q: %w", key, err)
	}
	var sec swiss.Section
	if err := json.Unmarshal(raw, &sec); err != nil {
		return nil, fmt.Errorf("decoding key %q: %w", key, err)
	}
	return &sec, nil
}
