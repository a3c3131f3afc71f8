// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// rediskv.go — Redis-backed key/value store: values pass through a coder on
// the way in and out, missing keys surface as the ErrMiss sentinel, and
// Clear walks the key space with SCAN+DEL rather than FLUSHDB.

// Package rediskv provides the Redis cache backend adapter.
package rediskv

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/AndrewDonelson/memoize/internal/coder"
	"github.com/redis/go-redis/v9"
)

// ErrMiss is returned by Get when the key does not exist in Redis. Callers
// use errors.Is(err, rediskv.ErrMiss) to distinguish a cache miss from a
// genuine Redis error.
var ErrMiss = errors.New("rediskv: miss")

// Store is the Redis key/value backend.
type Store struct {
	client    redis.UniversalClient
	coder     coder.Coder
	keyPrefix string
	hits      atomic.Int64
	misses    atomic.Int64
}

// Options configures a new Store.
type Options struct {
	Client    redis.UniversalClient
	Coder     coder.Coder
	KeyPrefix string
}

// New creates a Store. The coder defaults to MsgPack when unset.
func New(opts Options) *Store {
	if opts.Coder == nil {
		opts.Coder = coder.MsgPack{}
	}
	return &Store{client: opts.Client, coder: opts.Coder, keyPrefix: opts.KeyPrefix}
}

// key returns the namespaced Redis key. Plain concatenation, no Sprintf,
// to keep the hot path allocation-light.
func (s *Store) key(k string) string {
	if s.keyPrefix != "" {
		return s.keyPrefix + ":" + k
	}
	return k
}

// Set encodes value through the coder and stores it under key. A ttl <= 0
// persists the key indefinitely.
func (s *Store) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	b, err := s.coder.Encode(value)
	if err != nil {
		return fmt.Errorf("rediskv encode: %w", err)
	}
	if ttl < 0 {
		ttl = 0
	}
	k := s.key(key)
	if err := s.client.Set(ctx, k, b, ttl).Err(); err != nil {
		return fmt.Errorf("rediskv set %s: %w", k, err)
	}
	return nil
}

// Get retrieves and decodes the value stored under key. Returns ErrMiss
// when the key is absent; coder failures propagate wrapped, never retried.
func (s *Store) Get(ctx context.Context, key string) (any, error) {
	k := s.key(key)
	b, err := s.client.Get(ctx, k).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			s.misses.Add(1)
			return nil, ErrMiss
		}
		return nil, fmt.Errorf("rediskv get %s: %w", k, err)
	}
	s.hits.Add(1)
	v, err := s.coder.Decode(b)
	if err != nil {
		return nil, fmt.Errorf("rediskv decode: %w", err)
	}
	return v, nil
}

// Delete removes a key. Deleting an absent key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	k := s.key(key)
	if err := s.client.Del(ctx, k).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("rediskv delete %s: %w", k, err)
	}
	return nil
}

// Clear removes every key in this store's namespace using SCAN+DEL
// (production-safe, unlike FLUSHDB) and resets the hit/miss counters.
func (s *Store) Clear(ctx context.Context) error {
	pattern := "*"
	if s.keyPrefix != "" {
		pattern = s.keyPrefix + ":*"
	}
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return fmt.Errorf("rediskv scan: %w", err)
		}
		if len(keys) > 0 {
			if err := s.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("rediskv clear: %w", err)
			}
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	s.hits.Store(0)
	s.misses.Store(0)
	return nil
}

// Ping checks that Redis is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Stats holds hit and miss counts.
type Stats struct {
	Hits   int64
	Misses int64
}

// Stats returns current counters.
func (s *Store) Stats() Stats {
	return Stats{Hits: s.hits.Load(), Misses: s.misses.Load()}
}
