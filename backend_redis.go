// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// backend_redis.go — Backend adapter over the Redis key/value store.

package memoize

import (
	"context"
	"errors"
	"time"

	"github.com/AndrewDonelson/memoize/internal/rediskv"
	"github.com/redis/go-redis/v9"
)

// RedisBackend persists coder-encoded values in Redis. Unlike the memory
// backend it supports per-entry expiry, which Redis enforces server-side.
type RedisBackend struct {
	store *rediskv.Store
}

// NewRedisBackend creates a Redis backend over an existing client. A nil
// c selects the msgpack coder.
func NewRedisBackend(client redis.UniversalClient, c Coder, keyPrefix string) *RedisBackend {
	return &RedisBackend{
		store: rediskv.New(rediskv.Options{Client: client, Coder: c, KeyPrefix: keyPrefix}),
	}
}

// Get returns the decoded value stored under key, or ErrMiss.
func (b *RedisBackend) Get(ctx context.Context, key string) (any, error) {
	v, err := b.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, rediskv.ErrMiss) {
			return nil, ErrMiss
		}
		return nil, err
	}
	return v, nil
}

// Set encodes value and stores it under key with the given ttl.
func (b *RedisBackend) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return b.store.Set(ctx, key, value, ttl)
}

// Delete removes key; absent keys are a no-op.
func (b *RedisBackend) Delete(ctx context.Context, key string) error {
	return b.store.Delete(ctx, key)
}

// Clear removes every key in this backend's namespace.
func (b *RedisBackend) Clear(ctx context.Context) error {
	return b.store.Clear(ctx)
}

// Ping checks that Redis is reachable.
func (b *RedisBackend) Ping(ctx context.Context) error {
	return b.store.Ping(ctx)
}

// Stats returns the backend's hit/miss counters.
func (b *RedisBackend) Stats() BackendStats {
	s := b.store.Stats()
	return BackendStats{Hits: s.Hits, Misses: s.Misses}
}
