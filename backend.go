// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// backend.go — the Backend contract every store must satisfy, plus the
// in-memory LRU backend. Backends that cannot honor an option (the LRU has
// no expiry) reject it explicitly rather than miscounting silently.

// Package memoize provides the storage and serialization core of a
// function-level memoization framework: a coder registry mapping names to
// encode/decode pairs, a bounded LRU cache engine, and Redis/PostgreSQL
// backends that persist coder-encoded results behind one Backend contract.
package memoize

import (
	"context"
	"time"

	"github.com/AndrewDonelson/memoize/internal/lru"
)

// Backend is the storage contract consumed by the memoization layer. Get
// returns ErrMiss for an absent key — a first-class outcome, never
// conflated with a decode failure, and distinguishable from a stored nil.
type Backend interface {
	Get(ctx context.Context, key string) (any, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// CacheInfo is the counter snapshot exposed by the memory backend.
type CacheInfo = lru.Stats

// BackendStats holds the hit/miss counters of a remote backend.
type BackendStats struct {
	Hits   int64
	Misses int64
}

// MemoryBackend adapts the in-process LRU engine to the Backend contract.
// Values are stored as-is, no coder involved; the context parameters are
// accepted for contract symmetry but never consulted, since every
// operation is in-memory and completes in bounded time.
type MemoryBackend struct {
	cache *lru.Cache
}

// NewMemoryBackend creates a memory backend bounded to maxEntries live
// entries (lru.Unbounded for no bound).
func NewMemoryBackend(maxEntries int) *MemoryBackend {
	return &MemoryBackend{cache: lru.New(lru.Options{MaxEntries: maxEntries})}
}

// Get returns the value stored under key, or ErrMiss.
func (b *MemoryBackend) Get(_ context.Context, key string) (any, error) {
	v, ok := b.cache.Get(key)
	if !ok {
		return nil, ErrMiss
	}
	return v, nil
}

// Set stores value under key. The LRU engine has no notion of time-based
// expiry, so any positive ttl fails with ErrExpireUnsupported.
func (b *MemoryBackend) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	if ttl > 0 {
		return ErrExpireUnsupported
	}
	b.cache.Set(key, value)
	return nil
}

// Delete removes key if present; absent keys are a no-op.
func (b *MemoryBackend) Delete(_ context.Context, key string) error {
	b.cache.Delete(key)
	return nil
}

// Clear removes all entries and resets the engine's counters.
func (b *MemoryBackend) Clear(_ context.Context) error {
	b.cache.Clear()
	return nil
}

// Info returns the engine's hit/miss/capacity/size snapshot.
func (b *MemoryBackend) Info() CacheInfo {
	return b.cache.Info()
}
