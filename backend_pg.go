// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// backend_pg.go — Backend adapter over the PostgreSQL key/value store. The
// kv table only holds bytes, so this adapter owns the coder: encode before
// every write, decode after every read.

package memoize

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AndrewDonelson/memoize/internal/pgkv"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresBackend persists coder-encoded values in a PostgreSQL kv table,
// surviving process restarts. Row expiry is enforced on read.
type PostgresBackend struct {
	store *pgkv.Store
	coder Coder
}

// NewPostgresBackend creates a Postgres backend over an existing pool and
// ensures the kv table exists. An empty table selects pgkv.DefaultTable.
func NewPostgresBackend(ctx context.Context, pool *pgxpool.Pool, c Coder, table string) (*PostgresBackend, error) {
	s := pgkv.New(pgkv.Options{Pool: pool, Table: table})
	if err := s.EnsureTable(ctx); err != nil {
		return nil, err
	}
	return &PostgresBackend{store: s, coder: c}, nil
}

// Get returns the decoded value stored under key, or ErrMiss.
func (b *PostgresBackend) Get(ctx context.Context, key string) (any, error) {
	raw, err := b.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, pgkv.ErrMiss) {
			return nil, ErrMiss
		}
		return nil, err
	}
	v, err := b.coder.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeFailed, err)
	}
	return v, nil
}

// Set encodes value and upserts it under key with the given ttl.
func (b *PostgresBackend) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := b.coder.Encode(value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodeFailed, err)
	}
	return b.store.Set(ctx, key, raw, ttl)
}

// Delete removes key; absent keys are a no-op.
func (b *PostgresBackend) Delete(ctx context.Context, key string) error {
	return b.store.Delete(ctx, key)
}

// Clear removes every row in the kv table.
func (b *PostgresBackend) Clear(ctx context.Context) error {
	return b.store.Clear(ctx)
}

// Ping verifies the database is reachable.
func (b *PostgresBackend) Ping(ctx context.Context) error {
	return b.store.Ping(ctx)
}

// Stats returns the backend's hit/miss counters.
func (b *PostgresBackend) Stats() BackendStats {
	s := b.store.Stats()
	return BackendStats{Hits: s.Hits, Misses: s.Misses}
}

// Close shuts down the underlying connection pool.
func (b *PostgresBackend) Close() { b.store.Close() }
