// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// pgkv.go — PostgreSQL-backed key/value store for coder-encoded cache
// values: a single kv table with upsert writes, optional row expiry, and
// the ErrMiss sentinel on absent or expired keys.

// Package pgkv provides the PostgreSQL cache backend adapter.
package pgkv

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrMiss is returned by Get when the key is absent or its row has expired.
var ErrMiss = errors.New("pgkv: miss")

// DefaultTable is the table used when Options.Table is empty.
const DefaultTable = "memoize_kv"

// Store is the PostgreSQL key/value backend. Values are opaque bytes; the
// caller encodes and decodes them through a coder.
type Store struct {
	pool   *pgxpool.Pool
	table  string
	hits   atomic.Int64
	misses atomic.Int64
}

// Options configures a new Store.
type Options struct {
	Pool  *pgxpool.Pool
	Table string
}

// New creates a Store from an existing pool. Call EnsureTable before first
// use unless the table is provisioned externally.
func New(opts Options) *Store {
	if opts.Table == "" {
		opts.Table = DefaultTable
	}
	return &Store{pool: opts.Pool, table: opts.Table}
}

// EnsureTable creates the kv table if it does not exist.
func (s *Store) EnsureTable(ctx context.Context) error {
	sql := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		key        text PRIMARY KEY,
		value      bytea NOT NULL,
		expires_at timestamptz
	)`, s.table)
	if _, err := s.pool.Exec(ctx, sql); err != nil {
		return fmt.Errorf("pgkv ensure table %s: %w", s.table, err)
	}
	return nil
}

// Set upserts value under key. A ttl > 0 sets the row's expiry; otherwise
// the row never expires.
func (s *Store) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	var expiresAt *time.Time
	if ttl > 0 {
		t := time.Now().Add(ttl)
		expiresAt = &t
	}
	sql := fmt.Sprintf(
		`INSERT INTO %s (key, value, expires_at) VALUES ($1, $2, $3)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, expires_at = EXCLUDED.expires_at`,
		s.table,
	)
	if _, err := s.pool.Exec(ctx, sql, key, value, expiresAt); err != nil {
		return fmt.Errorf("pgkv set %s: %w", key, err)
	}
	return nil
}

// Get returns the bytes stored under key, or ErrMiss when the key is
// absent or expired. Expired rows are reaped opportunistically on the miss
// path; reads never return stale values regardless.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	sql := fmt.Sprintf(
		`SELECT value FROM %s WHERE key = $1 AND (expires_at IS NULL OR expires_at > now())`,
		s.table,
	)
	var b []byte
	err := s.pool.QueryRow(ctx, sql, key).Scan(&b)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.misses.Add(1)
			s.reapExpired(ctx, key)
			return nil, ErrMiss
		}
		return nil, fmt.Errorf("pgkv get %s: %w", key, err)
	}
	s.hits.Add(1)
	return b, nil
}

// reapExpired deletes the row for key if it has expired. Best effort.
func (s *Store) reapExpired(ctx context.Context, key string) {
	sql := fmt.Sprintf(`DELETE FROM %s WHERE key = $1 AND expires_at <= now()`, s.table)
	_, _ = s.pool.Exec(ctx, sql, key)
}

// Delete removes a key. Deleting an absent key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	sql := fmt.Sprintf(`DELETE FROM %s WHERE key = $1`, s.table)
	if _, err := s.pool.Exec(ctx, sql, key); err != nil {
		return fmt.Errorf("pgkv delete %s: %w", key, err)
	}
	return nil
}

// Clear removes every row and resets the hit/miss counters.
func (s *Store) Clear(ctx context.Context) error {
	sql := fmt.Sprintf(`DELETE FROM %s`, s.table)
	if _, err := s.pool.Exec(ctx, sql); err != nil {
		return fmt.Errorf("pgkv clear: %w", err)
	}
	s.hits.Store(0)
	s.misses.Store(0)
	return nil
}

// Ping verifies the pool is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
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

// Close shuts down the underlying connection pool.
func (s *Store) Close() { s.pool.Close() }
