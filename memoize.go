package memoize

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/AndrewDonelson/memoize/internal/coder"
	"github.com/AndrewDonelson/memoize/internal/metrics"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Recorder is re-exported so callers only import this package.
type Recorder = metrics.Recorder

// Backend selector values for Config.Backend.
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// ────────────────────────────────────────────────────────────────────────────
// Config
// ────────────────────────────────────────────────────────────────────────────

// Config contains all Store configuration.
type Config struct {
	// Backend selects the store: BackendMemory (default), BackendRedis,
	// or BackendPostgres.
	Backend string

	// Memory backend: maximum live entries, 0 for unbounded.
	MaxEntries int

	// Redis backend.
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPoolSize int
	KeyPrefix     string

	// Postgres backend.
	PostgresDSN string
	Table       string

	// Coder selects the value coder for the byte-oriented backends: a
	// registered name, a Coder, or a CoderPair. nil selects msgpack.
	// The memory backend stores values as-is and ignores it.
	Coder any

	// Optional overrideable components.
	Logger  Logger
	Metrics Recorder
}

func (c *Config) defaults() {
	if c.Backend == "" {
		c.Backend = BackendMemory
	}
	if c.Logger == nil {
		c.Logger = noopLogger{}
	}
	if c.Metrics == nil {
		c.Metrics = metrics.Noop{}
	}
}

// backendCoder resolves Config.Coder for a backend that stores bytes.
func backendCoder(sel any) (Coder, error) {
	if sel == nil {
		return coder.MsgPack{}, nil
	}
	return ResolveCoder(sel)
}

// ────────────────────────────────────────────────────────────────────────────
// Stats
// ────────────────────────────────────────────────────────────────────────────

type storeStats struct {
	Gets    atomic.Int64
	Sets    atomic.Int64
	Deletes atomic.Int64
	Errors  atomic.Int64
}

// Stats is the snapshot returned by Store.Stats().
type Stats struct {
	Gets    int64
	Sets    int64
	Deletes int64
	Errors  int64
}

// ────────────────────────────────────────────────────────────────────────────
// Store
// ────────────────────────────────────────────────────────────────────────────

// Store is the instrumented entry point over a Backend: it delegates every
// operation unchanged and records counts, latency, and errors around it.
// It adds no caching semantics of its own — key derivation and function
// wrapping live in the layer above.
type Store struct {
	cfg     Config
	backend Backend
	name    string
	metrics Recorder
	logger  Logger
	stats   storeStats
}

// New constructs the configured backend and wraps it in a Store.
func New(ctx context.Context, cfg Config) (*Store, error) {
	cfg.defaults()

	var be Backend
	switch cfg.Backend {
	case BackendMemory:
		be = NewMemoryBackend(cfg.MaxEntries)

	case BackendRedis:
		if cfg.RedisAddr == "" {
			return nil, fmt.Errorf("%w: redis backend requires RedisAddr", ErrInvalidConfig)
		}
		c, err := backendCoder(cfg.Coder)
		if err != nil {
			return nil, err
		}
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			PoolSize: cfg.RedisPoolSize,
		})
		be = NewRedisBackend(client, c, cfg.KeyPrefix)

	case BackendPostgres:
		if cfg.PostgresDSN == "" {
			return nil, fmt.Errorf("%w: postgres backend requires PostgresDSN", ErrInvalidConfig)
		}
		c, err := backendCoder(cfg.Coder)
		if err != nil {
			return nil, err
		}
		pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("memoize: postgres pool: %w", err)
		}
		be, err = NewPostgresBackend(ctx, pool, c, cfg.Table)
		if err != nil {
			pool.Close()
			return nil, err
		}

	default:
		return nil, fmt.Errorf("%w: unknown backend %q", ErrInvalidConfig, cfg.Backend)
	}

	s := &Store{
		cfg:     cfg,
		backend: be,
		name:    cfg.Backend,
		metrics: cfg.Metrics,
		logger:  cfg.Logger,
	}
	s.logger.Info("memoize store ready", "backend", cfg.Backend)
	return s, nil
}

// NewWithBackend wraps an already-constructed backend, for callers that
// manage their own clients or pools.
func NewWithBackend(be Backend, name string, cfg Config) *Store {
	cfg.defaults()
	return &Store{cfg: cfg, backend: be, name: name, metrics: cfg.Metrics, logger: cfg.Logger}
}

// Get fetches the value stored under key. ErrMiss is a first-class
// outcome, counted as a miss, not an error.
func (s *Store) Get(ctx context.Context, key string) (any, error) {
	start := time.Now()
	v, err := s.backend.Get(ctx, key)
	s.metrics.RecordLatency(s.name, "get", time.Since(start))
	s.stats.Gets.Add(1)

	switch {
	case errors.Is(err, ErrMiss):
		s.metrics.RecordMiss(s.name)
	case err != nil:
		s.stats.Errors.Add(1)
		s.metrics.RecordError(s.name, "get")
		s.logger.Error("cache get failed", "key", key, "error", err)
	default:
		s.metrics.RecordHit(s.name)
	}
	return v, err
}

// Set stores value under key. A ttl of 0 means no expiry; backends without
// expiry support reject a positive ttl with ErrExpireUnsupported.
func (s *Store) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	start := time.Now()
	err := s.backend.Set(ctx, key, value, ttl)
	s.metrics.RecordLatency(s.name, "set", time.Since(start))
	s.stats.Sets.Add(1)

	if err != nil {
		s.stats.Errors.Add(1)
		s.metrics.RecordError(s.name, "set")
		s.logger.Error("cache set failed", "key", key, "error", err)
	}
	return err
}

// Delete removes key from the backend; absent keys are a no-op.
func (s *Store) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := s.backend.Delete(ctx, key)
	s.metrics.RecordLatency(s.name, "delete", time.Since(start))
	s.stats.Deletes.Add(1)

	if err != nil {
		s.stats.Errors.Add(1)
		s.metrics.RecordError(s.name, "delete")
		s.logger.Error("cache delete failed", "key", key, "error", err)
	}
	return err
}

// Clear removes every entry from the backend.
func (s *Store) Clear(ctx context.Context) error {
	err := s.backend.Clear(ctx)
	if err != nil {
		s.stats.Errors.Add(1)
		s.metrics.RecordError(s.name, "clear")
		s.logger.Error("cache clear failed", "error", err)
	}
	return err
}

// Stats returns a snapshot of the facade's operation counters.
func (s *Store) Stats() Stats {
	return Stats{
		Gets:    s.stats.Gets.Load(),
		Sets:    s.stats.Sets.Load(),
		Deletes: s.stats.Deletes.Load(),
		Errors:  s.stats.Errors.Load(),
	}
}

// Backend returns the underlying backend for backend-specific inspection
// (e.g. MemoryBackend.Info).
func (s *Store) Backend() Backend { return s.backend }

// Close releases backend resources for backends that hold any.
func (s *Store) Close() {
	if c, ok := s.backend.(interface{ Close() }); ok {
		c.Close()
	}
}
