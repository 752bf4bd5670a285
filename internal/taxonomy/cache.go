// Package taxonomy serves the genre and language lists behind the filter
// dropdowns. They change rarely, so they are cached.
package taxonomy

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrCacheMiss is returned by Cache.Get for absent or expired keys.
var ErrCacheMiss = errors.New("cache miss")

// Cache stores opaque values with a TTL.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	// Prune removes expired entries and returns how many were removed.
	// Backends that expire on their own return 0.
	Prune(ctx context.Context) (int64, error)
	Close() error
}

// Backend names.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// CacheOptions selects and configures a backend.
type CacheOptions struct {
	Backend  string
	Path     string // sqlite database file
	RedisURL string
}

// OpenCache opens the configured backend. An empty backend means memory.
func OpenCache(ctx context.Context, opts CacheOptions) (Cache, error) {
	switch opts.Backend {
	case "", BackendMemory:
		return NewMemoryCache(), nil
	case BackendSQLite:
		return OpenSQLiteCache(ctx, opts.Path)
	case BackendRedis:
		return OpenRedisCache(ctx, opts.RedisURL)
	}
	return nil, fmt.Errorf("unknown cache backend %q", opts.Backend)
}
