// Package cache provides the string key/value caches used for redirect and
// site lookups: an in-process ristretto cache and a shared redis cache.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrMiss is returned by Get when the key is absent
var ErrMiss = errors.New("cache miss")

// Cache stores string values with a TTL
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Options selects and configures a backend
type Options struct {
	Backend       string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// New builds the configured backend
func New(opts Options) (Cache, error) {
	switch opts.Backend {
	case "", "memory":
		return NewMemory(1 << 26)
	case "redis":
		return NewRedis(opts.RedisAddr, opts.RedisPassword, opts.RedisDB), nil
	}
	return nil, fmt.Errorf("unsupported cache backend %q", opts.Backend)
}

// GetJSON decodes a cached JSON value into dest
func GetJSON(ctx context.Context, c Cache, key string, dest interface{}) error {
	raw, err := c.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return fmt.Errorf("failed to decode cached data: %w", err)
	}
	return nil
}

// SetJSON encodes value as JSON and stores it
func SetJSON(ctx context.Context, c Cache, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode data for cache: %w", err)
	}
	return c.Set(ctx, key, string(data), ttl)
}
