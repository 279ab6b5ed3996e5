package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// Memory is an in-process cache backed by ristretto
type Memory struct {
	cache *ristretto.Cache[string, string]
}

var _ Cache = (*Memory)(nil)

// NewMemory creates a cache bounded by maxCost bytes of values
func NewMemory(maxCost int64) (*Memory, error) {
	c, err := ristretto.NewCache(&ristretto.Config[string, string]{
		NumCounters: 1e6,
		MaxCost:     maxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create cache: %w", err)
	}
	return &Memory{cache: c}, nil
}

func (m *Memory) Get(_ context.Context, key string) (string, error) {
	v, ok := m.cache.Get(key)
	if !ok {
		return "", ErrMiss
	}
	return v, nil
}

func (m *Memory) Set(_ context.Context, key, value string, ttl time.Duration) error {
	m.cache.SetWithTTL(key, value, int64(len(value)), ttl)
	// make the write visible to the next Get
	m.cache.Wait()
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.cache.Del(key)
	return nil
}

// Close stops ristretto's background goroutines
func (m *Memory) Close() {
	m.cache.Close()
}
