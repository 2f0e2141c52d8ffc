package adapter

import (
	"context"
	"psychotest/internal/domain"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

// MemoryCacheAdapter implements domain.Cache inside the process. It is the
// default session backend for a single API instance and for quizctl.
type MemoryCacheAdapter struct {
	items *ttlcache.Cache[string, string]
}

// NewMemoryCacheAdapter returns a cache whose reads never extend an entry's
// lifetime, matching the Redis adapter.
func NewMemoryCacheAdapter() *MemoryCacheAdapter {
	return &MemoryCacheAdapter{
		items: ttlcache.New[string, string](
			ttlcache.WithDisableTouchOnHit[string, string](),
		),
	}
}

func (m *MemoryCacheAdapter) Get(_ context.Context, key string) (string, error) {
	item := m.items.Get(key)
	if item == nil {
		return "", domain.ErrCacheMiss
	}
	return item.Value(), nil
}

// Set keeps the entry forever when expiration is not positive.
func (m *MemoryCacheAdapter) Set(_ context.Context, key string, value string, expiration time.Duration) error {
	ttl := expiration
	if ttl <= 0 {
		ttl = ttlcache.NoTTL
	}
	m.items.Set(key, value, ttl)
	return nil
}

func (m *MemoryCacheAdapter) Delete(_ context.Context, key string) error {
	m.items.Delete(key)
	return nil
}

func (m *MemoryCacheAdapter) Ping(context.Context) error {
	return nil
}

// Len counts stored entries, including expired ones not yet cleaned up.
func (m *MemoryCacheAdapter) Len() int {
	return m.items.Len()
}

// Run removes expired entries as they expire until ctx is done.
func (m *MemoryCacheAdapter) Run(ctx context.Context) {
	go func() {
		<-ctx.Done()
		m.items.Stop()
	}()
	m.items.Start()
}
