package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"frontdesk/infras/otel"
)

type memoryEntry struct {
	payload   []byte
	expiresAt time.Time
}

type memoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	otel    otel.Otel
	now     func() time.Time
}

// NewMemoryCache keeps entries in process. Expired entries are dropped on read.
func NewMemoryCache(ot otel.Otel) Cache {
	return &memoryCache{
		entries: map[string]memoryEntry{},
		otel:    ot,
		now:     time.Now,
	}
}

func (cache *memoryCache) Save(ctx context.Context, key string, value any, duration int) error {
	_, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Save")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	payload, err := encode(value)
	if err != nil {
		scope.TraceError(err)

		return err
	}

	cache.mu.Lock()
	cache.entries[key] = memoryEntry{
		payload:   payload,
		expiresAt: cache.now().Add(time.Duration(duration) * time.Second),
	}
	cache.mu.Unlock()

	return nil
}

func (cache *memoryCache) Get(ctx context.Context, key string, value any) error {
	_, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Get")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	cache.mu.RLock()
	entry, ok := cache.entries[key]
	cache.mu.RUnlock()

	if !ok || !cache.now().Before(entry.expiresAt) {
		if ok {
			_ = cache.Delete(ctx, key)
		}

		return fmt.Errorf("failed to get cache value: %w", Nil)
	}

	return decode(entry.payload, value)
}

func (cache *memoryCache) Delete(_ context.Context, key string) error {
	cache.mu.Lock()
	delete(cache.entries, key)
	cache.mu.Unlock()

	return nil
}

func (cache *memoryCache) Clear(_ context.Context, prefix string) error {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	for key := range cache.entries {
		if strings.HasPrefix(key, prefix) {
			delete(cache.entries, key)
		}
	}

	return nil
}
