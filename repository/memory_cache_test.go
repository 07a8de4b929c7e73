package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetGet(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	_, ok := cache.Get(ctx, "missing")
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "k", "v", 0))
	val, ok := cache.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, "v", val)
}

func TestMemoryCache_Expiry(t *testing.T) {
	cache := NewMemoryCache()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", "v", time.Minute))

	now = now.Add(30 * time.Second)
	_, ok := cache.Get(ctx, "k")
	assert.True(t, ok, "entry should still be live")

	now = now.Add(time.Minute)
	_, ok = cache.Get(ctx, "k")
	assert.False(t, ok, "entry should have expired")
	assert.Equal(t, 0, cache.Len())
}

func TestMemoryCache_Concurrent(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = cache.Set(ctx, "shared", "v", 0)
			cache.Get(ctx, "shared")
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, cache.Len())
}

func TestMemoryCache_ExpiredReadKeepsFreshValue(t *testing.T) {
	cache := NewMemoryCache()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	inject := false
	cache.now = func() time.Time {
		if inject {
			// Simula un Set que llega entre la lectura expirada y el borrado
			inject = false
			cache.data["k"] = memoryEntry{value: "new", expiresAt: now.Add(time.Hour)}
		}
		return now
	}
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", "old", time.Minute))
	now = now.Add(2 * time.Minute)
	inject = true

	_, ok := cache.Get(ctx, "k")
	assert.False(t, ok)

	val, ok := cache.Get(ctx, "k")
	assert.True(t, ok, "fresh entry must survive the expired read")
	assert.Equal(t, "new", val)
}
