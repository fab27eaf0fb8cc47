package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedStats struct {
	Total int `json:"total"`
}

func setupCache(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(func() {
		SetClient(nil)
		mr.Close()
	})
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	return mr
}

func TestGetSetJSON(t *testing.T) {
	setupCache(t)
	ctx := context.Background()

	var dest cachedStats
	found, err := GetJSON(ctx, StatsKey, &dest)
	assert.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, SetJSON(ctx, StatsKey, cachedStats{Total: 42}, StatsTTL))

	found, err = GetJSON(ctx, StatsKey, &dest)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 42, dest.Total)
}

func TestCacheAside(t *testing.T) {
	setupCache(t)
	ctx := context.Background()

	calls := 0
	fetch := func(dest *cachedStats) func() error {
		return func() error {
			calls++
			dest.Total = 7
			return nil
		}
	}

	var first cachedStats
	require.NoError(t, CacheAside(ctx, TrendingKey, &first, TrendingTTL, fetch(&first)))
	assert.Equal(t, 1, calls)
	assert.Equal(t, 7, first.Total)

	// Second call is served from the cache
	var second cachedStats
	require.NoError(t, CacheAside(ctx, TrendingKey, &second, TrendingTTL, fetch(&second)))
	assert.Equal(t, 1, calls)
	assert.Equal(t, 7, second.Total)
}

func TestInvalidateReportAggregates(t *testing.T) {
	setupCache(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, TrendingKey, cachedStats{Total: 2}, TrendingTTL))
	require.NoError(t, SetJSON(ctx, StatsKey, cachedStats{Total: 3}, StatsTTL))

	InvalidateReportAggregates(ctx)

	var dest cachedStats
	for _, key := range []string{TrendingKey, StatsKey} {
		found, err := GetJSON(ctx, key, &dest)
		assert.NoError(t, err)
		assert.False(t, found, "key %s should be gone", key)
	}
}

func TestCacheAside_RedisFailureFallsBackToSource(t *testing.T) {
	mr := setupCache(t)
	ctx := context.Background()

	mr.SetError("connection refused")

	var dest cachedStats
	err := CacheAside(ctx, TrendingKey, &dest, TrendingTTL, func() error {
		dest.Total = 11
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 11, dest.Total)
}

func TestHelpersNilClient(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	found, err := GetJSON(ctx, StatsKey, &cachedStats{})
	assert.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, SetJSON(ctx, StatsKey, cachedStats{}, time.Minute))

	// CacheAside degrades to a plain fetch
	var dest cachedStats
	err = CacheAside(ctx, StatsKey, &dest, time.Minute, func() error {
		dest.Total = 9
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 9, dest.Total)
}
