package vendorsearch

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sfadda-dotcom/wedding-planner-platform/internal/models"
)

func newTestCache(t *testing.T, ttl time.Duration) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisCache(client, ttl), mr
}

func TestCacheKeyShape(t *testing.T) {
	tests := []struct {
		name     string
		params   Params
		expected string
	}{
		{
			"with budget",
			Params{Category: "venue", Location: "London", BudgetRange: "£1,000-£2,500", Radius: 50},
			"vendorsearch:venue-London-£1,000-£2,500-50",
		},
		{
			"no budget collapses to any",
			Params{Category: "venue", Location: "London", Radius: 50},
			"vendorsearch:venue-London-any-50",
		},
		{
			"any-budget collapses to any",
			Params{Category: "florist", Location: "Leeds", BudgetRange: "any-budget", Radius: 25},
			"vendorsearch:florist-Leeds-any-25",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CacheKey(tt.params))
		})
	}
}

func TestRedisCacheRoundTrip(t *testing.T) {
	cache, _ := newTestCache(t, 30*time.Minute)
	ctx := context.Background()
	params := Params{Category: "venue", Location: "London", Radius: 50}

	_, hit, err := cache.Get(ctx, params)
	require.NoError(t, err)
	assert.False(t, hit)

	stored := []models.Vendor{
		{ID: "v1", Name: "Grand Ballroom", Rating: 4.8, ReviewCount: 120},
	}
	require.NoError(t, cache.Set(ctx, params, stored))

	got, hit, err := cache.Get(ctx, params)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, stored, got)
}

func TestRedisCacheExpiry(t *testing.T) {
	cache, mr := newTestCache(t, 30*time.Minute)
	ctx := context.Background()
	params := Params{Category: "venue", Location: "London", Radius: 50}

	require.NoError(t, cache.Set(ctx, params, []models.Vendor{{ID: "v1"}}))

	mr.FastForward(31 * time.Minute)

	_, hit, err := cache.Get(ctx, params)
	require.NoError(t, err)
	assert.False(t, hit, "entries expire after the TTL")
}

func TestRedisCacheDistinctParams(t *testing.T) {
	cache, _ := newTestCache(t, 30*time.Minute)
	ctx := context.Background()

	venue := Params{Category: "venue", Location: "London", Radius: 50}
	florist := Params{Category: "florist", Location: "London", Radius: 50}

	require.NoError(t, cache.Set(ctx, venue, []models.Vendor{{ID: "venue-1"}}))

	_, hit, err := cache.Get(ctx, florist)
	require.NoError(t, err)
	assert.False(t, hit)
}
