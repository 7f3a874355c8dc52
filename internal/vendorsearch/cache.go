package vendorsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sfadda-dotcom/wedding-planner-platform/internal/models"
)

const cacheKeyPrefix = "vendorsearch:"

// Cache stores finished result sets keyed by the normalized search
// parameters. A cache error is treated as a miss by callers.
type Cache interface {
	Get(ctx context.Context, params Params) ([]models.Vendor, bool, error)
	Set(ctx context.Context, params Params, vendors []models.Vendor) error
}

// CacheKey derives the storage key from the parameters that change the
// result set. Budget collapses to "any" when the caller has no preference.
func CacheKey(params Params) string {
	return fmt.Sprintf("%s%s-%s-%s-%d",
		cacheKeyPrefix, params.Category, params.Location, params.budgetKey(), params.Radius)
}

// RedisCache keeps results in Redis with a fixed TTL.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, params Params) ([]models.Vendor, bool, error) {
	raw, err := c.client.Get(ctx, CacheKey(params)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("vendor cache get: %w", err)
	}
	var vendors []models.Vendor
	if err := json.Unmarshal([]byte(raw), &vendors); err != nil {
		return nil, false, fmt.Errorf("vendor cache decode: %w", err)
	}
	return vendors, true, nil
}

func (c *RedisCache) Set(ctx context.Context, params Params, vendors []models.Vendor) error {
	raw, err := json.Marshal(vendors)
	if err != nil {
		return fmt.Errorf("vendor cache encode: %w", err)
	}
	if err := c.client.Set(ctx, CacheKey(params), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("vendor cache set: %w", err)
	}
	return nil
}

// NoOpCache disables caching. Used when Redis is unavailable.
type NoOpCache struct{}

func (NoOpCache) Get(context.Context, Params) ([]models.Vendor, bool, error) { return nil, false, nil }
func (NoOpCache) Set(context.Context, Params, []models.Vendor) error         { return nil }
