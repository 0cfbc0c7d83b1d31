package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-points-gateway/internal/logger"
)

// ErrCacheMiss is returned when no base URL is cached.
var ErrCacheMiss = errors.New("base url not found in cache")

// BaseURLCacheRepository caches the discovered backend origin in Redis.
type BaseURLCacheRepository struct {
	client *redis.Client
	key    string
	exp    time.Duration // expiration duration for the cached url
}

// NewBaseURLCacheRepository creates a cache scoped by prefix and site code.
func NewBaseURLCacheRepository(client *redis.Client, prefix, siteCode string, expiration time.Duration) *BaseURLCacheRepository {
	return &BaseURLCacheRepository{
		client: client,
		key:    fmt.Sprintf("%s:base_url:%s", prefix, siteCode),
		exp:    expiration,
	}
}

// GetBaseURL returns the cached base URL or ErrCacheMiss.
func (r *BaseURLCacheRepository) GetBaseURL(ctx context.Context) (string, error) {
	val, err := r.client.Get(ctx, r.key).Result()

	logger.Log.Debugw("base url cache get",
		"key", r.key,
		"result", val,
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// SetBaseURL caches the base URL with the configured expiration.
func (r *BaseURLCacheRepository) SetBaseURL(ctx context.Context, baseURL string) error {
	err := r.client.Set(ctx, r.key, baseURL, r.exp).Err()

	logger.Log.Debugw("base url cache set",
		"key", r.key,
		"value", baseURL,
		"ttl", r.exp,
		"error", err,
	)

	return err
}
