package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-job-tracker/internal/logger"
	"github.com/sbilibin2017/gw-job-tracker/internal/models"
)

// ErrCacheMiss is returned when no tag list is cached for the owner.
var ErrCacheMiss = errors.New("tag list not found in cache")

// TagCacheRepository caches tag lists per owner in Redis.
type TagCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration of cached lists
}

// NewTagCacheRepository creates a cache whose entries expire after expiration.
func NewTagCacheRepository(client *redis.Client, expiration time.Duration) *TagCacheRepository {
	return &TagCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func tagCacheKey(ownerID *int64) string {
	if ownerID == nil {
		return "tags:global"
	}
	return fmt.Sprintf("tags:user:%d", *ownerID)
}

// Get returns the cached tag list of the owner or ErrCacheMiss.
func (r *TagCacheRepository) Get(ctx context.Context, ownerID *int64) ([]models.Tag, error) {
	key := tagCacheKey(ownerID)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		logger.Log.Infow("cache get", "key", key, "error", err)
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var tags []models.Tag
	if err := json.Unmarshal(val, &tags); err != nil {
		logger.Log.Infow("cache get", "key", key, "error", err)
		return nil, err
	}

	logger.Log.Infow("cache get", "key", key, "result", len(tags))
	return tags, nil
}

// Set caches the tag list of the owner.
func (r *TagCacheRepository) Set(ctx context.Context, ownerID *int64, tags []models.Tag) error {
	key := tagCacheKey(ownerID)

	val, err := json.Marshal(tags)
	if err != nil {
		return err
	}
	err = r.client.Set(ctx, key, val, r.exp).Err()

	logger.Log.Infow("cache set", "key", key, "result", len(tags), "error", err)
	return err
}

// Invalidate drops the cached tag list of the owner.
func (r *TagCacheRepository) Invalidate(ctx context.Context, ownerID *int64) error {
	key := tagCacheKey(ownerID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("cache invalidate", "key", key, "error", err)
	return err
}
