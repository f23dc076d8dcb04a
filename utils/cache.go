package utils

import (
	"ShowFolio/internal/dto"
	"ShowFolio/internal/repo"
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
}

type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a Redis cache client.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{
		client: client,
	}
}

// Get reads a cached value.
func (c *RedisCache) Get(ctx context.Context, key string, dest interface{}) error {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

// Set writes a cached value.
func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, string(data), expiration).Err()
}

// Delete removes a cache entry.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

type CacheManager struct {
	cache Cache
}

var globalCacheManager *CacheManager
var cacheManagerOnce sync.Once

// InitCacheManager initializes the cache manager.
func InitCacheManager() {
	cacheManagerOnce.Do(func() {
		globalCacheManager = &CacheManager{
			cache: NewRedisCache(repo.Redis),
		}
	})
}

// GetCacheManager returns the cache manager.
func GetCacheManager() *CacheManager {
	if globalCacheManager == nil {
		InitCacheManager()
	}
	return globalCacheManager
}

// BuildCacheKey builds a cache key.
func BuildCacheKey(prefix string, params ...interface{}) string {
	key := prefix
	for _, param := range params {
		key += fmt.Sprintf(":%v", param)
	}
	return key
}

const (
	CacheKeyProjectDetail = "project:detail"
	CacheKeySkillTags     = "skill:tags"
)

// GetProjectDetailFromCache reads a cached project document.
func GetProjectDetailFromCache(ctx context.Context, projectID uint64) (*dto.ProjectDetail, bool) {
	manager := GetCacheManager()
	key := BuildCacheKey(CacheKeyProjectDetail, projectID)

	var result dto.ProjectDetail
	if err := manager.cache.Get(ctx, key, &result); err != nil {
		return nil, false
	}
	return &result, true
}

// SetProjectDetailToCache writes a cached project document.
func SetProjectDetailToCache(ctx context.Context, projectID uint64, data *dto.ProjectDetail, expiration time.Duration) error {
	manager := GetCacheManager()
	key := BuildCacheKey(CacheKeyProjectDetail, projectID)
	return manager.cache.Set(ctx, key, data, expiration)
}

// InvalidateProjectDetailCache clears a cached project document.
func InvalidateProjectDetailCache(ctx context.Context, projectID uint64) error {
	manager := GetCacheManager()
	key := BuildCacheKey(CacheKeyProjectDetail, projectID)
	return manager.cache.Delete(ctx, key)
}

// GetSkillTagsFromCache reads the cached global tag list.
func GetSkillTagsFromCache(ctx context.Context) ([]string, bool) {
	manager := GetCacheManager()
	var result []string
	if err := manager.cache.Get(ctx, CacheKeySkillTags, &result); err != nil {
		return nil, false
	}
	return result, true
}

// SetSkillTagsToCache writes the cached global tag list.
func SetSkillTagsToCache(ctx context.Context, tags []string, expiration time.Duration) error {
	manager := GetCacheManager()
	return manager.cache.Set(ctx, CacheKeySkillTags, tags, expiration)
}

// InvalidateSkillTagsCache clears the cached global tag list.
func InvalidateSkillTagsCache(ctx context.Context) error {
	manager := GetCacheManager()
	return manager.cache.Delete(ctx, CacheKeySkillTags)
}
