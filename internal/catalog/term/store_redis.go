// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

package term

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/digital-mary/catalog/internal/platform/constants"
)

// RedisOptionsCache implements [OptionsCache] on Redis.
//
// The cached value is the fully serialized filter-options payload served to
// the public search form. Misses and Redis failures degrade to a database
// read; the cache is never authoritative.
type RedisOptionsCache struct {
	client *redis.Client
}

func NewRedisOptionsCache(client *redis.Client) *RedisOptionsCache {
	return &RedisOptionsCache{client: client}
}

func (cache *RedisOptionsCache) GetOptions(ctx context.Context) ([]byte, bool) {
	payload, err := cache.client.Get(ctx, constants.RedisPrefixFilterOptions).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

func (cache *RedisOptionsCache) SetOptions(ctx context.Context, payload []byte) {
	cache.client.Set(ctx, constants.RedisPrefixFilterOptions, payload, constants.FilterOptionsCacheTTL)
}

func (cache *RedisOptionsCache) InvalidateOptions(ctx context.Context) {
	cache.client.Del(ctx, constants.RedisPrefixFilterOptions)
}
