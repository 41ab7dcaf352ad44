// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/digital-mary/catalog/internal/platform/apperr"
	"github.com/digital-mary/catalog/internal/platform/constants"
)

// RedisRefreshTokenRepository implements [RefreshTokenRepository] using
// Redis. Tokens expire through the key TTL; nothing is ever scanned.
type RedisRefreshTokenRepository struct {
	client *redis.Client
}

func NewRedisRefreshTokenRepository(client *redis.Client) *RedisRefreshTokenRepository {
	return &RedisRefreshTokenRepository{client: client}
}

func refreshTokenKey(token string) string {
	return constants.RedisPrefixRefreshToken + token
}

func (repository *RedisRefreshTokenRepository) Set(ctx context.Context, token, curatorID string, ttl time.Duration) error {
	if err := repository.client.Set(ctx, refreshTokenKey(token), curatorID, ttl).Err(); err != nil {
		return fmt.Errorf("redis_refresh_token_set_failed: %w", err)
	}
	return nil
}

func (repository *RedisRefreshTokenRepository) Get(ctx context.Context, token string) (string, error) {
	curatorID, err := repository.client.Get(ctx, refreshTokenKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperr.Unauthorized("Invalid or expired refresh token")
		}
		return "", fmt.Errorf("redis_refresh_token_get_failed: %w", err)
	}
	return curatorID, nil
}

func (repository *RedisRefreshTokenRepository) Delete(ctx context.Context, token string) error {
	if err := repository.client.Del(ctx, refreshTokenKey(token)).Err(); err != nil {
		return fmt.Errorf("redis_refresh_token_delete_failed: %w", err)
	}
	return nil
}
