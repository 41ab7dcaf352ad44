// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

package auth

import (
	"context"
	"time"
)

// CuratorRepository is the Postgres contract for curator accounts.
type CuratorRepository interface {
	// FindByEmail returns the account for a login attempt.
	FindByEmail(ctx context.Context, email string) (*Curator, error)

	// FindByID returns the account behind a refresh token.
	FindByID(ctx context.Context, id string) (*Curator, error)

	// Create inserts a new account (admin provisioning).
	Create(ctx context.Context, curator *Curator) error

	// UpdatePassword swaps the stored hash.
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

// RefreshTokenRepository is the Redis contract for opaque refresh tokens.
// The token value itself is the lookup key; expiry is enforced by TTL.
type RefreshTokenRepository interface {
	Set(ctx context.Context, token, curatorID string, ttl time.Duration) error
	Get(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}
