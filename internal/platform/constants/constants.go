// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, page sizes, and cross-cutting keys
that are shared between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Catalog: Public page sizes and media thumbnail dimensions.
  - Security: JWT issuers and token lifetimes.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "digital-mary-api"
	AppVersion = "1.0.0"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	// Generous enough for multipart image uploads from slow connections.
	DefaultReadTimeout = 30 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 30 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 50.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 100

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Catalog

const (
	// PublicItemPageSize is the fixed page size of the public item listing.
	PublicItemPageSize = 24

	// SearchRankScale multiplies ts_rank output for readability and sort stability.
	SearchRankScale = 100

	// ItemThumbnailWidth and ItemThumbnailHeight bound item image thumbnails.
	ItemThumbnailWidth  = 450
	ItemThumbnailHeight = 350

	// TeamThumbnailWidth and TeamThumbnailHeight bound team member thumbnails.
	TeamThumbnailWidth  = 150
	TeamThumbnailHeight = 150

	// FilterOptionsCacheTTL is how long the public search-form option payload
	// lives in Redis. Vocabularies change rarely; a short TTL keeps the
	// curator feedback loop tolerable without a purge hook.
	FilterOptionsCacheTTL = 5 * time.Minute
)

// # Media Directories

const (
	// MediaImageDir is the directory (under the media root) for source images.
	MediaImageDir = "images"

	// MediaThumbnailDir is the directory (under the media root) for derived thumbnails.
	MediaThumbnailDir = "thumbnails"
)

// # Authentication

const (
	// AuthIssuer is the standard 'iss' claim in JWTs.
	AuthIssuer = "digitalmary.org"

	// AccessTokenTTL is the lifetime of a curator access token.
	AccessTokenTTL = 15 * time.Minute

	// RefreshTokenTTL is the lifetime of a curator refresh session in Redis.
	RefreshTokenTTL = 14 * 24 * time.Hour

	// RefreshTokenCookieName is the HttpOnly cookie carrying the refresh token.
	RefreshTokenCookieName = "dm_refresh_token"

	// RefreshTokenCookiePath restricts the cookie to the auth endpoints.
	RefreshTokenCookiePath = "/api/v1/auth"
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # JSON Field Identifiers

const (
	FieldData    = "data"
	FieldMeta    = "meta"
	FieldError   = "error"
	FieldCode    = "code"
	FieldDetails = "details"
	FieldMessage = "message"
	FieldStatus  = "status"
)

// # Database Schemas

const (
	SchemaCatalog = "catalog"
	SchemaUsers   = "users"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixRefreshToken  = "auth:refresh_token:"
	RedisPrefixFilterOptions = "catalog:filter_options"
)
