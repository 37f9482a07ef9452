// Copyright (c) 2026 Scripta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Harvesting: fallback language and cache taxonomy for the feed engine.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "scripta-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes
	// of the response. Must exceed GlobalRequestTimeout or slow harvest
	// pages are cut off mid-response.
	DefaultWriteTimeout = 35 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	// Harvest pages over large repositories derive a modified timestamp per
	// candidate record, so this is deliberately generous.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Authentication

const (
	// AuthIssuer is the standard 'iss' claim in JWTs.
	AuthIssuer = "scripta.app"

	// AdminTokenTTL bounds the lifetime of an exchanged admin token.
	AdminTokenTTL = 1 * time.Hour
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderOrigin        = "Origin"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
)

// # JSON Field Identifiers

const (
	FieldData  = "data"
	FieldMeta  = "meta"
	FieldError = "error"
	FieldCode  = "code"
)

// # Harvesting

const (
	// DefaultLanguageID is the language assumed when a publication carries
	// no language reference (the upstream CMS seeds English as row 1).
	DefaultLanguageID = 1

	// FallbackLanguageTag is emitted when a publication has no language
	// reference at all.
	FallbackLanguageTag = "en"

	// DefaultHarvestBatchSize is the page size when the caller gives none.
	DefaultHarvestBatchSize = 20

	// MaxHarvestBatchSize bounds one harvest page.
	MaxHarvestBatchSize = 500
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixModified = "harvest:modified:"
)
