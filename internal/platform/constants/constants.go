// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Workflow: fixed vocabulary URIs and deposit identifiers.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "etheca-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second

	// VocabLookupTimeout bounds the controlled-vocabulary autocomplete GET.
	// A slow third-party lookup must never stall a typing user.
	VocabLookupTimeout = 2 * time.Second
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

// # HTTP Headers

const (
	// HeaderXRequestID carries the request correlation ID.
	HeaderXRequestID = "X-Request-ID"

	// HeaderRemoteUser is set by the SSO proxy with the authenticated netid.
	HeaderRemoteUser = "X-Remote-User"

	// HeaderRole is set by the SSO proxy for Graduate School staff accounts.
	HeaderRole = "X-Etd-Role"

	// HeaderOrigin is the CORS origin header.
	HeaderOrigin = "Origin"

	// HeaderXRealIP and HeaderXForwardedFor carry the client IP behind proxies.
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
)

// # JSON Field Identifiers

const (
	FieldError = "error"
	FieldCode  = "code"
)

// # Workflow Vocabulary

const (
	// TypeURIMastersThesis classifies a masters deposit in the rels parameter.
	TypeURIMastersThesis = "http://purl.org/spar/fabio/MastersThesis"

	// TypeURIDoctoralThesis classifies a doctoral deposit in the rels parameter.
	TypeURIDoctoralThesis = "http://purl.org/spar/fabio/DoctoralThesis"

	// IDValueSeparator joins a controlled-vocabulary ID and its label in
	// autocomplete entry IDs ("fst01140419\tGeology").
	IDValueSeparator = "\t"

	// KeywordMaxLen is the storage limit for canonical keyword text.
	KeywordMaxLen = 190
)

// # Database Schemas

const (
	SchemaETD = "etd"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	// RedisPrefixVocabLookup caches controlled-vocabulary lookup responses per term.
	RedisPrefixVocabLookup = "keyword:fast:"

	// VocabCacheTTL is how long a cached lookup response stays valid.
	VocabCacheTTL = 15 * time.Minute
)
