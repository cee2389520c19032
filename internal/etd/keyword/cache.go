// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

package keyword

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/etheca/etheca/internal/platform/constants"
)

// SuggestCache memoizes vocabulary lookups per search term.
//
// The FAST endpoint is rate-limited and occasionally slow; candidates
// retype the same prefixes constantly while tagging a thesis, so even a
// short TTL removes most of the upstream traffic.
type SuggestCache struct {
	client *redis.Client
	logger *slog.Logger
}

func NewSuggestCache(client *redis.Client, logger *slog.Logger) *SuggestCache {
	return &SuggestCache{client: client, logger: logger}
}

func (cache *SuggestCache) key(term string) string {
	return constants.RedisPrefixVocabLookup + term
}

// Get returns the cached suggestion groups for term, or (nil, false) on
// a miss. Cache errors count as misses.
func (cache *SuggestCache) Get(context context.Context, term string) ([]SuggestionGroup, bool) {
	raw, err := cache.client.Get(context, cache.key(term)).Bytes()
	if err != nil {
		if err != redis.Nil {
			cache.logger.Warn("vocab_cache_read_failed", slog.Any("error", err))
		}
		return nil, false
	}

	var groups []SuggestionGroup
	if err := json.Unmarshal(raw, &groups); err != nil {
		return nil, false
	}
	return groups, true
}

// Set stores the suggestion groups for term. Failures are logged and ignored.
func (cache *SuggestCache) Set(context context.Context, term string, groups []SuggestionGroup) {
	raw, err := json.Marshal(groups)
	if err != nil {
		return
	}

	if err := cache.client.Set(context, cache.key(term), raw, constants.VocabCacheTTL).Err(); err != nil {
		cache.logger.Warn("vocab_cache_write_failed", slog.Any("error", err))
	}
}
