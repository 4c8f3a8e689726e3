// Package cachekit implements cache-aside memoization over the store cache seam
//
// The cache is strictly a read accelerator. Every failure mode (backend down,
// timeout, corrupt payload) degrades to computing the value fresh; a broken
// cache must never surface as a request error
package cachekit

import (
	"context"
	"encoding/json"
	"time"

	"medlens/internal/platform/logger"
	"medlens/internal/platform/store"
)

// DefaultTTL is the expiry applied when a caller passes ttl <= 0
const DefaultTTL = 5 * time.Minute

// Cached runs fn through the cache-aside path:
// hit decodes and returns, miss computes then stores best-effort.
// A nil cache calls fn directly
func Cached[T any](ctx context.Context, c store.Cache, key string, ttl time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if c == nil {
		return fn(ctx)
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	log := logger.C(ctx)

	if raw, ok, err := c.Get(ctx, key); err != nil {
		log.Debug().Err(err).Str("key", key).Msg("cache get failed, computing fresh")
	} else if ok {
		var v T
		if uerr := json.Unmarshal(raw, &v); uerr == nil {
			return v, nil
		}
		// stale or corrupt entry; fall through and overwrite it
		log.Debug().Str("key", key).Msg("cache entry undecodable, recomputing")
	}

	v, err := fn(ctx)
	if err != nil {
		return zero, err
	}

	if raw, merr := json.Marshal(v); merr == nil {
		if serr := c.SetEx(ctx, key, raw, ttl); serr != nil {
			log.Debug().Err(serr).Str("key", key).Msg("cache set failed")
		}
	}
	return v, nil
}
