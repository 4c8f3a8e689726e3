package store

import (
	"context"
	"errors"
	"time"

	"medlens/internal/platform/store/rds"
)

// newCacheAdapter wraps an *rds.RDS as the store.Cache seam
func newCacheAdapter(r *rds.RDS) Cache {
	return &cacheAdapter{inner: r}
}

type cacheAdapter struct {
	inner *rds.RDS
}

var _ Cache = (*cacheAdapter)(nil)

func (a *cacheAdapter) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if a == nil || a.inner == nil {
		return nil, false, errors.New("store: nil cache adapter")
	}
	return a.inner.Get(ctx, key)
}

func (a *cacheAdapter) SetEx(ctx context.Context, key string, val []byte, ttl time.Duration) error {
	if a == nil || a.inner == nil {
		return errors.New("store: nil cache adapter")
	}
	return a.inner.SetEx(ctx, key, val, ttl)
}

func (a *cacheAdapter) Ping(ctx context.Context) error {
	if a == nil || a.inner == nil {
		return errors.New("store: nil cache adapter")
	}
	return a.inner.Ping(ctx)
}

func (a *cacheAdapter) Close() error { return a.inner.Close() }
