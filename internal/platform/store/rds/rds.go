// Package rds provides a thin redis client used as the read cache
package rds

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config configures redis connectivity
type Config struct {
	Addr string
	DB   int

	// DialTimeout bounds the initial connect, default 2s
	DialTimeout time.Duration
	// OpTimeout bounds individual commands, default 500ms
	// a slow cache must degrade to a miss, never stall a request
	OpTimeout time.Duration
}

// RDS is a redis client with per-command timeouts
type RDS struct {
	c         *redis.Client
	opTimeout time.Duration
}

// Open connects and verifies the server is reachable
func Open(ctx context.Context, cfg Config) (*RDS, error) {
	dial := cfg.DialTimeout
	if dial <= 0 {
		dial = 2 * time.Second
	}
	op := cfg.OpTimeout
	if op <= 0 {
		op = 500 * time.Millisecond
	}
	c := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		DB:          cfg.DB,
		DialTimeout: dial,
	})
	pingCtx, cancel := context.WithTimeout(ctx, dial)
	defer cancel()
	if err := c.Ping(pingCtx).Err(); err != nil {
		_ = c.Close()
		return nil, err
	}
	return &RDS{c: c, opTimeout: op}, nil
}

// Get returns the raw value, ok=false on a plain miss
func (r *RDS) Get(ctx context.Context, key string) ([]byte, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()
	b, err := r.c.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

// SetEx stores val under key with the given ttl
func (r *RDS) SetEx(ctx context.Context, key string, val []byte, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()
	return r.c.SetEx(ctx, key, val, ttl).Err()
}

// Ping verifies connectivity
func (r *RDS) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()
	return r.c.Ping(ctx).Err()
}

// Close releases the underlying pool
func (r *RDS) Close() error { return r.c.Close() }
