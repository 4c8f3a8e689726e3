package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	perr "medlens/internal/platform/errors"
	pnet "medlens/internal/platform/net"

	"golang.org/x/time/rate"
)

// RateLimitOptions configures the per client token buckets
type RateLimitOptions struct {
	// RPS is the sustained requests per second per client, default 10
	RPS float64
	// Burst is the bucket depth, default 2x RPS
	Burst int
	// IdleTTL evicts client buckets not seen for this long, default 10m
	IdleTTL time.Duration
	// SweepEvery bounds how often eviction runs, default 1m
	SweepEvery time.Duration
}

func (o RateLimitOptions) withDefaults() RateLimitOptions {
	if o.RPS <= 0 {
		o.RPS = 10
	}
	if o.Burst <= 0 {
		o.Burst = int(o.RPS) * 2
	}
	if o.IdleTTL <= 0 {
		o.IdleTTL = 10 * time.Minute
	}
	if o.SweepEvery <= 0 {
		o.SweepEvery = time.Minute
	}
	return o
}

type clientBucket struct {
	lim  *rate.Limiter
	seen time.Time
}

// rateLimiter holds one token bucket per client ip
type rateLimiter struct {
	opts    RateLimitOptions
	mu      sync.Mutex
	buckets map[string]*clientBucket
	swept   time.Time
}

func newRateLimiter(opts RateLimitOptions) *rateLimiter {
	return &rateLimiter{
		opts:    opts.withDefaults(),
		buckets: make(map[string]*clientBucket),
		swept:   time.Now(),
	}
}

// allow reserves a token for the client, creating its bucket lazily
func (rl *rateLimiter) allow(client string) bool {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	if now.Sub(rl.swept) > rl.opts.SweepEvery {
		for k, b := range rl.buckets {
			if now.Sub(b.seen) > rl.opts.IdleTTL {
				delete(rl.buckets, k)
			}
		}
		rl.swept = now
	}

	b, ok := rl.buckets[client]
	if !ok {
		b = &clientBucket{lim: rate.NewLimiter(rate.Limit(rl.opts.RPS), rl.opts.Burst)}
		rl.buckets[client] = b
	}
	b.seen = now
	return b.lim.Allow()
}

// clientKey extracts the client ip; run behind RealIP so RemoteAddr is trustworthy
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimit enforces a per client request budget and answers 429 over the envelope writer
func RateLimit(opts RateLimitOptions, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	rl := newRateLimiter(opts)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.allow(clientKey(r)) {
				err := perr.Newf(perr.ErrorCodeTooManyRequests, "rate limit exceeded")
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
