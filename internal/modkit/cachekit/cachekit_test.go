package cachekit

import (
	"context"
	"errors"
	"testing"
	"time"
)

// memCache is an in-memory store.Cache for tests
type memCache struct {
	vals   map[string][]byte
	ttls   map[string]time.Duration
	getErr error
	setErr error
	gets   int
	sets   int
}

func newMemCache() *memCache {
	return &memCache{vals: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.gets++
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	b, ok := m.vals[key]
	return b, ok, nil
}

func (m *memCache) SetEx(_ context.Context, key string, val []byte, ttl time.Duration) error {
	m.sets++
	if m.setErr != nil {
		return m.setErr
	}
	m.vals[key] = val
	m.ttls[key] = ttl
	return nil
}

func (m *memCache) Ping(context.Context) error { return nil }
func (m *memCache) Close() error               { return nil }

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestCached_MissComputesAndStores(t *testing.T) {
	t.Parallel()

	mc := newMemCache()
	calls := 0
	fn := func(context.Context) (payload, error) {
		calls++
		return payload{Name: "lobelia", Count: 3}, nil
	}

	got, err := Cached(context.Background(), mc, "k", time.Minute, fn)
	if err != nil {
		t.Fatalf("Cached error: %v", err)
	}
	if got.Name != "lobelia" || got.Count != 3 {
		t.Fatalf("unexpected value: %+v", got)
	}
	if calls != 1 || mc.sets != 1 {
		t.Fatalf("calls=%d sets=%d, want 1/1", calls, mc.sets)
	}
	if mc.ttls["k"] != time.Minute {
		t.Fatalf("ttl not applied, got %v", mc.ttls["k"])
	}

	// second call must come from cache
	got2, err := Cached(context.Background(), mc, "k", time.Minute, fn)
	if err != nil {
		t.Fatalf("Cached (hit) error: %v", err)
	}
	if got2 != got {
		t.Fatalf("hit returned different value: %+v vs %+v", got2, got)
	}
	if calls != 1 {
		t.Fatalf("fn called on a hit, calls=%d", calls)
	}
}

func TestCached_NilCache_CallsThrough(t *testing.T) {
	t.Parallel()

	calls := 0
	got, err := Cached(context.Background(), nil, "k", time.Minute, func(context.Context) (int, error) {
		calls++
		return 9, nil
	})
	if err != nil || got != 9 || calls != 1 {
		t.Fatalf("got=%d err=%v calls=%d", got, err, calls)
	}
}

func TestCached_GetError_FailsOpen(t *testing.T) {
	t.Parallel()

	mc := newMemCache()
	mc.getErr = errors.New("redis down")

	got, err := Cached(context.Background(), mc, "k", time.Minute, func(context.Context) (string, error) {
		return "fresh", nil
	})
	if err != nil {
		t.Fatalf("backend failure must not surface: %v", err)
	}
	if got != "fresh" {
		t.Fatalf("got %q", got)
	}
}

func TestCached_SetError_FailsOpen(t *testing.T) {
	t.Parallel()

	mc := newMemCache()
	mc.setErr = errors.New("readonly replica")

	got, err := Cached(context.Background(), mc, "k", time.Minute, func(context.Context) (string, error) {
		return "fresh", nil
	})
	if err != nil || got != "fresh" {
		t.Fatalf("got=%q err=%v", got, err)
	}
}

func TestCached_CorruptEntry_Recomputes(t *testing.T) {
	t.Parallel()

	mc := newMemCache()
	mc.vals["k"] = []byte("{not json")

	calls := 0
	got, err := Cached(context.Background(), mc, "k", time.Minute, func(context.Context) (payload, error) {
		calls++
		return payload{Name: "ok"}, nil
	})
	if err != nil || got.Name != "ok" || calls != 1 {
		t.Fatalf("got=%+v err=%v calls=%d", got, err, calls)
	}
	// the bad entry must have been overwritten
	if string(mc.vals["k"]) == "{not json" {
		t.Fatalf("corrupt entry not overwritten")
	}
}

func TestCached_FnError_NotCached(t *testing.T) {
	t.Parallel()

	mc := newMemCache()
	want := errors.New("boom")
	_, err := Cached(context.Background(), mc, "k", time.Minute, func(context.Context) (int, error) {
		return 0, want
	})
	if !errors.Is(err, want) {
		t.Fatalf("err=%v want %v", err, want)
	}
	if mc.sets != 0 {
		t.Fatalf("errors must not be cached, sets=%d", mc.sets)
	}
}

func TestCached_ZeroTTL_UsesDefault(t *testing.T) {
	t.Parallel()

	mc := newMemCache()
	_, err := Cached(context.Background(), mc, "k", 0, func(context.Context) (int, error) { return 1, nil })
	if err != nil {
		t.Fatalf("Cached error: %v", err)
	}
	if mc.ttls["k"] != DefaultTTL {
		t.Fatalf("ttl=%v want %v", mc.ttls["k"], DefaultTTL)
	}
}

func TestKey_OrderIndependent(t *testing.T) {
	t.Parallel()

	a := Key("channels:list", "limit", "10", "active", "true")
	b := Key("channels:list", "active", "true", "limit", "10")
	if a != b {
		t.Fatalf("key should not depend on pair order: %q vs %q", a, b)
	}
}

func TestKey_DistinctParamsDistinctKeys(t *testing.T) {
	t.Parallel()

	a := Key("search", "query", "paracetamol", "limit", "10")
	b := Key("search", "query", "paracetamol", "limit", "20")
	if a == b {
		t.Fatalf("different params must yield different keys")
	}
}

func TestKey_DelimiterSafe(t *testing.T) {
	t.Parallel()

	// without escaping these two would collide
	a := Key("op", "a", "x:b=y")
	b := Key("op", "a:x", "b=y")
	if a == b {
		t.Fatalf("delimiter collision: %q", a)
	}
}

func TestKey_OddPairsTolerated(t *testing.T) {
	t.Parallel()

	got := Key("op", "only")
	if got != "op:only=" {
		t.Fatalf("got %q", got)
	}
}
