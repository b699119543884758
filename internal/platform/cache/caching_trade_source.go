// Package cache provides caching decorators for upstream data sources.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"moajim/internal/feature/realestate/domain/entity"
	"moajim/internal/feature/realestate/usecase"
)

// CachingTradeSource decorates a TradeSource with a listing cache keyed by
// "lawdCd-dealYmd". Redis is used when configured; otherwise listings live in a
// process-local TTL map. Concurrent misses for one key share a single upstream call.
type CachingTradeSource struct {
	inner     usecase.TradeSource
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
	group     singleflight.Group
	mem       *memoryStore
	now       func() time.Time
}

// Compile-time check that CachingTradeSource satisfies usecase.TradeSource.
var _ usecase.TradeSource = (*CachingTradeSource)(nil)

// NewCachingTradeSource decorates inner. If ttl is 0, it defaults to 24 hours.
// If namespace is empty, it uses "trades". rdb may be nil.
func NewCachingTradeSource(rdb *redis.Client, ttl time.Duration, inner usecase.TradeSource, namespace string) *CachingTradeSource {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if namespace == "" {
		namespace = "trades"
	}
	return &CachingTradeSource{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
		mem:       newMemoryStore(),
		now:       time.Now,
	}
}

// FetchTrades returns the cached listing or fetches and stores it.
func (c *CachingTradeSource) FetchTrades(ctx context.Context, lawdCd, dealYmd string) ([]entity.Trade, error) {
	key := fmt.Sprintf("%s-%s", lawdCd, dealYmd)

	if out, ok := c.get(ctx, key); ok {
		return out, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		out, err := c.inner.FetchTrades(ctx, lawdCd, dealYmd)
		if err != nil {
			return nil, err
		}
		c.set(ctx, key, out, c.ttlFor(dealYmd))
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]entity.Trade), nil
}

// ttlFor shortens the TTL of months that can still receive filings so new
// deals show up after the next upstream refresh.
func (c *CachingTradeSource) ttlFor(dealYmd string) time.Duration {
	now := c.now()
	if !IsOpenMonth(dealYmd, now) {
		return c.ttl
	}
	if d := TimeUntilNextRefresh(now); d < c.ttl {
		return d
	}
	return c.ttl
}

func (c *CachingTradeSource) get(ctx context.Context, key string) ([]entity.Trade, bool) {
	if c.rdb == nil {
		return c.mem.get(key, c.now())
	}

	rkey := c.namespace + ":" + key
	b, err := c.rdb.Get(ctx, rkey).Bytes()
	if err != nil || len(b) == 0 {
		return nil, false
	}
	var out []entity.Trade
	if err := json.Unmarshal(b, &out); err != nil {
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, rkey).Err()
		return nil, false
	}
	return out, true
}

func (c *CachingTradeSource) set(ctx context.Context, key string, trades []entity.Trade, ttl time.Duration) {
	if c.rdb == nil {
		now := c.now()
		c.mem.set(key, trades, now, now.Add(ttl))
		return
	}
	if b, err := json.Marshal(trades); err == nil {
		_ = c.rdb.Set(ctx, c.namespace+":"+key, b, ttl).Err() // best effort
	}
}

type memoryEntry struct {
	trades  []entity.Trade
	expires time.Time
}

// memoryStore is a mutex-guarded TTL map. Expired entries are swept on write.
type memoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

func newMemoryStore() *memoryStore {
	return &memoryStore{entries: make(map[string]memoryEntry)}
}

func (m *memoryStore) get(key string, now time.Time) ([]entity.Trade, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	if !ok || !now.Before(e.expires) {
		return nil, false
	}
	return e.trades, true
}

func (m *memoryStore) set(key string, trades []entity.Trade, now, expires time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, e := range m.entries {
		if !now.Before(e.expires) {
			delete(m.entries, k)
		}
	}
	m.entries[key] = memoryEntry{trades: trades, expires: expires}
}

func (m *memoryStore) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
