// Package cache stores the aggregation snapshot between refresh cycles so
// a restart within the TTL does not hammer the public relays. Redis when a
// URL is configured and reachable, an in-process map otherwise. It is a
// cache, not a persistence layer: losing it only costs one extra fetch.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"EquityNewsScanner/internal/ports"
)

// New returns a Redis-backed cache when redisURL parses and responds to a
// ping within 2s, falling back to the in-memory cache otherwise.
func New(redisURL string) ports.Cache {
	if redisURL == "" {
		return NewMemory()
	}
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return NewMemory()
	}
	client := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return NewMemory()
	}
	return &Redis{client: client}
}

// Redis stores entries in a Redis instance with native TTL expiry.
type Redis struct {
	client *redis.Client
}

var _ ports.Cache = (*Redis)(nil)

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	b, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return b, true
}

func (r *Redis) Set(ctx context.Context, key string, val []byte, ttl time.Duration) error {
	return r.client.Set(ctx, key, val, ttl).Err()
}

// Memory is the in-process fallback with lazy expiry.
type Memory struct {
	mu    sync.Mutex
	items map[string]memoryItem
}

type memoryItem struct {
	val []byte
	exp time.Time
}

var _ ports.Cache = (*Memory)(nil)

// NewMemory builds an empty in-process cache.
func NewMemory() *Memory {
	return &Memory{items: make(map[string]memoryItem)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[key]
	if !ok {
		return nil, false
	}
	if !item.exp.IsZero() && time.Now().After(item.exp) {
		delete(m.items, key)
		return nil, false
	}
	return item.val, true
}

func (m *Memory) Set(_ context.Context, key string, val []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	exp := time.Time{}
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	m.items[key] = memoryItem{val: val, exp: exp}
	return nil
}
