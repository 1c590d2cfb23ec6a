// Package cache provides a bounded, expiring in-memory key/value store.
//
// Entries carry their own TTL. Expired entries are dropped lazily when read,
// and a full sweep runs every N sets so that unread entries do not linger.
// When a new key is inserted into a full cache the least recently read entry
// is evicted; updates of existing keys never evict and never change recency.
package cache

import (
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/simplelru"
)

// Cache is safe for concurrent use. Every operation holds a single mutex for
// its whole duration and performs no I/O.
type Cache[V any] struct {
	mu    sync.Mutex
	items *simplelru.LRU // string -> *entry[V], front is most recently read

	defaultTTL    time.Duration
	maxSize       int
	sweepInterval int
	now           func() time.Time

	stats counters
}

// New creates a cache holding at most maxSize entries.
func New[V any](defaultTTL time.Duration, maxSize int, opts ...Option) (*Cache[V], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	items, err := simplelru.NewLRU(maxSize, nil)
	if err != nil {
		return nil, fmt.Errorf("create lru with size %d: %w", maxSize, err)
	}

	return &Cache[V]{
		items:         items,
		defaultTTL:    defaultTTL,
		maxSize:       maxSize,
		sweepInterval: o.sweepInterval,
		now:           o.now,
	}, nil
}

// Get returns the value stored under key. An entry found past its expiry is
// removed and reported as a miss.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	c.stats.totalRequests++

	raw, ok := c.items.Peek(key)
	if !ok {
		c.stats.misses++
		return zero, false
	}

	e := raw.(*entry[V])
	now := c.now()
	if e.expired(now) {
		c.items.Remove(key)
		c.stats.evictions++
		c.stats.misses++
		return zero, false
	}

	c.items.Get(key)
	e.lastAccessedAt = now
	e.accessCount++
	c.stats.hits++

	return e.value, true
}

// Set stores value under key with the default TTL.
func (c *Cache[V]) Set(key string, value V) {
	c.SetWithTTL(key, value, c.defaultTTL)
}

// SetWithTTL stores value under key for ttl. A ttl <= 0 is accepted and
// yields an entry that expires immediately.
//
// Overwriting an existing key keeps its read history (last access time,
// access count and position in the recency order).
func (c *Cache[V]) SetWithTTL(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if raw, ok := c.items.Peek(key); ok {
		e := raw.(*entry[V])
		e.value = value
		e.ttl = ttl
		e.createdAt = now
		e.expiresAt = now.Add(ttl)
	} else if evicted := c.items.Add(key, newEntry(value, ttl, now)); evicted {
		c.stats.evictions++
	}
	c.stats.sets++

	if c.sweepInterval > 0 && c.stats.sets%int64(c.sweepInterval) == 0 {
		c.sweepLocked(now)
	}
}

// Delete removes key and reports whether it was present.
func (c *Cache[V]) Delete(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.items.Remove(key) {
		return false
	}
	c.stats.deletes++
	return true
}

// Clear drops every entry and resets all counters. It returns the number of
// entries that were removed.
func (c *Cache[V]) Clear() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := c.items.Len()
	c.items.Purge()
	c.stats = counters{}
	return n
}

// Keys returns a snapshot of the stored keys, least recently read first.
// Expired entries that have not been swept yet are included.
func (c *Cache[V]) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	raw := c.items.Keys()
	keys := make([]string, 0, len(raw))
	for _, k := range raw {
		keys = append(keys, k.(string))
	}
	return keys
}

// Len returns the number of stored entries, expired or not.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.items.Len()
}

// Stats returns a snapshot of the counters.
func (c *Cache[V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Hits:           c.stats.hits,
		Misses:         c.stats.misses,
		Sets:           c.stats.sets,
		Deletes:        c.stats.deletes,
		Evictions:      c.stats.evictions,
		TotalRequests:  c.stats.totalRequests,
		TotalEntries:   c.items.Len(),
		HitRatePercent: hitRate(c.stats.hits, c.stats.totalRequests),
		MaxSize:        c.maxSize,
		DefaultTTL:     ttlSeconds(c.defaultTTL),
	}
}

// Inspect describes the entry stored under key without counting as a read.
func (c *Cache[V]) Inspect(key string) (EntryInfo, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	raw, ok := c.items.Peek(key)
	if !ok {
		return EntryInfo{}, false
	}

	e := raw.(*entry[V])
	return EntryInfo{
		Key:            key,
		CreatedAt:      e.createdAt,
		LastAccessedAt: e.lastAccessedAt,
		ExpiresAt:      e.expiresAt,
		AccessCount:    e.accessCount,
		TTLSeconds:     e.ttl.Seconds(),
		IsExpired:      e.expired(c.now()),
	}, true
}

func (c *Cache[V]) sweepLocked(now time.Time) {
	for _, k := range c.items.Keys() {
		raw, ok := c.items.Peek(k)
		if !ok {
			continue
		}
		if raw.(*entry[V]).expired(now) {
			c.items.Remove(k)
			c.stats.evictions++
		}
	}
}
