package cache

import "time"

// entry is the stored unit. Only the owning Cache touches it, under its lock.
type entry[V any] struct {
	value          V
	ttl            time.Duration
	createdAt      time.Time
	lastAccessedAt time.Time
	expiresAt      time.Time
	accessCount    int64
}

func newEntry[V any](value V, ttl time.Duration, now time.Time) *entry[V] {
	return &entry[V]{
		value:          value,
		ttl:            ttl,
		createdAt:      now,
		lastAccessedAt: now,
		expiresAt:      now.Add(ttl),
	}
}

func (e *entry[V]) expired(now time.Time) bool {
	return now.After(e.expiresAt)
}

// EntryInfo describes a single cache entry for diagnostics.
type EntryInfo struct {
	Key            string    `json:"key"`
	CreatedAt      time.Time `json:"created_at"`
	LastAccessedAt time.Time `json:"last_accessed"`
	ExpiresAt      time.Time `json:"expires_at"`
	AccessCount    int64     `json:"access_count"`
	TTLSeconds     float64   `json:"ttl"`
	IsExpired      bool      `json:"is_expired"`
}
