package cache

import (
	"math"
	"time"
)

type counters struct {
	hits          int64
	misses        int64
	sets          int64
	deletes       int64
	evictions     int64
	totalRequests int64
}

// Stats is a point-in-time snapshot of a Cache. The JSON names are consumed
// by monitoring dashboards and must stay stable.
type Stats struct {
	Hits           int64   `json:"hits"`
	Misses         int64   `json:"misses"`
	Sets           int64   `json:"sets"`
	Deletes        int64   `json:"deletes"`
	Evictions      int64   `json:"evictions"`
	TotalRequests  int64   `json:"total_requests"`
	TotalEntries   int     `json:"total_entries"`
	HitRatePercent float64 `json:"hit_rate_percent"`
	MaxSize        int     `json:"max_size"`
	DefaultTTL     int64   `json:"default_ttl"`
}

func hitRate(hits, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(hits)/float64(total)*100*100) / 100
}

func ttlSeconds(d time.Duration) int64 {
	return int64(d / time.Second)
}
