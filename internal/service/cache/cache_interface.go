// Package cache defines the caching contract used by the arrangement solver.
package cache

import "github.com/guttosm/carton-service/internal/domain/model"

// Cache defines the interface for arrangement cache operations. Keys encode
// the full solve input (quantity, unit dimensions, buffer).
type Cache interface {
	Get(key string) (*model.Arrangement, bool)
	Set(key string, value *model.Arrangement)
	Invalidate(key string)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
