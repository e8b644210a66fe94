//go:build !integration

package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/carton-service/internal/domain/model"
)

// TestCacheInterface tests that the Cache interface is properly defined.
// This is a compile-time test to ensure the interface contract is correct.
func TestCacheInterface(t *testing.T) {
	var c Cache = &mockCache{}

	result, found := c.Get("8|2|1|1|0")
	assert.False(t, found)
	assert.Nil(t, result)

	c.Set("8|2|1|1|0", &model.Arrangement{Width: 4})
	c.Invalidate("8|2|1|1|0")
	c.Clear()
	c.Stop()
}

// TestCacheWithMetricsInterface tests that the CacheWithMetrics interface is properly defined.
func TestCacheWithMetricsInterface(t *testing.T) {
	var c CacheWithMetrics = &mockCacheWithMetrics{}

	m := c.Metrics()
	assert.Equal(t, int64(0), m.Hits)
	assert.Equal(t, int64(0), m.Misses)
	assert.Equal(t, 0, m.Size)
}

type mockCache struct{}

func (m *mockCache) Get(key string) (*model.Arrangement, bool)  { return nil, false }
func (m *mockCache) Set(key string, value *model.Arrangement)   {}
func (m *mockCache) Invalidate(key string)                      {}
func (m *mockCache) Clear()                                     {}
func (m *mockCache) Stop()                                      {}

type mockCacheWithMetrics struct {
	mockCache
}

func (m *mockCacheWithMetrics) Metrics() Metrics { return Metrics{} }
