package embedding

import (
	"context"
	"sync"

	"github.com/spigell/hh-scorer/internal/metrics"
)

const defaultCacheSize = 10000

// Cache memoizes embeddings of a wrapped provider. When full it evicts the
// oldest tenth of inserted keys.
type Cache struct {
	provider Provider
	max      int
	metrics  *metrics.Metrics

	mu      sync.Mutex
	entries map[string][]float32
	order   []string
}

// NewCache wraps provider with a bounded cache. m may be nil.
func NewCache(provider Provider, maxEntries int, m *metrics.Metrics) *Cache {
	if maxEntries <= 0 {
		maxEntries = defaultCacheSize
	}
	return &Cache{
		provider: provider,
		max:      maxEntries,
		metrics:  m,
		entries:  make(map[string][]float32),
	}
}

// Embed returns a cached vector or computes and stores a new one.
// Failed lookups are not cached.
func (c *Cache) Embed(ctx context.Context, text string) ([]float32, error) {
	c.mu.Lock()
	if vec, ok := c.entries[text]; ok {
		c.mu.Unlock()
		c.hit()
		return vec, nil
	}
	c.mu.Unlock()
	c.miss()

	vec, err := c.provider.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[text]; !ok {
		if len(c.entries) >= c.max {
			c.evictLocked()
		}
		c.entries[text] = vec
		c.order = append(c.order, text)
	}
	c.size(len(c.entries))

	return vec, nil
}

func (c *Cache) evictLocked() {
	n := c.max / 10
	if n < 1 {
		n = 1
	}
	if n > len(c.order) {
		n = len(c.order)
	}
	for _, key := range c.order[:n] {
		delete(c.entries, key)
	}
	c.order = append([]string(nil), c.order[n:]...)
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Name implements Provider.
func (c *Cache) Name() string { return c.provider.Name() }

// Close closes the wrapped provider.
func (c *Cache) Close() error { return c.provider.Close() }

func (c *Cache) hit() {
	if c.metrics != nil {
		c.metrics.CacheHitsTotal.Inc()
	}
}

func (c *Cache) miss() {
	if c.metrics != nil {
		c.metrics.CacheMissesTotal.Inc()
	}
}

func (c *Cache) size(n int) {
	if c.metrics != nil {
		c.metrics.CacheSize.Set(float64(n))
	}
}
