package tw

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// CacheStats tracks cache performance.
type CacheStats struct {
	Hits      uint64
	Misses    uint64
	Sets      uint64
	Rollovers uint64
	// Size is the number of distinct keys across both generations.
	Size int
}

// Cache memoizes whole-string merge results in two generations. Entries are
// written to the current generation; when it grows past the capacity it
// becomes the previous one and a fresh current generation starts. A hit in the
// previous generation is promoted back into the current one.
type Cache struct {
	mu       sync.RWMutex
	capacity int
	current  map[string]string
	previous map[string]string
	logger   *zap.Logger

	hits      atomic.Uint64
	misses    atomic.Uint64
	sets      atomic.Uint64
	rollovers atomic.Uint64
}

// NewCache creates a cache holding up to capacity entries per generation.
// A capacity below one disables caching.
func NewCache(capacity int, logger *zap.Logger) *Cache {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Cache{capacity: capacity, logger: logger}
	if capacity > 0 {
		c.current = make(map[string]string)
		c.previous = make(map[string]string)
	}
	return c
}

// Get returns the cached merge result for key.
func (c *Cache) Get(key string) (string, bool) {
	if c.capacity <= 0 {
		c.misses.Add(1)
		return "", false
	}

	c.mu.RLock()
	if v, ok := c.current[key]; ok {
		c.mu.RUnlock()
		c.hits.Add(1)
		return v, true
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if v, ok := c.current[key]; ok {
		c.hits.Add(1)
		return v, true
	}
	if v, ok := c.previous[key]; ok {
		c.hits.Add(1)
		delete(c.previous, key)
		c.insert(key, v)
		return v, true
	}
	c.misses.Add(1)
	return "", false
}

// Set stores value under key.
func (c *Cache) Set(key, value string) {
	if c.capacity <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sets.Add(1)
	if _, ok := c.current[key]; ok {
		c.current[key] = value
		return
	}
	c.insert(key, value)
}

// insert must be called with the write lock held.
func (c *Cache) insert(key, value string) {
	c.current[key] = value
	if len(c.current) <= c.capacity {
		return
	}
	c.previous = c.current
	c.current = make(map[string]string, c.capacity)
	c.rollovers.Add(1)
	c.logger.Debug("Cache generation rollover",
		zap.Int("capacity", c.capacity),
		zap.Uint64("rollovers", c.rollovers.Load()),
	)
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() CacheStats {
	c.mu.RLock()
	size := len(c.current) + len(c.previous)
	c.mu.RUnlock()
	return CacheStats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Sets:      c.sets.Load(),
		Rollovers: c.rollovers.Load(),
		Size:      size,
	}
}
