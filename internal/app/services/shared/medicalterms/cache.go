package medicalterms

import (
	"strings"
	"sync"
	"time"
)

const (
	DefaultCacheCapacity = 20
	DefaultCacheTTL      = 5 * time.Minute
)

type cacheEntry[V any] struct {
	value      V
	insertedAt time.Time
}

// Cache is a bounded TTL cache with case-insensitive keys. When full, Set evicts the
// oldest inserted entry.
type Cache[V any] struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	entries  map[string]cacheEntry[V]
	order    []string
	now      func() time.Time
}

func NewCache[V any](capacity int, ttl time.Duration) *Cache[V] {
	return NewCacheWithClock[V](capacity, ttl, time.Now)
}

func NewCacheWithClock[V any](capacity int, ttl time.Duration, now func() time.Time) *Cache[V] {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache[V]{
		capacity: capacity,
		ttl:      ttl,
		entries:  make(map[string]cacheEntry[V], capacity),
		order:    make([]string, 0, capacity),
		now:      now,
	}
}

// Get treats an entry older than the TTL as absent and drops it.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key = normalizeKey(key)
	entry, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}

	if c.now().Sub(entry.insertedAt) > c.ttl {
		c.removeLocked(key)
		var zero V
		return zero, false
	}
	return entry.value, true
}

// Set counts an overwrite as a fresh insertion.
func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key = normalizeKey(key)
	if _, ok := c.entries[key]; ok {
		c.removeLocked(key)
	}

	if len(c.order) >= c.capacity {
		c.removeLocked(c.order[0])
	}

	c.entries[key] = cacheEntry[V]{value: value, insertedAt: c.now()}
	c.order = append(c.order, key)
}

func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry[V], c.capacity)
	c.order = c.order[:0]
}

func (c *Cache[V]) removeLocked(key string) {
	delete(c.entries, key)
	for i, existing := range c.order {
		if existing == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

func normalizeKey(key string) string {
	return strings.ToLower(key)
}
