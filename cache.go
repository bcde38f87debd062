package rational

import (
	"container/list"
	"fmt"
	"sync"

	"github.com/amdwit/rational/logger"
)

const (
	DefaultHighWater = 1 << 16 // maximum number of entries in a default cache
	DefaultLowWater  = 1 << 12 // number of entries dropped by a default eviction pass
)

// CacheStats holds the counters of a [Cache].
type CacheStats struct {
	Hits      uint64 // lookups that found an entry
	Misses    uint64 // lookups that did not find an entry
	Passes    uint64 // eviction passes
	Evictions uint64 // entries dropped by eviction passes
}

// Cache is a bounded store of interned rational numbers keyed by the
// representation they were built from.
//
// Eviction approximates LRU in batches. Lookups only record hit keys in a
// recency set. When an insertion finds the cache full, every key in the
// recency set is moved to the most recent end, the set is cleared, and a
// fixed number of entries at the least recent end are dropped.
//
// Cache is safe for concurrent use by multiple goroutines.
type Cache struct {
	mu      sync.Mutex
	high    int
	low     int
	entries map[string]*list.Element
	order   *list.List // front is least recent
	touched []string
	seen    map[string]struct{}
	stats   CacheStats
}

type cacheEntry struct {
	key   string
	value Rat
}

// NewCache returns an empty cache that holds at most high entries and
// drops low entries whenever it has to make room.
//
// NewCache returns an error if low is not positive or low is greater than high.
func NewCache(high, low int) (*Cache, error) {
	if low <= 0 || low > high {
		return nil, fmt.Errorf("cache bounds [%v, %v]: %w", low, high, ErrInvalidOperand)
	}
	c := &Cache{high: high, low: low}
	c.init()
	return c, nil
}

// MustNewCache is like [NewCache] but panics if the bounds are invalid.
func MustNewCache(high, low int) *Cache {
	c, err := NewCache(high, low)
	if err != nil {
		panic(fmt.Sprintf("NewCache(%v, %v) failed: %v", high, low, err))
	}
	return c
}

// NewDefaultCache returns a cache with [DefaultHighWater] and [DefaultLowWater] bounds.
func NewDefaultCache() *Cache {
	return MustNewCache(DefaultHighWater, DefaultLowWater)
}

func (c *Cache) init() {
	c.entries = make(map[string]*list.Element)
	c.order = list.New()
	c.touched = nil
	c.seen = make(map[string]struct{})
}

// Get returns the value stored under key and records the key as recently used.
func (c *Cache) Get(key string) (Rat, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		c.stats.Misses++
		return Rat{}, false
	}
	c.stats.Hits++
	if _, ok := c.seen[key]; !ok {
		c.seen[key] = struct{}{}
		c.touched = append(c.touched, key)
	}
	return e.Value.(*cacheEntry).value, true
}

// Put stores r under key. If the cache is full, an eviction pass runs first.
// Storing an existing key replaces its value without evicting anything.
func (c *Cache) Put(key string, r Rat) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.Value.(*cacheEntry).value = r
		return
	}
	if len(c.entries) >= c.high {
		c.evict()
	}
	c.entries[key] = c.order.PushBack(&cacheEntry{key: key, value: r})
}

// evict refreshes recently used entries and drops the least recent ones.
// The caller must hold c.mu.
func (c *Cache) evict() {
	for _, key := range c.touched {
		if e, ok := c.entries[key]; ok {
			c.order.MoveToBack(e)
		}
	}
	refreshed := len(c.touched)
	c.touched = c.touched[:0]
	clear(c.seen)

	dropped := 0
	for dropped < c.low && c.order.Len() > 0 {
		e := c.order.Front()
		c.order.Remove(e)
		delete(c.entries, e.Value.(*cacheEntry).key)
		dropped++
	}
	c.stats.Passes++
	c.stats.Evictions += uint64(dropped)
	logger.Debugf("rational: cache eviction pass %d refreshed %d and dropped %d entries, %d remain",
		c.stats.Passes, refreshed, dropped, len(c.entries))
}

// Contains reports whether key is stored in the cache.
// Unlike [Cache.Get], it does not mark the key as recently used.
func (c *Cache) Contains(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}

// Len returns the number of entries in the cache.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Bounds returns the high-water mark and the number of entries dropped per eviction pass.
func (c *Cache) Bounds() (high, low int) {
	return c.high, c.low
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// Reset removes all entries and clears the counters.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.init()
	c.stats = CacheStats{}
}
