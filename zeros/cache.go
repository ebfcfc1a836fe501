package zeros

import "sync"

// Key identifies a memoized zero set by count and requested decimal
// precision.
type Key struct {
	N         int
	Precision int
}

// Cache memoizes computed zero ordinates per (count, precision) key.
//
// The zero struct is ready to use. Lookups and inserts are safe for
// concurrent use; entries are never evicted. Stored slices are returned
// without copying and must be treated as read-only by callers.
type Cache struct {
	mu      sync.Mutex
	entries map[Key][]float64
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

// Get returns the cached ordinates for key, if present.
func (c *Cache) Get(key Key) ([]float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.entries[key]

	return v, ok
}

// Put stores ordinates under key, replacing any previous entry.
func (c *Cache) Put(key Key, ordinates []float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.entries == nil {
		c.entries = make(map[Key][]float64)
	}

	c.entries[key] = ordinates
}

// Len returns the number of memoized entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// defaultCache lives for the process lifetime and is shared by every
// provider that does not inject its own cache.
var defaultCache = NewCache()

// DefaultCache returns the shared process-wide cache.
func DefaultCache() *Cache {
	return defaultCache
}
