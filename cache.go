package campbuidl

import (
	"sync"
	"time"
)

// PageCache memoizes rendered responses by key with a TTL. A composed
// document renders identically every time, so the cache only saves work.
type PageCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

type cacheEntry struct {
	body    []byte
	fetched time.Time
}

// NewPageCache creates a PageCache. A ttl of zero or less never expires
// entries.
func NewPageCache(ttl time.Duration) *PageCache {
	return &PageCache{entries: make(map[string]cacheEntry), ttl: ttl, now: time.Now}
}

func (c *PageCache) valid(e cacheEntry, ok bool) bool {
	if !ok {
		return false
	}
	return c.ttl <= 0 || c.now().Sub(e.fetched) < c.ttl
}

// Get returns the cached bytes for key, calling build on a miss or after
// expiry. It tries a read lock first; only takes a write lock if a rebuild
// is needed. Failed builds are not cached.
func (c *PageCache) Get(key string, build func() ([]byte, error)) ([]byte, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	if c.valid(e, ok) {
		c.mu.RUnlock()
		return e.body, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok = c.entries[key]
	if c.valid(e, ok) {
		return e.body, nil
	}
	body, err := build()
	if err != nil {
		return nil, err
	}
	c.entries[key] = cacheEntry{body: body, fetched: c.now()}
	return body, nil
}

// Invalidate clears the cache so the next read triggers a fresh build.
func (c *PageCache) Invalidate() {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	c.mu.Unlock()
}

// Len returns the number of cached entries.
func (c *PageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
