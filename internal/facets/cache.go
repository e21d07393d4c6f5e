package facets

import (
	"sync"
	"time"
)

// resolverCache is a thread-safe TTL cache for resolver results. Entries
// expire lazily: the read that finds an expired entry deletes it.
type resolverCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]resolverEntry
	nowFn   func() time.Time
}

type resolverEntry struct {
	value     interface{}
	expiresAt time.Time
}

func newResolverCache(ttl time.Duration) *resolverCache {
	return &resolverCache{
		ttl:     ttl,
		entries: make(map[string]resolverEntry),
		nowFn: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// get retrieves the value cached under key. Returns false when the key is
// absent or its entry has aged out.
func (c *resolverCache) get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.entries[key]
	if !exists {
		return nil, false
	}
	if c.nowFn().After(entry.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	return entry.value, true
}

// put stores value under key with a fresh TTL.
func (c *resolverCache) put(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = resolverEntry{value: value, expiresAt: c.nowFn().Add(c.ttl)}
}

// clear removes all entries from the cache.
func (c *resolverCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]resolverEntry)
}
