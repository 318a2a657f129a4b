package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryStore implements in-memory caching
type MemoryStore struct {
	cache *gocache.Cache
}

// NewMemoryStore creates a new memory store. A defaultTTL of 0 keeps
// entries for the lifetime of the process.
func NewMemoryStore(defaultTTL time.Duration, cleanupInterval time.Duration) *MemoryStore {
	if defaultTTL == 0 {
		defaultTTL = gocache.NoExpiration
	}
	return &MemoryStore{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get retrieves a value from the store
func (c *MemoryStore) Get(key string) ([]byte, bool) {
	if val, found := c.cache.Get(key); found {
		return val.([]byte), true
	}
	return nil, false
}

// Set stores a value with the given TTL
func (c *MemoryStore) Set(key string, value []byte, ttl time.Duration) error {
	if ttl == 0 {
		ttl = gocache.NoExpiration
	}
	c.cache.Set(key, value, ttl)
	return nil
}

// Delete removes a value from the store
func (c *MemoryStore) Delete(key string) error {
	c.cache.Delete(key)
	return nil
}

// Clear removes all values from the store
func (c *MemoryStore) Clear() error {
	c.cache.Flush()
	return nil
}
