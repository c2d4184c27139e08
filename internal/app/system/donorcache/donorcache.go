// internal/app/system/donorcache/donorcache.go

// Package donorcache is a read-through cache for donor directory lookups.
// Alert listing resolves a donor's blood group on every call, so the hot
// path is GetByEmail; writes to the directory invalidate the affected entry
// explicitly rather than relying on expiry.
package donorcache

import (
	"context"
	"sync"

	"github.com/lekithkishore/blood-bank-management-system/internal/domain/models"
)

// Loader fetches a donor by case-folded email when the cache misses.
type Loader func(ctx context.Context, emailCI string) (models.Donor, error)

// Cache is a read-through donor cache keyed by case-folded email. Safe for
// concurrent use.
type Cache struct {
	mu   sync.RWMutex
	load Loader
	byCI map[string]models.Donor
}

// New returns a Cache that fills itself through load.
func New(load Loader) *Cache {
	return &Cache{
		load: load,
		byCI: make(map[string]models.Donor),
	}
}

// Get returns the donor for the folded email, loading and caching on a
// miss. Load errors are returned as-is and nothing is cached for them, so
// a not-found donor is re-checked on the next call.
func (c *Cache) Get(ctx context.Context, emailCI string) (models.Donor, error) {
	c.mu.RLock()
	d, ok := c.byCI[emailCI]
	c.mu.RUnlock()
	if ok {
		return d, nil
	}

	d, err := c.load(ctx, emailCI)
	if err != nil {
		return models.Donor{}, err
	}

	c.mu.Lock()
	c.byCI[emailCI] = d
	c.mu.Unlock()
	return d, nil
}

// Invalidate drops the cached entry for the folded email. Callers must
// invoke it after every directory write that touches the donor.
func (c *Cache) Invalidate(emailCI string) {
	c.mu.Lock()
	delete(c.byCI, emailCI)
	c.mu.Unlock()
}

// Clear empties the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.byCI = make(map[string]models.Donor)
	c.mu.Unlock()
}
