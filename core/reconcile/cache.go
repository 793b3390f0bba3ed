package reconcile

import (
	"context"
	"slices"
	"sync"
	"time"

	"menu-manager/core/baseline"

	"golang.org/x/sync/singleflight"
)

// baselineCache keeps the last fetched baseline for a short TTL so bursts of loads
// hit the source once.
type baselineCache struct {
	mu      sync.RWMutex
	doc     *baseline.Document
	fetched time.Time
	ttl     time.Duration
	sf      singleflight.Group
	now     func() time.Time
}

func newBaselineCache(ttl time.Duration) *baselineCache {
	return &baselineCache{ttl: ttl, now: time.Now}
}

// isFresh must be called with mu held.
func (c *baselineCache) isFresh() bool {
	if c.doc == nil || c.ttl <= 0 {
		return false
	}
	return c.now().Sub(c.fetched) < c.ttl
}

func (c *baselineCache) cached() (*baseline.Document, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.isFresh() {
		return nil, false
	}
	return copyDocument(c.doc), true
}

// get returns the cached baseline or fetches it from src. Failures are not cached.
func (c *baselineCache) get(ctx context.Context, src baseline.Source) (*baseline.Document, error) {
	if doc, ok := c.cached(); ok {
		return doc, nil
	}

	result, err, _ := c.sf.Do("baseline", func() (interface{}, error) {
		// Another caller may have filled the cache while we waited.
		if doc, ok := c.cached(); ok {
			return doc, nil
		}

		doc, err := src.Fetch(ctx)
		if err != nil {
			return nil, err
		}

		c.set(doc)
		return doc, nil
	})
	if err != nil {
		return nil, err
	}

	return copyDocument(result.(*baseline.Document)), nil
}

func (c *baselineCache) set(doc *baseline.Document) {
	c.mu.Lock()
	c.doc = copyDocument(doc)
	c.fetched = c.now()
	c.mu.Unlock()
}

func (c *baselineCache) invalidate() {
	c.mu.Lock()
	c.doc = nil
	c.mu.Unlock()
}

func copyDocument(doc *baseline.Document) *baseline.Document {
	return &baseline.Document{Menu: slices.Clone(doc.Menu), LastUpdated: doc.LastUpdated}
}
