package statuscache

import (
	"context"
	"time"
)

func cacheKey(source, contextID string) string {
	return source + ":" + contextID
}

// Get returns the cached value for (source, contextID), or nil when
// absent or expired. Expiry is re-checked here even though the sweep
// runs too: an expired-but-unswept entry must never be served.
func (c *Cache) Get(source, contextID string) any {
	key := cacheKey(source, contextID)

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil
	}
	if c.now().After(e.expiry) {
		delete(c.entries, key)
		return nil
	}
	return e.value
}

// Set stores a value under (source, contextID) with the default TTL.
func (c *Cache) Set(source, contextID string, value any) {
	c.SetTTL(source, contextID, value, c.defaultTTL)
}

// SetTTL stores a value with an explicit TTL.
func (c *Cache) SetTTL(source, contextID string, value any, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	now := c.now()

	c.mu.Lock()
	c.entries[cacheKey(source, contextID)] = entry{
		value:   value,
		created: now,
		expiry:  now.Add(ttl),
	}
	c.mu.Unlock()
}

// Delete removes the entry for (source, contextID), if any.
func (c *Cache) Delete(source, contextID string) {
	c.mu.Lock()
	delete(c.entries, cacheKey(source, contextID))
	c.mu.Unlock()
}

// Len returns the number of live entries, counting expired-but-unswept
// ones. Used by tests and the health surface.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Start launches the periodic sweep. It blocks until ctx is cancelled
// or Stop is called, so callers run it in its own goroutine.
// Lazy expiry alone would leak entries for keys that are never re-read.
func (c *Cache) Start(ctx context.Context) {
	ticker := time.NewTicker(c.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-c.done:
			return
		case <-ticker.C:
			c.sweep()
		}
	}
}

// Stop terminates the sweep goroutine. Safe to call more than once.
func (c *Cache) Stop() {
	c.stopOnce.Do(func() {
		close(c.done)
	})
}

func (c *Cache) sweep() {
	now := c.now()

	c.mu.Lock()
	removed := 0
	for key, e := range c.entries {
		if now.After(e.expiry) {
			delete(c.entries, key)
			removed++
		}
	}
	c.mu.Unlock()

	if removed > 0 && c.l != nil {
		c.l.Debugf(context.Background(), "statuscache: sweep evicted %d expired entries", removed)
	}
}
