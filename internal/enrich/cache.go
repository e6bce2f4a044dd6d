package enrich

import (
	"context"
	"sync"
	"time"

	"gamevault/internal/platform/steam"

	"golang.org/x/sync/singleflight"
)

// DefaultFreshness is how long a directory snapshot stays valid.
const DefaultFreshness = 24 * time.Hour

// FetchFunc loads a full directory snapshot.
type FetchFunc func(ctx context.Context) ([]steam.App, error)

// DirectoryCache holds one directory snapshot per freshness window.
// Concurrent misses share a single fetch.
type DirectoryCache struct {
	fetch     FetchFunc
	freshness time.Duration
	now       func() time.Time

	mu        sync.RWMutex
	apps      []steam.App
	fetchedAt time.Time

	group singleflight.Group
}

func NewDirectoryCache(fetch FetchFunc, freshness time.Duration, now func() time.Time) *DirectoryCache {
	if freshness <= 0 {
		freshness = DefaultFreshness
	}
	if now == nil {
		now = time.Now
	}
	return &DirectoryCache{fetch: fetch, freshness: freshness, now: now}
}

// Apps returns the cached snapshot, fetching a new one when it is missing or
// stale. The returned slice must not be modified.
func (c *DirectoryCache) Apps(ctx context.Context) ([]steam.App, error) {
	if apps, ok := c.fresh(); ok {
		return apps, nil
	}

	v, err, _ := c.group.Do("directory", func() (any, error) {
		if apps, ok := c.fresh(); ok {
			return apps, nil
		}
		// Detached from the caller: other waiters share this fetch.
		apps, err := c.fetch(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.apps = apps
		c.fetchedAt = c.now()
		c.mu.Unlock()
		return apps, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]steam.App), nil
}

// Invalidate drops the current snapshot.
func (c *DirectoryCache) Invalidate() {
	c.mu.Lock()
	c.apps = nil
	c.fetchedAt = time.Time{}
	c.mu.Unlock()
}

func (c *DirectoryCache) fresh() ([]steam.App, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.apps == nil {
		return nil, false
	}
	if c.now().Sub(c.fetchedAt) >= c.freshness {
		return nil, false
	}
	return c.apps, true
}
