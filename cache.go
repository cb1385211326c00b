package lehar

import (
	"sync"
	"time"
)

// MetaCache is an in-memory snapshot of the metadata document with TTL,
// holding the issues pre-sorted. Serve-mode handlers read through it so
// every request does not reparse metadata.json.
type MetaCache struct {
	mu      sync.RWMutex
	site    SiteMeta
	issues  []Issue // sorted, newest first
	loaded  bool
	fetched time.Time
	ttl     time.Duration
	store   *MetadataStore
}

// NewMetaCache creates a MetaCache backed by the given store.
func NewMetaCache(s *MetadataStore, ttl time.Duration) *MetaCache {
	return &MetaCache{store: s, ttl: ttl}
}

func (c *MetaCache) valid() bool {
	return c.loaded && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *MetaCache) Invalidate() {
	c.mu.Lock()
	c.loaded = false
	c.mu.Unlock()
}

func (c *MetaCache) load() error {
	if c.valid() {
		return nil
	}
	meta, err := c.store.Load()
	if err != nil {
		return err
	}
	c.site = meta.SiteMeta
	c.issues = SortIssues(meta.Issues)
	c.loaded = true
	c.fetched = time.Now()
	return nil
}

// ensureLoaded returns the cached site meta and sorted issues, reloading
// first if stale. It tries a read lock; only a reload takes a write lock.
func (c *MetaCache) ensureLoaded() (SiteMeta, []Issue, error) {
	c.mu.RLock()
	if c.valid() {
		site, issues := c.site, c.issues
		c.mu.RUnlock()
		return site, issues, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(); err != nil {
		return SiteMeta{}, nil, err
	}
	return c.site, c.issues, nil
}

// Site returns the cached site metadata.
func (c *MetaCache) Site() (SiteMeta, error) {
	site, _, err := c.ensureLoaded()
	return site, err
}

// Issues returns the cached issues, sorted newest first.
func (c *MetaCache) Issues() ([]Issue, error) {
	_, issues, err := c.ensureLoaded()
	return issues, err
}
