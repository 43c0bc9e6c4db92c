package statcache

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/npo-hokage/charcount/internal/charcount/domain"
	"github.com/npo-hokage/charcount/internal/charcount/services/analyzer"
)

// statCache memoizes counts by content digest using an LRU strategy, so
// byte-identical files are only counted once per run.
// It tracks basic metrics: hits and misses.
type statCache struct {
	lru    *lru.Cache[string, domain.FileStats]
	hits   uint64
	misses uint64
}

// disabledCache is a no-op cache used when size <= 0.
type disabledCache struct{}

// New returns a cache holding up to size entries. If size <= 0, a disabled
// cache is returned that always misses and stores nothing.
func New(size int) (analyzer.Cache, error) {
	if size <= 0 {
		return &disabledCache{}, nil
	}
	cache, err := lru.New[string, domain.FileStats](size)
	if err != nil {
		return nil, err
	}
	return &statCache{lru: cache}, nil
}

// Get looks up counts by digest. When found, increments hits; otherwise increments misses.
func (c *statCache) Get(digest string) (domain.FileStats, bool) {
	if val, ok := c.lru.Get(digest); ok {
		atomic.AddUint64(&c.hits, 1)
		return val, true
	}
	atomic.AddUint64(&c.misses, 1)
	return domain.FileStats{}, false
}

// Put stores counts by digest.
func (c *statCache) Put(digest string, stats domain.FileStats) {
	c.lru.Add(digest, stats)
}

// Len returns the number of entries in the cache.
func (c *statCache) Len() int { return c.lru.Len() }

// Stats returns the hit and miss counters.
func (c *statCache) Stats() analyzer.CacheStats {
	return analyzer.CacheStats{
		Hits:   atomic.LoadUint64(&c.hits),
		Misses: atomic.LoadUint64(&c.misses),
	}
}

func (d *disabledCache) Get(string) (domain.FileStats, bool) { return domain.FileStats{}, false }
func (d *disabledCache) Put(string, domain.FileStats)        {}
func (d *disabledCache) Len() int                            { return 0 }
func (d *disabledCache) Stats() analyzer.CacheStats          { return analyzer.CacheStats{} }

var (
	_ analyzer.Cache = (*statCache)(nil)
	_ analyzer.Cache = (*disabledCache)(nil)
)
