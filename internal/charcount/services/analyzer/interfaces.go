package analyzer

import "github.com/npo-hokage/charcount/internal/charcount/domain"

// DocumentReader loads a markdown document already split into frontmatter and body.
type DocumentReader interface {
	Read(path string) (domain.Document, error)
}

// Cache memoizes counts by content digest.
type Cache interface {
	Get(digest string) (domain.FileStats, bool)
	Put(digest string, stats domain.FileStats)
	Len() int
	Stats() CacheStats
}

// CacheStats reports cache effectiveness for a run.
type CacheStats struct {
	Hits   uint64
	Misses uint64
}
