package analyzer

import (
	"fmt"

	"github.com/npo-hokage/charcount/internal/charcount/common/log"
	"github.com/npo-hokage/charcount/internal/charcount/domain"
)

type Analyzer struct {
	cache  Cache
	logger log.Logger
	reader DocumentReader
}

type AnalyzerOptions struct {
	Cache  Cache // optional; nil disables memoization
	Logger log.Logger
	Reader DocumentReader
}

func NewAnalyzer(opts AnalyzerOptions) *Analyzer {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Analyzer{
		cache:  opts.Cache,
		logger: logger,
		reader: opts.Reader,
	}
}

// AnalyzeFile reads the file at path and returns its character counts.
// Read and decode errors are passed through as-is; a run stops on the first one.
func (a *Analyzer) AnalyzeFile(path string) (domain.FileStats, error) {
	doc, err := a.reader.Read(path)
	if err != nil {
		return domain.FileStats{}, err
	}

	if a.cache != nil {
		if stats, ok := a.cache.Get(doc.Digest); ok {
			a.logger.Debug(map[string]any{"file": doc.Name, "digest": doc.Digest}, "Reusing counts for identical content")
			return stats.WithFilename(doc.Name), nil
		}
	}

	stats := Measure(doc)
	if err := stats.Validate(); err != nil {
		return domain.FileStats{}, fmt.Errorf("failed to measure %s: %w", path, err)
	}

	if a.cache != nil {
		a.cache.Put(doc.Digest, stats)
	}

	a.logger.Debug(map[string]any{
		"file":          doc.Name,
		"title":         doc.Title(),
		"frontmatter":   doc.HasFrontmatter(),
		"total":         stats.Total,
		"body":          stats.Body,
		"body_no_space": stats.BodyNoSpace,
	}, "Analyzed file")

	return stats, nil
}

// CacheStats returns the cache counters, or zero values when caching is off.
func (a *Analyzer) CacheStats() CacheStats {
	if a.cache == nil {
		return CacheStats{}
	}
	return a.cache.Stats()
}
