package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/npo-hokage/charcount/internal/charcount/common/clock"
	"github.com/npo-hokage/charcount/internal/charcount/common/log"
	"github.com/npo-hokage/charcount/internal/charcount/config"
	"github.com/npo-hokage/charcount/internal/charcount/gateways/report"
	"github.com/npo-hokage/charcount/internal/charcount/repos/content"
	"github.com/npo-hokage/charcount/internal/charcount/repos/statcache"
	"github.com/npo-hokage/charcount/internal/charcount/services/analyzer"
)

const (
	// Version information
	version = "0.1.0-dev"
	appName = "charcount"
)

// Application holds all the components of the report generator
type Application struct {
	config   *config.AppConfig
	clock    clock.Clock
	content  *content.Repository
	analyzer *analyzer.Analyzer
}

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	// Configure global logging
	err = log.Configure(cfg.Env, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logging configuration error: %v\n", err)
		os.Exit(1)
	}

	log.Debug(map[string]any{
		"app":         appName,
		"version":     version,
		"env":         cfg.Env,
		"log_level":   cfg.LogLevel,
		"content_dir": cfg.ContentDir,
		"pattern":     cfg.Pattern,
		"cache_size":  cfg.CacheSize,
	}, "Starting charcount")

	app, err := buildApplication(cfg)
	if err != nil {
		log.Fatal(map[string]any{"error": err}, "Failed to build application")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, os.Stdout); err != nil {
		log.Fatal(map[string]any{"error": err}, "Report failed")
	}
}

// buildApplication constructs all components and wires them together
func buildApplication(cfg *config.AppConfig) (*Application, error) {
	logger := log.GetLogger()

	repo := content.NewRepository(os.DirFS(cfg.ContentDir), cfg.ContentDir, cfg.Pattern, logger)

	cache, err := statcache.New(cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create stat cache: %w", err)
	}

	analyzerService := analyzer.NewAnalyzer(analyzer.AnalyzerOptions{
		Cache:  cache,
		Logger: logger,
		Reader: repo,
	})

	return &Application{
		config:   cfg,
		clock:    clock.RealClock{},
		content:  repo,
		analyzer: analyzerService,
	}, nil
}

// Run lists the content directory and writes the report to out, one row per
// file in sorted order. The first file that cannot be read stops the run;
// rows already written stay written.
func (app *Application) Run(ctx context.Context, out io.Writer) error {
	start := app.clock.Now()

	paths, err := app.content.List()
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", app.content.Dir(), err)
	}

	w := report.NewWriter(out)
	if err := w.WriteHeader(); err != nil {
		return err
	}

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("report interrupted: %w", err)
		}
		stats, err := app.analyzer.AnalyzeFile(path)
		if err != nil {
			return fmt.Errorf("failed to analyze %s: %w", path, err)
		}
		if err := w.WriteRow(stats); err != nil {
			return err
		}
	}

	if err := w.WriteFooter(); err != nil {
		return err
	}

	cacheStats := app.analyzer.CacheStats()
	log.Info(map[string]any{
		"dir":          app.content.Dir(),
		"files":        w.Rows(),
		"cache_hits":   cacheStats.Hits,
		"cache_misses": cacheStats.Misses,
		"elapsed":      app.clock.Now().Sub(start),
	}, "Report generated")

	return nil
}
