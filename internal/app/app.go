package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/courseplan/internal/catalog"
	"github.com/vk/courseplan/internal/ctxlog"
	"github.com/vk/courseplan/internal/graph"
	"github.com/vk/courseplan/internal/loader"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle: a loaded catalog, its graph engine, and an isolated logger.
type App struct {
	inR    io.Reader
	outW   io.Writer
	logger *slog.Logger

	catalog *catalog.Catalog
	engine  *graph.Engine
}

// New constructs a fully initialized App: it builds the logger, loads the
// catalog from the configured path, and rebuilds the dependency graph.
// An unreadable catalog source is a fatal startup error and panics; the
// entrypoint recovers and reports it.
//
// Records that fail insertion (bad key format, duplicate key) are logged
// and skipped so that the valid remainder of the catalog stays queryable.
func New(inR io.Reader, outW, logW io.Writer, cfg *Config, ldr loader.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	records, err := ldr.Load(ctx, cfg.CatalogPath)
	if err != nil {
		panic(fmt.Errorf("failed to load catalog: %w", err))
	}
	logger.Debug("Catalog source loaded.", "records", len(records))

	cat := catalog.New()
	for _, course := range records {
		if err := cat.Insert(course); err != nil {
			logger.Warn("skipping course record", "key", course.Key, "error", err)
		}
	}
	logger.Debug("Catalog populated.", "courses", cat.Len())

	engine := graph.New(cat)
	engine.Rebuild(ctx)

	return &App{
		inR:     inR,
		outW:    outW,
		logger:  logger,
		catalog: cat,
		engine:  engine,
	}
}

// Catalog returns the loaded catalog. This is primarily for testing.
func (a *App) Catalog() *catalog.Catalog {
	return a.catalog
}

// Engine returns the graph engine. This is primarily for testing.
func (a *App) Engine() *graph.Engine {
	return a.engine
}
