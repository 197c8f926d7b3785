package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/nfrund/ledgerline/internal/app"
	"github.com/nfrund/ledgerline/internal/config"
	"github.com/nfrund/ledgerline/internal/content"
	"github.com/nfrund/ledgerline/internal/logging"
	"github.com/nfrund/ledgerline/internal/pubsub"
	"github.com/nfrund/ledgerline/internal/registry"
	"github.com/nfrund/ledgerline/internal/rendering"
	"github.com/nfrund/ledgerline/internal/server"
)

func main() {
	// config.New loads .env before the logger reads LOG_* variables.
	cfg := config.New()
	logger := logging.New()

	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tracer, shutdownTracing, err := pubsub.SetupOTel(ctx, pubsub.LoadTracingConfig(cfg))
	if err != nil {
		slog.Error("Failed to set up tracing", "error", err)
		os.Exit(1)
	}
	defer shutdownTracing()

	fsys, err := content.Source(cfg.GetContentDir())
	if err != nil {
		slog.Error("Failed to open content", "error", err)
		os.Exit(1)
	}
	catalog, err := content.NewCatalog(fsys)
	if err != nil {
		slog.Error("Failed to load content", "error", err)
		os.Exit(1)
	}

	reg := registry.New(cfg)
	registry.Set(reg, registry.HTTPClientKey, server.NewHTTPClient())

	bus := pubsub.NewWatermillBridgeWithTracer(logger, tracer)

	s, err := server.New(server.Dependencies{
		Config:    cfg,
		Catalog:   catalog,
		Renderer:  rendering.NewUniversalRenderer(),
		Publisher: bus,
	})
	if err != nil {
		slog.Error("Failed to create server", "error", err)
		os.Exit(1)
	}

	modules := app.NewModules(app.Dependencies{
		Publisher:  bus,
		Subscriber: bus,
		Logger:     logger,
	})
	if err := s.InitModules(ctx, modules, reg); err != nil {
		slog.Error("Failed to initialize modules", "error", err)
		os.Exit(1)
	}
	s.RegisterRoutes()

	if err := s.Start(cfg.GetServerAddr()); err != nil {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}
}
