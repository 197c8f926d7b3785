// Package livecontent reloads site content when files under CONTENT_DIR
// change. It only runs in development.
package livecontent

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/ledgerline/internal/content"
	"github.com/nfrund/ledgerline/internal/module"
	"github.com/nfrund/ledgerline/internal/registry"
)

// LiveContentModule implements module.Module.
type LiveContentModule struct {
	module.BaseModule
	logger  *slog.Logger
	watcher *content.Watcher
	cancel  context.CancelFunc
	done    chan struct{}
}

// New creates a new LiveContentModule.
func New(logger *slog.Logger) *LiveContentModule {
	if logger == nil {
		logger = slog.Default()
	}
	return &LiveContentModule{logger: logger.With("module", "livecontent")}
}

// Name returns the module name.
func (m *LiveContentModule) Name() string {
	return "livecontent"
}

// Boot starts watching CONTENT_DIR.
func (m *LiveContentModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	cfg := reg.Config()
	if !cfg.IsDevelopment() || cfg.GetContentDir() == "" {
		return nil
	}

	watcher, err := content.NewWatcher(cfg.GetContentDir(), registry.MustGet(reg, registry.CatalogKey), m.logger)
	if err != nil {
		return err
	}
	m.watcher = watcher

	watchCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.done = make(chan struct{})
	go func() {
		defer close(m.done)
		watcher.Run(watchCtx)
	}()

	m.logger.Info("Watching content for changes", "dir", cfg.GetContentDir())
	return nil
}

// Shutdown stops the watcher.
func (m *LiveContentModule) Shutdown(ctx context.Context) error {
	if m.watcher == nil {
		return nil
	}
	m.cancel()
	select {
	case <-m.done:
	case <-ctx.Done():
	}
	return m.watcher.Close()
}
