package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nfrund/ledgerline/internal/module"
	"github.com/nfrund/ledgerline/internal/registry"
)

// InitModules puts the server's core services in the registry, registers
// every module and then boots them in order. ctx bounds the modules'
// background work.
func (s *Server) InitModules(ctx context.Context, modules []module.Module, reg *registry.Registry) error {
	registry.Set(reg, registry.CatalogKey, s.Catalog)
	registry.Set(reg, registry.PageHandlerKey, s.Pages)

	for _, m := range modules {
		if err := m.Register(reg); err != nil {
			return fmt.Errorf("failed to register module %s: %w", m.Name(), err)
		}
	}

	root := s.E.Group("")
	for _, m := range modules {
		if err := m.Boot(ctx, root, reg); err != nil {
			return fmt.Errorf("failed to boot module %s: %w", m.Name(), err)
		}
		s.modules = append(s.modules, m)
	}

	slog.Info("Modules booted", "modules", module.Names(s.modules))
	return nil
}

// shutdownModules shuts booted modules down in reverse boot order.
func (s *Server) shutdownModules(ctx context.Context) {
	for i := len(s.modules) - 1; i >= 0; i-- {
		m := s.modules[i]
		if err := m.Shutdown(ctx); err != nil {
			slog.Error("Module shutdown failed", "module", m.Name(), "error", err)
		}
	}
	s.modules = nil
}
