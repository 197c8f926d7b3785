// Package module defines the lifecycle every site feature goes through:
// services are registered first, then each module boots its routes and
// background work, and finally modules are shut down in reverse order.
package module

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/ledgerline/internal/registry"
)

// Module defines the contract for a self-contained site feature.
type Module interface {
	// Name returns a unique identifier for the module.
	Name() string

	// Register is called during startup to put the module's services in the
	// registry. Every module registers before any module boots.
	Register(reg *registry.Registry) error

	// Boot mounts routes and starts background work. ctx lives as long as
	// the application.
	Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error

	// Shutdown stops background work started in Boot.
	Shutdown(ctx context.Context) error
}

// BaseModule provides no-op implementations for the optional phases.
type BaseModule struct{}

func (m *BaseModule) Register(reg *registry.Registry) error { return nil }
func (m *BaseModule) Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error {
	return nil
}
func (m *BaseModule) Shutdown(ctx context.Context) error { return nil }

// Names returns the names of mods in order.
func Names(mods []Module) []string {
	names := make([]string, len(mods))
	for i, m := range mods {
		names[i] = m.Name()
	}
	return names
}
