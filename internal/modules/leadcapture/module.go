// Package leadcapture wires the lead widget: the Web3Forms relay, the
// submission service, the POST /leads route and the widget sweeper.
package leadcapture

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/ledgerline/internal/domain"
	"github.com/nfrund/ledgerline/internal/handlers"
	"github.com/nfrund/ledgerline/internal/leads"
	"github.com/nfrund/ledgerline/internal/middleware"
	"github.com/nfrund/ledgerline/internal/module"
	"github.com/nfrund/ledgerline/internal/pubsub"
	"github.com/nfrund/ledgerline/internal/registry"
	"github.com/nfrund/ledgerline/internal/web3forms"
)

const sweepInterval = time.Minute

// Dependencies holds the services required by the module. A nil Relay is
// replaced by a Web3Forms client built from configuration.
type Dependencies struct {
	Publisher pubsub.Publisher
	Relay     domain.LeadRelay
	Logger    *slog.Logger
}

// LeadCaptureModule implements module.Module.
type LeadCaptureModule struct {
	module.BaseModule
	publisher pubsub.Publisher
	relay     domain.LeadRelay
	logger    *slog.Logger
	service   *leads.Service
	cancel    context.CancelFunc
	done      chan struct{}
}

// New creates a new LeadCaptureModule.
func New(deps Dependencies) *LeadCaptureModule {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &LeadCaptureModule{
		publisher: deps.Publisher,
		relay:     deps.Relay,
		logger:    deps.Logger.With("module", "leadcapture"),
	}
}

// Name returns the module name.
func (m *LeadCaptureModule) Name() string {
	return "leadcapture"
}

// Register builds the submission service and registers it.
func (m *LeadCaptureModule) Register(reg *registry.Registry) error {
	cfg := reg.Config()

	relay := m.relay
	if relay == nil {
		client, _ := registry.Get(reg, registry.HTTPClientKey)
		relay = web3forms.New(web3forms.Config{
			Endpoint:  cfg.GetWeb3FormsEndpoint(),
			AccessKey: cfg.GetWeb3FormsAccessKey(),
			Recipient: m.recipient(reg),
			FromName:  cfg.GetLeadFromName(),
			Subject:   cfg.GetLeadSubject(),
		}, client)
		if cfg.GetWeb3FormsAccessKey() == "" {
			m.logger.Warn("WEB3FORMS_ACCESS_KEY is not set; enquiries will be rejected by Web3Forms")
		}
	}

	m.service = leads.NewService(leads.Dependencies{
		Registry:  leads.NewRegistry(cfg.GetLeadWidgetTTL()),
		Relay:     relay,
		Publisher: m.publisher,
		Timeout:   cfg.GetLeadSubmitTimeout(),
		Logger:    m.logger,
	})
	registry.Set(reg, registry.LeadServiceKey, m.service)

	m.logger.Info("LeadCaptureModule registered",
		"submit_timeout", cfg.GetLeadSubmitTimeout(),
		"widget_ttl", cfg.GetLeadWidgetTTL(),
	)
	return nil
}

// recipient is the inbox enquiries are delivered to: LEAD_RECIPIENT, or the
// business email from the site content when that is unset.
func (m *LeadCaptureModule) recipient(reg *registry.Registry) string {
	if to := reg.Config().GetLeadRecipient(); to != "" {
		return to
	}
	if catalog, ok := registry.Get(reg, registry.CatalogKey); ok && catalog != nil {
		return catalog.Site().Business.Email
	}
	return ""
}

// Boot mounts POST /leads and starts sweeping expired widgets.
func (m *LeadCaptureModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	pages := registry.MustGet(reg, registry.PageHandlerKey)
	handler := handlers.NewLeadHandler(m.service, pages)

	g.POST("/leads", handler.LeadPost, middleware.RateLimiter(reg.Config().GetRateLimitPerMinute()))
	// GET /leads is what a visitor sees after refreshing a failed plain post.
	g.GET("/leads", func(c echo.Context) error {
		return c.Redirect(http.StatusSeeOther, "/contact")
	})

	sweepCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.done = make(chan struct{})
	go func() {
		defer close(m.done)
		m.service.Registry().Run(sweepCtx, sweepInterval)
	}()

	m.logger.Info("LeadCaptureModule booted")
	return nil
}

// Shutdown stops the sweeper.
func (m *LeadCaptureModule) Shutdown(ctx context.Context) error {
	if m.cancel == nil {
		return nil
	}
	m.cancel()
	select {
	case <-m.done:
	case <-ctx.Done():
		return ctx.Err()
	}
	m.logger.Info("LeadCaptureModule shut down")
	return nil
}
