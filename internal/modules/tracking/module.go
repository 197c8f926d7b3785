// Package tracking wires analytics: the event sink chosen from
// configuration, the bus subscriber feeding it and the outbound call and
// WhatsApp redirects.
package tracking

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/ledgerline/internal/analytics"
	"github.com/nfrund/ledgerline/internal/config"
	"github.com/nfrund/ledgerline/internal/handlers"
	"github.com/nfrund/ledgerline/internal/module"
	"github.com/nfrund/ledgerline/internal/pubsub"
	"github.com/nfrund/ledgerline/internal/registry"
)

// Dependencies holds the services required by the module. A nil Sink is
// built from configuration.
type Dependencies struct {
	Publisher  pubsub.Publisher
	Subscriber pubsub.Subscriber
	Sink       analytics.Sink
	Logger     *slog.Logger
}

// TrackingModule implements module.Module.
type TrackingModule struct {
	module.BaseModule
	publisher  pubsub.Publisher
	subscriber pubsub.Subscriber
	sink       analytics.Sink
	logger     *slog.Logger
	cancel     context.CancelFunc
}

// New creates a new TrackingModule.
func New(deps Dependencies) *TrackingModule {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &TrackingModule{
		publisher:  deps.Publisher,
		subscriber: deps.Subscriber,
		sink:       deps.Sink,
		logger:     deps.Logger.With("module", "tracking"),
	}
}

// Name returns the module name.
func (m *TrackingModule) Name() string {
	return "tracking"
}

// Register builds the analytics sink and registers it.
func (m *TrackingModule) Register(reg *registry.Registry) error {
	if m.sink == nil {
		client, _ := registry.Get(reg, registry.HTTPClientKey)
		m.sink = NewSink(reg.Config(), client, m.logger)
	}
	registry.Set(reg, registry.AnalyticsSinkKey, m.sink)
	return nil
}

// NewSink returns a sink that always logs and, when both the measurement ID
// and API secret are configured, also sends events to GA4.
func NewSink(cfg config.Provider, client *http.Client, logger *slog.Logger) analytics.Sink {
	logSink := analytics.NewLogSink(logger)
	if cfg.GetGA4MeasurementID() == "" || cfg.GetGA4APISecret() == "" {
		return logSink
	}
	logger.Info("Sending analytics events to GA4", "measurement_id", cfg.GetGA4MeasurementID())
	return analytics.Multi{
		logSink,
		analytics.NewGA4Sink(analytics.GA4Config{
			MeasurementID: cfg.GetGA4MeasurementID(),
			APISecret:     cfg.GetGA4APISecret(),
		}, client),
	}
}

// Boot subscribes the sink to the bus and mounts the outbound redirects.
func (m *TrackingModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	subCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel

	if err := analytics.NewSubscriber(m.subscriber, m.sink, m.logger).Start(subCtx); err != nil {
		cancel()
		return err
	}

	outbound := handlers.NewOutboundHandler(registry.MustGet(reg, registry.CatalogKey), m.publisher)
	g.GET("/go/call", outbound.CallGet)
	g.GET("/go/whatsapp", outbound.WhatsAppGet)

	m.logger.Info("TrackingModule booted")
	return nil
}

// Shutdown ends the bus subscriptions.
func (m *TrackingModule) Shutdown(ctx context.Context) error {
	if m.cancel != nil {
		m.cancel()
	}
	return nil
}
