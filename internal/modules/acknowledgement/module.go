// Package acknowledgement sends enquirers a confirmation email when their
// enquiry reaches Web3Forms. It is inactive when EMAIL_PROVIDER=none.
package acknowledgement

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/ledgerline/internal/domain"
	"github.com/nfrund/ledgerline/internal/email"
	"github.com/nfrund/ledgerline/internal/module"
	"github.com/nfrund/ledgerline/internal/pubsub"
	"github.com/nfrund/ledgerline/internal/registry"
)

// Dependencies holds the services required by the module. A nil Sender is
// built from configuration.
type Dependencies struct {
	Subscriber pubsub.Subscriber
	Sender     domain.EmailSender
	Logger     *slog.Logger
}

// AcknowledgementModule implements module.Module.
type AcknowledgementModule struct {
	module.BaseModule
	subscriber pubsub.Subscriber
	sender     domain.EmailSender
	logger     *slog.Logger
	cancel     context.CancelFunc
}

// New creates a new AcknowledgementModule.
func New(deps Dependencies) *AcknowledgementModule {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &AcknowledgementModule{
		subscriber: deps.Subscriber,
		sender:     deps.Sender,
		logger:     deps.Logger.With("module", "acknowledgement"),
	}
}

// Name returns the module name.
func (m *AcknowledgementModule) Name() string {
	return "acknowledgement"
}

// Register builds the email sender. An invalid email configuration fails
// startup.
func (m *AcknowledgementModule) Register(reg *registry.Registry) error {
	if m.sender == nil {
		client, _ := registry.Get(reg, registry.HTTPClientKey)
		sender, err := email.NewEmailService(reg.Config(), client)
		if err != nil {
			return err
		}
		m.sender = sender
	}
	if m.sender != nil {
		registry.Set(reg, registry.EmailSenderKey, m.sender)
	}
	return nil
}

// Boot subscribes the acknowledger to submitted enquiries.
func (m *AcknowledgementModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	if m.sender == nil {
		m.logger.Info("Acknowledgement emails disabled")
		return nil
	}

	catalog := registry.MustGet(reg, registry.CatalogKey)
	business := func() domain.Business { return catalog.Site().Business }

	subCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	if err := email.NewAcknowledger(m.subscriber, m.sender, business, m.logger).Start(subCtx); err != nil {
		cancel()
		return err
	}

	m.logger.Info("AcknowledgementModule booted")
	return nil
}

// Shutdown ends the subscription.
func (m *AcknowledgementModule) Shutdown(ctx context.Context) error {
	if m.cancel != nil {
		m.cancel()
	}
	return nil
}
