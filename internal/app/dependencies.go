package app

import (
	"log/slog"

	"github.com/nfrund/ledgerline/internal/analytics"
	"github.com/nfrund/ledgerline/internal/domain"
	"github.com/nfrund/ledgerline/internal/modules/acknowledgement"
	"github.com/nfrund/ledgerline/internal/modules/leadcapture"
	"github.com/nfrund/ledgerline/internal/modules/tracking"
	"github.com/nfrund/ledgerline/internal/pubsub"
)

// Dependencies holds the core services that are required by the site's modules.
// This struct is passed from the main entrypoint to wire up the modules.
// Relay, Sink and Sender are normally nil and built from configuration;
// tests set them to fakes.
type Dependencies struct {
	Publisher  pubsub.Publisher
	Subscriber pubsub.Subscriber
	Logger     *slog.Logger

	Relay  domain.LeadRelay
	Sink   analytics.Sink
	Sender domain.EmailSender
}

// leadCaptureDeps creates the dependency struct for the lead capture module.
func leadCaptureDeps(deps Dependencies) leadcapture.Dependencies {
	return leadcapture.Dependencies{
		Publisher: deps.Publisher,
		Relay:     deps.Relay,
		Logger:    deps.Logger,
	}
}

// trackingDeps creates the dependency struct for the tracking module.
func trackingDeps(deps Dependencies) tracking.Dependencies {
	return tracking.Dependencies{
		Publisher:  deps.Publisher,
		Subscriber: deps.Subscriber,
		Sink:       deps.Sink,
		Logger:     deps.Logger,
	}
}

// acknowledgementDeps creates the dependency struct for the acknowledgement module.
func acknowledgementDeps(deps Dependencies) acknowledgement.Dependencies {
	return acknowledgement.Dependencies{
		Subscriber: deps.Subscriber,
		Sender:     deps.Sender,
		Logger:     deps.Logger,
	}
}
