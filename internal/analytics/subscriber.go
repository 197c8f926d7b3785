package analytics

import (
	"context"
	"log/slog"

	"github.com/nfrund/ledgerline/internal/domain"
	"github.com/nfrund/ledgerline/internal/leads"
	"github.com/nfrund/ledgerline/internal/pubsub"
)

// Contact channels offered on the thank-you panel and contact page.
const (
	ChannelCall     = "call"
	ChannelWhatsApp = "whatsapp"
)

// ContactClicked is published when a visitor follows a call or WhatsApp link.
type ContactClicked struct {
	Channel  string `json:"channel"`
	Location string `json:"location"`
	Page     string `json:"page"`
	ClientID string `json:"client_id"`
}

var TopicContactClicked = pubsub.NewEvent[ContactClicked](
	"analytics.contact.clicked",
	"A visitor followed a call or WhatsApp link",
)

// EventName maps a contact channel to its analytics event name.
func EventName(channel string) (string, bool) {
	switch channel {
	case ChannelCall:
		return domain.EventClickCall, true
	case ChannelWhatsApp:
		return domain.EventClickWhatsApp, true
	}
	return "", false
}

// Subscriber turns bus events into analytics events.
type Subscriber struct {
	subscriber pubsub.Subscriber
	sink       Sink
	logger     *slog.Logger
}

// NewSubscriber creates a Subscriber.
func NewSubscriber(sub pubsub.Subscriber, sink Sink, logger *slog.Logger) *Subscriber {
	if logger == nil {
		logger = slog.Default()
	}
	return &Subscriber{subscriber: sub, sink: sink, logger: logger}
}

// Start subscribes to the lead and click topics.
func (s *Subscriber) Start(ctx context.Context) error {
	if err := pubsub.Subscribe(ctx, s.subscriber, leads.TopicEnquirySubmitted, s.handleEnquiry); err != nil {
		return err
	}
	return pubsub.Subscribe(ctx, s.subscriber, TopicContactClicked, s.handleClick)
}

func (s *Subscriber) handleEnquiry(ctx context.Context, e leads.EnquirySubmitted) error {
	return s.track(ctx, domain.AnalyticsEvent{
		Name:     domain.EventContactFormSubmitted,
		Location: e.Location,
		ClientID: e.ClientID,
		Page:     e.SourcePage,
	})
}

func (s *Subscriber) handleClick(ctx context.Context, e ContactClicked) error {
	name, ok := EventName(e.Channel)
	if !ok {
		s.logger.Warn("Ignoring click on unknown channel", "channel", e.Channel)
		return nil
	}
	return s.track(ctx, domain.AnalyticsEvent{
		Name:     name,
		Location: e.Location,
		ClientID: e.ClientID,
		Page:     e.Page,
	})
}

func (s *Subscriber) track(ctx context.Context, event domain.AnalyticsEvent) error {
	if err := s.sink.Track(ctx, event); err != nil {
		s.logger.Error("Failed to deliver analytics event", "event", event.Name, "error", err)
		return err
	}
	return nil
}
