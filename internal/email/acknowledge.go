package email

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/nfrund/ledgerline/internal/domain"
	"github.com/nfrund/ledgerline/internal/leads"
	"github.com/nfrund/ledgerline/internal/phone"
	"github.com/nfrund/ledgerline/internal/pubsub"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Acknowledger emails enquirers to confirm their enquiry was received.
type Acknowledger struct {
	subscriber pubsub.Subscriber
	sender     domain.EmailSender
	business   func() domain.Business
	logger     *slog.Logger
}

// NewAcknowledger creates an Acknowledger. business is called per email so
// content reloads are picked up.
func NewAcknowledger(sub pubsub.Subscriber, sender domain.EmailSender, business func() domain.Business, logger *slog.Logger) *Acknowledger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Acknowledger{subscriber: sub, sender: sender, business: business, logger: logger}
}

// Start subscribes to submitted enquiries.
func (a *Acknowledger) Start(ctx context.Context) error {
	return pubsub.Subscribe(ctx, a.subscriber, leads.TopicEnquirySubmitted, a.handle)
}

func (a *Acknowledger) handle(ctx context.Context, e leads.EnquirySubmitted) error {
	if e.Email == "" {
		return nil
	}
	b := a.business()

	body, err := RenderAcknowledgement(b, e.Name)
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("Thanks for contacting %s", b.Name)
	if err := a.sender.Send(ctx, e.Email, subject, body); err != nil {
		a.logger.Error("Failed to send acknowledgement email", "widget_id", e.WidgetID, "error", err)
		return err
	}
	a.logger.Info("Acknowledgement email sent", "widget_id", e.WidgetID)
	return nil
}

// RenderAcknowledgement renders the HTML body of the acknowledgement email.
func RenderAcknowledgement(b domain.Business, name string) (string, error) {
	greeting := "Hello,"
	if name != "" {
		greeting = fmt.Sprintf("Hello %s,", name)
	}

	node := h.Div(
		h.P(g.Text(greeting)),
		h.P(g.Textf("Thank you for getting in touch with %s. One of our accountants will reply within one working day.", b.Name)),
		g.If(b.Telephone != "",
			h.P(g.Text("If your enquiry is urgent, call us on "), h.Strong(g.Text(phone.Display(b.Telephone))), g.Text(".")),
		),
		h.P(g.Text("Kind regards,"), h.Br(), g.Text(b.Name)),
	)

	var buf bytes.Buffer
	if err := node.Render(&buf); err != nil {
		return "", fmt.Errorf("render acknowledgement: %w", err)
	}
	return buf.String(), nil
}
