package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/ledgerline/internal/analytics"
	"github.com/nfrund/ledgerline/internal/content"
	"github.com/nfrund/ledgerline/internal/middleware"
	"github.com/nfrund/ledgerline/internal/phone"
	"github.com/nfrund/ledgerline/internal/pubsub"
)

const maxLocationLen = 64

// OutboundHandler records call and WhatsApp clicks before sending the
// visitor on to the dialler or WhatsApp.
type OutboundHandler struct {
	catalog   *content.Catalog
	publisher pubsub.Publisher
}

// NewOutboundHandler creates a new OutboundHandler.
func NewOutboundHandler(catalog *content.Catalog, publisher pubsub.Publisher) *OutboundHandler {
	return &OutboundHandler{catalog: catalog, publisher: publisher}
}

// CallGet handles GET /go/call.
func (h *OutboundHandler) CallGet(c echo.Context) error {
	link, err := phone.TelLink(h.catalog.Site().Business.Telephone)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "No phone number is configured.")
	}
	return h.redirect(c, analytics.ChannelCall, link)
}

// WhatsAppGet handles GET /go/whatsapp.
func (h *OutboundHandler) WhatsAppGet(c echo.Context) error {
	link, err := phone.WhatsAppLink(h.catalog.Site().Business.WhatsApp, "")
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "No WhatsApp number is configured.")
	}
	return h.redirect(c, analytics.ChannelWhatsApp, link)
}

// redirect publishes one click event and redirects. A failed publish is
// logged; the visitor is redirected regardless.
func (h *OutboundHandler) redirect(c echo.Context, channel, link string) error {
	ctx := c.Request().Context()
	clientID := middleware.VisitorID(c)
	event := analytics.ContactClicked{
		Channel:  channel,
		Location: cleanLocation(c.QueryParam("location")),
		Page:     refererPath(c.Request()),
		ClientID: clientID,
	}
	if err := pubsub.Publish(ctx, h.publisher, analytics.TopicContactClicked, clientID, event); err != nil {
		middleware.FromContext(ctx).Error("Failed to publish contact click", "channel", channel, "error", err)
	}
	return c.Redirect(http.StatusFound, link)
}

// cleanLocation bounds the free-form location label taken from the URL.
func cleanLocation(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "unknown"
	}
	raw = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		}
		return -1
	}, raw)
	if len(raw) > maxLocationLen {
		raw = raw[:maxLocationLen]
	}
	if raw == "" {
		return "unknown"
	}
	return raw
}
