package domain

import "context"

// Analytics event names emitted by the site.
const (
	EventContactFormSubmitted = "contact_form_submitted"
	EventClickCall            = "click_call"
	EventClickWhatsApp        = "click_whatsapp"
)

// AnalyticsEvent is a fire-and-forget measurement. Location labels where on
// the site the interaction happened, e.g. "lead_form_success".
type AnalyticsEvent struct {
	Name     string
	Location string
	ClientID string
	Page     string
}

// AnalyticsSink receives analytics events. It replaces reaching for global
// trackers so that callers can be tested with a recorder.
type AnalyticsSink interface {
	Track(ctx context.Context, event AnalyticsEvent) error
}
