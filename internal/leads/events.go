package leads

import (
	"time"

	"github.com/nfrund/ledgerline/internal/pubsub"
)

// EnquirySubmitted is published once per widget when the form processor
// accepts an enquiry.
type EnquirySubmitted struct {
	WidgetID    string    `json:"widget_id"`
	ClientID    string    `json:"client_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	SourcePage  string    `json:"source_page"`
	Location    string    `json:"location"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// EnquiryFailed is published when a relay attempt fails.
type EnquiryFailed struct {
	WidgetID   string `json:"widget_id"`
	SourcePage string `json:"source_page"`
	Reason     string `json:"reason"`
	Timeout    bool   `json:"timeout"`
}

var (
	TopicEnquirySubmitted = pubsub.NewEvent[EnquirySubmitted](
		"leads.enquiry.submitted",
		"An enquiry was accepted by the form processor",
	)
	TopicEnquiryFailed = pubsub.NewEvent[EnquiryFailed](
		"leads.enquiry.failed",
		"An enquiry could not be relayed to the form processor",
	)
)
