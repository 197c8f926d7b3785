package domain

import "context"

// Lead is a single enquiry as it leaves the site. It is transient: the
// system of record is the external form processor, nothing is stored here.
type Lead struct {
	WidgetID   string
	Name       string
	Email      string
	Message    string
	Consent    bool
	Botcheck   string
	SourcePage string
}

// LeadRelay forwards a lead to the external form-processing service.
// Implementations return ErrRelayRejected when the service answered but
// refused the submission, and ErrRelayUnavailable for transport failures.
type LeadRelay interface {
	Relay(ctx context.Context, lead Lead) error
}
