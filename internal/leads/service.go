package leads

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/nfrund/ledgerline/internal/domain"
	"github.com/nfrund/ledgerline/internal/pubsub"
)

// User-facing messages for a Failed widget.
const (
	FailureRejected = "Sorry, we couldn't send your enquiry. Please try again, or call or WhatsApp us instead."
	FailureTimeout  = "Our form service took too long to respond. Please try again, or call or WhatsApp us instead."
)

// DefaultSubmitTimeout bounds a relay when the service is given no timeout.
const DefaultSubmitTimeout = 10 * time.Second

// Service runs submissions through validation, the relay and the widget
// state machine.
type Service struct {
	registry  *Registry
	validate  *validator.Validate
	relay     domain.LeadRelay
	publisher pubsub.Publisher
	timeout   time.Duration
	logger    *slog.Logger
	now       func() time.Time
}

// Dependencies holds what a Service needs.
type Dependencies struct {
	Registry  *Registry
	Relay     domain.LeadRelay
	Publisher pubsub.Publisher
	Timeout   time.Duration
	Logger    *slog.Logger
}

// NewService creates a Service.
func NewService(deps Dependencies) *Service {
	if deps.Timeout <= 0 {
		deps.Timeout = DefaultSubmitTimeout
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &Service{
		registry:  deps.Registry,
		validate:  NewValidator(),
		relay:     deps.Relay,
		publisher: deps.Publisher,
		timeout:   deps.Timeout,
		logger:    deps.Logger,
		now:       time.Now,
	}
}

// Registry returns the widget registry the service updates.
func (s *Service) Registry() *Registry {
	return s.registry
}

// Submit handles one submission of a widget on behalf of the visitor
// identified by clientID. The returned widget is what should be rendered.
//
// A widget that already reached Submitted is returned as is: the relay is
// not called again and no event is published. Invalid input leaves the
// widget in Editing without calling the relay.
func (s *Service) Submit(ctx context.Context, clientID string, form Form) Widget {
	form.Normalize()
	if _, err := uuid.Parse(form.WidgetID); err != nil {
		form.WidgetID = uuid.NewString()
	}
	id := form.WidgetID
	logger := s.logger.With("widget_id", id)

	if w, ok := s.registry.Snapshot(id); ok && w.State == StateSubmitted {
		logger.Debug("Ignoring submission for completed widget")
		return w
	}

	if errs := Validate(s.validate, form); len(errs) > 0 {
		logger.Debug("Lead form rejected", "fields", len(errs))
		return s.registry.Reject(id, form, errs)
	}

	w, ok := s.registry.Begin(id, form)
	if !ok {
		logger.Debug("Submission already in progress or complete", "state", w.State.String())
		return w
	}

	relayCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	err := s.relay.Relay(relayCtx, form.Lead())

	outcome := Outcome{Err: err}
	timedOut := err != nil && (errors.Is(err, context.DeadlineExceeded) || errors.Is(relayCtx.Err(), context.DeadlineExceeded))
	if err != nil {
		outcome.Failure = FailureRejected
		if timedOut {
			outcome.Failure = FailureTimeout
		}
	}

	w, submitted := s.registry.Complete(id, outcome)
	if err != nil {
		logger.Error("Lead relay failed", "error", err, "timeout", timedOut, "source_page", form.SourcePage)
		s.publishFailed(ctx, clientID, form, err, timedOut)
		return w
	}

	if submitted {
		logger.Info("Lead submitted", "source_page", form.SourcePage, "location", form.Location)
		if err := pubsub.Publish(ctx, s.publisher, TopicEnquirySubmitted, clientID, EnquirySubmitted{
			WidgetID:    id,
			ClientID:    clientID,
			Name:        form.Name,
			Email:       form.Email,
			SourcePage:  form.SourcePage,
			Location:    form.Location,
			SubmittedAt: s.now().UTC(),
		}); err != nil {
			logger.Error("Failed to publish enquiry event", "error", err)
		}
	}
	return w
}

func (s *Service) publishFailed(ctx context.Context, clientID string, form Form, err error, timedOut bool) {
	if pubErr := pubsub.Publish(ctx, s.publisher, TopicEnquiryFailed, clientID, EnquiryFailed{
		WidgetID:   form.WidgetID,
		SourcePage: form.SourcePage,
		Reason:     err.Error(),
		Timeout:    timedOut,
	}); pubErr != nil {
		s.logger.Error("Failed to publish enquiry failure event", "widget_id", form.WidgetID, "error", pubErr)
	}
}
