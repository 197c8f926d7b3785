// Package analytics delivers measurement events (form submissions, call and
// WhatsApp clicks) to the configured sinks.
package analytics

import (
	"context"
	"errors"
	"log/slog"

	"github.com/nfrund/ledgerline/internal/domain"
)

// Sink receives analytics events.
type Sink = domain.AnalyticsSink

// LogSink writes every event to the structured log.
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink creates a LogSink. A nil logger uses slog.Default().
func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{logger: logger}
}

// Track logs the event.
func (s *LogSink) Track(ctx context.Context, event domain.AnalyticsEvent) error {
	s.logger.InfoContext(ctx, "Analytics event",
		"event", event.Name,
		"location", event.Location,
		"page", event.Page,
		"client_id", event.ClientID,
	)
	return nil
}

// Multi fans an event out to several sinks. Every sink is called even when
// an earlier one fails.
type Multi []Sink

// Track implements Sink.
func (m Multi) Track(ctx context.Context, event domain.AnalyticsEvent) error {
	var errs []error
	for _, s := range m {
		if err := s.Track(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
