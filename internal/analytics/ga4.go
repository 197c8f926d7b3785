package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/nfrund/ledgerline/internal/domain"
	"github.com/sethvargo/go-retry"
)

// DefaultGA4Endpoint is the GA4 Measurement Protocol collection URL.
const DefaultGA4Endpoint = "https://www.google-analytics.com/mp/collect"

// GA4Config configures a GA4Sink.
type GA4Config struct {
	Endpoint      string
	MeasurementID string
	APISecret     string
	// Retries is the number of extra attempts after a 5xx or transport error.
	Retries uint64
}

// GA4Sink sends events server side through the GA4 Measurement Protocol.
type GA4Sink struct {
	cfg        GA4Config
	httpClient *http.Client
	backoff    time.Duration
}

// NewGA4Sink creates a GA4Sink. A nil httpClient uses a client with a five
// second timeout.
func NewGA4Sink(cfg GA4Config, httpClient *http.Client) *GA4Sink {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultGA4Endpoint
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	return &GA4Sink{cfg: cfg, httpClient: httpClient, backoff: 200 * time.Millisecond}
}

type ga4Payload struct {
	ClientID string     `json:"client_id"`
	Events   []ga4Event `json:"events"`
}

type ga4Event struct {
	Name   string            `json:"name"`
	Params map[string]string `json:"params,omitempty"`
}

func (s *GA4Sink) collectURL() string {
	q := url.Values{}
	q.Set("measurement_id", s.cfg.MeasurementID)
	q.Set("api_secret", s.cfg.APISecret)
	return s.cfg.Endpoint + "?" + q.Encode()
}

// Track implements Sink.
func (s *GA4Sink) Track(ctx context.Context, event domain.AnalyticsEvent) error {
	params := map[string]string{}
	if event.Location != "" {
		params["location"] = event.Location
	}
	if event.Page != "" {
		params["page_location"] = event.Page
	}

	clientID := event.ClientID
	if clientID == "" {
		clientID = "anonymous"
	}

	body, err := json.Marshal(ga4Payload{
		ClientID: clientID,
		Events:   []ga4Event{{Name: event.Name, Params: params}},
	})
	if err != nil {
		return fmt.Errorf("marshal ga4 event: %w", err)
	}

	backoff := retry.WithMaxRetries(s.cfg.Retries, retry.NewExponential(s.backoff))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.collectURL(), bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("create ga4 request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.httpClient.Do(req)
		if err != nil {
			return retry.RetryableError(fmt.Errorf("send ga4 event: %w", err))
		}
		defer resp.Body.Close()
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))

		switch {
		case resp.StatusCode >= 500:
			return retry.RetryableError(fmt.Errorf("ga4 returned status %d", resp.StatusCode))
		case resp.StatusCode >= 300:
			return fmt.Errorf("ga4 returned status %d", resp.StatusCode)
		}
		return nil
	})
}
