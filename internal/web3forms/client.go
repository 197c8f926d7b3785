// Package web3forms relays lead submissions to the Web3Forms form-processing
// API. Web3Forms is the system of record for enquiries; nothing is stored
// locally.
package web3forms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/nfrund/ledgerline/internal/domain"
)

// DefaultEndpoint is the public Web3Forms submission URL.
const DefaultEndpoint = "https://api.web3forms.com/submit"

// Config configures a Client.
type Config struct {
	Endpoint  string
	AccessKey string
	// Recipient overrides the inbox configured for the access key.
	Recipient string
	FromName  string
	Subject   string
}

// Client posts leads to Web3Forms. It implements domain.LeadRelay.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// New creates a Client. A nil httpClient uses a client with a 30 second
// timeout; callers bound individual relays with their context.
func New(cfg Config, httpClient *http.Client) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{cfg: cfg, httpClient: httpClient}
}

type response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Form builds the url-encoded body sent for a lead.
func (c *Client) Form(lead domain.Lead) url.Values {
	form := url.Values{}
	form.Set("access_key", c.cfg.AccessKey)
	form.Set("from_name", c.cfg.FromName)
	form.Set("subject", c.cfg.Subject)
	if c.cfg.Recipient != "" {
		form.Set("to", c.cfg.Recipient)
	}
	form.Set("source_page", lead.SourcePage)
	form.Set("name", lead.Name)
	form.Set("email", lead.Email)
	form.Set("message", lead.Message)
	form.Set("consent", strconv.FormatBool(lead.Consent))
	form.Set("botcheck", lead.Botcheck)
	return form
}

// Relay submits the lead. It returns an error wrapping
// domain.ErrRelayRejected when Web3Forms refuses the submission and
// domain.ErrRelayUnavailable when it cannot be reached in time.
func (c *Client) Relay(ctx context.Context, lead domain.Lead) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, strings.NewReader(c.Form(lead).Encode()))
	if err != nil {
		return fmt.Errorf("failed to create web3forms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.WrapError(domain.KindUpstream, "web3forms is unavailable",
			fmt.Errorf("%w: %w", domain.ErrRelayUnavailable, err)).WithOp("web3forms.Relay")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return domain.WrapError(domain.KindUpstream, "failed to read web3forms response",
			fmt.Errorf("%w: %w", domain.ErrRelayUnavailable, err)).WithOp("web3forms.Relay")
	}

	var out response
	decodeErr := json.Unmarshal(body, &out)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || decodeErr != nil || !out.Success {
		msg := out.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		slog.Warn("Web3Forms rejected submission",
			"widget_id", lead.WidgetID,
			"status", resp.StatusCode,
			"message", msg,
			"decode_error", errString(decodeErr),
		)
		return domain.WrapError(domain.KindUpstream, "web3forms rejected the submission",
			fmt.Errorf("%w: status %d: %s", domain.ErrRelayRejected, resp.StatusCode, msg)).WithOp("web3forms.Relay")
	}

	slog.Info("Lead relayed to Web3Forms", "widget_id", lead.WidgetID, "source_page", lead.SourcePage)
	return nil
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
