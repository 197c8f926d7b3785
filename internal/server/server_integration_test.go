package server_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/nfrund/ledgerline/internal/app"
	"github.com/nfrund/ledgerline/internal/config"
	"github.com/nfrund/ledgerline/internal/content"
	"github.com/nfrund/ledgerline/internal/domain"
	"github.com/nfrund/ledgerline/internal/pubsub"
	"github.com/nfrund/ledgerline/internal/registry"
	"github.com/nfrund/ledgerline/internal/rendering"
	"github.com/nfrund/ledgerline/internal/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRelay struct {
	mu    sync.Mutex
	leads []domain.Lead
}

func (r *fakeRelay) Relay(ctx context.Context, lead domain.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.leads = append(r.leads, lead)
	return nil
}

type fakeSink struct {
	mu     sync.Mutex
	events []domain.AnalyticsEvent
}

func (s *fakeSink) Track(ctx context.Context, e domain.AnalyticsEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return nil
}

func (s *fakeSink) names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []string
	for _, e := range s.events {
		out = append(out, e.Name)
	}
	return out
}

type fakeSender struct {
	mu   sync.Mutex
	sent []string
}

func (s *fakeSender) Send(ctx context.Context, to, subject, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, to)
	return nil
}

func (s *fakeSender) recipients() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.sent...)
}

type testApp struct {
	srv    *httptest.Server
	relay  *fakeRelay
	sink   *fakeSink
	sender *fakeSender
}

// setupIntegrationTest builds the full site the way cmd/server does, with
// fakes in place of Web3Forms, GA4 and the mail provider.
func setupIntegrationTest(t *testing.T) *testApp {
	t.Helper()

	env := map[string]string{
		"APP_ENV":        "test",
		"SITE_ORIGIN":    "https://example.com",
		"SESSION_SECRET": "a-very-secret-key-for-testing-!",
	}
	cfg := config.FromEnv(func(k string) string { return env[k] })
	reg := registry.New(cfg)

	fsys, err := content.Source("")
	require.NoError(t, err)
	catalog, err := content.NewCatalog(fsys)
	require.NoError(t, err)

	bus := pubsub.NewWatermillBridge(nil)

	s, err := server.New(server.Dependencies{
		Config:    cfg,
		Catalog:   catalog,
		Renderer:  rendering.NewUniversalRenderer(),
		Publisher: bus,
	})
	require.NoError(t, err)

	relay, sink, sender := &fakeRelay{}, &fakeSink{}, &fakeSender{}
	modules := app.NewModules(app.Dependencies{
		Publisher:  bus,
		Subscriber: bus,
		Relay:      relay,
		Sink:       sink,
		Sender:     sender,
	})

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, s.InitModules(ctx, modules, reg))
	s.RegisterRoutes()

	srv := httptest.NewServer(s.E)
	t.Cleanup(func() {
		srv.Close()
		cancel()
		shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		_ = s.Shutdown(shutdownCtx)
	})

	return &testApp{srv: srv, relay: relay, sink: sink, sender: sender}
}

func noRedirect(req *http.Request, via []*http.Request) error {
	return http.ErrUseLastResponse
}

func TestIntegration_PagesAndAssets(t *testing.T) {
	a := setupIntegrationTest(t)

	for _, path := range []string{"/", "/services", "/services/cis-returns", "/pricing", "/contact", "/privacy", "/static/css/site.css", "/health", "/sitemap.xml", "/robots.txt"} {
		resp, err := http.Get(a.srv.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}

	resp, err := http.Get(a.srv.URL + "/services/nope")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(body), "Page not found")
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
}

func TestIntegration_EnquiryFlow(t *testing.T) {
	a := setupIntegrationTest(t)
	client := &http.Client{CheckRedirect: noRedirect}

	form := url.Values{
		"widget_id":   {"6f1c2a52-0d0e-4c3e-9d7e-6a1b2c3d4e5f"},
		"name":        {"Jane Smith"},
		"email":       {"jane@example.com"},
		"message":     {"Please call me about CIS."},
		"consent":     {"true"},
		"source_page": {"/services/cis-returns"},
	}
	req, err := http.NewRequest(http.MethodPost, a.srv.URL+"/leads", strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")

	resp, err := client.Do(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `data-state="submitted"`)

	require.Eventually(t, func() bool {
		return len(a.sink.names()) == 1 && len(a.sender.recipients()) == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{domain.EventContactFormSubmitted}, a.sink.names())
	assert.Equal(t, []string{"jane@example.com"}, a.sender.recipients())

	resp, err = client.Get(a.srv.URL + "/go/call?location=lead_form_success")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "tel:+442079460321", resp.Header.Get("Location"))

	require.Eventually(t, func() bool { return len(a.sink.names()) == 2 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, domain.EventClickCall, a.sink.names()[1])
}
