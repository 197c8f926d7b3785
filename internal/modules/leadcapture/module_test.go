package leadcapture_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/ledgerline/internal/config"
	"github.com/nfrund/ledgerline/internal/content"
	"github.com/nfrund/ledgerline/internal/domain"
	"github.com/nfrund/ledgerline/internal/handlers"
	"github.com/nfrund/ledgerline/internal/modules/leadcapture"
	"github.com/nfrund/ledgerline/internal/pubsub"
	"github.com/nfrund/ledgerline/internal/registry"
	"github.com/nfrund/ledgerline/internal/rendering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRelay struct {
	mu    sync.Mutex
	count int
}

func (r *countingRelay) Relay(ctx context.Context, lead domain.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.count++
	return nil
}

func newRegistry(t *testing.T, env map[string]string) *registry.Registry {
	t.Helper()
	reg := registry.New(config.FromEnv(func(k string) string { return env[k] }))

	fsys, err := content.Source("")
	require.NoError(t, err)
	catalog, err := content.NewCatalog(fsys)
	require.NoError(t, err)

	registry.Set(reg, registry.CatalogKey, catalog)
	registry.Set(reg, registry.PageHandlerKey, handlers.NewPageHandler(catalog, rendering.NewUniversalRenderer(), handlers.SiteSettings{
		Origin: "https://example.com",
	}))
	return reg
}

func TestLeadCaptureModule(t *testing.T) {
	reg := newRegistry(t, map[string]string{"RATE_LIMIT_PER_MINUTE": "2"})
	bus := pubsub.NewWatermillBridge(nil)
	defer bus.Close()

	relay := &countingRelay{}
	m := leadcapture.New(leadcapture.Dependencies{Publisher: bus, Relay: relay})
	assert.Equal(t, "leadcapture", m.Name())

	require.NoError(t, m.Register(reg))
	svc, ok := registry.Get(reg, registry.LeadServiceKey)
	require.True(t, ok)
	require.NotNil(t, svc)

	e := echo.New()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte("a-very-secret-key-for-testing-!"))))
	require.NoError(t, m.Boot(context.Background(), e.Group(""), reg))

	post := func() int {
		form := url.Values{
			"name":        {"Jane"},
			"email":       {"jane@example.com"},
			"message":     {"Hello"},
			"consent":     {"true"},
			"source_page": {"contact"},
		}
		req := httptest.NewRequest(http.MethodPost, "/leads", strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		req.Header.Set("HX-Request", "true")
		req.RemoteAddr = "192.0.2.10:1234"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, post())
	assert.Equal(t, http.StatusOK, post())
	assert.Equal(t, http.StatusTooManyRequests, post(), "the rate limiter guards the route")
	assert.Equal(t, 2, relay.count)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, m.Shutdown(ctx))
}

func TestLeadCaptureModule_ShutdownBeforeBoot(t *testing.T) {
	m := leadcapture.New(leadcapture.Dependencies{})
	assert.NoError(t, m.Shutdown(context.Background()))
}

func TestLeadCaptureModule_RecipientDefaultsToBusinessEmail(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"business email from site content", map[string]string{}, "hello@ledgerline.co.uk"},
		{"LEAD_RECIPIENT wins", map[string]string{"LEAD_RECIPIENT": "leads@example.com"}, "leads@example.com"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var (
				mu sync.Mutex
				to []string
			)
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.NoError(t, r.ParseForm())
				mu.Lock()
				to = append(to, r.PostForm.Get("to"))
				mu.Unlock()
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"success":true,"message":"ok"}`))
			}))
			defer srv.Close()

			env := map[string]string{"WEB3FORMS_ENDPOINT": srv.URL, "WEB3FORMS_ACCESS_KEY": "key"}
			for k, v := range tc.env {
				env[k] = v
			}
			reg := newRegistry(t, env)
			bus := pubsub.NewWatermillBridge(nil)
			defer bus.Close()

			m := leadcapture.New(leadcapture.Dependencies{Publisher: bus})
			require.NoError(t, m.Register(reg))

			e := echo.New()
			e.Use(session.Middleware(sessions.NewCookieStore([]byte("a-very-secret-key-for-testing-!"))))
			require.NoError(t, m.Boot(context.Background(), e.Group(""), reg))
			defer m.Shutdown(context.Background())

			form := url.Values{
				"name":        {"Jane"},
				"email":       {"jane@example.com"},
				"message":     {"Hello"},
				"consent":     {"true"},
				"source_page": {"contact"},
			}
			req := httptest.NewRequest(http.MethodPost, "/leads", strings.NewReader(form.Encode()))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
			req.Header.Set("HX-Request", "true")
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			mu.Lock()
			defer mu.Unlock()
			assert.Equal(t, []string{tc.want}, to)
		})
	}
}
