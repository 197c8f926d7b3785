package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nfrund/ledgerline/internal/domain"
	"github.com/nfrund/ledgerline/internal/leads"
	"github.com/nfrund/ledgerline/internal/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu     sync.Mutex
	events []domain.AnalyticsEvent
	got    chan domain.AnalyticsEvent
	err    error
}

func newRecorder() *recorder {
	return &recorder{got: make(chan domain.AnalyticsEvent, 8)}
}

func (r *recorder) Track(ctx context.Context, event domain.AnalyticsEvent) error {
	r.mu.Lock()
	r.events = append(r.events, event)
	r.mu.Unlock()
	r.got <- event
	return r.err
}

func (r *recorder) next(t *testing.T) domain.AnalyticsEvent {
	t.Helper()
	select {
	case e := <-r.got:
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("no analytics event delivered")
		return domain.AnalyticsEvent{}
	}
}

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewLogSink(slog.New(slog.NewTextHandler(&buf, nil)))

	require.NoError(t, sink.Track(context.Background(), domain.AnalyticsEvent{
		Name:     domain.EventClickCall,
		Location: "thank_you",
	}))
	assert.Contains(t, buf.String(), "event=click_call")
	assert.Contains(t, buf.String(), "location=thank_you")
}

func TestMulti_CallsEverySink(t *testing.T) {
	failing := newRecorder()
	failing.err = errors.New("down")
	ok := newRecorder()

	err := Multi{failing, ok}.Track(context.Background(), domain.AnalyticsEvent{Name: "x"})
	assert.Error(t, err)
	assert.Len(t, ok.events, 1)
}

func TestGA4Sink_Track(t *testing.T) {
	var body map[string]any
	var query string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	sink := NewGA4Sink(GA4Config{Endpoint: srv.URL, MeasurementID: "G-TEST", APISecret: "s3cret"}, srv.Client())
	require.NoError(t, sink.Track(context.Background(), domain.AnalyticsEvent{
		Name:     domain.EventContactFormSubmitted,
		Location: "home_hero",
		ClientID: "visitor-1",
		Page:     "/",
	}))

	assert.Contains(t, query, "measurement_id=G-TEST")
	assert.Contains(t, query, "api_secret=s3cret")
	assert.Equal(t, "visitor-1", body["client_id"])
	events := body["events"].([]any)
	require.Len(t, events, 1)
	event := events[0].(map[string]any)
	assert.Equal(t, "contact_form_submitted", event["name"])
	assert.Equal(t, "home_hero", event["params"].(map[string]any)["location"])
}

func TestGA4Sink_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	sink := NewGA4Sink(GA4Config{Endpoint: srv.URL, Retries: 2}, srv.Client())
	sink.backoff = time.Millisecond

	require.NoError(t, sink.Track(context.Background(), domain.AnalyticsEvent{Name: "click_call"}))
	assert.Equal(t, int32(2), calls.Load())
}

func TestGA4Sink_ClientErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	sink := NewGA4Sink(GA4Config{Endpoint: srv.URL, Retries: 3}, srv.Client())
	sink.backoff = time.Millisecond

	assert.Error(t, sink.Track(context.Background(), domain.AnalyticsEvent{Name: "click_call"}))
	assert.Equal(t, int32(1), calls.Load())
}

func TestSubscriber_TracksEnquiriesAndClicks(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := pubsub.NewWatermillBridge(nil)
	defer bus.Close()

	rec := newRecorder()
	require.NoError(t, NewSubscriber(bus, rec, nil).Start(ctx))

	require.NoError(t, pubsub.Publish(ctx, bus, leads.TopicEnquirySubmitted, "visitor-1", leads.EnquirySubmitted{
		WidgetID:   "w-1",
		ClientID:   "visitor-1",
		SourcePage: "/contact",
		Location:   "contact_page",
	}))
	e := rec.next(t)
	assert.Equal(t, domain.EventContactFormSubmitted, e.Name)
	assert.Equal(t, "contact_page", e.Location)
	assert.Equal(t, "visitor-1", e.ClientID)

	require.NoError(t, pubsub.Publish(ctx, bus, TopicContactClicked, "visitor-1", ContactClicked{
		Channel:  ChannelWhatsApp,
		Location: "thank_you",
	}))
	e = rec.next(t)
	assert.Equal(t, domain.EventClickWhatsApp, e.Name)
	assert.Equal(t, "thank_you", e.Location)
}

func TestEventName(t *testing.T) {
	name, ok := EventName(ChannelCall)
	assert.True(t, ok)
	assert.Equal(t, "click_call", name)

	_, ok = EventName("fax")
	assert.False(t, ok)
}
