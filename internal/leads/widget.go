package leads

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// State is the position of a widget in the submission state machine.
type State int

const (
	StateEditing State = iota
	StateSubmitting
	StateSubmitted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	case StateSubmitted:
		return "submitted"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Widget is a snapshot of one rendered lead form.
type Widget struct {
	ID      string
	State   State
	Form    Form
	Errors  FieldErrors
	Failure string
	Updated time.Time
}

// NewWidget returns a fresh widget in Editing with a new ID.
func NewWidget() Widget {
	return Widget{ID: uuid.NewString(), State: StateEditing}
}

// Outcome is the result of relaying a widget's submission. A nil Err means
// the form processor accepted it.
type Outcome struct {
	Err     error
	Failure string
}

// Registry tracks widget state by widget ID. Entries are created on first
// submission and expire after the TTL; an unknown ID is a new widget.
type Registry struct {
	mu      sync.Mutex
	widgets map[string]*Widget
	ttl     time.Duration
	now     func() time.Time
}

// NewRegistry creates a Registry whose idle entries expire after ttl.
func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		widgets: make(map[string]*Widget),
		ttl:     ttl,
		now:     time.Now,
	}
}

// lookup returns the live entry for id, dropping it if it has expired.
// Callers hold r.mu.
func (r *Registry) lookup(id string) *Widget {
	w, ok := r.widgets[id]
	if !ok {
		return nil
	}
	if w.State != StateSubmitting && r.now().Sub(w.Updated) > r.ttl {
		delete(r.widgets, id)
		return nil
	}
	return w
}

func (r *Registry) entry(id string) *Widget {
	if w := r.lookup(id); w != nil {
		return w
	}
	w := &Widget{ID: id, State: StateEditing}
	r.widgets[id] = w
	return w
}

func snapshot(w *Widget) Widget {
	out := *w
	if w.Errors != nil {
		out.Errors = make(FieldErrors, len(w.Errors))
		for k, v := range w.Errors {
			out.Errors[k] = v
		}
	}
	return out
}

// Snapshot returns the current state of a widget.
func (r *Registry) Snapshot(id string) (Widget, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	w := r.lookup(id)
	if w == nil {
		return Widget{}, false
	}
	return snapshot(w), true
}

// Reject records an invalid submission. The widget returns to Editing with
// the given field errors unless it is already submitting or submitted.
func (r *Registry) Reject(id string, form Form, errs FieldErrors) Widget {
	r.mu.Lock()
	defer r.mu.Unlock()

	w := r.entry(id)
	if w.State == StateSubmitting || w.State == StateSubmitted {
		return snapshot(w)
	}
	w.State = StateEditing
	w.Form = form
	w.Errors = errs
	w.Failure = ""
	w.Updated = r.now()
	return snapshot(w)
}

// Begin moves a widget from Editing or Failed into Submitting. It reports
// false, leaving the widget unchanged, when a submission is already in
// flight or has succeeded.
func (r *Registry) Begin(id string, form Form) (Widget, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	w := r.entry(id)
	if w.State == StateSubmitting || w.State == StateSubmitted {
		return snapshot(w), false
	}
	w.State = StateSubmitting
	w.Form = form
	w.Errors = nil
	w.Failure = ""
	w.Updated = r.now()
	return snapshot(w), true
}

// Complete records the outcome of the submission in flight for id. Only
// the widget with that ID changes state. It reports whether the widget
// transitioned to Submitted.
func (r *Registry) Complete(id string, outcome Outcome) (Widget, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	w := r.lookup(id)
	if w == nil {
		return Widget{ID: id, State: StateEditing}, false
	}
	if w.State != StateSubmitting {
		return snapshot(w), false
	}

	w.Updated = r.now()
	if outcome.Err != nil {
		w.State = StateFailed
		w.Failure = outcome.Failure
		return snapshot(w), false
	}
	w.State = StateSubmitted
	w.Failure = ""
	return snapshot(w), true
}

// Len returns the number of tracked widgets.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.widgets)
}

// Sweep removes expired widgets and returns how many were removed.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	now := r.now()
	for id, w := range r.widgets {
		if w.State != StateSubmitting && now.Sub(w.Updated) > r.ttl {
			delete(r.widgets, id)
			removed++
		}
	}
	return removed
}

// Run sweeps expired widgets every interval until ctx is cancelled.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				slog.Debug("Swept expired lead widgets", "count", n)
			}
		}
	}
}
