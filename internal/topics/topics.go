// Package topics keeps the catalogue of event topics published on the
// in-process bus, so that every topic is named once and can be listed.
package topics

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"
)

// Topic describes one event topic.
type Topic struct {
	Name          string    `json:"name"`
	Module        string    `json:"module"`
	Description   string    `json:"description"`
	TypeName      string    `json:"type_name,omitempty"`
	PayloadFields []string  `json:"payload_fields,omitempty"`
	RegisteredAt  time.Time `json:"registered_at"`
}

// ErrorType classifies a TopicError.
type ErrorType string

const (
	ErrorInvalidName           ErrorType = "invalid_name"
	ErrorDuplicateRegistration ErrorType = "duplicate_registration"
)

// TopicError is returned when a topic cannot be registered.
type TopicError struct {
	Type    ErrorType
	Topic   string
	Message string
}

func (e *TopicError) Error() string {
	return fmt.Sprintf("topic %q: %s", e.Topic, e.Message)
}

var namePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*)+$`)

var reservedPrefixes = []string{"system.", "internal.", "debug."}

// ValidateName checks that a topic name is a dotted lowercase identifier
// whose first segment names the owning module, e.g. "leads.enquiry.submitted".
func ValidateName(name string) error {
	if name == "" {
		return &TopicError{Type: ErrorInvalidName, Topic: name, Message: "name cannot be empty"}
	}
	if len(name) > 100 {
		return &TopicError{Type: ErrorInvalidName, Topic: name, Message: "name too long (max 100 characters)"}
	}
	if !namePattern.MatchString(name) {
		return &TopicError{Type: ErrorInvalidName, Topic: name, Message: "name must follow pattern module.entity.action (lowercase, dots only)"}
	}
	for _, prefix := range reservedPrefixes {
		if strings.HasPrefix(name, prefix) {
			return &TopicError{Type: ErrorInvalidName, Topic: name, Message: "name cannot start with reserved prefix " + prefix}
		}
	}
	return nil
}

// ModuleOf returns the first segment of a topic name.
func ModuleOf(name string) string {
	module, _, _ := strings.Cut(name, ".")
	return module
}

// Registry holds registered topics. It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	topics map[string]Topic
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{topics: make(map[string]Topic)}
}

// Register validates and adds a topic. The module defaults to the first
// segment of the name.
func (r *Registry) Register(t Topic) error {
	if err := ValidateName(t.Name); err != nil {
		return err
	}
	if t.Module == "" {
		t.Module = ModuleOf(t.Name)
	}
	if t.RegisteredAt.IsZero() {
		t.RegisteredAt = time.Now()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.topics[t.Name]; exists {
		return &TopicError{Type: ErrorDuplicateRegistration, Topic: t.Name, Message: "already registered"}
	}
	r.topics[t.Name] = t
	return nil
}

// MustRegister registers a topic and panics on error. Topics are declared
// at package level, so a failure is a programming error.
func (r *Registry) MustRegister(t Topic) {
	if err := r.Register(t); err != nil {
		panic(err)
	}
}

// Get returns the topic with the given name.
func (r *Registry) Get(name string) (Topic, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.topics[name]
	return t, ok
}

// List returns every topic sorted by name.
func (r *Registry) List() []Topic {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Topic, 0, len(r.topics))
	for _, t := range r.topics {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ListByModule returns the topics owned by module, sorted by name.
func (r *Registry) ListByModule(module string) []Topic {
	var out []Topic
	for _, t := range r.List() {
		if t.Module == module {
			out = append(out, t)
		}
	}
	return out
}

// Modules returns the distinct owning modules, sorted.
func (r *Registry) Modules() []string {
	seen := map[string]bool{}
	var out []string
	for _, t := range r.List() {
		if !seen[t.Module] {
			seen[t.Module] = true
			out = append(out, t.Module)
		}
	}
	return out
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry that typed events register into.
func Default() *Registry {
	return defaultRegistry
}
