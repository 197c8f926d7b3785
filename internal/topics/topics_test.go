package topics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	valid := []string{"leads.enquiry.submitted", "analytics.click", "content.page_reloaded"}
	for _, name := range valid {
		assert.NoError(t, ValidateName(name), name)
	}

	invalid := []string{"", "leads", "Leads.Submitted", "leads..submitted", "leads.submitted.", "system.boot", "leads-enquiry.sent"}
	for _, name := range invalid {
		err := ValidateName(name)
		var topicErr *TopicError
		require.True(t, errors.As(err, &topicErr), name)
		assert.Equal(t, ErrorInvalidName, topicErr.Type)
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Register(Topic{Name: "leads.enquiry.submitted", Description: "An enquiry reached Web3Forms"}))
	require.NoError(t, r.Register(Topic{Name: "analytics.contact.clicked"}))
	require.NoError(t, r.Register(Topic{Name: "leads.enquiry.failed", Module: "leads"}))

	t.Run("module defaults to first segment", func(t *testing.T) {
		got, ok := r.Get("leads.enquiry.submitted")
		require.True(t, ok)
		assert.Equal(t, "leads", got.Module)
		assert.False(t, got.RegisteredAt.IsZero())
	})

	t.Run("duplicates are rejected", func(t *testing.T) {
		err := r.Register(Topic{Name: "leads.enquiry.submitted"})
		var topicErr *TopicError
		require.True(t, errors.As(err, &topicErr))
		assert.Equal(t, ErrorDuplicateRegistration, topicErr.Type)
		assert.Panics(t, func() { r.MustRegister(Topic{Name: "leads.enquiry.submitted"}) })
	})

	t.Run("listing is sorted", func(t *testing.T) {
		list := r.List()
		require.Len(t, list, 3)
		assert.Equal(t, "analytics.contact.clicked", list[0].Name)
		assert.Equal(t, "leads.enquiry.failed", list[1].Name)
		assert.Equal(t, "leads.enquiry.submitted", list[2].Name)
		assert.Len(t, r.ListByModule("leads"), 2)
		assert.Equal(t, []string{"analytics", "leads"}, r.Modules())
	})
}
