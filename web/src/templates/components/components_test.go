package components

import (
	"bytes"
	"testing"

	"github.com/nfrund/ledgerline/internal/content"
	"github.com/nfrund/ledgerline/internal/domain"
	"github.com/nfrund/ledgerline/internal/leads"
	"github.com/nfrund/ledgerline/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	if n == nil {
		return ""
	}
	var buf bytes.Buffer
	require.NoError(t, n.Render(&buf))
	return buf.String()
}

const widgetID = "6f1c2a52-0d0e-4c3e-9d7e-6a1b2c3d4e5f"

func widgetProps(w leads.Widget) LeadWidgetProps {
	return LeadWidgetProps{
		Widget:    w,
		Heading:   "Send us an enquiry",
		Source:    "contact",
		Location:  "contact_page",
		Telephone: "020 7946 0321",
		WhatsApp:  "07700 900123",
	}
}

func TestLeadWidget_Editing(t *testing.T) {
	html := render(t, LeadWidget(widgetProps(leads.Widget{ID: widgetID})))

	assert.Contains(t, html, `id="lead-widget-`+widgetID+`"`)
	assert.Contains(t, html, `class="lead-form"`)
	assert.Contains(t, html, `hx-post="/leads"`)
	assert.Contains(t, html, `hx-target="#lead-widget-`+widgetID+`"`)
	assert.Contains(t, html, `action="/leads"`)
	assert.Contains(t, html, `name="widget_id" value="`+widgetID+`"`)
	assert.Contains(t, html, `name="source_page" value="contact"`)
	assert.Contains(t, html, `name="location" value="contact_page"`)
	assert.Contains(t, html, `type="email" name="email"`)
	assert.Contains(t, html, `name="consent" value="true" required`)
	assert.Contains(t, html, `name="botcheck"`)
	assert.Contains(t, html, `data-state="editing"`)
	assert.NotContains(t, html, "Try again")
}

func TestLeadWidget_FieldErrorsAndValues(t *testing.T) {
	html := render(t, LeadWidget(widgetProps(leads.Widget{
		ID:     widgetID,
		State:  leads.StateEditing,
		Form:   leads.Form{Name: "Jane <Smith>", Message: "Hello", Consent: true, SourcePage: "/services/payroll"},
		Errors: leads.FieldErrors{"email": "Please enter a valid email address."},
	})))

	assert.Contains(t, html, `value="Jane &lt;Smith&gt;"`)
	assert.Contains(t, html, "Please enter a valid email address.")
	assert.Contains(t, html, `aria-invalid="true"`)
	assert.Contains(t, html, `name="source_page" value="/services/payroll"`, "submitted source wins over the default")
	assert.Contains(t, html, "checked")
}

func TestLeadWidget_Failed(t *testing.T) {
	html := render(t, LeadWidget(widgetProps(leads.Widget{
		ID:      widgetID,
		State:   leads.StateFailed,
		Failure: leads.FailureTimeout,
		Form:    leads.Form{Name: "Jane"},
	})))

	assert.Contains(t, html, `role="alert"`)
	assert.Contains(t, html, "took too long")
	assert.Contains(t, html, "Try again")
	assert.Contains(t, html, `value="Jane"`)
	assert.Contains(t, html, `data-state="failed"`)
}

func TestLeadWidget_Submitted(t *testing.T) {
	html := render(t, LeadWidget(widgetProps(leads.Widget{ID: widgetID, State: leads.StateSubmitted})))

	assert.Contains(t, html, "Thank you")
	assert.Contains(t, html, `href="/go/call?location=lead_form_success"`)
	assert.Contains(t, html, `href="/go/whatsapp?location=lead_form_success"`)
	assert.Contains(t, html, "020 7946 0321")
	assert.NotContains(t, html, "<form")
}

func TestFAQList(t *testing.T) {
	faqs := []domain.FAQ{{Question: "Q1", Answer: "A1"}, {Question: "Q2", Answer: "A2"}}

	html := render(t, FAQList("FAQs", faqs, []string{"<p><strong>A1</strong></p>"}))
	assert.Contains(t, html, "<summary>Q1</summary>")
	assert.Contains(t, html, "<strong>A1</strong>")
	assert.Contains(t, html, "<p>A2</p>")
	assert.Less(t, bytes.Index([]byte(html), []byte("Q1")), bytes.Index([]byte(html), []byte("Q2")))

	assert.Nil(t, FAQList("FAQs", nil, nil))
}

func TestBreadcrumbs(t *testing.T) {
	html := render(t, Breadcrumbs([]domain.Crumb{
		{Label: "Home", Href: "/"},
		{Label: "Services", Href: "/services"},
		{Label: "Payroll", Href: "/services/payroll"},
	}))
	assert.Contains(t, html, `<a href="/services">Services</a>`)
	assert.Contains(t, html, `<li aria-current="page">Payroll</li>`)

	assert.Nil(t, Breadcrumbs([]domain.Crumb{{Label: "Home", Href: "/"}}))
}

func TestPricingTable(t *testing.T) {
	html := render(t, PricingTable([]content.PricingPlan{
		{Name: "Sole trader", PricePence: 19500, Period: "per return", Features: []string{"Filing"}},
		{Name: "Landlord", PricePence: 125000, Highlighted: true},
	}))
	assert.Contains(t, html, "£195")
	assert.Contains(t, html, "£1,250")
	assert.Contains(t, html, "plan--highlighted")
	assert.Contains(t, html, "<li>Filing</li>")
}

func TestFlashBanner(t *testing.T) {
	assert.Nil(t, FlashBanner(view.FlashData{}))
	html := render(t, FlashBanner(view.FlashData{Success: []string{"Sent"}}))
	assert.Contains(t, html, "Sent")
}

func TestHrefs(t *testing.T) {
	assert.Equal(t, "/go/call?location=home+hero", CallHref("home hero"))
	assert.Equal(t, "/go/whatsapp?location=header", WhatsAppHref("header"))
}
