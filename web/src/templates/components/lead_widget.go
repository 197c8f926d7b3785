package components

import (
	"github.com/nfrund/ledgerline/internal/leads"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// LocationLeadSuccess labels the contact actions on the thank-you panel.
const LocationLeadSuccess = "lead_form_success"

// LeadWidgetProps configures one rendered lead widget.
type LeadWidgetProps struct {
	Widget  leads.Widget
	Heading string
	// Source is the source_page value forwarded with the enquiry.
	Source string
	// Location labels the widget in analytics, e.g. "home" or "contact_page".
	Location  string
	Telephone string
	WhatsApp  string
}

// WidgetDOMID returns the DOM id of a widget's outer element.
func WidgetDOMID(id string) string {
	return "lead-widget-" + id
}

// LeadWidget renders the lead form in its current state.
func LeadWidget(p LeadWidgetProps) g.Node {
	if p.Widget.State == leads.StateSubmitted {
		return thankYou(p)
	}
	return leadForm(p)
}

func thankYou(p LeadWidgetProps) g.Node {
	return h.Div(h.ID(WidgetDOMID(p.Widget.ID)), h.Class("lead-widget lead-widget--submitted"),
		h.Data("state", p.Widget.State.String()), h.Role("status"),
		h.H2(g.Text("Thank you, we've received your enquiry")),
		h.P(g.Text("One of our accountants will reply within one working day. If it can't wait, get in touch now:")),
		ContactActions(p.Telephone, p.WhatsApp, LocationLeadSuccess),
	)
}

func leadForm(p LeadWidgetProps) g.Node {
	w := p.Widget
	domID := WidgetDOMID(w.ID)
	source := w.Form.SourcePage
	if source == "" {
		source = p.Source
	}
	location := w.Form.Location
	if location == "" {
		location = p.Location
	}
	heading := p.Heading
	if heading == "" {
		heading = "Request a call back"
	}
	submitLabel := "Send enquiry"
	if w.State == leads.StateFailed {
		submitLabel = "Try again"
	}

	return h.Div(h.ID(domID), h.Class("lead-widget"), h.Data("state", w.State.String()),
		h.H2(g.Text(heading)),
		g.If(w.State == leads.StateFailed,
			h.Div(h.Class("alert alert--error"), h.Role("alert"), g.Text(w.Failure)),
		),
		g.If(w.Errors.Get("form") != "",
			h.Div(h.Class("alert alert--error"), h.Role("alert"), g.Text(w.Errors.Get("form"))),
		),
		g.El("form", h.Class("lead-form"), h.Method("post"), h.Action("/leads"),
			hx.Post("/leads"), hx.Target("#"+domID), hx.Swap("outerHTML"),
			g.Attr("hx-disabled-elt", "find button"),
			h.Input(h.Type("hidden"), h.Name("widget_id"), h.Value(w.ID)),
			h.Input(h.Type("hidden"), h.Name("source_page"), h.Value(source)),
			h.Input(h.Type("hidden"), h.Name("location"), h.Value(location)),
			honeypot(w.Form.Botcheck),
			field(domID+"-name", "Your name", w.Errors.Get("name"), func(id string, invalid []g.Node) g.Node {
				return h.Input(h.ID(id), h.Type("text"), h.Name("name"), h.Value(w.Form.Name), h.Required(),
					h.MaxLength("200"), h.AutoComplete("name"), g.Group(invalid))
			}),
			field(domID+"-email", "Email address", w.Errors.Get("email"), func(id string, invalid []g.Node) g.Node {
				return h.Input(h.ID(id), h.Type("email"), h.Name("email"), h.Value(w.Form.Email), h.Required(),
					h.MaxLength("254"), h.AutoComplete("email"), g.Group(invalid))
			}),
			field(domID+"-message", "How can we help?", w.Errors.Get("message"), func(id string, invalid []g.Node) g.Node {
				return h.Textarea(h.ID(id), h.Name("message"), h.Rows("5"), h.Required(), h.MaxLength("5000"),
					g.Group(invalid), g.Text(w.Form.Message))
			}),
			consent(domID, w),
			h.Button(h.Type("submit"), h.Class("button button--primary"), g.Text(submitLabel)),
		),
	)
}

// field renders a labelled control with its error message. control builds
// the input given its id and the attributes marking it invalid.
func field(id, label, errMsg string, control func(id string, invalid []g.Node) g.Node) g.Node {
	var invalid []g.Node
	class := "field"
	if errMsg != "" {
		class += " field--invalid"
		invalid = []g.Node{h.Aria("invalid", "true"), h.Aria("describedby", id+"-error")}
	}
	return h.Div(h.Class(class),
		g.El("label", h.For(id), g.Text(label)),
		control(id, invalid),
		g.If(errMsg != "", h.P(h.ID(id+"-error"), h.Class("field-error"), g.Text(errMsg))),
	)
}

func consent(domID string, w leads.Widget) g.Node {
	id := domID + "-consent"
	errMsg := w.Errors.Get("consent")
	return h.Div(h.Class("field field--checkbox"),
		h.Input(h.Type("checkbox"), h.ID(id), h.Name("consent"), h.Value("true"), h.Required(),
			g.If(w.Form.Consent, h.Checked()),
		),
		g.El("label", h.For(id), g.Text("I agree to be contacted about my enquiry.")),
		g.If(errMsg != "", h.P(h.Class("field-error"), g.Text(errMsg))),
	)
}

// honeypot is hidden from people; bots that fill it are discarded by the
// form processor.
func honeypot(value string) g.Node {
	return h.Input(h.Type("checkbox"), h.Name("botcheck"), h.Class("botcheck"),
		h.Style("display:none"), h.TabIndex("-1"), h.AutoComplete("off"),
		g.If(value != "", h.Checked()),
	)
}
