package components

import (
	"github.com/nfrund/ledgerline/internal/content"
	"github.com/nfrund/ledgerline/internal/phone"
	"github.com/nfrund/ledgerline/internal/view"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// ServiceCard links to a service page from the home page and services index.
func ServiceCard(p *content.Page) g.Node {
	name := p.Title
	if p.Service != nil && p.Service.Name != "" {
		name = p.Service.Name
	}
	return h.Article(h.Class("service-card"),
		g.If(p.Service != nil && p.Service.Icon != "", h.Span(h.Class("service-icon icon-"+iconName(p)))),
		h.H3(h.A(h.Href(p.Path()), g.Text(name))),
		h.P(g.Text(p.Summary)),
		g.If(p.HasPricing(), h.P(h.Class("service-from"), g.Textf("From %s", p.Pricing[0].Price()))),
	)
}

func iconName(p *content.Page) string {
	if p.Service == nil {
		return ""
	}
	return p.Service.Icon
}

// CallToAction renders a page's CTA panel.
func CallToAction(cta *content.CTA) g.Node {
	if cta == nil {
		return nil
	}
	return h.Aside(h.Class("cta"),
		h.H2(g.Text(cta.Heading)),
		g.If(cta.Text != "", h.P(g.Text(cta.Text))),
		g.If(cta.Href != "", h.A(h.Class("button button--primary"), h.Href(cta.Href), g.Text(cta.Label))),
	)
}

// QuoteLink is shown in place of the lead widget on pages with the form
// disabled.
func QuoteLink(url string) g.Node {
	if url == "" {
		return nil
	}
	return h.Aside(h.Class("quote-link"),
		h.A(h.Class("button button--primary"), h.Href(url), h.Rel("noopener"), g.Text("Get an instant quote")),
	)
}

// ContactActions renders the call and WhatsApp buttons.
func ContactActions(telephone, whatsapp, location string) g.Node {
	if telephone == "" && whatsapp == "" {
		return nil
	}
	return h.Div(h.Class("contact-actions"),
		g.If(telephone != "",
			h.A(h.Class("button button--call"), h.Href(CallHref(location)), g.Textf("Call %s", phone.Display(telephone))),
		),
		g.If(whatsapp != "",
			h.A(h.Class("button button--whatsapp"), h.Href(WhatsAppHref(location)), g.Text("WhatsApp us")),
		),
	)
}

// FlashBanner renders one-time messages carried over a redirect.
func FlashBanner(f view.FlashData) g.Node {
	if f.Empty() {
		return nil
	}
	return h.Div(h.Class("flash"),
		g.Map(f.Success, func(m string) g.Node { return h.P(h.Class("flash--success"), h.Role("status"), g.Text(m)) }),
		g.Map(f.Error, func(m string) g.Node { return h.P(h.Class("flash--error"), h.Role("alert"), g.Text(m)) }),
	)
}
