// Package pages renders the body of each page type. The layout wraps these.
package pages

import (
	"github.com/nfrund/ledgerline/internal/content"
	"github.com/nfrund/ledgerline/web/src/templates/components"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Props is what a page body is rendered from.
type Props struct {
	Page     *content.Page
	Site     content.Site
	Services []*content.Page
	// Widget is nil when the page has no lead form.
	Widget   *components.LeadWidgetProps
	QuoteURL string
}

// Slugs of pages with their own body layout.
const (
	SlugServices = "services"
	SlugPricing  = "pricing"
	SlugContact  = "contact"
)

// Render picks the body for the page's kind and slug.
func Render(p Props) g.Node {
	switch {
	case p.Page.Kind == content.KindHome:
		return Home(p)
	case p.Page.Kind == content.KindService:
		return Service(p)
	case p.Page.Slug == SlugServices:
		return ServicesIndex(p)
	case p.Page.Slug == SlugPricing:
		return Pricing(p)
	case p.Page.Slug == SlugContact:
		return Contact(p)
	default:
		return Basic(p)
	}
}

func pageHeader(p *content.Page) g.Node {
	return h.Header(h.Class("page-header"),
		components.Breadcrumbs(p.Breadcrumbs),
		h.H1(g.Text(p.Title)),
		g.If(p.Summary != "", h.P(h.Class("lede"), g.Text(p.Summary))),
	)
}

func body(p *content.Page) g.Node {
	if p.BodyHTML == "" {
		return nil
	}
	return h.Div(h.Class("prose"), g.Raw(p.BodyHTML))
}

func faqs(p *content.Page) g.Node {
	return components.FAQList("Frequently asked questions", p.FAQs, p.FAQAnswersHTML)
}

func leadOrQuote(p Props) g.Node {
	if p.Widget != nil {
		return components.LeadWidget(*p.Widget)
	}
	return components.QuoteLink(p.QuoteURL)
}

func serviceGrid(services []*content.Page) g.Node {
	return h.Div(h.Class("service-grid"),
		g.Map(services, components.ServiceCard),
	)
}

// Home is the landing page.
func Home(p Props) g.Node {
	b := p.Site.Business
	return h.Div(h.Class("page page--home"),
		h.Section(h.Class("hero"),
			h.H1(g.Text(p.Page.Title)),
			h.P(h.Class("lede"), g.Text(p.Page.Summary)),
			g.If(p.Site.Tagline != "", h.P(h.Class("tagline"), g.Text(p.Site.Tagline))),
			components.ContactActions(b.Telephone, b.WhatsApp, "home_hero"),
		),
		body(p.Page),
		h.Section(h.Class("services"),
			h.H2(g.Text("What we do")),
			serviceGrid(p.Services),
		),
		faqs(p.Page),
		components.CallToAction(p.Page.CTA),
		leadOrQuote(p),
	)
}

// ServicesIndex lists every service.
func ServicesIndex(p Props) g.Node {
	return h.Div(h.Class("page page--services"),
		pageHeader(p.Page),
		body(p.Page),
		serviceGrid(p.Services),
		faqs(p.Page),
		components.CallToAction(p.Page.CTA),
	)
}

// Service is a single service page.
func Service(p Props) g.Node {
	return h.Div(h.Class("page page--service"),
		pageHeader(p.Page),
		body(p.Page),
		g.If(p.Page.HasPricing(), h.Section(h.Class("service-pricing"),
			h.H2(g.Text("Fixed fees")),
			components.PricingTable(p.Page.Pricing),
		)),
		faqs(p.Page),
		components.CallToAction(p.Page.CTA),
		leadOrQuote(p),
	)
}

// Pricing shows the pricing table of every service that has one.
func Pricing(p Props) g.Node {
	sections := make([]g.Node, 0, len(p.Services))
	for _, s := range p.Services {
		if !s.HasPricing() {
			continue
		}
		sections = append(sections, h.Section(h.Class("pricing-section"),
			h.H2(h.A(h.Href(s.Path()), g.Text(s.Title))),
			components.PricingTable(s.Pricing),
		))
	}
	return h.Div(h.Class("page page--pricing"),
		pageHeader(p.Page),
		body(p.Page),
		g.Group(sections),
		faqs(p.Page),
		components.CallToAction(p.Page.CTA),
	)
}

// Contact shows the firm's details next to the lead form.
func Contact(p Props) g.Node {
	b := p.Site.Business
	return h.Div(h.Class("page page--contact"),
		pageHeader(p.Page),
		h.Div(h.Class("contact-layout"),
			h.Section(h.Class("contact-details"),
				body(p.Page),
				components.ContactActions(b.Telephone, b.WhatsApp, "contact_page"),
				g.If(b.Email != "", h.P(h.A(h.Href("mailto:"+b.Email), g.Text(b.Email)))),
				g.If(b.Address.Street != "", h.Address(
					g.Text(b.Address.Street), h.Br(),
					g.Text(b.Address.Locality), h.Br(),
					g.Text(b.Address.PostalCode),
				)),
				g.If(len(b.OpeningHours) > 0, h.Ul(h.Class("opening-hours"),
					g.Map(b.OpeningHours, func(s string) g.Node { return h.Li(g.Text(s)) }),
				)),
			),
			leadOrQuote(p),
		),
		faqs(p.Page),
	)
}

// Basic is a plain content page such as the privacy notice.
func Basic(p Props) g.Node {
	return h.Div(h.Class("page page--basic"),
		pageHeader(p.Page),
		body(p.Page),
		faqs(p.Page),
		components.CallToAction(p.Page.CTA),
		leadOrQuote(p),
	)
}

// NotFound is the body of the 404 page.
func NotFound() g.Node {
	return h.Section(h.Class("error-page"),
		h.H1(g.Text("Page not found")),
		h.P(g.Text("Sorry, we couldn't find that page.")),
		h.P(h.A(h.Href("/"), g.Text("Go to the home page")), g.Text(" or "), h.A(h.Href("/contact"), g.Text("contact us")), g.Text(".")),
	)
}

// Error is the body of a generic error page.
func Error(message string) g.Node {
	return h.Section(h.Class("error-page"),
		h.H1(g.Text("Something went wrong")),
		h.P(g.Text(message)),
		h.P(h.A(h.Href("/"), g.Text("Go to the home page"))),
	)
}
