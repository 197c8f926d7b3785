package layouts

import (
	"github.com/nfrund/ledgerline/internal/content"
	"github.com/nfrund/ledgerline/internal/phone"
	"github.com/nfrund/ledgerline/internal/schema"
	"github.com/nfrund/ledgerline/internal/view"
	"github.com/nfrund/ledgerline/web/src/templates/components"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// htmxConfig lets htmx swap 422 responses so field errors reach the widget.
const htmxConfig = `{"responseHandling":[{"code":"204","swap":false},{"code":"[23]..","swap":true},{"code":"422","swap":true},{"code":"[45]..","swap":false,"error":true}]}`

// Props are the values the base layout needs for every page.
type Props struct {
	Title       string
	Description string
	Path        string
	Origin      string
	Site        content.Site
	GA4ID       string
	// JSONLD values are rendered as application/ld+json script blocks.
	JSONLD  []any
	Flash   view.FlashData
	NoIndex bool
}

// Base renders a full HTML document around body.
func Base(p Props, body ...g.Node) g.Node {
	business := p.Site.Business

	return h.Doctype(
		h.HTML(h.Lang("en-GB"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(CalculateTitle(p.Title, business.Name))),
				g.If(p.Description != "", h.Meta(h.Name("description"), h.Content(p.Description))),
				g.If(p.NoIndex, h.Meta(h.Name("robots"), h.Content("noindex"))),
				h.Link(h.Rel("canonical"), h.Href(Canonical(p.Origin, p.Path))),
				h.Meta(g.Attr("property", "og:title"), h.Content(CalculateTitle(p.Title, business.Name))),
				h.Meta(g.Attr("property", "og:url"), h.Content(Canonical(p.Origin, p.Path))),
				h.Link(h.Rel("stylesheet"), h.Href("/static/css/site.css")),
				h.Meta(h.Name("htmx-config"), h.Content(htmxConfig)),
				h.Script(h.Src(htmxSrc), h.Defer()),
				g.If(p.GA4ID != "", analyticsTag(p.GA4ID)),
				g.Map(p.JSONLD, func(v any) g.Node { return schema.Script(v) }),
			),
			h.Body(
				siteHeader(p.Site, p.Path),
				components.FlashBanner(p.Flash),
				h.Main(h.ID("main"), h.Class("site-main"), g.Group(body)),
				siteFooter(p.Site),
			),
		),
	)
}

func analyticsTag(id string) g.Node {
	return g.Group{
		h.Script(h.Src("https://www.googletagmanager.com/gtag/js?id="+id), h.Async()),
		h.Script(g.Rawf(`window.dataLayer=window.dataLayer||[];function gtag(){dataLayer.push(arguments);}gtag('js',new Date());gtag('config','%s');`, id)),
	}
}

func siteHeader(site content.Site, path string) g.Node {
	business := site.Business
	return h.Header(h.Class("site-header"),
		h.A(h.Class("brand"), h.Href("/"), g.Text(business.Name)),
		h.Nav(h.Class("site-nav"), g.Attr("aria-label", "Main"),
			h.Ul(
				g.Map(site.Nav, func(l content.Link) g.Node {
					return h.Li(h.A(h.Href(l.Href), g.If(l.Href == path, g.Attr("aria-current", "page")), g.Text(l.Label)))
				}),
			),
		),
		g.If(business.Telephone != "",
			h.A(h.Class("header-call"), h.Href(components.CallHref("header")), g.Text(phone.Display(business.Telephone))),
		),
	)
}

func siteFooter(site content.Site) g.Node {
	b := site.Business
	return h.Footer(h.Class("site-footer"),
		h.P(h.Class("footer-name"), g.Text(b.Name)),
		g.If(b.Address.Street != "",
			h.P(h.Class("footer-address"),
				g.Textf("%s, %s, %s", b.Address.Street, b.Address.Locality, b.Address.PostalCode),
			),
		),
		g.If(site.Footer.Text != "", h.P(g.Text(site.Footer.Text))),
		h.Ul(h.Class("footer-links"),
			g.Map(site.Footer.Links, func(l content.Link) g.Node {
				return h.Li(h.A(h.Href(l.Href), g.Text(l.Label)))
			}),
		),
	)
}
