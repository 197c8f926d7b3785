package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/ledgerline/internal/content"
	"github.com/nfrund/ledgerline/internal/domain"
	"github.com/nfrund/ledgerline/internal/leads"
	"github.com/nfrund/ledgerline/internal/middleware"
	"github.com/nfrund/ledgerline/internal/rendering"
	"github.com/nfrund/ledgerline/internal/schema"
	"github.com/nfrund/ledgerline/internal/view"
	"github.com/nfrund/ledgerline/web/src/templates/components"
	"github.com/nfrund/ledgerline/web/src/templates/layouts"
	"github.com/nfrund/ledgerline/web/src/templates/pages"
)

// SiteSettings are the configuration values every page needs.
type SiteSettings struct {
	Origin   string
	GA4ID    string
	QuoteURL string
}

// PageHandler renders content pages.
type PageHandler struct {
	catalog  *content.Catalog
	renderer rendering.Renderer
	settings SiteSettings
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(catalog *content.Catalog, renderer rendering.Renderer, settings SiteSettings) *PageHandler {
	return &PageHandler{
		catalog:  catalog,
		renderer: renderer,
		settings: settings,
	}
}

// HomeGet handles GET /.
func (h *PageHandler) HomeGet(c echo.Context) error {
	page, err := h.catalog.Home()
	if err != nil {
		return err
	}
	return h.renderPage(c, http.StatusOK, page, nil)
}

// ServicesGet handles GET /services.
func (h *PageHandler) ServicesGet(c echo.Context) error {
	return h.renderSlug(c, pages.SlugServices)
}

// ServiceGet handles GET /services/:slug.
func (h *PageHandler) ServiceGet(c echo.Context) error {
	page, err := h.catalog.Service(c.Param("slug"))
	if err != nil {
		return err
	}
	return h.renderPage(c, http.StatusOK, page, nil)
}

// PricingGet handles GET /pricing.
func (h *PageHandler) PricingGet(c echo.Context) error {
	return h.renderSlug(c, pages.SlugPricing)
}

// ContactGet handles GET /contact.
func (h *PageHandler) ContactGet(c echo.Context) error {
	return h.renderSlug(c, pages.SlugContact)
}

// PageGet handles GET /:slug for the remaining content pages. Home and
// service pages have their own URLs and are not served here.
func (h *PageHandler) PageGet(c echo.Context) error {
	page, err := h.catalog.Page(c.Param("slug"))
	if err != nil {
		return err
	}
	if page.Kind != content.KindPage {
		return domain.NotFound("page not found")
	}
	return h.renderPage(c, http.StatusOK, page, nil)
}

func (h *PageHandler) renderSlug(c echo.Context, slug string) error {
	page, err := h.catalog.Page(slug)
	if err != nil {
		return err
	}
	return h.renderPage(c, http.StatusOK, page, nil)
}

// renderPage renders a full page. A nil widget gives the page a fresh lead
// widget when its content enables one.
func (h *PageHandler) renderPage(c echo.Context, status int, page *content.Page, widget *leads.Widget) error {
	site := h.catalog.Site()

	props := pages.Props{
		Page:     page,
		Site:     site,
		Services: h.catalog.Services(),
		QuoteURL: h.settings.QuoteURL,
	}
	if page.LeadForm.Enabled {
		w := leads.NewWidget()
		if widget != nil {
			w = *widget
		}
		wp := h.widgetProps(page, w)
		props.Widget = &wp
	}

	layout := layouts.Props{
		Title:       page.Title,
		Description: page.Description(),
		Path:        page.Path(),
		Origin:      h.settings.Origin,
		Site:        site,
		GA4ID:       h.settings.GA4ID,
		JSONLD:      h.structuredData(c, site, page),
		Flash:       view.GetFlashData(c),
	}
	if page.Kind == content.KindHome {
		layout.Title = ""
	}

	return h.renderer.RenderPage(c, status, layouts.Base(layout, pages.Render(props)))
}

func (h *PageHandler) widgetProps(page *content.Page, w leads.Widget) components.LeadWidgetProps {
	business := h.catalog.Site().Business
	return components.LeadWidgetProps{
		Widget:    w,
		Heading:   page.LeadForm.Heading,
		Source:    page.LeadSource(),
		Location:  Location(page),
		Telephone: business.Telephone,
		WhatsApp:  business.WhatsApp,
	}
}

// structuredData builds the JSON-LD blocks for a page. A breadcrumb trail
// that fails to build is logged and left out; the page still renders.
func (h *PageHandler) structuredData(c echo.Context, site content.Site, page *content.Page) []any {
	blocks, err := StructuredData(h.settings.Origin, site, page)
	if err != nil {
		middleware.FromContext(c.Request().Context()).Warn("Omitting breadcrumb structured data", "slug", page.Slug, "error", err)
	}
	return blocks
}

// StructuredData returns the schema.org objects embedded in a page:
// LocalBusiness on the home page, Service on service pages, FAQPage when
// the page has FAQs and BreadcrumbList everywhere but the home page. When
// the breadcrumb trail is malformed the other blocks are still returned
// along with the error.
func StructuredData(origin string, site content.Site, page *content.Page) ([]any, error) {
	business := site.Business
	if business.URL == "" {
		business.URL = origin + "/"
	}

	var out []any
	switch page.Kind {
	case content.KindHome:
		out = append(out, schema.LocalBusiness(business))
	case content.KindService:
		out = append(out, schema.Service(business, serviceInput(origin, page)))
	}
	if len(page.FAQs) > 0 {
		out = append(out, schema.FAQPage(page.FAQs))
	}
	if page.Kind != content.KindHome && len(page.Breadcrumbs) > 0 {
		crumbs, err := schema.BreadcrumbList(origin, page.Breadcrumbs)
		if err != nil {
			return out, err
		}
		out = append(out, crumbs)
	}
	return out, nil
}

func serviceInput(origin string, page *content.Page) schema.ServiceInput {
	in := schema.ServiceInput{
		Name:        page.Title,
		Description: page.Description(),
		URL:         origin + page.Path(),
	}
	if svc := page.Service; svc != nil {
		if svc.Name != "" {
			in.Name = svc.Name
		}
		in.ServiceType = svc.ServiceType
		if svc.Description != "" {
			in.Description = svc.Description
		}
	}
	for _, plan := range page.Pricing {
		in.Offers = append(in.Offers, schema.OfferInput{Name: plan.Name, PricePence: plan.PricePence})
	}
	return in
}

// Location returns the analytics location label of a page's lead widget,
// e.g. "home", "contact_page" or "service_vat_returns".
func Location(page *content.Page) string {
	slug := strings.ReplaceAll(page.Slug, "-", "_")
	switch page.Kind {
	case content.KindHome:
		return "home"
	case content.KindService:
		return "service_" + slug
	default:
		return slug + "_page"
	}
}

// ErrorPage renders an error page with the site layout. It is used by the
// server's error handler.
func (h *PageHandler) ErrorPage(c echo.Context, status int, message string) error {
	body := pages.Error(message)
	title := "Something went wrong"
	if status == http.StatusNotFound {
		body = pages.NotFound()
		title = "Page not found"
	}
	return h.renderer.RenderPage(c, status, layouts.Base(layouts.Props{
		Title:   title,
		Path:    c.Request().URL.Path,
		Origin:  h.settings.Origin,
		Site:    h.catalog.Site(),
		GA4ID:   h.settings.GA4ID,
		NoIndex: true,
	}, body))
}

// StatusOf maps an error returned by a handler to an HTTP status and a
// message that is safe to show.
func StatusOf(err error) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if msg, ok := he.Message.(string); ok {
			return he.Code, msg
		}
		return he.Code, http.StatusText(he.Code)
	}
	var de *domain.Error
	if errors.As(err, &de) {
		status := de.HTTPStatus()
		if status >= http.StatusInternalServerError {
			return status, "Please try again in a moment."
		}
		return status, de.Message
	}
	return http.StatusInternalServerError, "Please try again in a moment."
}
