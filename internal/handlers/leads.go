package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/ledgerline/internal/content"
	"github.com/nfrund/ledgerline/internal/leads"
	"github.com/nfrund/ledgerline/internal/middleware"
	"github.com/nfrund/ledgerline/internal/view"
	"github.com/nfrund/ledgerline/web/src/templates/components"
	"github.com/nfrund/ledgerline/web/src/templates/pages"
)

// SubmittedFlash is shown after a plain (non-htmx) submission succeeds.
const SubmittedFlash = "Thanks, your enquiry has been sent. We'll be in touch within one working day."

// LeadHandler accepts lead widget submissions.
type LeadHandler struct {
	service *leads.Service
	pages   *PageHandler
}

// NewLeadHandler creates a new LeadHandler.
func NewLeadHandler(service *leads.Service, pages *PageHandler) *LeadHandler {
	return &LeadHandler{service: service, pages: pages}
}

// LeadPost handles POST /leads.
//
// htmx requests get the widget fragment back: 422 while field errors are
// shown, 200 otherwise. Plain form posts that succeed redirect to the page
// the widget was on with a flash message; anything else re-renders that
// page with the widget in its new state.
func (h *LeadHandler) LeadPost(c echo.Context) error {
	var form leads.Form
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "The enquiry could not be read.")
	}
	if strings.TrimSpace(form.SourcePage) == "" {
		form.SourcePage = refererPath(c.Request())
	}

	// The location label is derived from the page when it is known; a label
	// posted by the client is only used otherwise, and then cleaned.
	page := h.sourcePage(form.SourcePage)
	if page != nil {
		form.Location = Location(page)
	} else {
		form.Location = cleanLocation(form.Location)
	}

	widget := h.service.Submit(c.Request().Context(), middleware.VisitorID(c), form)
	middleware.FromContext(c.Request().Context()).Info("Lead widget submitted",
		"widget_id", widget.ID,
		"state", widget.State.String(),
		"source_page", form.SourcePage,
	)

	if isHTMX(c) {
		status := http.StatusOK
		if len(widget.Errors) > 0 {
			status = http.StatusUnprocessableEntity
		}
		props := components.LeadWidgetProps{
			Widget:   widget,
			Source:   form.SourcePage,
			Location: form.Location,
		}
		if page != nil {
			props = h.pages.widgetProps(page, widget)
		} else {
			business := h.pages.catalog.Site().Business
			props.Telephone = business.Telephone
			props.WhatsApp = business.WhatsApp
		}
		return h.pages.renderer.RenderPage(c, status, components.LeadWidget(props))
	}

	if page == nil {
		contact, err := h.pages.catalog.Page(pages.SlugContact)
		if err != nil {
			return err
		}
		page = contact
	}
	if widget.State == leads.StateSubmitted {
		view.SetFlashSuccess(c, SubmittedFlash)
		return c.Redirect(http.StatusSeeOther, page.Path())
	}
	return h.pages.renderPage(c, http.StatusOK, page, &widget)
}

// sourcePage finds the page a widget was rendered on from its source_page
// value, which is either a configured label or the page path.
func (h *LeadHandler) sourcePage(source string) *content.Page {
	if source == "" {
		return nil
	}
	var byPath *content.Page
	for _, p := range h.pages.catalog.Pages() {
		if !p.LeadForm.Enabled {
			continue
		}
		if p.LeadSource() == source {
			return p
		}
		if byPath == nil && p.Path() == source {
			byPath = p
		}
	}
	return byPath
}

func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

// refererPath returns the path of the Referer header, or "" when it is
// missing or unparsable.
func refererPath(r *http.Request) string {
	ref := r.Referer()
	if ref == "" {
		return ""
	}
	u, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	if u.Path == "" {
		return "/"
	}
	return u.Path
}
