package components

import (
	"github.com/nfrund/ledgerline/internal/domain"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Breadcrumbs renders the visible breadcrumb trail. The last crumb is the
// current page and is not linked.
func Breadcrumbs(crumbs []domain.Crumb) g.Node {
	if len(crumbs) < 2 {
		return nil
	}
	items := make([]g.Node, 0, len(crumbs))
	for i, c := range crumbs {
		if i == len(crumbs)-1 {
			items = append(items, h.Li(g.Attr("aria-current", "page"), g.Text(c.Label)))
			continue
		}
		items = append(items, h.Li(h.A(h.Href(c.Href), g.Text(c.Label))))
	}
	return h.Nav(h.Class("breadcrumbs"), g.Attr("aria-label", "Breadcrumb"), h.Ol(g.Group(items)))
}
