package components

import (
	"github.com/nfrund/ledgerline/internal/content"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// PricingTable renders a row of pricing plans.
func PricingTable(plans []content.PricingPlan) g.Node {
	if len(plans) == 0 {
		return nil
	}
	return h.Div(h.Class("pricing"),
		g.Map(plans, func(p content.PricingPlan) g.Node {
			class := "plan"
			if p.Highlighted {
				class += " plan--highlighted"
			}
			return h.Div(h.Class(class),
				h.H3(g.Text(p.Name)),
				h.P(h.Class("plan-price"),
					g.Text(p.Price()),
					g.If(p.Period != "", h.Span(h.Class("plan-period"), g.Text(" "+p.Period))),
				),
				h.Ul(g.Map(p.Features, func(f string) g.Node { return h.Li(g.Text(f)) })),
			)
		}),
	)
}
