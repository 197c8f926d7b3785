package components

import (
	"github.com/nfrund/ledgerline/internal/domain"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// FAQList renders FAQs as a details/summary accordion in the given order.
// answersHTML holds the rendered markdown answers; a missing entry falls back
// to the plain answer text.
func FAQList(heading string, faqs []domain.FAQ, answersHTML []string) g.Node {
	if len(faqs) == 0 {
		return nil
	}
	items := make([]g.Node, 0, len(faqs))
	for i, f := range faqs {
		answer := g.Node(h.P(g.Text(f.Answer)))
		if i < len(answersHTML) && answersHTML[i] != "" {
			answer = g.Raw(answersHTML[i])
		}
		items = append(items, h.Details(h.Class("faq"),
			h.Summary(g.Text(f.Question)),
			h.Div(h.Class("faq-answer"), answer),
		))
	}
	return h.Section(h.Class("faqs"),
		h.H2(g.Text(heading)),
		g.Group(items),
	)
}
