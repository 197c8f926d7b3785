package content

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nfrund/ledgerline/internal/schema"
)

// Validate checks the invariants the pages rely on and returns every
// problem found, joined.
func (s *Snapshot) Validate() error {
	var errs []error

	if strings.TrimSpace(s.Site.Business.Name) == "" {
		errs = append(errs, errors.New("site.yaml: business name is required"))
	}

	homes := 0
	for _, p := range s.order {
		if p.Kind == KindHome {
			homes++
		}
		errs = append(errs, validatePage(s.Site.Business.URL, p)...)
	}
	if homes != 1 {
		errs = append(errs, fmt.Errorf("expected exactly one home page, found %d", homes))
	}

	return errors.Join(errs...)
}

func validatePage(origin string, p *Page) []error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("page %q: "+format, append([]any{p.Slug}, args...)...))
	}

	switch p.Kind {
	case KindHome, KindService, KindPage:
	default:
		fail("unknown kind %q", p.Kind)
	}
	if strings.TrimSpace(p.Title) == "" {
		fail("title is required")
	}
	if p.Kind == KindService && p.Service == nil {
		fail("service pages need a service descriptor")
	}
	for i, f := range p.FAQs {
		if strings.TrimSpace(f.Question) == "" || strings.TrimSpace(f.Answer) == "" {
			fail("faq %d needs a question and an answer", i+1)
		}
	}
	for i, plan := range p.Pricing {
		if plan.Name == "" {
			fail("pricing plan %d has no name", i+1)
		}
		if plan.PricePence < 0 {
			fail("pricing plan %q has a negative price", plan.Name)
		}
	}
	if origin == "" {
		origin = "https://example.invalid"
	}
	if _, err := schema.BreadcrumbList(origin, p.Breadcrumbs); err != nil {
		fail("breadcrumbs: %v", err)
	}
	return errs
}
