// Package content loads the site's page literals and business descriptor from
// YAML files. The files ship embedded in the binary; CONTENT_DIR points at an
// on-disk copy that replaces them.
package content

import (
	"github.com/nfrund/ledgerline/internal/domain"
)

// Kind classifies a page and decides its URL.
type Kind string

const (
	KindHome    Kind = "home"
	KindService Kind = "service"
	KindPage    Kind = "page"
)

// Site holds the values shared by every page.
type Site struct {
	Business domain.Business `yaml:"business"`
	Tagline  string          `yaml:"tagline"`
	Nav      []Link          `yaml:"nav"`
	Footer   Footer          `yaml:"footer"`
}

// Link is a labelled site-relative or absolute URL.
type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// Footer is the text and links rendered at the bottom of every page.
type Footer struct {
	Text  string `yaml:"text"`
	Links []Link `yaml:"links"`
}

// Page is one content page. Pages are read-only once loaded; a reload builds
// new values rather than mutating these.
type Page struct {
	Slug            string         `yaml:"slug"`
	Kind            Kind           `yaml:"kind"`
	Order           int            `yaml:"order"`
	Title           string         `yaml:"title"`
	Summary         string         `yaml:"summary"`
	MetaDescription string         `yaml:"meta_description"`
	Body            string         `yaml:"body"`
	Service         *ServiceInfo   `yaml:"service"`
	Pricing         []PricingPlan  `yaml:"pricing"`
	FAQs            []domain.FAQ   `yaml:"faqs"`
	Breadcrumbs     []domain.Crumb `yaml:"breadcrumbs"`
	CTA             *CTA           `yaml:"cta"`
	LeadForm        LeadForm       `yaml:"lead_form"`

	// Rendered once at load time.
	BodyHTML       string   `yaml:"-"`
	FAQAnswersHTML []string `yaml:"-"`
}

// ServiceInfo describes the service a service page sells.
type ServiceInfo struct {
	Name        string `yaml:"name"`
	ServiceType string `yaml:"service_type"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
}

// PricingPlan is one column of a pricing table. Prices are held in pence.
type PricingPlan struct {
	Name        string   `yaml:"name"`
	PricePence  int64    `yaml:"price_pence"`
	Period      string   `yaml:"period"`
	Features    []string `yaml:"features"`
	Highlighted bool     `yaml:"highlighted"`
}

// Price returns the plan price formatted for display, e.g. "£1,250".
func (p PricingPlan) Price() string {
	return FormatPence(p.PricePence)
}

// CTA is a call-to-action panel.
type CTA struct {
	Heading string `yaml:"heading"`
	Text    string `yaml:"text"`
	Label   string `yaml:"label"`
	Href    string `yaml:"href"`
}

// LeadForm configures the lead widget on a page. Disabled pages link to the
// quote URL instead when one is configured.
type LeadForm struct {
	Enabled bool   `yaml:"enabled"`
	Heading string `yaml:"heading"`
	Source  string `yaml:"source"`
}

// Path returns the site-relative URL of the page.
func (p *Page) Path() string {
	switch p.Kind {
	case KindHome:
		return "/"
	case KindService:
		return "/services/" + p.Slug
	default:
		return "/" + p.Slug
	}
}

// Description returns the meta description, falling back to the summary.
func (p *Page) Description() string {
	if p.MetaDescription != "" {
		return p.MetaDescription
	}
	return p.Summary
}

// LeadSource returns the source_page label forwarded with enquiries from
// this page.
func (p *Page) LeadSource() string {
	if p.LeadForm.Source != "" {
		return p.LeadForm.Source
	}
	return p.Path()
}

// HasPricing reports whether the page has a pricing table.
func (p *Page) HasPricing() bool {
	return len(p.Pricing) > 0
}
