package schema

import (
	"fmt"

	"github.com/nfrund/ledgerline/internal/domain"
)

// ServiceInput is the page data a Service object is built from.
type ServiceInput struct {
	Name        string
	ServiceType string
	Description string
	URL         string
	Offers      []OfferInput
}

// OfferInput is a priced plan of a service. Prices are in pence.
type OfferInput struct {
	Name       string
	PricePence int64
}

// ServiceSchema is a schema.org Service.
type ServiceSchema struct {
	Context     string   `json:"@context"`
	Type        string   `json:"@type"`
	Name        string   `json:"name"`
	ServiceType string   `json:"serviceType,omitempty"`
	Description string   `json:"description,omitempty"`
	URL         string   `json:"url,omitempty"`
	Provider    Provider `json:"provider"`
	AreaServed  []Place  `json:"areaServed"`
	Offers      []Offer  `json:"offers,omitempty"`
}

// Provider references the firm from a Service.
type Provider struct {
	Type string `json:"@type"`
	ID   string `json:"@id,omitempty"`
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// Offer is a schema.org Offer priced in GBP.
type Offer struct {
	Type          string `json:"@type"`
	Name          string `json:"name"`
	Price         string `json:"price"`
	PriceCurrency string `json:"priceCurrency"`
}

// Service builds a Service provided by the firm.
func Service(b domain.Business, in ServiceInput) ServiceSchema {
	s := ServiceSchema{
		Context:     Context,
		Type:        "Service",
		Name:        in.Name,
		ServiceType: in.ServiceType,
		Description: in.Description,
		URL:         in.URL,
		Provider: Provider{
			Type: "AccountingService",
			Name: b.Name,
			URL:  b.URL,
		},
		AreaServed: places(b.AreaServed),
	}
	if b.URL != "" {
		s.Provider.ID = b.URL + "#business"
	}
	for _, o := range in.Offers {
		s.Offers = append(s.Offers, Offer{
			Type:          "Offer",
			Name:          o.Name,
			Price:         formatPence(o.PricePence),
			PriceCurrency: "GBP",
		})
	}
	return s
}

// formatPence renders pence as a decimal pound amount, e.g. 14950 -> "149.50".
func formatPence(p int64) string {
	sign := ""
	if p < 0 {
		sign = "-"
		p = -p
	}
	return fmt.Sprintf("%s%d.%02d", sign, p/100, p%100)
}
