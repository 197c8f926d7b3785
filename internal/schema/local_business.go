package schema

import (
	"strconv"

	"github.com/nfrund/ledgerline/internal/domain"
)

// LocalBusinessSchema is a schema.org LocalBusiness, typed as an
// AccountingService as well.
type LocalBusinessSchema struct {
	Context         string           `json:"@context"`
	Type            []string         `json:"@type"`
	ID              string           `json:"@id,omitempty"`
	Name            string           `json:"name"`
	LegalName       string           `json:"legalName,omitempty"`
	Description     string           `json:"description,omitempty"`
	URL             string           `json:"url,omitempty"`
	Logo            string           `json:"logo,omitempty"`
	Image           string           `json:"image,omitempty"`
	Telephone       string           `json:"telephone,omitempty"`
	Email           string           `json:"email,omitempty"`
	PriceRange      string           `json:"priceRange,omitempty"`
	Address         PostalAddress    `json:"address"`
	Geo             *GeoCoordinates  `json:"geo,omitempty"`
	AreaServed      []Place          `json:"areaServed"`
	OpeningHours    []string         `json:"openingHours"`
	SameAs          []string         `json:"sameAs"`
	AggregateRating *AggregateRating `json:"aggregateRating,omitempty"`
}

// PostalAddress is a schema.org PostalAddress.
type PostalAddress struct {
	Type            string `json:"@type"`
	StreetAddress   string `json:"streetAddress,omitempty"`
	AddressLocality string `json:"addressLocality,omitempty"`
	AddressRegion   string `json:"addressRegion,omitempty"`
	PostalCode      string `json:"postalCode,omitempty"`
	AddressCountry  string `json:"addressCountry,omitempty"`
}

// GeoCoordinates is a schema.org GeoCoordinates.
type GeoCoordinates struct {
	Type      string  `json:"@type"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Place names an area served.
type Place struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// AggregateRating is a schema.org AggregateRating. Values are strings, as
// search engines accept them.
type AggregateRating struct {
	Type        string `json:"@type"`
	RatingValue string `json:"ratingValue"`
	ReviewCount string `json:"reviewCount"`
	BestRating  string `json:"bestRating"`
}

// LocalBusiness builds the LocalBusiness object for the firm. List fields are
// always present, empty rather than null, so consumers can range over them.
func LocalBusiness(b domain.Business) LocalBusinessSchema {
	s := LocalBusinessSchema{
		Context:     Context,
		Type:        []string{"LocalBusiness", "AccountingService"},
		Name:        b.Name,
		LegalName:   b.LegalName,
		Description: b.Description,
		URL:         b.URL,
		Logo:        b.Logo,
		Image:       b.Image,
		Telephone:   b.Telephone,
		Email:       b.Email,
		PriceRange:  b.PriceRange,
		Address: PostalAddress{
			Type:            "PostalAddress",
			StreetAddress:   b.Address.Street,
			AddressLocality: b.Address.Locality,
			AddressRegion:   b.Address.Region,
			PostalCode:      b.Address.PostalCode,
			AddressCountry:  b.Address.Country,
		},
		AreaServed:   places(b.AreaServed),
		OpeningHours: nonNil(b.OpeningHours),
		SameAs:       nonNil(b.SameAs),
	}
	if b.URL != "" {
		s.ID = b.URL + "#business"
	}
	if b.Geo.Latitude != 0 || b.Geo.Longitude != 0 {
		s.Geo = &GeoCoordinates{
			Type:      "GeoCoordinates",
			Latitude:  b.Geo.Latitude,
			Longitude: b.Geo.Longitude,
		}
	}
	if b.Rating != nil && b.Rating.Count > 0 {
		s.AggregateRating = &AggregateRating{
			Type:        "AggregateRating",
			RatingValue: strconv.FormatFloat(b.Rating.Value, 'f', 1, 64),
			ReviewCount: strconv.Itoa(b.Rating.Count),
			BestRating:  "5",
		}
	}
	return s
}

func places(names []string) []Place {
	out := make([]Place, 0, len(names))
	for _, n := range names {
		out = append(out, Place{Type: "City", Name: n})
	}
	return out
}

func nonNil(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
