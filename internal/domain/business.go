package domain

// Business describes the firm itself. It is loaded once from site content and
// never mutated; the home page feeds it to the LocalBusiness structured data.
type Business struct {
	Name         string   `yaml:"name"`
	LegalName    string   `yaml:"legal_name"`
	Description  string   `yaml:"description"`
	URL          string   `yaml:"url"`
	Logo         string   `yaml:"logo"`
	Image        string   `yaml:"image"`
	Telephone    string   `yaml:"telephone"`
	WhatsApp     string   `yaml:"whatsapp"`
	Email        string   `yaml:"email"`
	PriceRange   string   `yaml:"price_range"`
	Address      Address  `yaml:"address"`
	Geo          Geo      `yaml:"geo"`
	OpeningHours []string `yaml:"opening_hours"`
	AreaServed   []string `yaml:"area_served"`
	SameAs       []string `yaml:"same_as"`
	Rating       *Rating  `yaml:"rating"`
}

// Address is a UK postal address.
type Address struct {
	Street     string `yaml:"street"`
	Locality   string `yaml:"locality"`
	Region     string `yaml:"region"`
	PostalCode string `yaml:"postal_code"`
	Country    string `yaml:"country"`
}

// Geo holds WGS84 coordinates.
type Geo struct {
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

// Rating is the aggregate review score shown in search results.
type Rating struct {
	Value float64 `yaml:"value"`
	Count int     `yaml:"count"`
}
