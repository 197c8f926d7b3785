package domain

// FAQ is a single question and answer shown on a page. Order is meaningful:
// the accordion and the FAQPage structured data list entries in slice order.
type FAQ struct {
	Question string `yaml:"question" json:"question"`
	Answer   string `yaml:"answer" json:"answer"`
}

// Crumb is one step of a breadcrumb trail. Href is a site-relative path
// such as "/services/vat-returns".
type Crumb struct {
	Label string `yaml:"label" json:"label"`
	Href  string `yaml:"href" json:"href"`
}
