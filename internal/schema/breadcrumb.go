package schema

import (
	"fmt"

	"github.com/nfrund/ledgerline/internal/domain"
)

// BreadcrumbListSchema is a schema.org BreadcrumbList.
type BreadcrumbListSchema struct {
	Context         string     `json:"@context"`
	Type            string     `json:"@type"`
	ItemListElement []ListItem `json:"itemListElement"`
}

// ListItem is one position in a BreadcrumbList.
type ListItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item"`
}

// BreadcrumbList builds a BreadcrumbList from an ordered trail. Positions are
// the 1-based slice index, so they are contiguous whatever the labels or
// paths are; duplicates are allowed. Each item is origin joined with the
// crumb's path. A crumb with an empty or relative path is rejected.
func BreadcrumbList(origin string, crumbs []domain.Crumb) (BreadcrumbListSchema, error) {
	items := make([]ListItem, 0, len(crumbs))
	for i, c := range crumbs {
		u, err := absoluteURL(origin, c.Href)
		if err != nil {
			return BreadcrumbListSchema{}, fmt.Errorf("%w: position %d (%q): %v", domain.ErrInvalidCrumb, i+1, c.Label, err)
		}
		items = append(items, ListItem{
			Type:     "ListItem",
			Position: i + 1,
			Name:     c.Label,
			Item:     u,
		})
	}
	return BreadcrumbListSchema{
		Context:         Context,
		Type:            "BreadcrumbList",
		ItemListElement: items,
	}, nil
}
