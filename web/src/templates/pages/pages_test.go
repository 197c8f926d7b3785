package pages_test

import (
	"bytes"
	"testing"

	"github.com/nfrund/ledgerline/internal/content"
	"github.com/nfrund/ledgerline/internal/leads"
	"github.com/nfrund/ledgerline/internal/view"
	"github.com/nfrund/ledgerline/web/src/templates/components"
	"github.com/nfrund/ledgerline/web/src/templates/layouts"
	"github.com/nfrund/ledgerline/web/src/templates/pages"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func catalog(t *testing.T) *content.Catalog {
	t.Helper()
	fsys, err := content.Source("")
	require.NoError(t, err)
	c, err := content.NewCatalog(fsys)
	require.NoError(t, err)
	return c
}

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, n.Render(&buf))
	return buf.String()
}

func TestRender_DispatchesByPage(t *testing.T) {
	c := catalog(t)
	site := c.Site()

	tests := []struct {
		slug string
		want string
	}{
		{"home", "page--home"},
		{"services", "page--services"},
		{"pricing", "page--pricing"},
		{"contact", "page--contact"},
		{"privacy", "page--basic"},
		{"vat-returns", "page--service"},
	}
	for _, tc := range tests {
		t.Run(tc.slug, func(t *testing.T) {
			page, err := c.Page(tc.slug)
			require.NoError(t, err)
			html := render(t, pages.Render(pages.Props{Page: page, Site: site, Services: c.Services()}))
			assert.Contains(t, html, tc.want)
			assert.Contains(t, html, page.Title)
		})
	}
}

func TestService_LeadWidgetOrQuoteLink(t *testing.T) {
	c := catalog(t)
	page, err := c.Service("trusts-estates")
	require.NoError(t, err)

	html := render(t, pages.Service(pages.Props{Page: page, Site: c.Site(), QuoteURL: "https://quote.example.com"}))
	assert.Contains(t, html, "https://quote.example.com")
	assert.NotContains(t, html, "lead-form")

	widget := components.LeadWidgetProps{Widget: leads.NewWidget(), Source: page.LeadSource()}
	html = render(t, pages.Service(pages.Props{Page: page, Site: c.Site(), Widget: &widget}))
	assert.Contains(t, html, "lead-form")
}

func TestBaseLayout(t *testing.T) {
	c := catalog(t)
	home, err := c.Home()
	require.NoError(t, err)

	html := render(t, layouts.Base(layouts.Props{
		Title:       home.Title,
		Description: home.Description(),
		Path:        "/",
		Origin:      "https://www.ledgerline.co.uk",
		Site:        c.Site(),
		GA4ID:       "G-TEST123",
		JSONLD:      []any{map[string]string{"@type": "Thing"}},
		Flash:       view.FlashData{Success: []string{"Thanks"}},
	}, pages.NotFound()))

	assert.Contains(t, html, "<!doctype html>")
	assert.Contains(t, html, `<html lang="en-GB">`)
	assert.Contains(t, html, `<link rel="canonical" href="https://www.ledgerline.co.uk/">`)
	assert.Contains(t, html, `<script type="application/ld+json">{"@type":"Thing"}</script>`)
	assert.Contains(t, html, "gtag/js?id=G-TEST123")
	assert.Contains(t, html, "Thanks")
	assert.Contains(t, html, "Page not found")
	assert.Contains(t, html, "| "+c.Site().Business.Name+"</title>")
}

func TestCalculateTitle(t *testing.T) {
	assert.Equal(t, "VAT returns | Ledgerline", layouts.CalculateTitle("VAT returns", "Ledgerline"))
	assert.Equal(t, "Ledgerline", layouts.CalculateTitle("", "Ledgerline"))
	assert.Equal(t, "VAT returns", layouts.CalculateTitle("VAT returns", ""))
	assert.Equal(t, "https://x.test/", layouts.Canonical("https://x.test", ""))
}

func TestCatalogFromMemory(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("pages", 0o755))
	require.NoError(t, afero.WriteFile(fsys, "site.yaml", []byte("business:\n  name: Test Firm\n"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "pages/home.yaml", []byte("slug: home\nkind: home\ntitle: Welcome\n"), 0o644))

	c, err := content.NewCatalog(fsys)
	require.NoError(t, err)
	home, err := c.Home()
	require.NoError(t, err)

	html := render(t, pages.Home(pages.Props{Page: home, Site: c.Site()}))
	assert.Contains(t, html, "Welcome")
}
