package handlers

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/ledgerline/internal/content"
)

// SEOHandler serves sitemap.xml and robots.txt.
type SEOHandler struct {
	catalog *content.Catalog
	origin  string
}

// NewSEOHandler creates a new SEOHandler.
func NewSEOHandler(catalog *content.Catalog, origin string) *SEOHandler {
	return &SEOHandler{catalog: catalog, origin: strings.TrimRight(origin, "/")}
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc      string `xml:"loc"`
	Priority string `xml:"priority,omitempty"`
}

// Sitemap handles GET /sitemap.xml.
func (h *SEOHandler) Sitemap(c echo.Context) error {
	set := urlSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, p := range h.catalog.Pages() {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:      h.origin + p.Path(),
			Priority: priority(p),
		})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode sitemap: %w", err)
	}
	return c.Blob(http.StatusOK, echo.MIMEApplicationXMLCharsetUTF8, append([]byte(xml.Header), out...))
}

func priority(p *content.Page) string {
	switch p.Kind {
	case content.KindHome:
		return "1.0"
	case content.KindService:
		return "0.8"
	default:
		return "0.5"
	}
}

// Robots handles GET /robots.txt.
func (h *SEOHandler) Robots(c echo.Context) error {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Disallow: /go/\n")
	b.WriteString("Disallow: /leads\n")
	fmt.Fprintf(&b, "Sitemap: %s/sitemap.xml\n", h.origin)
	return c.String(http.StatusOK, b.String())
}

// HealthGet handles GET /health.
func HealthGet(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
