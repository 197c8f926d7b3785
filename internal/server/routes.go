package server

import (
	"github.com/nfrund/ledgerline/internal/handlers"
)

// RegisterRoutes sets up the content, SEO and health routes. Lead and
// analytics routes are mounted by their modules.
func (s *Server) RegisterRoutes() {
	seo := handlers.NewSEOHandler(s.Catalog, s.Cfg.GetSiteOrigin())

	s.E.GET("/", s.Pages.HomeGet)
	s.E.GET("/services", s.Pages.ServicesGet)
	s.E.GET("/services/:slug", s.Pages.ServiceGet)
	s.E.GET("/pricing", s.Pages.PricingGet)
	s.E.GET("/contact", s.Pages.ContactGet)

	s.E.GET("/sitemap.xml", seo.Sitemap)
	s.E.GET("/robots.txt", seo.Robots)
	s.E.GET("/health", handlers.HealthGet)

	// Catch-all for the remaining content pages; must stay last.
	s.E.GET("/:slug", s.Pages.PageGet)
}
