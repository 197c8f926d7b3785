package registry

import (
	"net/http"

	"github.com/nfrund/ledgerline/internal/analytics"
	"github.com/nfrund/ledgerline/internal/content"
	"github.com/nfrund/ledgerline/internal/domain"
	"github.com/nfrund/ledgerline/internal/handlers"
	"github.com/nfrund/ledgerline/internal/leads"
)

// Service keys shared between modules. Using typed keys keeps Get and
// MustGet type-safe.
var (
	CatalogKey       = Key[*content.Catalog]("content.catalog")
	HTTPClientKey    = Key[*http.Client]("core.httpClient")
	PageHandlerKey   = Key[*handlers.PageHandler]("handlers.pages")
	LeadServiceKey   = Key[*leads.Service]("leads.service")
	AnalyticsSinkKey = Key[analytics.Sink]("analytics.sink")
	EmailSenderKey   = Key[domain.EmailSender]("email.sender")
)
