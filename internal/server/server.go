package server

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/ledgerline/internal/config"
	"github.com/nfrund/ledgerline/internal/content"
	"github.com/nfrund/ledgerline/internal/handlers"
	"github.com/nfrund/ledgerline/internal/middleware"
	"github.com/nfrund/ledgerline/internal/module"
	"github.com/nfrund/ledgerline/internal/pubsub"
	"github.com/nfrund/ledgerline/internal/rendering"
	"github.com/nfrund/ledgerline/web"
)

// Dependencies holds everything the server is built from.
type Dependencies struct {
	Config    config.Provider
	Catalog   *content.Catalog
	Renderer  rendering.Renderer
	Publisher pubsub.Publisher
	// Echo is optional; tests pass their own instance.
	Echo *echo.Echo
}

// Server holds the HTTP server and the modules booted into it.
type Server struct {
	E         *echo.Echo
	Cfg       config.Provider
	Catalog   *content.Catalog
	Renderer  rendering.Renderer
	Publisher pubsub.Publisher
	Pages     *handlers.PageHandler
	modules   []module.Module
}

// New creates a new Server instance with the middleware stack, static files
// and error handling in place. Routes are added by RegisterRoutes and by
// the modules passed to InitModules.
func New(deps Dependencies) (*Server, error) {
	if deps.Config == nil {
		return nil, errors.New("server: config is required")
	}
	if deps.Catalog == nil {
		return nil, errors.New("server: content catalog is required")
	}
	if deps.Renderer == nil {
		deps.Renderer = rendering.NewUniversalRenderer()
	}
	e := deps.Echo
	if e == nil {
		e = echo.New()
	}
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	if r, ok := deps.Renderer.(echo.Renderer); ok {
		e.Renderer = r
	}

	cfg := deps.Config
	https := strings.HasPrefix(cfg.GetSiteOrigin(), "https://")

	e.Use(echomw.RequestID())
	e.Use(middleware.Logger)
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			middleware.FromContext(c.Request().Context()).Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"remote_ip", v.RemoteIP,
			)
			return nil
		},
	}))
	e.Use(echomw.Recover())
	e.Use(middleware.SecurityHeaders(https))

	store := sessions.NewCookieStore([]byte(sessionSecret(cfg)))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   https,
	}
	e.Use(session.Middleware(store))
	e.Use(middleware.Visitor(https))

	// Serve static files from the embedded "web/static" directory.
	e.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	pages := handlers.NewPageHandler(deps.Catalog, deps.Renderer, handlers.SiteSettings{
		Origin:   cfg.GetSiteOrigin(),
		GA4ID:    cfg.GetGA4MeasurementID(),
		QuoteURL: cfg.GetQuoteURL(),
	})
	setupErrorHandling(e, pages.ErrorPage)

	return &Server{
		E:         e,
		Cfg:       cfg,
		Catalog:   deps.Catalog,
		Renderer:  deps.Renderer,
		Publisher: deps.Publisher,
		Pages:     pages,
	}, nil
}

// sessionSecret returns the configured secret. Development runs without one
// get a random secret, so flash cookies do not survive a restart.
func sessionSecret(cfg config.Provider) string {
	if secret := cfg.GetSessionSecret(); secret != "" {
		return secret
	}
	slog.Warn("SESSION_SECRET is not set; using a random secret")
	return uuid.NewString() + uuid.NewString()
}
