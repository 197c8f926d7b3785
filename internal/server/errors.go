package server

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/ledgerline/internal/domain"
	"github.com/nfrund/ledgerline/internal/handlers"
	"github.com/nfrund/ledgerline/internal/middleware"
)

// errorPageFunc renders an error page with the site layout.
type errorPageFunc func(c echo.Context, status int, message string) error

// setupErrorHandling installs the central error handler. Unhandled errors
// are logged with a stack trace; known errors are logged at warn level.
// A nil renderer answers with plain text.
func setupErrorHandling(e *echo.Echo, render errorPageFunc) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		logger := middleware.FromContext(c.Request().Context())
		status, message := handlers.StatusOf(err)

		var he *echo.HTTPError
		var de *domain.Error
		switch {
		case errors.As(err, &he), errors.As(err, &de):
			if status >= http.StatusInternalServerError {
				logger.Error("Request failed", "error", err, "status", status, "path", c.Request().URL.Path)
			} else if status != http.StatusNotFound {
				logger.Warn("Request failed", "error", err, "status", status, "path", c.Request().URL.Path)
			}
		default:
			logger.Error("Internal Server Error (Unhandled)",
				"error", err.Error(),
				"path", c.Request().URL.Path,
				"stack_trace", string(debug.Stack()),
			)
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		if render == nil || c.Request().Header.Get("HX-Request") == "true" {
			_ = c.String(status, message)
			return
		}
		if renderErr := render(c, status, message); renderErr != nil {
			logger.Error("Failed to render error page", "error", renderErr)
			_ = c.String(status, message)
		}
	}
}
