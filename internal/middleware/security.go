package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// SecurityHeaders sets the standard browser hardening headers. HSTS is only
// sent when the site is served over https.
func SecurityHeaders(https bool) echo.MiddlewareFunc {
	config := middleware.SecureConfig{
		XSSProtection:      "0",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}
	if https {
		config.HSTSMaxAge = 31536000
	}
	return middleware.SecureWithConfig(config)
}
