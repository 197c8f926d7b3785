package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// VisitorCookieName is the first-party cookie that identifies a browser for
// analytics client IDs.
const VisitorCookieName = "ll_vid"

const visitorContextKey = "visitor_id"

// Visitor makes sure every request has a visitor ID, reusing the cookie
// when present and issuing a new one otherwise.
func Visitor(secure bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := ""
			if cookie, err := c.Cookie(VisitorCookieName); err == nil {
				if _, err := uuid.Parse(cookie.Value); err == nil {
					id = cookie.Value
				}
			}
			if id == "" {
				id = uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     VisitorCookieName,
					Value:    id,
					Path:     "/",
					Expires:  time.Now().AddDate(1, 0, 0),
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}
			c.Set(visitorContextKey, id)
			return next(c)
		}
	}
}

// VisitorID returns the visitor ID set by the Visitor middleware.
func VisitorID(c echo.Context) string {
	if id, ok := c.Get(visitorContextKey).(string); ok {
		return id
	}
	return ""
}
