package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/inkwell/blog-api/internal/core/domain"
	"github.com/inkwell/blog-api/internal/core/ports"
)

// SessionCookie is the cookie carrying the opaque session token. The
// token is handed to the store verbatim and never parsed here.
const SessionCookie = "blog_session"

// LoadSession resolves the session cookie via the store and injects
// the session (and its raw token) into the request context. Requests
// without a resolvable session proceed anonymously; a store failure is
// surfaced as a server error rather than silently downgraded.
func LoadSession(store ports.SessionStore, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			session, err := store.Get(c.Request().Context(), cookie.Value)
			if err != nil {
				if errors.Is(err, domain.ErrSessionNotFound) {
					// stale cookie: absent, expired, or destroyed
					return next(c)
				}
				log.Error().Err(err).Msg("session lookup failed")
				return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
			}

			c.Set("session", session)
			c.Set("session_token", cookie.Value)
			return next(c)
		}
	}
}

// RequireSession rejects anonymous requests before they reach a
// handler that needs an authenticated caller.
func RequireSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := c.Get("session").(*domain.Session); !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			return next(c)
		}
	}
}
