package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/blog-api/internal/core/domain"
)

// currentSession extracts the session injected by the LoadSession
// middleware. Nil means the request is anonymous.
func currentSession(c echo.Context) *domain.Session {
	session, _ := c.Get("session").(*domain.Session)
	return session
}

// sessionToken returns the raw opaque token for the current request,
// or the empty string for anonymous requests.
func sessionToken(c echo.Context) string {
	token, _ := c.Get("session_token").(string)
	return token
}

// errorStatus maps the service error taxonomy to HTTP status codes and
// stable, non-leaking messages. Unknown errors collapse to 500.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, "invalid input"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "user already exists"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, "authentication required"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, domain.ErrPostNotFound):
		return http.StatusNotFound, "post not found"
	}
	return http.StatusInternalServerError, "internal server error"
}
