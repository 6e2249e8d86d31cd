package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/blog-api/internal/api/middleware"
	"github.com/inkwell/blog-api/internal/core/ports"
)

// AuthHandler exposes registration and the session lifecycle over
// JSON. The opaque session token travels in an HttpOnly cookie.
type AuthHandler struct {
	auth       ports.AuthService
	sessionTTL time.Duration
}

func NewAuthHandler(auth ports.AuthService, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{auth: auth, sessionTTL: sessionTTL}
}

type signupRequest struct {
	UserID   string `json:"user_id"  validate:"required"`
	Name     string `json:"name"     validate:"required"`
	Password string `json:"password" validate:"required"`
}

type signinRequest struct {
	UserID   string `json:"user_id"  validate:"required"`
	Password string `json:"password" validate:"required"`
}

type userPayload struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

type signinResponse struct {
	OK   bool        `json:"ok"`
	User userPayload `json:"user"`
}

type meResponse struct {
	User userPayload `json:"user"`
}

// Signup creates a new account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Registration details"
// @Success      200   {object}  okResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if _, err := h.auth.Register(c.Request().Context(), req.UserID, req.Name, req.Password); err != nil {
		code, msg := errorStatus(err)
		return c.JSON(code, errorResponse{Error: msg})
	}

	return c.JSON(http.StatusOK, okResponse{OK: true})
}

// Signin authenticates a user and establishes a session.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signinRequest  true  "Credentials"
// @Success      200   {object}  signinResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/auth/signin [post]
func (h *AuthHandler) Signin(c echo.Context) error {
	var req signinRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	token, session, err := h.auth.SignIn(c.Request().Context(), req.UserID, req.Password)
	if err != nil {
		code, msg := errorStatus(err)
		return c.JSON(code, errorResponse{Error: msg})
	}

	c.SetCookie(h.sessionCookie(token, h.sessionTTL))
	return c.JSON(http.StatusOK, signinResponse{
		OK:   true,
		User: userPayload{UserID: session.UserID, Name: session.Name},
	})
}

// Signout destroys the current session. Idempotent: signing out with
// no active session still succeeds.
//
// @Summary      Sign out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  okResponse
// @Router       /api/auth/signout [post]
func (h *AuthHandler) Signout(c echo.Context) error {
	_ = h.auth.SignOut(c.Request().Context(), sessionToken(c))
	c.SetCookie(h.sessionCookie("", -time.Second))
	return c.JSON(http.StatusOK, okResponse{OK: true})
}

// Me returns the identity bound to the current session.
//
// @Summary      Current identity
// @Tags         auth
// @Produce      json
// @Success      200  {object}  meResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	session := currentSession(c)
	if session == nil {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "authentication required"})
	}
	return c.JSON(http.StatusOK, meResponse{
		User: userPayload{UserID: session.UserID, Name: session.Name},
	})
}

func (h *AuthHandler) sessionCookie(token string, ttl time.Duration) *http.Cookie {
	cookie := &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if ttl < 0 {
		cookie.MaxAge = -1
	} else {
		cookie.MaxAge = int(ttl.Seconds())
	}
	return cookie
}
