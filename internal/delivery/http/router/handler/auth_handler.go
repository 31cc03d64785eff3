// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"burgerqueen/config"
	"burgerqueen/internal/delivery/http/response"
	"burgerqueen/internal/domain/entity"
	"burgerqueen/internal/usecase"
)

// sessionBody is the response to a successful register or login. The token
// is also set as an http-only cookie; the body copy exists for clients that
// prefer reading it directly.
type sessionBody struct {
	User  entity.PublicUser `json:"user"`
	Token string            `json:"token"`
}

// AuthHandler holds dependencies for the authentication endpoints.
type AuthHandler struct {
	auth       usecase.AuthUsecase
	cookieName string
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(auth usecase.AuthUsecase, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		auth:       auth,
		cookieName: cfg.Session.CookieName,
	}
}

// Register handles the account creation request.
func (h *AuthHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(err)
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.auth.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.Token, output.TTL)

	return response.Created(c, sessionBody{User: output.User, Token: output.Token})
}

// Login handles the credential check request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(err)
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.auth.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.Token, output.TTL)

	return response.OK(c, sessionBody{User: output.User, Token: output.Token})
}

// Logout clears the session cookie. It succeeds whether or not a session
// exists.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.clearSessionCookie(c)

	return response.Message(c, http.StatusOK, "Logged out successfully")
}

// Session reports the user behind the current session cookie.
func (h *AuthHandler) Session(c echo.Context) error {
	cookie, err := c.Cookie(h.cookieName)
	token := ""
	if err == nil {
		token = cookie.Value
	}

	user, err := h.auth.ValidateSession(c.Request().Context(), token)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, map[string]entity.PublicUser{"user": user.Public()})
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.OK(c, map[string]string{"status": "ok"})
}
