// Package middleware provides the HTTP middleware stack: session
// authentication, admin authorization, request scoping, rate limiting and
// error rendering.
package middleware

import (
	"github.com/labstack/echo/v4"

	"burgerqueen/config"
	"burgerqueen/internal/domain/entity"
	domainerrors "burgerqueen/internal/domain/errors"
	"burgerqueen/internal/usecase"
)

// keyUser is the echo.Context key under which the authenticated user is
// stored for handlers downstream.
const keyUser = "user"

// AuthMiddleware authenticates requests from the session cookie.
type AuthMiddleware struct {
	auth       usecase.AuthUsecase
	cookieName string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(auth usecase.AuthUsecase, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{auth: auth, cookieName: cfg.Session.CookieName}
}

// Authenticate resolves the session cookie to a user and stores it on the
// context. Requests without a valid session are rejected with 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(m.cookieName)
		if err != nil || cookie.Value == "" {
			return domainerrors.ErrUnauthenticated
		}

		user, err := m.auth.ValidateSession(c.Request().Context(), cookie.Value)
		if err != nil {
			return err
		}

		c.Set(keyUser, user)

		return next(c)
	}
}

// RequireAdmin rejects non-administrator users with 403. It must run after
// Authenticate.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := CurrentUser(c)
		if !ok {
			return domainerrors.ErrUnauthenticated
		}
		if !user.IsAdmin {
			return domainerrors.ErrForbidden
		}

		return next(c)
	}
}

// CurrentUser returns the authenticated user stored by Authenticate.
func CurrentUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(keyUser).(*entity.User)
	return user, ok
}
