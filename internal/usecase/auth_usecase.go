// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"burgerqueen/internal/domain/entity"
)

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionOutput returns the public user record plus the issued session
// token. TTL tells the delivery layer how long the cookie should live.
type SessionOutput struct {
	User  entity.PublicUser
	Token string
	TTL   time.Duration
}

// AuthUsecase is the session manager: it registers accounts, authenticates
// credentials and resolves session tokens back to users.
type AuthUsecase interface {
	// Register creates a new non-admin account and issues a short-lived
	// session token. Fails with ErrDuplicateUser when the email is taken.
	Register(ctx context.Context, input *RegisterInput) (*SessionOutput, error)

	// Login verifies credentials and issues a long-lived session token.
	// Fails with ErrInvalidCredentials on unknown email or bad password,
	// without distinguishing the two.
	Login(ctx context.Context, input *LoginInput) (*SessionOutput, error)

	// ValidateSession resolves a session token to its user. Fails with
	// ErrUnauthenticated when the token is missing, malformed, expired,
	// or the user no longer exists.
	ValidateSession(ctx context.Context, token string) (*entity.User, error)
}
