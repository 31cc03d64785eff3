package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims are the claims carried by a session token.
type SessionClaims struct {
	UserID string `json:"sub"`
	jwt.RegisteredClaims
}

// TokenService signs and validates session tokens. The validity window is
// chosen per call site: registration issues a short-lived token, login a
// long-lived one.
type TokenService interface {
	// Generate creates a signed token bound to userID, valid for ttl.
	Generate(userID string, ttl time.Duration) (string, error)

	// Validate parses and verifies a token string and returns its claims.
	// An error means the token is absent from trust: malformed, badly
	// signed, or expired.
	Validate(token string) (*SessionClaims, error)
}
