// Package repository defines the persistence interfaces of the domain.
// Concrete implementations live under internal/infra/persistence and are
// injected where needed, keeping the domain free of driver concerns.
package repository

import (
	"context"

	"burgerqueen/internal/domain/entity"
	"burgerqueen/internal/errors"
)

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateEmail is returned when a create collides with an existing email.
var ErrDuplicateEmail = errors.New("email already registered")

// UserRepository is the credential store: it owns user identity records.
type UserRepository interface {
	// Create persists a new user and fills in the assigned ID.
	// Returns ErrDuplicateEmail if the email is already taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by identifier. Returns ErrUserNotFound
	// if the id is unknown or malformed.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmail retrieves a user by email. Returns ErrUserNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Update persists changes to an existing user. Only the admin flag is
	// ever mutated in practice (see cmd/seedadmin).
	Update(ctx context.Context, user *entity.User) error

	// FindByIDs retrieves the users for the given identifiers, keyed by ID.
	// Unknown ids are simply absent from the result.
	FindByIDs(ctx context.Context, ids []string) (map[string]*entity.User, error)
}
