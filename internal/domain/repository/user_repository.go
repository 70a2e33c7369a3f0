// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"roster/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for credential persistence. The application layer
// handles these outcomes without depending on database-specific errors.
var (
	// ErrUserNotFound is returned when no record exists for the given lookup key.
	// An absent record is an expected outcome, not an I/O failure.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateEmail is returned when an insert loses to an existing record
	// holding the same email. The store's unique constraint is the authority
	// for this condition.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the standard operations for credential persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user record and assigns its ID. Returns
	// ErrDuplicateEmail when another record already holds the email.
	Create(ctx context.Context, user *entity.User) error
}
