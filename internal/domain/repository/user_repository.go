// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for the profile store.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user profile row by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user profile row by email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user profile row.
	Create(ctx context.Context, user *entity.User) error

	// UpdateRole sets the stored role for the given user.
	// This is the second write of the Launch transaction.
	UpdateRole(ctx context.Context, id uuid.UUID, role entity.Role) error
}
