package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"
)

// ErrAuthNotFound is a domain-specific error returned when no credential row matches.
var ErrAuthNotFound = errors.New("authentication not found")

// AuthRepository defines the operations for credential persistence.
type AuthRepository interface {
	// FindAuthentication retrieves a credential row by provider and provider user id
	// (the email address for the "email" provider).
	FindAuthentication(ctx context.Context, provider, providerUserID string) (*entity.Authentication, error)

	// CreateAuthentication persists a new credential row.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error
}
