package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrShopNotFound is a domain-specific error returned when no storefront row exists.
var ErrShopNotFound = errors.New("shop not found")

// ShopRepository defines the operations for the storefront store.
type ShopRepository interface {
	// FindByOwnerID retrieves the storefront owned by the given user.
	// The owner_id column is unique, so at most one row can match.
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (*entity.Shop, error)

	// Upsert inserts the storefront, or overwrites the prior row when one
	// already exists for the same owner (conflict on owner_id). Re-running
	// with the same owner and data yields exactly one row, which is what
	// makes the Launch transaction's first write idempotent.
	Upsert(ctx context.Context, shop *entity.Shop) error
}
