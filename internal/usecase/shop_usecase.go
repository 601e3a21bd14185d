// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ShopUsecase exposes read operations over launched storefronts.
type ShopUsecase interface {
	// GetShopByOwner returns the storefront owned by the user.
	GetShopByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Shop, error)

	// StorefrontQR renders the share QR code for the owner's storefront.
	StorefrontQR(ctx context.Context, ownerID uuid.UUID) ([]byte, error)
}
