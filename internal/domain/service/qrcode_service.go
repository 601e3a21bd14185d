package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateStorefrontQR generates a QR code encoding the storefront share link.
	GenerateStorefrontQR(shopID uuid.UUID) ([]byte, error)

	// ParseStorefrontQR parses QR code data and returns the shop ID.
	ParseStorefrontQR(qrData string) (uuid.UUID, error)
}
