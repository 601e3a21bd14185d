package service

import (
	"context"

	"github.com/google/uuid"
)

// LogoStorage persists shop logo images. The wizard carries the photo bytes
// in memory as a preview; the upload happens only at Launch time.
type LogoStorage interface {
	// StoreLogo writes the image bytes for the shop and returns a public URL.
	StoreLogo(ctx context.Context, shopID uuid.UUID, contentType string, data []byte) (string, error)
}
