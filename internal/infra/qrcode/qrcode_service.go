// Package qrcode generates storefront share codes.
package qrcode

import (
	"encoding/json"
	"fmt"

	"bazaar/config"
	"bazaar/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"go.uber.org/fx"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// StorefrontQRData represents the QR code data structure
type StorefrontQRData struct {
	ShopID string `json:"shop_id"`
	Type   string `json:"type"`
	URL    string `json:"url"`
}

const qrTypeStorefront = "storefront"

// Params holds dependencies for the QR code service, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(params Params) service.QRCodeService {
	size := 256
	levelName := "M"
	baseURL := ""
	if params.Config != nil && params.Config.QRCode != nil {
		if params.Config.QRCode.Size > 0 {
			size = params.Config.QRCode.Size
		}
		if params.Config.QRCode.ErrorCorrectionLevel != "" {
			levelName = params.Config.QRCode.ErrorCorrectionLevel
		}
		baseURL = params.Config.QRCode.BaseURL
	}

	// Set error correction level
	var level qrcode.RecoveryLevel
	switch levelName {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              baseURL,
	}
}

// GenerateStorefrontQR generates a QR code encoding the storefront share link.
func (s *qrcodeService) GenerateStorefrontQR(shopID uuid.UUID) ([]byte, error) {
	data := StorefrontQRData{
		ShopID: shopID.String(),
		Type:   qrTypeStorefront,
		URL:    fmt.Sprintf("%s/shop/%s", s.baseURL, shopID),
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseStorefrontQR parses QR code data and returns the shop ID.
func (s *qrcodeService) ParseStorefrontQR(qrData string) (uuid.UUID, error) {
	var data StorefrontQRData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != qrTypeStorefront {
		return uuid.Nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	shopID, err := uuid.Parse(data.ShopID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse shop ID: %w", err)
	}

	return shopID, nil
}
