package qrcode

import (
	"encoding/json"
	"testing"

	"bazaar/config"
	"bazaar/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(size int, level string) service.QRCodeService {
	return NewQRCodeService(Params{
		Config: &config.Config{
			QRCode: &config.QRCodeConfig{
				Size:                 size,
				ErrorCorrectionLevel: level,
				BaseURL:              "https://bazaar.example.com",
			},
		},
	})
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, svc)
		})
	}
}

func TestQRCodeService_GenerateStorefrontQR(t *testing.T) {
	svc := newTestService(256, "M")
	shopID := uuid.New()

	qrBytes, err := svc.GenerateStorefrontQR(shopID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_ParseStorefrontQR(t *testing.T) {
	svc := newTestService(256, "M")
	shopID := uuid.New()

	payload, err := json.Marshal(StorefrontQRData{
		ShopID: shopID.String(),
		Type:   "storefront",
		URL:    "https://bazaar.example.com/shop/" + shopID.String(),
	})
	require.NoError(t, err)

	parsed, err := svc.ParseStorefrontQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, shopID, parsed)
}

func TestQRCodeService_ParseStorefrontQR_InvalidType(t *testing.T) {
	svc := newTestService(256, "M")

	payload, err := json.Marshal(StorefrontQRData{
		ShopID: uuid.NewString(),
		Type:   "subscription",
	})
	require.NoError(t, err)

	_, parseErr := svc.ParseStorefrontQR(string(payload))
	assert.ErrorContains(t, parseErr, "invalid QR code type")
}

func TestQRCodeService_ParseStorefrontQR_InvalidJSON(t *testing.T) {
	svc := newTestService(256, "M")

	_, err := svc.ParseStorefrontQR("not json")
	assert.ErrorContains(t, err, "failed to unmarshal")
}

func TestQRCodeService_ParseStorefrontQR_InvalidShopID(t *testing.T) {
	svc := newTestService(256, "M")

	payload, err := json.Marshal(StorefrontQRData{
		ShopID: "not-a-uuid",
		Type:   "storefront",
	})
	require.NoError(t, err)

	_, parseErr := svc.ParseStorefrontQR(string(payload))
	assert.ErrorContains(t, parseErr, "failed to parse shop ID")
}

func TestQRCodeService_RoundTrip_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(tt.size, "M")

			qrBytes, err := svc.GenerateStorefrontQR(uuid.New())
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}
