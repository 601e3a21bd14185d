package handler

import (
	"log/slog"
	"net/http"
	"time"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ShopHandler exposes the merchant's own storefront.
type ShopHandler struct {
	shops  usecase.ShopUsecase
	logger *slog.Logger
}

// NewShopHandler is the constructor for ShopHandler, injected by Fx.
func NewShopHandler(shops usecase.ShopUsecase, logger *slog.Logger) *ShopHandler {
	return &ShopHandler{
		shops:  shops,
		logger: logger,
	}
}

// ShopResponse is the wire form of a storefront record.
type ShopResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Categories  []string  `json:"categories"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	UPIID       string    `json:"upiId,omitempty"`
	Address     string    `json:"address,omitempty"`
	Latitude    float64   `json:"latitude,omitempty"`
	Longitude   float64   `json:"longitude,omitempty"`
	IsVerified  bool      `json:"isVerified"`
	LogoURL     string    `json:"logoUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toShopResponse(shop *entity.Shop) *ShopResponse {
	if shop == nil {
		return nil
	}

	return &ShopResponse{
		ID:          shop.ID.String(),
		OwnerID:     shop.OwnerID.String(),
		Name:        shop.Name,
		Description: shop.Description,
		Categories:  shop.Categories,
		Phone:       shop.Phone,
		Email:       shop.Email,
		UPIID:       shop.UPIID,
		Address:     shop.Address,
		Latitude:    shop.Latitude,
		Longitude:   shop.Longitude,
		IsVerified:  shop.IsVerified,
		LogoURL:     shop.LogoURL,
		CreatedAt:   shop.CreatedAt,
		UpdatedAt:   shop.UpdatedAt,
	}
}

// GetMyShop returns the authenticated merchant's storefront.
func (h *ShopHandler) GetMyShop(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "用戶未登入")
	}

	shop, err := h.shops.GetShopByOwner(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toShopResponse(shop), "Shop retrieved")
}

// GetStorefrontQR streams the storefront share QR code as a PNG image.
func (h *ShopHandler) GetStorefrontQR(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "用戶未登入")
	}

	png, err := h.shops.StorefrontQR(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
