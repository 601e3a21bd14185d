package impl

import (
	"context"
	"log/slog"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// shopService implements the ShopUsecase interface.
type shopService struct {
	txManager repository.TransactionManager
	qrcode    service.QRCodeService
	logger    *slog.Logger
}

// ShopServiceParams holds dependencies for the shop service, injected by Fx.
type ShopServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	QRCode    service.QRCodeService
	Logger    *slog.Logger
}

// NewShopService is the constructor for shopService.
func NewShopService(params ShopServiceParams) usecase.ShopUsecase {
	return &shopService{
		txManager: params.TxManager,
		qrcode:    params.QRCode,
		logger:    params.Logger,
	}
}

// GetShopByOwner returns the storefront owned by the user.
func (srv *shopService) GetShopByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Shop, error) {
	var shop *entity.Shop

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		foundShop, err := repoFactory.ShopRepo().FindByOwnerID(ctx, ownerID)
		if err != nil {
			if errors.Is(err, repository.ErrShopNotFound) {
				return domainerrors.ErrShopNotFound
			}

			return errors.Wrap(err, "failed to find shop")
		}
		shop = foundShop

		return nil
	})
	if err != nil {
		return nil, err
	}

	return shop, nil
}

// StorefrontQR renders the share QR code for the owner's storefront.
func (srv *shopService) StorefrontQR(ctx context.Context, ownerID uuid.UUID) ([]byte, error) {
	shop, err := srv.GetShopByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GenerateStorefrontQR(shop.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate storefront QR")
	}

	return png, nil
}
