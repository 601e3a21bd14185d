package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type shopFixtures struct {
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	shopRepo  *mockRepo.MockShopRepository
	qrcode    *mockSvc.MockQRCodeService
}

func createTestShopService(t *testing.T) (usecase.ShopUsecase, *shopFixtures) {
	t.Helper()

	fixtures := &shopFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		shopRepo:  mockRepo.NewMockShopRepository(t),
		qrcode:    mockSvc.NewMockQRCodeService(t),
	}

	fixtures.factory.EXPECT().ShopRepo().Return(fixtures.shopRepo).Maybe()
	fixtures.txManager.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fixtures.factory)
		}).Maybe()

	service := NewShopService(ShopServiceParams{
		TxManager: fixtures.txManager,
		QRCode:    fixtures.qrcode,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return service, fixtures
}

func TestShopService_GetShopByOwner(t *testing.T) {
	service, fixtures := createTestShopService(t)
	ownerID := uuid.New()

	fixtures.shopRepo.EXPECT().FindByOwnerID(mock.Anything, ownerID).Return(&entity.Shop{
		ID:      uuid.New(),
		OwnerID: ownerID,
		Name:    "Apple Cart",
	}, nil)

	shop, err := service.GetShopByOwner(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Equal(t, "Apple Cart", shop.Name)
}

func TestShopService_GetShopByOwner_NotFound(t *testing.T) {
	service, fixtures := createTestShopService(t)
	ownerID := uuid.New()

	fixtures.shopRepo.EXPECT().FindByOwnerID(mock.Anything, ownerID).Return(nil, repository.ErrShopNotFound)

	_, err := service.GetShopByOwner(context.Background(), ownerID)
	assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)
}

func TestShopService_StorefrontQR(t *testing.T) {
	service, fixtures := createTestShopService(t)
	ownerID := uuid.New()
	shopID := uuid.New()

	fixtures.shopRepo.EXPECT().FindByOwnerID(mock.Anything, ownerID).Return(&entity.Shop{
		ID:      shopID,
		OwnerID: ownerID,
	}, nil)
	fixtures.qrcode.EXPECT().GenerateStorefrontQR(shopID).Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)

	png, err := service.StorefrontQR(context.Background(), ownerID)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestShopService_StorefrontQR_NoShop(t *testing.T) {
	service, fixtures := createTestShopService(t)
	ownerID := uuid.New()

	fixtures.shopRepo.EXPECT().FindByOwnerID(mock.Anything, ownerID).Return(nil, repository.ErrShopNotFound)

	_, err := service.StorefrontQR(context.Background(), ownerID)
	assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)
}

func TestShopService_GetShopByOwner_RepositoryError(t *testing.T) {
	service, fixtures := createTestShopService(t)
	ownerID := uuid.New()

	fixtures.shopRepo.EXPECT().FindByOwnerID(mock.Anything, ownerID).Return(nil, errors.New("db timeout"))

	_, err := service.GetShopByOwner(context.Background(), ownerID)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrShopNotFound)
}
