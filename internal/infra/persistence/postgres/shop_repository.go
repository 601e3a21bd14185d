// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// shopRepository implements the domain.ShopRepository interface using GORM.
type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository is the constructor for shopRepository.
func NewShopRepository(db *gorm.DB) repository.ShopRepository {
	return &shopRepository{db: db}
}

// FindByOwnerID retrieves the storefront owned by the given user.
func (repo *shopRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (*entity.Shop, error) {
	var shopM model.ShopModel
	err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(&shopM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by owner id")
	}

	return toShopDomain(&shopM), nil
}

// Upsert inserts the storefront row, or overwrites the existing row for the
// same owner. The conflict target is the unique owner_id index, so re-running
// a launch never creates a second storefront for the same user.
func (repo *shopRepository) Upsert(ctx context.Context, shop *entity.Shop) error {
	shopM := fromShopDomain(shop)

	// RETURNING refreshes the model from the stored row. On the conflict
	// path the database keeps the original id and created_at, not the
	// candidate values generated for the insert attempt.
	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "owner_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "description", "categories", "phone", "email",
				"upi_id", "address", "latitude", "longitude", "logo_url", "updated_at",
			}),
		}, clause.Returning{}).
		Create(shopM).Error

	if err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrShopUpsertFailed.WrapMessage("missing required storefront information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrShopUpsertFailed.WrapMessage("invalid owner reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert shop")
	}

	shop.ID = shopM.ID
	shop.CreatedAt = shopM.CreatedAt
	shop.UpdatedAt = shopM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toShopDomain converts a GORM ShopModel to a domain Shop entity.
func toShopDomain(data *model.ShopModel) *entity.Shop {
	if data == nil {
		return nil
	}

	shop := &entity.Shop{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Description: data.Description,
		Categories:  splitCategories(data.Categories),
		Phone:       data.Phone,
		Email:       data.Email,
		UPIID:       data.UPIID,
		Address:     data.Address,
		IsVerified:  data.IsVerified,
		LogoURL:     data.LogoURL,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}

	if data.Latitude != nil {
		shop.Latitude = *data.Latitude
	}
	if data.Longitude != nil {
		shop.Longitude = *data.Longitude
	}

	return shop
}

// fromShopDomain converts a domain Shop entity to a GORM ShopModel for persistence.
func fromShopDomain(data *entity.Shop) *model.ShopModel {
	if data == nil {
		return nil
	}

	shopM := &model.ShopModel{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Description: data.Description,
		Categories:  strings.Join(data.Categories, ","),
		Phone:       data.Phone,
		Email:       data.Email,
		UPIID:       data.UPIID,
		Address:     data.Address,
		IsVerified:  data.IsVerified,
		LogoURL:     data.LogoURL,
	}

	if data.HasLocation() {
		lat, lon := data.Latitude, data.Longitude
		shopM.Latitude = &lat
		shopM.Longitude = &lon
	}

	return shopM
}

func splitCategories(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	categories := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			categories = append(categories, trimmed)
		}
	}

	return categories
}
