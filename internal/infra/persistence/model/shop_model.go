package model

import (
	"time"

	"github.com/google/uuid"
)

// ShopModel mirrors the 'shops' table. The unique index on OwnerID enforces
// at most one storefront per user, which makes the launch upsert idempotent.
type ShopModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_shops_owner_id"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	Categories  string    `gorm:"type:text"` // comma-joined category slugs
	Phone       string    `gorm:"type:varchar(30)"`
	Email       string    `gorm:"type:varchar(255)"`
	UPIID       string    `gorm:"column:upi_id;type:varchar(255)"`
	Address     string    `gorm:"type:text"`
	Latitude    *float64  `gorm:"type:double precision"`
	Longitude   *float64  `gorm:"type:double precision"`
	IsVerified  bool      `gorm:"not null;default:false"`
	LogoURL     string    `gorm:"type:varchar(512)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShopModel) TableName() string {
	return "shops"
}
