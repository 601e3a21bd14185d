// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the profile row resolved for an authenticated account.
// It is created by the profile resolver on the first successful fetch after
// sign-in and is immutable except by a fresh resolve.
type User struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the user.
	DisplayName string    // The user's display name or real name.
	Email       string    // The user's primary contact email, often used as a login identifier.
	Role        Role      // The stored role, either RoleUser or RoleMerchant. Never RoleGuest.
	AvatarURL   string    // URL of the user's avatar image, empty when unset.
	CreatedAt   time.Time // Timestamp of when this user account was created.
	UpdatedAt   time.Time // Timestamp of the last modification to this user's data.
}

// IsMerchant reports whether the stored role is merchant.
// Note: a merchant role does NOT imply a Shop row exists; the shop fetch may
// have failed or raced with the role write. That state is "merchant-pending".
func (u *User) IsMerchant() bool {
	return u != nil && u.Role == RoleMerchant
}
