// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is the opaque proof of authentication issued by the identity
// backend. It exists from the sign-in event to the sign-out event and is
// owned exclusively by the session store.
type Session struct {
	UserID       uuid.UUID // The authenticated user's ID.
	AccessToken  string    // Short-lived JWT presented on API calls.
	RefreshToken string    // Long-lived token used to mint new access tokens.
	ExpiresAt    time.Time // Expiry of the refresh token, i.e. of the session itself.
}

// AuthEventType identifies an identity backend state change.
type AuthEventType string

const (
	// AuthEventSignedIn is emitted after a session has been issued.
	AuthEventSignedIn AuthEventType = "SIGNED_IN"
	// AuthEventSignedOut is emitted after the session has been revoked.
	AuthEventSignedOut AuthEventType = "SIGNED_OUT"
)

// AuthEvent is the payload delivered to auth state change subscribers.
// Session is set for SIGNED_IN and nil for SIGNED_OUT.
type AuthEvent struct {
	Type    AuthEventType
	Session *Session
}

// SessionView is the authoritative snapshot of identity state exposed by the
// session store. All fields are owned by the store; readers receive copies.
type SessionView struct {
	Session         *Session // Nil when the visitor is a guest.
	User            *User    // Resolved profile row, nil until resolution succeeds.
	Role            Role     // RoleGuest until a profile resolves.
	MerchantProfile *Shop    // Owned storefront, nil unless resolved for a merchant.
	IsLoading       bool     // True until the first resolution attempt completes.
}

// IsGuest reports whether no session exists.
func (v SessionView) IsGuest() bool {
	return v.Session == nil
}

// IsLoggedIn reports whether a session exists.
func (v SessionView) IsLoggedIn() bool {
	return v.Session != nil
}

// IsMerchant reports whether the resolved role is merchant.
func (v SessionView) IsMerchant() bool {
	return v.Role == RoleMerchant
}

// HasMerchantProfile reports whether a storefront row is loaded.
func (v SessionView) HasMerchantProfile() bool {
	return v.MerchantProfile != nil
}

// EffectiveRole computes the routing role from the view. It is never stored.
func (v SessionView) EffectiveRole() EffectiveRole {
	switch {
	case v.IsGuest():
		return EffectiveGuest
	case v.Role == RoleMerchant && v.MerchantProfile == nil:
		return EffectiveMerchantPending
	case v.Role == RoleMerchant:
		return EffectiveMerchantActive
	default:
		return EffectiveUser
	}
}
