// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the stored role of an account in the system.
// Guest is never stored: it is the absence of a session, not a role value.
type Role string

const (
	// RoleGuest indicates the absence of an authenticated session.
	RoleGuest Role = "guest"
	// RoleUser indicates a regular shopper role.
	RoleUser Role = "user"
	// RoleMerchant indicates a merchant (vendor) role.
	RoleMerchant Role = "merchant"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid stored value.
// RoleGuest is deliberately excluded: a resolved profile row is never "guest".
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleMerchant:
		return true
	default:
		return false
	}
}

// EffectiveRole is the computed role used for routing decisions.
// It is derived from the current session view and never stored.
type EffectiveRole string

const (
	// EffectiveGuest means no session exists.
	EffectiveGuest EffectiveRole = "guest"
	// EffectiveUser means an authenticated shopper.
	EffectiveUser EffectiveRole = "user"
	// EffectiveMerchantPending means role=merchant but no Shop row is loaded.
	// Downstream policy treats this as "onboarding incomplete", not an error.
	EffectiveMerchantPending EffectiveRole = "merchant-pending"
	// EffectiveMerchantActive means role=merchant with a provisioned Shop.
	EffectiveMerchantActive EffectiveRole = "merchant-active"
)

// String returns the string representation of the EffectiveRole.
func (r EffectiveRole) String() string {
	return string(r)
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
