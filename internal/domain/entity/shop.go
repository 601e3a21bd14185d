// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Shop is the storefront record owned by exactly one merchant user.
// At most one Shop exists per OwnerID (unique-owner constraint); the row
// exists iff the owner has completed the onboarding Launch at least once.
type Shop struct {
	ID          uuid.UUID // The unique ID for this storefront record.
	OwnerID     uuid.UUID // The owning user's ID. Unique: one Shop per owner.
	Name        string    // The storefront's display name.
	Description string    // A description of the store and its products.
	Categories  []string  // Product categories the storefront lists under.
	Phone       string    // Contact phone number.
	Email       string    // Contact email, may differ from the owner's login email.
	UPIID       string    // Payment handle collected during onboarding.
	Address     string    // Human-readable street address.
	Latitude    float64   // Storefront latitude, zero when no location was captured.
	Longitude   float64   // Storefront longitude, zero when no location was captured.
	IsVerified  bool      // Whether the storefront passed marketplace verification.
	LogoURL     string    // URL of the uploaded shop logo, empty when none.
	CreatedAt   time.Time // Timestamp of when this storefront was first launched.
	UpdatedAt   time.Time // Timestamp of the last modification to this storefront.
}

// Location returns the storefront coordinates as an orb.Point (lon, lat).
func (s *Shop) Location() orb.Point {
	return orb.Point{s.Longitude, s.Latitude}
}

// HasLocation reports whether a geographic location was captured for the shop.
func (s *Shop) HasLocation() bool {
	return s.Latitude != 0 || s.Longitude != 0
}
