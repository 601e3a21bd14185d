package service

import (
	"context"

	"github.com/paulmach/orb"
)

// GeolocationOptions configures a one-shot position request.
type GeolocationOptions struct {
	EnableHighAccuracy bool
	TimeoutMs          int
}

// Geolocator acquires the device's current position once.
// It fails with a permission or timeout error; there is no retry.
type Geolocator interface {
	// CurrentPosition returns the current coordinates as (lon, lat).
	CurrentPosition(ctx context.Context, opts GeolocationOptions) (orb.Point, error)
}

// ReverseGeocoder resolves coordinates into a display address.
// It is best effort: callers must tolerate failure and fall back to a raw
// "lat, lon" string.
type ReverseGeocoder interface {
	// Lookup returns the display name for the coordinates, or an error when
	// the endpoint fails or returns no display name.
	Lookup(ctx context.Context, point orb.Point) (string, error)
}
