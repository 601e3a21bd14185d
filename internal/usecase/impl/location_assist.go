package impl

import (
	"context"
	"fmt"
	"log/slog"

	"bazaar/config"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// locationAssist runs the one-shot geolocation plus best-effort reverse
// geocode used by step 2 of the onboarding wizard. Geolocation failure is
// fatal to the assist; reverse-geocode failure falls back to a raw
// "lat, lon" string, since an address label is an enrichment and never a
// launch requirement.
type locationAssist struct {
	locator  service.Geolocator
	geocoder service.ReverseGeocoder
	options  service.GeolocationOptions
	logger   *slog.Logger
}

func newLocationAssist(
	locator service.Geolocator,
	geocoder service.ReverseGeocoder,
	cfg *config.Config,
	logger *slog.Logger,
) *locationAssist {
	options := service.GeolocationOptions{}
	if cfg != nil && cfg.Geolocation != nil {
		options.EnableHighAccuracy = cfg.Geolocation.EnableHighAccuracy
		options.TimeoutMs = cfg.Geolocation.TimeoutMs
	}

	return &locationAssist{
		locator:  locator,
		geocoder: geocoder,
		options:  options,
		logger:   logger,
	}
}

// Acquire returns the current position and a display address for it.
func (l *locationAssist) Acquire(ctx context.Context) (orb.Point, string, error) {
	point, err := l.locator.CurrentPosition(ctx, l.options)
	if err != nil {
		return orb.Point{}, "", domainerrors.ErrGeolocationFailed.WrapMessage(err.Error())
	}

	address, err := l.geocoder.Lookup(ctx, point)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			// Wizard teardown cancelled the assist; propagate so the
			// caller discards the result instead of applying it.
			return orb.Point{}, "", err
		}

		l.logger.Warn("Reverse geocode failed, falling back to raw coordinates",
			slog.Float64("lat", point.Lat()),
			slog.Float64("lon", point.Lon()),
			slog.Any("error", err),
		)

		return point, fallbackAddress(point), nil
	}

	return point, address, nil
}

func fallbackAddress(point orb.Point) string {
	return fmt.Sprintf("%.6f, %.6f", point.Lat(), point.Lon())
}
