// Package geo implements position acquisition and reverse geocoding over HTTP.
package geo

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultGeolocateTimeout = 10 * time.Second

// httpGeolocator implements service.Geolocator against a geolocation API
// endpoint (Google geolocation wire format).
type httpGeolocator struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// GeolocatorParams holds dependencies for the geolocator, injected by Fx.
type GeolocatorParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewGeolocator creates the HTTP-backed geolocator.
func NewGeolocator(params GeolocatorParams) service.Geolocator {
	endpoint := ""
	if params.Config != nil && params.Config.Geolocation != nil {
		endpoint = params.Config.Geolocation.Endpoint
	}

	return &httpGeolocator{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: defaultGeolocateTimeout,
		},
		logger: params.Logger,
	}
}

type geolocateRequest struct {
	ConsiderIP         bool `json:"considerIp"`
	EnableHighAccuracy bool `json:"enableHighAccuracy,omitempty"`
}

type geolocateResponse struct {
	Location struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"location"`
	Accuracy float64 `json:"accuracy"`
}

// CurrentPosition acquires the position once. There is no retry; callers see
// the timeout or endpoint error directly.
func (g *httpGeolocator) CurrentPosition(ctx context.Context, opts service.GeolocationOptions) (orb.Point, error) {
	if g.endpoint == "" {
		return orb.Point{}, errors.New("geolocation endpoint not configured")
	}

	if opts.TimeoutMs > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(opts.TimeoutMs)*time.Millisecond)
		defer cancel()
	}

	body, err := json.Marshal(geolocateRequest{
		ConsiderIP:         true,
		EnableHighAccuracy: opts.EnableHighAccuracy,
	})
	if err != nil {
		return orb.Point{}, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return orb.Point{}, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return orb.Point{}, errors.Wrap(err, "geolocation request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return orb.Point{}, errors.Errorf("geolocation endpoint returned status %d", resp.StatusCode)
	}

	var result geolocateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return orb.Point{}, errors.Wrap(err, "failed to decode geolocation response")
	}

	g.logger.Debug("Position acquired",
		slog.Float64("lat", result.Location.Lat),
		slog.Float64("lon", result.Location.Lng),
		slog.Float64("accuracy", result.Accuracy),
	)

	return orb.Point{result.Location.Lng, result.Location.Lat}, nil
}
