package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultReverseGeocodeTimeout = 5 * time.Second

// nominatimGeocoder implements service.ReverseGeocoder against a
// Nominatim-compatible endpoint.
type nominatimGeocoder struct {
	endpoint   string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// ReverseGeocoderParams holds dependencies for the reverse geocoder, injected by Fx.
type ReverseGeocoderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewReverseGeocoder creates the Nominatim-backed reverse geocoder.
func NewReverseGeocoder(params ReverseGeocoderParams) service.ReverseGeocoder {
	endpoint := ""
	userAgent := ""
	timeout := defaultReverseGeocodeTimeout
	if params.Config != nil && params.Config.ReverseGeocode != nil {
		endpoint = params.Config.ReverseGeocode.Endpoint
		userAgent = params.Config.ReverseGeocode.UserAgent
		if params.Config.ReverseGeocode.Timeout > 0 {
			timeout = params.Config.ReverseGeocode.Timeout
		}
	}

	return &nominatimGeocoder{
		endpoint:  endpoint,
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: params.Logger,
	}
}

type nominatimResponse struct {
	DisplayName string `json:"display_name"`
}

// Lookup resolves the coordinates into a display address. The caller owns the
// fallback; any failure here surfaces as an error.
func (g *nominatimGeocoder) Lookup(ctx context.Context, point orb.Point) (string, error) {
	if g.endpoint == "" {
		return "", errors.New("reverse geocode endpoint not configured")
	}

	query := url.Values{}
	query.Set("format", "jsonv2")
	query.Set("lat", fmt.Sprintf("%f", point.Lat()))
	query.Set("lon", fmt.Sprintf("%f", point.Lon()))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return "", errors.WithStack(err)
	}
	if g.userAgent != "" {
		req.Header.Set("User-Agent", g.userAgent)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "reverse geocode request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.Errorf("reverse geocode endpoint returned status %d", resp.StatusCode)
	}

	var result nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", errors.Wrap(err, "failed to decode reverse geocode response")
	}

	if result.DisplayName == "" {
		return "", errors.New("reverse geocode returned no display name")
	}

	g.logger.Debug("Reverse geocode resolved",
		slog.Float64("lat", point.Lat()),
		slog.Float64("lon", point.Lon()),
	)

	return result.DisplayName, nil
}
