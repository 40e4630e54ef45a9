package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// DefaultGeocodeURL is the unauthenticated reverse-geocoding endpoint.
const DefaultGeocodeURL = "https://api.bigdatacloud.net/data/reverse-geocode-client"

// DefaultGeocodeTimeout bounds a single reverse-geocode request.
const DefaultGeocodeTimeout = 10 * time.Second

// DefaultCacheTTL is how long a cached geocode result stays fresh.
const DefaultCacheTTL = 24 * time.Hour

// GeocodeError represents a failure talking to the geocoding service.
// Callers treat geocoding failures as non-fatal and degrade to a
// coordinates-only location.
type GeocodeError struct {
	Coords  Coordinates
	Message string
	Cause   error
}

func (e *GeocodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("geocode error for %.4f,%.4f: %s: %v", e.Coords.Latitude, e.Coords.Longitude, e.Message, e.Cause)
	}
	return fmt.Sprintf("geocode error for %.4f,%.4f: %s", e.Coords.Latitude, e.Coords.Longitude, e.Message)
}

func (e *GeocodeError) Unwrap() error {
	return e.Cause
}

// Address holds the resolved locality fields for a coordinate.
type Address struct {
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	Country    string `json:"country,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
}

// GeocoderOptions configures the reverse geocoder.
type GeocoderOptions struct {
	BaseURL  string
	Timeout  time.Duration
	CacheTTL time.Duration
	// Redis is an optional shared cache. Nil disables caching.
	Redis *redis.Client
}

// DefaultGeocoderOptions returns sensible defaults for geocoding.
func DefaultGeocoderOptions() *GeocoderOptions {
	return &GeocoderOptions{
		BaseURL:  DefaultGeocodeURL,
		Timeout:  DefaultGeocodeTimeout,
		CacheTTL: DefaultCacheTTL,
	}
}

// Geocoder resolves coordinates to locality information. Concurrent lookups
// for the same coordinate are collapsed into a single upstream request.
type Geocoder struct {
	opts   *GeocoderOptions
	client *http.Client
	group  singleflight.Group
}

// NewGeocoder creates a reverse geocoder.
func NewGeocoder(opts *GeocoderOptions) *Geocoder {
	if opts == nil {
		opts = DefaultGeocoderOptions()
	}
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultGeocodeURL
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultGeocodeTimeout
	}
	if opts.CacheTTL == 0 {
		opts.CacheTTL = DefaultCacheTTL
	}
	return &Geocoder{
		opts:   opts,
		client: &http.Client{Timeout: opts.Timeout},
	}
}

// geocodeResponse mirrors the fields we read from the service payload.
type geocodeResponse struct {
	City                 string `json:"city"`
	Locality             string `json:"locality"`
	PrincipalSubdivision string `json:"principalSubdivision"`
	CountryName          string `json:"countryName"`
	Postcode             string `json:"postcode"`
}

// Reverse resolves a coordinate to an address. The cache is consulted
// first when configured; cache failures fall through to the live request.
func (g *Geocoder) Reverse(ctx context.Context, coords Coordinates) (*Address, error) {
	key := fmt.Sprintf("geocode:%.4f:%.4f", coords.Latitude, coords.Longitude)

	if g.opts.Redis != nil {
		if cached, err := g.opts.Redis.Get(ctx, key).Bytes(); err == nil {
			var addr Address
			if err := json.Unmarshal(cached, &addr); err == nil {
				return &addr, nil
			}
		}
	}

	v, err, _ := g.group.Do(key, func() (any, error) {
		return g.fetch(ctx, coords)
	})
	if err != nil {
		return nil, err
	}
	addr := v.(*Address)

	if g.opts.Redis != nil {
		if payload, err := json.Marshal(addr); err == nil {
			// Best effort; a cache write failure never fails the lookup.
			g.opts.Redis.Set(ctx, key, payload, g.opts.CacheTTL)
		}
	}

	return addr, nil
}

func (g *Geocoder) fetch(ctx context.Context, coords Coordinates) (*Address, error) {
	reqURL := fmt.Sprintf("%s?latitude=%s&longitude=%s&localityLanguage=en",
		g.opts.BaseURL,
		url.QueryEscape(fmt.Sprintf("%f", coords.Latitude)),
		url.QueryEscape(fmt.Sprintf("%f", coords.Longitude)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &GeocodeError{Coords: coords, Message: "failed to create request", Cause: err}
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, &GeocodeError{Coords: coords, Message: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &GeocodeError{Coords: coords, Message: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &GeocodeError{Coords: coords, Message: "failed to read response", Cause: err}
	}

	var payload geocodeResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &GeocodeError{Coords: coords, Message: "failed to parse response", Cause: err}
	}

	city := payload.City
	if city == "" {
		city = payload.Locality
	}

	return &Address{
		City:       city,
		State:      payload.PrincipalSubdivision,
		Country:    payload.CountryName,
		PostalCode: payload.Postcode,
	}, nil
}
