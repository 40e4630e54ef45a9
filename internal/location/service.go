package location

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jonathan/career-agent/internal/geo"
	"github.com/jonathan/career-agent/internal/types"
)

// Position error codes, mirroring the geolocation API.
const (
	CodePermissionDenied    = 1
	CodePositionUnavailable = 2
	CodeTimeout             = 3
)

// MapPositionError translates a position error code into the user-facing
// message.
func MapPositionError(code int) string {
	switch code {
	case CodePermissionDenied:
		return "Location access denied. Please enable location permissions in your browser settings."
	case CodePositionUnavailable:
		return "Location information unavailable. Please try again later."
	case CodeTimeout:
		return "Location request timed out. Please try again."
	default:
		return "An unknown error occurred while getting location."
	}
}

// StateStore is the persistence port the service talks to.
type StateStore interface {
	Save(ctx context.Context, loc *types.UserLocation, perm types.LocationPermission) error
	Load(ctx context.Context) (*types.UserLocation, types.LocationPermission, error)
	Clear(ctx context.Context) error
}

// ReverseGeocoder resolves a coordinate to an address.
type ReverseGeocoder interface {
	Reverse(ctx context.Context, coords geo.Coordinates) (*geo.Address, error)
}

// Service coordinates location acquisition: reverse geocoding is strictly
// best-effort, so a geocoding failure degrades to a coordinates-only
// location instead of failing the operation.
type Service struct {
	store    StateStore
	geocoder ReverseGeocoder
	log      zerolog.Logger
}

// NewService creates a location service. The geocoder may be nil, in which
// case every acquired location is coordinates-only.
func NewService(store StateStore, geocoder ReverseGeocoder, log zerolog.Logger) *Service {
	return &Service{store: store, geocoder: geocoder, log: log}
}

// Acquire records the given coordinate as the user's location, enriched
// with address fields when reverse geocoding succeeds, and marks the
// permission granted.
func (s *Service) Acquire(ctx context.Context, lat, lon float64) (*types.UserLocation, error) {
	loc := &types.UserLocation{Latitude: lat, Longitude: lon}

	if s.geocoder != nil {
		addr, err := s.geocoder.Reverse(ctx, geo.Coordinates{Latitude: lat, Longitude: lon})
		if err != nil {
			s.log.Warn().Err(err).
				Float64("latitude", lat).
				Float64("longitude", lon).
				Msg("reverse geocoding failed, storing coordinates only")
		} else {
			loc.City = addr.City
			loc.State = addr.State
			loc.Country = addr.Country
			loc.PostalCode = addr.PostalCode
		}
	}

	if err := s.store.Save(ctx, loc, types.PermissionGranted); err != nil {
		return nil, err
	}
	return loc, nil
}

// Deny records that the user refused location access.
func (s *Service) Deny(ctx context.Context) error {
	return s.store.Save(ctx, nil, types.PermissionDenied)
}

// Current returns the saved location and permission state.
func (s *Service) Current(ctx context.Context) (*types.UserLocation, types.LocationPermission, error) {
	return s.store.Load(ctx)
}

// Clear wipes the saved location and returns the permission to prompt.
func (s *Service) Clear(ctx context.Context) error {
	return s.store.Clear(ctx)
}
