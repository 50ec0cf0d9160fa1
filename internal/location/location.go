package location

import (
	"context"
	"log/slog"
	"strings"

	"city-weather/internal/apperrors"
	"city-weather/internal/config"
	"city-weather/internal/providers/openmeteo"
	"city-weather/internal/timezone"
	"city-weather/internal/types"
)

// Service resolves city names to coordinates
type Service interface {
	// Resolve returns the first geocoding match for city
	Resolve(ctx context.Context, city string) (*types.Location, error)
}

// GeocodingProvider defines the interface for forward geocoding providers
type GeocodingProvider interface {
	Search(ctx context.Context, name string, count int) (*openmeteo.GeocodingAPIResponse, error)
}

// locationService implements the Service interface
type locationService struct {
	geocoder        GeocodingProvider
	timezoneService timezone.Service
	logger          *slog.Logger
}

// NewLocationService creates a new location service backed by Open-Meteo
func NewLocationService(cfg *config.Config, doer openmeteo.Doer, logger *slog.Logger) Service {
	var tzSvc timezone.Service
	if cfg.Weather.TimezoneFallback {
		tzSvc = timezone.NewService()
	}

	geocoder := openmeteo.NewGeocodingClient(openmeteo.Options{
		Doer:      doer,
		BaseURL:   cfg.Weather.GeocodingURL,
		UserAgent: cfg.Weather.UserAgent,
	})

	return NewLocationServiceWithProviders(geocoder, tzSvc, logger)
}

// NewLocationServiceWithProviders creates a new location service with custom providers
// This is useful for testing with mock providers. timezoneService may be nil.
func NewLocationServiceWithProviders(
	geocoder GeocodingProvider,
	timezoneService timezone.Service,
	logger *slog.Logger,
) Service {
	return &locationService{
		geocoder:        geocoder,
		timezoneService: timezoneService,
		logger:          logger.With("component", "location-service"),
	}
}

// Resolve validates city, geocodes it and returns the first match
func (s *locationService) Resolve(ctx context.Context, city string) (*types.Location, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, apperrors.InvalidInput(apperrors.MsgCityRequired)
	}

	resp, err := s.geocoder.Search(ctx, city, 1)
	if err != nil {
		err = apperrors.FromContext(ctx, err)
		s.logger.Debug("geocoding failed", "city", city, "error", err)
		return nil, err
	}

	if resp == nil || len(resp.Results) == 0 {
		return nil, apperrors.NotFound(apperrors.MsgCityNotFound)
	}

	loc := translateResult(resp.Results[0])
	if loc.Timezone == "" {
		s.fillTimezone(loc)
	}

	s.logger.Debug("resolved city",
		"city", city,
		"name", loc.Name,
		"latitude", loc.Coordinates.Latitude,
		"longitude", loc.Coordinates.Longitude,
		"timezone", loc.Timezone,
	)

	return loc, nil
}

// fillTimezone derives the IANA zone from coordinates. Failure is not fatal.
func (s *locationService) fillTimezone(loc *types.Location) {
	if s.timezoneService == nil {
		return
	}

	tz, err := s.timezoneService.GetTimezone(loc.Coordinates.Latitude, loc.Coordinates.Longitude)
	if err != nil {
		s.logger.Warn("failed to determine timezone",
			"latitude", loc.Coordinates.Latitude,
			"longitude", loc.Coordinates.Longitude,
			"error", err,
		)
		return
	}
	loc.Timezone = tz
}

// translateResult converts an Open-Meteo geocoding result to the domain Location type
func translateResult(r openmeteo.GeocodingResult) *types.Location {
	return &types.Location{
		Name:        r.Name,
		Coordinates: types.NewCoords(r.Latitude, r.Longitude),
		Country:     r.Country,
		Admin1:      r.Admin1,
		Timezone:    r.Timezone,
	}
}
