package weather

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"city-weather/internal/apperrors"
	"city-weather/internal/config"
	"city-weather/internal/location"
	"city-weather/internal/providers/openmeteo"

	"golang.org/x/sync/errgroup"
)

type ForecastProvider interface {
	// GetCurrent fetches current conditions for the given coordinates and timezone
	GetCurrent(ctx context.Context, latitude, longitude float64, timezone string) (*openmeteo.CurrentAPIResponse, error)
	// GetDaily fetches the daily series for the given coordinates and timezone
	GetDaily(ctx context.Context, latitude, longitude float64, forecastDays int, timezone string) (*openmeteo.DailyAPIResponse, error)
}

type Service interface {
	GetCurrent(ctx context.Context, city string) (*CurrentConditions, error)
	GetForecast(ctx context.Context, city string) (*Forecast, error)
	// GetReport fetches current conditions and the forecast concurrently
	GetReport(ctx context.Context, city string) (*Report, error)
}

type weatherService struct {
	locationService  location.Service
	forecastProvider ForecastProvider
	timeout          time.Duration
	forecastDays     int
	logger           *slog.Logger
}

// NewTransport builds the HTTP transport shared by all Open-Meteo clients
func NewTransport(cfg *config.Config) openmeteo.Doer {
	var doer openmeteo.Doer = &http.Client{}
	if cfg.Weather.RateLimit.Enabled {
		doer = openmeteo.NewRateLimitedDoer(doer, cfg.Weather.RateLimit.RequestsPerSecond, cfg.Weather.RateLimit.Burst)
	}
	return doer
}

func NewWeatherService(cfg *config.Config, logger *slog.Logger) Service {
	doer := NewTransport(cfg)
	forecastClient := openmeteo.NewForecastClient(openmeteo.Options{
		Doer:      doer,
		BaseURL:   cfg.Weather.ForecastURL,
		UserAgent: cfg.Weather.UserAgent,
	})
	return NewWeatherServiceWithProviders(location.NewLocationService(cfg, doer, logger), forecastClient, cfg, logger)
}

func NewWeatherServiceWithProviders(
	locationService location.Service,
	forecastProvider ForecastProvider,
	cfg *config.Config,
	logger *slog.Logger,
) Service {
	forecastDays := cfg.Weather.ForecastDays
	if forecastDays <= 0 || forecastDays > config.MaxForecastDays {
		forecastDays = config.MaxForecastDays
	}

	return &weatherService{
		locationService:  locationService,
		forecastProvider: forecastProvider,
		timeout:          cfg.Weather.Timeout,
		forecastDays:     forecastDays,
		logger:           logger.With("component", "weather-service"),
	}
}

func (s *weatherService) GetCurrent(ctx context.Context, city string) (*CurrentConditions, error) {
	// One budget covers geocoding and the weather call
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	loc, err := s.locationService.Resolve(ctx, city)
	if err != nil {
		return nil, err
	}

	apiResponse, err := s.forecastProvider.GetCurrent(ctx, loc.Coordinates.Latitude, loc.Coordinates.Longitude, loc.Timezone)
	if err != nil {
		err = apperrors.FromContext(ctx, err)
		s.logger.Error("failed to get current weather from provider",
			"city", loc.Name,
			"latitude", loc.Coordinates.Latitude,
			"longitude", loc.Coordinates.Longitude,
			"error", err,
		)
		return nil, err
	}

	return mapCurrentAPIResponse(loc, apiResponse)
}

func (s *weatherService) GetForecast(ctx context.Context, city string) (*Forecast, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	loc, err := s.locationService.Resolve(ctx, city)
	if err != nil {
		return nil, err
	}

	apiResponse, err := s.forecastProvider.GetDaily(ctx, loc.Coordinates.Latitude, loc.Coordinates.Longitude, s.forecastDays, loc.Timezone)
	if err != nil {
		err = apperrors.FromContext(ctx, err)
		s.logger.Error("failed to get forecast from provider",
			"city", loc.Name,
			"latitude", loc.Coordinates.Latitude,
			"longitude", loc.Coordinates.Longitude,
			"error", err,
		)
		return nil, err
	}

	return mapDailyAPIResponse(loc, apiResponse, s.forecastDays)
}

// GetReport runs both fetchers side by side. Each resolves the city on its own.
func (s *weatherService) GetReport(ctx context.Context, city string) (*Report, error) {
	var (
		current  *CurrentConditions
		forecast *Forecast
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		current, err = s.GetCurrent(gctx, city)
		return err
	})
	g.Go(func() error {
		var err error
		forecast, err = s.GetForecast(gctx, city)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to build report: %w", err)
	}

	return &Report{
		City:     current.City,
		Current:  current,
		Forecast: forecast,
	}, nil
}
