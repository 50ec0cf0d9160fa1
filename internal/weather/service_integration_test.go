//go:build integration

package weather

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	"city-weather/internal/config"
)

func TestWeatherService_GetReport_Integration(t *testing.T) {
	cfg := &config.Config{Weather: config.WeatherConfig{
		Timeout:          10 * time.Second,
		ForecastDays:     config.MaxForecastDays,
		TimezoneFallback: true,
		RateLimit:        config.RateLimitConfig{Enabled: true, RequestsPerSecond: 2, Burst: 2},
	}}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc := NewWeatherService(cfg, logger)

	report, err := svc.GetReport(context.Background(), "Aspen")
	if err != nil {
		t.Fatalf("Failed to get report: %v", err)
	}

	rawJSON, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal report: %v", err)
	}
	t.Logf("Report:\n%s", string(rawJSON))

	if report.Current.Description == "" {
		t.Error("Current description is empty")
	}
	if n := len(report.Forecast.Days); n == 0 || n > config.MaxForecastDays {
		t.Errorf("Forecast has %d days, want 1..%d", n, config.MaxForecastDays)
	}
	if report.Current.TemperatureCelsius < -60 || report.Current.TemperatureCelsius > 60 {
		t.Errorf("Temperature %.1f°C seems unreasonable", report.Current.TemperatureCelsius)
	}
}
