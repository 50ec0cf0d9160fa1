package location

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"city-weather/internal/apperrors"
	"city-weather/internal/providers/openmeteo"
	"city-weather/internal/types"
)

// Mock providers for testing

type mockGeocodingProvider struct {
	response *openmeteo.GeocodingAPIResponse
	err      error
	calls    int
	gotName  string
}

func (m *mockGeocodingProvider) Search(ctx context.Context, name string, count int) (*openmeteo.GeocodingAPIResponse, error) {
	m.calls++
	m.gotName = name
	return m.response, m.err
}

type mockTimezoneService struct {
	timezone string
	err      error
	calls    int
}

func (m *mockTimezoneService) GetTimezone(latitude, longitude float64) (string, error) {
	m.calls++
	return m.timezone, m.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocationService_Resolve(t *testing.T) {
	tests := []struct {
		name        string
		city        string
		response    *openmeteo.GeocodingAPIResponse
		providerErr error
		wantKind    apperrors.Kind
		wantCalls   int
		errContains string
		validate    func(*testing.T, *types.Location)
	}{
		{
			name: "successful resolution",
			city: "New York",
			response: &openmeteo.GeocodingAPIResponse{
				Results: []openmeteo.GeocodingResult{
					{Name: "New York", Latitude: 40.71, Longitude: -74.01, Country: "United States", Admin1: "New York", Timezone: "America/New_York"},
					{Name: "New York Mills", Latitude: 46.52, Longitude: -95.38},
				},
			},
			wantCalls: 1,
			validate: func(t *testing.T, loc *types.Location) {
				if loc.Name != "New York" {
					t.Errorf("Name = %v, want New York", loc.Name)
				}
				if loc.Coordinates.Latitude != 40.71 || loc.Coordinates.Longitude != -74.01 {
					t.Errorf("Coordinates = %v", loc.Coordinates)
				}
				if loc.Timezone != "America/New_York" {
					t.Errorf("Timezone = %v", loc.Timezone)
				}
			},
		},
		{
			name:        "empty city",
			city:        "",
			wantKind:    apperrors.KindInvalidInput,
			wantCalls:   0,
			errContains: apperrors.MsgCityRequired,
		},
		{
			name:        "whitespace city",
			city:        "   \t ",
			wantKind:    apperrors.KindInvalidInput,
			wantCalls:   0,
			errContains: apperrors.MsgCityRequired,
		},
		{
			name:        "no results",
			city:        "Nowhereville",
			response:    &openmeteo.GeocodingAPIResponse{},
			wantKind:    apperrors.KindNotFound,
			wantCalls:   1,
			errContains: apperrors.MsgCityNotFound,
		},
		{
			name:        "upstream error passes through",
			city:        "Paris",
			providerErr: apperrors.Upstream("Geocoding", 503),
			wantKind:    apperrors.KindUpstream,
			wantCalls:   1,
			errContains: "Geocoding API error: 503",
		},
		{
			name:        "context error becomes timeout",
			city:        "Paris",
			providerErr: context.DeadlineExceeded,
			wantKind:    apperrors.KindTimeout,
			wantCalls:   1,
			errContains: apperrors.MsgTimedOut,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			geocoder := &mockGeocodingProvider{response: tt.response, err: tt.providerErr}
			svc := NewLocationServiceWithProviders(geocoder, nil, testLogger())

			loc, err := svc.Resolve(context.Background(), tt.city)

			if geocoder.calls != tt.wantCalls {
				t.Errorf("geocoder calls = %d, want %d", geocoder.calls, tt.wantCalls)
			}

			if tt.wantKind != apperrors.KindUnknown {
				if err == nil {
					t.Fatalf("expected %v error, got nil", tt.wantKind)
				}
				if got := apperrors.KindOf(err); got != tt.wantKind {
					t.Errorf("kind = %v, want %v", got, tt.wantKind)
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, loc)
			}
		})
	}
}

func TestLocationService_Resolve_TrimsCity(t *testing.T) {
	geocoder := &mockGeocodingProvider{response: &openmeteo.GeocodingAPIResponse{
		Results: []openmeteo.GeocodingResult{{Name: "London"}},
	}}
	svc := NewLocationServiceWithProviders(geocoder, nil, testLogger())

	if _, err := svc.Resolve(context.Background(), "  London \n"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if geocoder.gotName != "London" {
		t.Errorf("geocoder got %q, want %q", geocoder.gotName, "London")
	}
}

func TestLocationService_Resolve_TimezoneFallback(t *testing.T) {
	tests := []struct {
		name      string
		resultTZ  string
		tzService *mockTimezoneService
		wantTZ    string
		wantCalls int
	}{
		{
			name:      "geocoder timezone wins",
			resultTZ:  "Europe/Berlin",
			tzService: &mockTimezoneService{timezone: "Europe/Paris"},
			wantTZ:    "Europe/Berlin",
			wantCalls: 0,
		},
		{
			name:      "fallback fills missing timezone",
			tzService: &mockTimezoneService{timezone: "Europe/Paris"},
			wantTZ:    "Europe/Paris",
			wantCalls: 1,
		},
		{
			name:      "fallback failure is not fatal",
			tzService: &mockTimezoneService{err: errors.New("no polygon")},
			wantTZ:    "",
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			geocoder := &mockGeocodingProvider{response: &openmeteo.GeocodingAPIResponse{
				Results: []openmeteo.GeocodingResult{{Name: "Somewhere", Latitude: 48.8, Longitude: 2.3, Timezone: tt.resultTZ}},
			}}
			svc := NewLocationServiceWithProviders(geocoder, tt.tzService, testLogger())

			loc, err := svc.Resolve(context.Background(), "Somewhere")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if loc.Timezone != tt.wantTZ {
				t.Errorf("Timezone = %q, want %q", loc.Timezone, tt.wantTZ)
			}
			if tt.tzService.calls != tt.wantCalls {
				t.Errorf("timezone calls = %d, want %d", tt.tzService.calls, tt.wantCalls)
			}
		})
	}
}
