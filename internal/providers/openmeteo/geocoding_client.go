package openmeteo

import (
	"context"
	"fmt"
	"net/url"
)

// API Docs: https://open-meteo.com/en/docs/geocoding-api
// Sample request: https://geocoding-api.open-meteo.com/v1/search?name=Berlin&count=1
const (
	baseGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"
)

type GeocodingClient struct {
	opts Options
}

func NewGeocodingClient(opts Options) *GeocodingClient {
	return &GeocodingClient{
		opts: opts.withDefaults(baseGeocodingURL),
	}
}

// Search looks up a place by name and returns at most count results
func (c *GeocodingClient) Search(ctx context.Context, name string, count int) (*GeocodingAPIResponse, error) {
	u, err := url.Parse(c.opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("name", name)
	q.Set("count", fmt.Sprintf("%d", count))
	q.Set("format", "json")
	u.RawQuery = q.Encode()

	var apiResp GeocodingAPIResponse
	if err := getJSON(ctx, c.opts, "Geocoding", u.String(), &apiResp); err != nil {
		return nil, err
	}

	return &apiResp, nil
}
