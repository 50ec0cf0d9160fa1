package openmeteo

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// API Docs: https://open-meteo.com/en/docs
// Sample requests:
// - https://api.open-meteo.com/v1/forecast?latitude=40.71&longitude=-74.01&current_weather=true
// - https://api.open-meteo.com/v1/forecast?latitude=40.71&longitude=-74.01&daily=temperature_2m_max,temperature_2m_min,weathercode&timezone=auto
const (
	baseForecastURL = "https://api.open-meteo.com/v1/forecast"
)

var dailyVars = []string{
	"temperature_2m_max",
	"temperature_2m_min",
	"weathercode",
}

type ForecastClient struct {
	opts Options
}

func NewForecastClient(opts Options) *ForecastClient {
	return &ForecastClient{
		opts: opts.withDefaults(baseForecastURL),
	}
}

// GetCurrent fetches the current conditions for the given coordinates.
// timezone is an IANA name for local timestamps; empty lets the API pick.
func (c *ForecastClient) GetCurrent(ctx context.Context, latitude, longitude float64, timezone string) (*CurrentAPIResponse, error) {
	u, err := c.baseQuery(latitude, longitude, timezone)
	if err != nil {
		return nil, err
	}

	q := u.Query()
	q.Set("current_weather", "true")
	u.RawQuery = q.Encode()

	var apiResp CurrentAPIResponse
	if err := getJSON(ctx, c.opts, "Weather", u.String(), &apiResp); err != nil {
		return nil, err
	}

	return &apiResp, nil
}

// GetDaily fetches daily min/max temperature and weather code series.
// forecastDays <= 0 leaves the upstream default (7 days).
func (c *ForecastClient) GetDaily(ctx context.Context, latitude, longitude float64, forecastDays int, timezone string) (*DailyAPIResponse, error) {
	u, err := c.baseQuery(latitude, longitude, timezone)
	if err != nil {
		return nil, err
	}

	q := u.Query()
	q.Set("daily", strings.Join(dailyVars, ","))
	if forecastDays > 0 {
		q.Set("forecast_days", strconv.Itoa(forecastDays))
	}
	u.RawQuery = q.Encode()

	var apiResp DailyAPIResponse
	if err := getJSON(ctx, c.opts, "Forecast", u.String(), &apiResp); err != nil {
		return nil, err
	}

	return &apiResp, nil
}

func (c *ForecastClient) baseQuery(latitude, longitude float64, timezone string) (*url.URL, error) {
	u, err := url.Parse(c.opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	if timezone == "" {
		timezone = "auto"
	}
	q.Set("timezone", timezone)
	u.RawQuery = q.Encode()

	return u, nil
}
