package main

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// registerRoutes sets up all API endpoints and the browser UI
func (app *App) registerRoutes() {
	// Health check endpoint
	huma.Register(app.api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/ping",
		Summary:     "Ping health check",
		Description: "Check if the API is running",
		Tags:        []string{"health"},
	}, app.handlePing)

	huma.Register(app.api, huma.Operation{
		OperationID: "get-current-weather",
		Method:      http.MethodGet,
		Path:        "/api/weather",
		Summary:     "Current weather",
		Description: "Resolve a city name and return its current temperature and conditions",
		Tags:        []string{"weather"},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound, http.StatusBadGateway, http.StatusGatewayTimeout},
	}, app.handleGetCurrentWeather)

	huma.Register(app.api, huma.Operation{
		OperationID: "get-forecast",
		Method:      http.MethodGet,
		Path:        "/api/forecast",
		Summary:     "5-day forecast",
		Description: "Resolve a city name and return up to five days of min/max temperatures and conditions",
		Tags:        []string{"weather"},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound, http.StatusBadGateway, http.StatusGatewayTimeout},
	}, app.handleGetForecast)

	huma.Register(app.api, huma.Operation{
		OperationID: "get-report",
		Method:      http.MethodGet,
		Path:        "/api/report",
		Summary:     "Current weather and forecast",
		Description: "Fetch current conditions and the 5-day forecast for a city in one call",
		Tags:        []string{"weather"},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound, http.StatusBadGateway, http.StatusGatewayTimeout},
	}, app.handleGetReport)

	app.registerUI()
}
