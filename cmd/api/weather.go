package main

import (
	"context"

	"city-weather/internal/apperrors"
	"city-weather/internal/weather"

	"github.com/danielgtaylor/huma/v2"
)

// CityInput is the query shared by every weather endpoint. Blank values are
// rejected by the service so the error shape matches other failures.
type CityInput struct {
	City string `query:"city" doc:"City name to look up" example:"London"`
}

type CurrentWeatherOutput struct {
	Body *weather.CurrentConditions
}

type ForecastOutput struct {
	Body *weather.Forecast
}

type ReportOutput struct {
	Body *weather.Report
}

func (app *App) handleGetCurrentWeather(ctx context.Context, input *CityInput) (*CurrentWeatherOutput, error) {
	current, err := app.weatherService.GetCurrent(ctx, input.City)
	if err != nil {
		return nil, app.toHTTPError(input.City, err)
	}
	return &CurrentWeatherOutput{Body: current}, nil
}

func (app *App) handleGetForecast(ctx context.Context, input *CityInput) (*ForecastOutput, error) {
	forecast, err := app.weatherService.GetForecast(ctx, input.City)
	if err != nil {
		return nil, app.toHTTPError(input.City, err)
	}
	return &ForecastOutput{Body: forecast}, nil
}

func (app *App) handleGetReport(ctx context.Context, input *CityInput) (*ReportOutput, error) {
	report, err := app.weatherService.GetReport(ctx, input.City)
	if err != nil {
		return nil, app.toHTTPError(input.City, err)
	}
	return &ReportOutput{Body: report}, nil
}

// toHTTPError maps a service failure to a problem response
func (app *App) toHTTPError(city string, err error) error {
	msg := apperrors.Message(err)

	switch apperrors.KindOf(err) {
	case apperrors.KindInvalidInput:
		return huma.Error400BadRequest(msg)
	case apperrors.KindNotFound:
		return huma.Error404NotFound(msg)
	case apperrors.KindUpstream, apperrors.KindDataUnavailable:
		return huma.Error502BadGateway(msg)
	case apperrors.KindTimeout:
		return huma.Error504GatewayTimeout(msg)
	default:
		app.logger.Error("unexpected weather service error", "city", city, "error", err)
		return huma.Error500InternalServerError("internal error")
	}
}
