package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"city-weather/internal/weather"
)

func writeCurrent(w io.Writer, current *weather.CurrentConditions, asJSON bool) error {
	if asJSON {
		return writeJSON(w, current)
	}

	_, err := fmt.Fprintf(w, "\n🌤 Current Weather in %s:\n\nTemperature: %s°C\nDescription: %s\n",
		current.City, formatTemp(current.TemperatureCelsius), current.Description)
	return err
}

func writeForecast(w io.Writer, forecast *weather.Forecast, asJSON bool) error {
	if asJSON {
		return writeJSON(w, forecast)
	}

	if _, err := fmt.Fprintf(w, "\n📅 5-Day Forecast for %s:\n\n", forecast.City); err != nil {
		return err
	}
	for _, day := range forecast.Days {
		if _, err := fmt.Fprintf(w, "%s: %s°C to %s°C - %s\n",
			day.Date, formatTemp(day.MinTempCelsius), formatTemp(day.MaxTempCelsius), day.Description); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// formatTemp prints the shortest exact representation, e.g. 18.5 or 24
func formatTemp(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64)
}
