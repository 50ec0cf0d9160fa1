package weather

import (
	"time"

	"city-weather/internal/types"
)

// CurrentConditions is the present weather at a resolved city
type CurrentConditions struct {
	City               string         `json:"city"`
	Location           types.Location `json:"location"`
	TemperatureCelsius float64        `json:"temperatureCelsius"`
	Description        string         `json:"description"`
	WeatherCode        int            `json:"weatherCode"`
	WindSpeedKph       float64        `json:"windSpeedKph"`
	ObservedAt         *time.Time     `json:"observedAt,omitempty"`
}

// ForecastDay is one calendar day of the daily forecast
type ForecastDay struct {
	Date           string  `json:"date"` // YYYY-MM-DD in the location's timezone
	MinTempCelsius float64 `json:"minTempCelsius"`
	MaxTempCelsius float64 `json:"maxTempCelsius"`
	Description    string  `json:"description"`
	WeatherCode    int     `json:"weatherCode"`
}

// Forecast holds at most five days, in upstream order
type Forecast struct {
	City     string         `json:"city"`
	Location types.Location `json:"location"`
	Timezone string         `json:"timezone,omitempty"`
	Days     []ForecastDay  `json:"days"`
}

// Report combines current conditions and the forecast for one city
type Report struct {
	City     string             `json:"city"`
	Current  *CurrentConditions `json:"current"`
	Forecast *Forecast          `json:"forecast"`
}
