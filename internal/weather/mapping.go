package weather

import (
	"time"

	"city-weather/internal/apperrors"
	"city-weather/internal/providers/openmeteo"
	"city-weather/internal/types"
)

// missingWeatherCode marks a day whose weathercode entry was absent
const missingWeatherCode = -1

const localTimeLayout = "2006-01-02T15:04"

func mapCurrentAPIResponse(loc *types.Location, apiResponse *openmeteo.CurrentAPIResponse) (*CurrentConditions, error) {
	if apiResponse == nil || apiResponse.CurrentWeather == nil {
		return nil, apperrors.DataUnavailable(apperrors.MsgWeatherMissing, nil)
	}

	cw := apiResponse.CurrentWeather
	conditions := &CurrentConditions{
		City:               loc.Name,
		Location:           *loc,
		TemperatureCelsius: cw.Temperature,
		Description:        types.Describe(cw.WeatherCode),
		WeatherCode:        cw.WeatherCode,
		WindSpeedKph:       cw.WindSpeed,
	}

	zone := apiResponse.Timezone
	if zone == "" {
		zone = loc.Timezone
	}
	if observed, ok := toLocalTime(cw.Time, zone, apiResponse.UtcOffsetSeconds); ok {
		conditions.ObservedAt = &observed
	}

	return conditions, nil
}

// mapDailyAPIResponse zips the parallel daily arrays into at most maxDays days.
// The arrays are trusted to share a length; a short one yields zero values.
func mapDailyAPIResponse(loc *types.Location, apiResponse *openmeteo.DailyAPIResponse, maxDays int) (*Forecast, error) {
	if apiResponse == nil || apiResponse.Daily == nil || len(apiResponse.Daily.Time) == 0 {
		return nil, apperrors.DataUnavailable(apperrors.MsgForecastMissing, nil)
	}

	daily := apiResponse.Daily
	n := min(len(daily.Time), maxDays)

	days := make([]ForecastDay, 0, n)
	for i := 0; i < n; i++ {
		code := missingWeatherCode
		if i < len(daily.WeatherCode) {
			code = daily.WeatherCode[i]
		}

		days = append(days, ForecastDay{
			Date:           daily.Time[i],
			MinTempCelsius: valueAt(daily.Temperature2mMin, i),
			MaxTempCelsius: valueAt(daily.Temperature2mMax, i),
			Description:    types.Describe(code),
			WeatherCode:    code,
		})
	}

	return &Forecast{
		City:     loc.Name,
		Location: *loc,
		Timezone: apiResponse.Timezone,
		Days:     days,
	}, nil
}

func valueAt[T any](values []T, i int) T {
	var zero T
	if i < 0 || i >= len(values) {
		return zero
	}
	return values[i]
}

// toLocalTime parses an Open-Meteo local timestamp. The offset comes from the
// same response, so no tz database lookup is needed.
func toLocalTime(value, zone string, utcOffsetSeconds int) (time.Time, bool) {
	if zone == "" {
		zone = "UTC"
	}
	t, err := time.ParseInLocation(localTimeLayout, value, time.FixedZone(zone, utcOffsetSeconds))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
