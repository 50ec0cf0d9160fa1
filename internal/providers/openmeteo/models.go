package openmeteo

// GeocodingAPIResponse is the body of /v1/search. Results is absent when
// nothing matched.
type GeocodingAPIResponse struct {
	Results          []GeocodingResult `json:"results"`
	GenerationtimeMs float64           `json:"generationtime_ms"`
}

type GeocodingResult struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Elevation   float64 `json:"elevation"`
	CountryCode string  `json:"country_code"`
	Country     string  `json:"country"`
	Admin1      string  `json:"admin1"`
	Timezone    string  `json:"timezone"`
	Population  int     `json:"population"`
}

// CurrentAPIResponse is the body of /v1/forecast?current_weather=true
type CurrentAPIResponse struct {
	Latitude         float64         `json:"latitude"`
	Longitude        float64         `json:"longitude"`
	GenerationtimeMs float64         `json:"generationtime_ms"`
	UtcOffsetSeconds int             `json:"utc_offset_seconds"`
	Timezone         string          `json:"timezone"`
	Elevation        float64         `json:"elevation"`
	CurrentWeather   *CurrentWeather `json:"current_weather"`
}

type CurrentWeather struct {
	Time          string  `json:"time"`
	Interval      int     `json:"interval"`
	Temperature   float64 `json:"temperature"`
	WindSpeed     float64 `json:"windspeed"`
	WindDirection float64 `json:"winddirection"`
	IsDay         int     `json:"is_day"`
	WeatherCode   int     `json:"weathercode"`
}

// DailyAPIResponse is the body of /v1/forecast?daily=...
type DailyAPIResponse struct {
	Latitude         float64      `json:"latitude"`
	Longitude        float64      `json:"longitude"`
	GenerationtimeMs float64      `json:"generationtime_ms"`
	UtcOffsetSeconds int          `json:"utc_offset_seconds"`
	Timezone         string       `json:"timezone"`
	Elevation        float64      `json:"elevation"`
	DailyUnits       DailyUnits   `json:"daily_units"`
	Daily            *DailySeries `json:"daily"`
}

type DailyUnits struct {
	Time             string `json:"time"`
	Temperature2mMax string `json:"temperature_2m_max"`
	Temperature2mMin string `json:"temperature_2m_min"`
	WeatherCode      string `json:"weathercode"`
}

// DailySeries holds parallel arrays indexed by day
type DailySeries struct {
	Time             []string  `json:"time"`
	Temperature2mMax []float64 `json:"temperature_2m_max"`
	Temperature2mMin []float64 `json:"temperature_2m_min"`
	WeatherCode      []int     `json:"weathercode"`
}
