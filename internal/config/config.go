package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "CITY_WEATHER"

// MaxForecastDays is the upper bound on days returned by a forecast
const MaxForecastDays = 5

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Log     LogConfig
	Weather WeatherConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// WeatherConfig holds Open-Meteo client configuration
type WeatherConfig struct {
	GeocodingURL     string
	ForecastURL      string
	Timeout          time.Duration // budget for one fetch, geocoding included
	ForecastDays     int
	UserAgent        string
	RateLimit        RateLimitConfig
	TimezoneFallback bool // derive a timezone from coordinates when the geocoder has none
}

// RateLimitConfig holds the outbound request throttle settings
type RateLimitConfig struct {
	Enabled           bool
	RequestsPerSecond float64
	Burst             int
}

// Load reads configuration from .env, config file and environment variables
func Load() (*Config, error) {
	return load("")
}

// LoadFile reads configuration from an explicit config file path
func LoadFile(path string) (*Config, error) {
	return load(path)
}

func load(path string) (*Config, error) {
	// A missing .env is fine; anything already set in the environment wins
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		// Set config file name and paths
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/.city-weather")
	}

	setDefaults(v)

	// Read from environment variables, e.g. CITY_WEATHER_WEATHER_TIMEOUT=10s
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginMode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("weather.geocodingURL", "https://geocoding-api.open-meteo.com/v1/search")
	v.SetDefault("weather.forecastURL", "https://api.open-meteo.com/v1/forecast")
	v.SetDefault("weather.timeout", 5*time.Second)
	v.SetDefault("weather.forecastDays", MaxForecastDays)
	v.SetDefault("weather.userAgent", "city-weather/1.0")
	v.SetDefault("weather.rateLimit.enabled", true)
	v.SetDefault("weather.rateLimit.requestsPerSecond", 10.0)
	v.SetDefault("weather.rateLimit.burst", 5)
	v.SetDefault("weather.timezoneFallback", true)
}

// Validate checks values that would otherwise fail later at request time
func (c *Config) Validate() error {
	if c.Weather.Timeout <= 0 {
		return fmt.Errorf("weather.timeout must be positive, got %s", c.Weather.Timeout)
	}
	if c.Weather.ForecastDays < 1 || c.Weather.ForecastDays > MaxForecastDays {
		return fmt.Errorf("weather.forecastDays must be between 1 and %d, got %d", MaxForecastDays, c.Weather.ForecastDays)
	}
	if c.Weather.RateLimit.Enabled {
		if c.Weather.RateLimit.RequestsPerSecond <= 0 {
			return fmt.Errorf("weather.rateLimit.requestsPerSecond must be positive, got %v", c.Weather.RateLimit.RequestsPerSecond)
		}
		if c.Weather.RateLimit.Burst < 1 {
			return fmt.Errorf("weather.rateLimit.burst must be at least 1, got %d", c.Weather.RateLimit.Burst)
		}
	}
	return nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger writing to stdout
func (c *Config) NewLogger() *slog.Logger {
	return c.NewLoggerTo(os.Stdout)
}

// NewLoggerTo creates a new slog.Logger based on the configuration writing to w
func (c *Config) NewLoggerTo(w io.Writer) *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}
