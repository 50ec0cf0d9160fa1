package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"city-weather/internal/config"
	"city-weather/internal/weather"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humagin"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// App encapsulates application dependencies
type App struct {
	engine         *gin.Engine
	api            huma.API
	logger         *slog.Logger
	weatherService weather.Service
}

// NewApp creates a new application wired to the live Open-Meteo services
func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	return NewAppWithService(cfg, weather.NewWeatherService(cfg, logger), logger)
}

// NewAppWithService creates a new application with an injected weather service
func NewAppWithService(cfg *config.Config, weatherService weather.Service, logger *slog.Logger) *App {
	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), requestIDMiddleware(), requestLogMiddleware(logger))

	// Create Huma API on top of gin
	humaConfig := huma.DefaultConfig("City Weather API", appVersion)
	humaConfig.Info.Description = "Current weather and 5-day forecasts by city name, backed by Open-Meteo"
	humaConfig.Servers = []*huma.Server{
		{URL: "http://localhost" + cfg.GetServerAddr(), Description: "Development server"},
	}

	api := humagin.New(engine, humaConfig)

	app := &App{
		engine:         engine,
		api:            api,
		logger:         logger,
		weatherService: weatherService,
	}

	logger.Info("application initialized")

	// Register routes
	app.registerRoutes()

	return app
}

// Run serves HTTP on addr until ctx is done, then shuts down gracefully
func (app *App) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           app.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
