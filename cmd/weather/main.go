package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"city-weather/internal/apperrors"
	"city-weather/internal/config"
	"city-weather/internal/weather"

	"github.com/spf13/pflag"
)

// Exit codes
const (
	exitOK              = 0
	exitInternal        = 1
	exitUsage           = 2
	exitNotFound        = 3
	exitUpstream        = 4
	exitDataUnavailable = 5
	exitTimeout         = 6
)

type options struct {
	forecast   bool
	json       bool
	verbose    bool
	timeout    time.Duration
	configPath string
	city       string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, code, ok := parseArgs(args, stderr)
	if !ok {
		return code
	}

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitInternal
	}
	if opts.timeout > 0 {
		cfg.Weather.Timeout = opts.timeout
	}

	// stdout carries only the report
	logger := slog.New(slog.DiscardHandler)
	if opts.verbose {
		cfg.Log.Level = "debug"
		logger = cfg.NewLoggerTo(stderr)
	}

	svc := weather.NewWeatherService(cfg, logger)
	return execute(ctx, svc, opts, stdout, stderr)
}

func parseArgs(args []string, stderr io.Writer) (options, int, bool) {
	var opts options

	fs := pflag.NewFlagSet("weather", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVarP(&opts.forecast, "forecast", "f", false, "show the 5-day forecast instead of current weather")
	fs.BoolVar(&opts.json, "json", false, "print the result as JSON")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "log requests to stderr")
	fs.DurationVar(&opts.timeout, "timeout", 0, "overall time budget per lookup (default from config, 5s)")
	fs.StringVar(&opts.configPath, "config", "", "path to a config file")
	fs.Usage = func() {
		_, _ = fmt.Fprintln(stderr, "Usage: weather [flags] <city>")
		_, _ = fmt.Fprintln(stderr)
		_, _ = fmt.Fprintln(stderr, "Examples:")
		_, _ = fmt.Fprintln(stderr, "  weather London")
		_, _ = fmt.Fprintln(stderr, "  weather --forecast New York")
		_, _ = fmt.Fprintln(stderr)
		_, _ = fmt.Fprintln(stderr, "Flags:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return opts, exitOK, false
		}
		return opts, exitUsage, false
	}

	opts.city = strings.TrimSpace(strings.Join(fs.Args(), " "))
	if opts.city == "" {
		_, _ = fmt.Fprintf(stderr, "Error: %s\n\n", apperrors.MsgCityRequired)
		fs.Usage()
		return opts, exitUsage, false
	}

	return opts, exitOK, true
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

func execute(ctx context.Context, svc weather.Service, opts options, stdout, stderr io.Writer) int {
	var err error
	if opts.forecast {
		var forecast *weather.Forecast
		if forecast, err = svc.GetForecast(ctx, opts.city); err == nil {
			err = writeForecast(stdout, forecast, opts.json)
		}
	} else {
		var current *weather.CurrentConditions
		if current, err = svc.GetCurrent(ctx, opts.city); err == nil {
			err = writeCurrent(stdout, current, opts.json)
		}
	}

	if err != nil {
		what := "current weather"
		if opts.forecast {
			what = "forecast"
		}
		_, _ = fmt.Fprintf(stderr, "Error fetching %s: %s\n", what, apperrors.Message(err))
		return exitCode(err)
	}
	return exitOK
}

func exitCode(err error) int {
	switch apperrors.KindOf(err) {
	case apperrors.KindInvalidInput:
		return exitUsage
	case apperrors.KindNotFound:
		return exitNotFound
	case apperrors.KindUpstream:
		return exitUpstream
	case apperrors.KindDataUnavailable:
		return exitDataUnavailable
	case apperrors.KindTimeout:
		return exitTimeout
	default:
		return exitInternal
	}
}
