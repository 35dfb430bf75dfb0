package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"
	_ "time/tzdata"

	"weatherkit-report/auth"
	"weatherkit-report/datasource"
	"weatherkit-report/report"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Tokyo Station
const (
	defaultLatitude  = 35.681236
	defaultLongitude = 139.767125
)

func main() {
	// Load environment variables from .env file
	envErr := godotenv.Load()

	configFile := flag.String("config", "", "Path to an optional YAML configuration file")
	country := flag.String("country", "", "Country hint for the availability check (default from configuration)")
	flag.Usage = usage
	flag.Parse()

	lat, lon, err := parseCoordinates(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		usage()
		os.Exit(1)
	}

	config, configErr := datasource.LoadConfig(*configFile)

	logLevel := "info"
	if configErr == nil {
		logLevel = config.LogLevel
	}
	logger, err := newLogger(logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if envErr != nil {
		logger.Debug("No .env file loaded", zap.Error(envErr))
	}

	if configErr != nil {
		var missing *datasource.ConfigError
		if errors.As(configErr, &missing) {
			logger.Fatal("Missing required settings; copy .env.example to .env and fill in your credentials",
				zap.Strings("missing", missing.Missing))
		}
		logger.Fatal("Failed to load configuration", zap.Error(configErr))
	}

	if *country == "" {
		*country = config.Country
	}

	timezone, err := time.LoadLocation(config.DisplayTimezone)
	if err != nil {
		logger.Warn("Unknown display timezone, using UTC",
			zap.String("timezone", config.DisplayTimezone), zap.Error(err))
		timezone = time.UTC
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	issuer := auth.NewIssuer(config.Identity)
	client := datasource.NewWeatherKitClient(config, issuer, logger)

	// Check availability first; the weather endpoint rejects unsupported datasets
	plan := datasource.PlanDatasets(ctx, client, lat, lon, *country)
	switch {
	case plan.Fallback():
		logger.Warn("Availability check failed, trying default datasets",
			zap.Error(plan.Err), zap.Strings("datasets", datasource.DefaultDatasets))
	case plan.Empty():
		logger.Fatal("No datasets are available for this location",
			zap.Float64("latitude", lat), zap.Float64("longitude", lon))
	default:
		logger.Info("Fetching available datasets", zap.Strings("datasets", plan.Available))
	}

	bundle, err := client.FetchWeather(ctx, lat, lon, plan.Datasets())
	if err != nil {
		logger.Fatal("Failed to fetch weather", zap.Error(err))
	}

	printer := report.NewPrinter(os.Stdout, timezone)
	printer.Print(report.Location{Latitude: lat, Longitude: lon}, plan, bundle)
}

// parseCoordinates reads "[latitude longitude]" from the command line
func parseCoordinates(args []string) (float64, float64, error) {
	switch len(args) {
	case 0:
		return defaultLatitude, defaultLongitude, nil
	case 2:
	default:
		return 0, 0, fmt.Errorf("expected 0 or 2 arguments, got %d", len(args))
	}

	lat, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("latitude must be a number: %q", args[0])
	}
	lon, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("longitude must be a number: %q", args[1])
	}

	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return 0, 0, fmt.Errorf("latitude must be between -90 and 90, got %v", lat)
	}
	if math.IsNaN(lon) || lon < -180 || lon > 180 {
		return 0, 0, fmt.Errorf("longitude must be between -180 and 180, got %v", lon)
	}

	return lat, lon, nil
}

func newLogger(level string) (*zap.Logger, error) {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(parsed)
	config.DisableStacktrace = true
	return config.Build()
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage: %s [flags] [latitude longitude]\n", os.Args[0])
	fmt.Fprintf(out, "Example: %s 35.681236 139.767125\n", os.Args[0])
	fmt.Fprintln(out, "Without coordinates the report is for Tokyo Station.")
	fmt.Fprintln(out, "Put -- before the coordinates when the latitude is negative.")
	flag.PrintDefaults()
}
