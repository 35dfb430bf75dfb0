package datasource

import (
	"context"

	"weatherkit-report/models"
)

// TokenIssuer produces a fresh bearer token for every request
type TokenIssuer interface {
	Issue() (string, error)
}

// AvailabilitySource reports which datasets exist at a coordinate
type AvailabilitySource interface {
	// CheckAvailability lists the dataset names supported at lat/lon.
	// country is an optional ISO 3166 alpha-2 hint, ignored when empty.
	CheckAvailability(ctx context.Context, lat, lon float64, country string) ([]string, error)
}

// BundleSource fetches the forecast bundle for a coordinate
type BundleSource interface {
	// FetchWeather fetches the given datasets, DefaultDatasets when empty
	FetchWeather(ctx context.Context, lat, lon float64, datasets []string) (models.Bundle, error)
}
