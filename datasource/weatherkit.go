package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"weatherkit-report/models"
)

// DefaultDatasets is requested when no dataset list is given
var DefaultDatasets = []string{models.DatasetCurrentWeather, models.DatasetForecastHourly}

// WeatherKitClient implements both AvailabilitySource and BundleSource
type WeatherKitClient struct {
	issuer          TokenIssuer
	availabilityURL string
	weatherURL      string
	language        string
	timezone        string
	units           string
	httpClient      *http.Client
	logger          *zap.Logger
}

// NewWeatherKitClient creates a new WeatherKit client.
// A nil logger disables logging.
func NewWeatherKitClient(config *Config, issuer TokenIssuer, logger *zap.Logger) *WeatherKitClient {
	if logger == nil {
		logger = zap.NewNop()
	}

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	c := &WeatherKitClient{
		issuer:          issuer,
		availabilityURL: strings.TrimRight(config.AvailabilityURL, "/"),
		weatherURL:      strings.TrimRight(config.WeatherURL, "/"),
		language:        config.Language,
		timezone:        config.Timezone,
		units:           config.Units,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
	c.logger = logger.Named(c.Name())

	return c
}

// Name returns the provider name, also used as the logger name
func (c *WeatherKitClient) Name() string {
	return "WeatherKit"
}

// CheckAvailability fetches the datasets supported at a coordinate
func (c *WeatherKitClient) CheckAvailability(ctx context.Context, lat, lon float64, country string) ([]string, error) {
	endpoint := fmt.Sprintf("%s/%s/%s", c.availabilityURL, formatCoordinate(lat), formatCoordinate(lon))

	params := url.Values{}
	if country != "" {
		params.Add("country", country)
	}

	var datasets []string
	if err := c.get(ctx, endpoint, params, &datasets); err != nil {
		return nil, err
	}

	return datasets, nil
}

// FetchWeather fetches the forecast bundle for a coordinate
func (c *WeatherKitClient) FetchWeather(ctx context.Context, lat, lon float64, datasets []string) (models.Bundle, error) {
	if len(datasets) == 0 {
		datasets = DefaultDatasets
	}

	endpoint := fmt.Sprintf("%s/%s/%s/%s",
		c.weatherURL, url.PathEscape(c.language), formatCoordinate(lat), formatCoordinate(lon))

	params := url.Values{}
	params.Add("dataSets", strings.Join(datasets, ","))
	params.Add("language", c.language)
	params.Add("timezone", c.timezone)
	params.Add("units", c.units)

	var bundle models.Bundle
	if err := c.get(ctx, endpoint, params, &bundle); err != nil {
		return models.Bundle{}, err
	}

	return bundle, nil
}

// get issues an authenticated GET and decodes the JSON body into out
func (c *WeatherKitClient) get(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	// A token is never reused across requests
	token, err := c.issuer.Issue()
	if err != nil {
		return fmt.Errorf("failed to issue token: %w", err)
	}

	requestURL := endpoint
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug("WeatherKit request completed",
		zap.String("endpoint", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &HTTPError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &DecodeError{Endpoint: endpoint, Err: err}
	}

	return nil
}

// formatCoordinate renders the shortest decimal that round-trips
func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Verify that the client implements the source interfaces
var (
	_ AvailabilitySource = (*WeatherKitClient)(nil)
	_ BundleSource       = (*WeatherKitClient)(nil)
)
