package datasource

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"weatherkit-report/auth"
)

// Config represents the application configuration
type Config struct {
	Identity auth.Identity `yaml:"identity"`

	// Endpoint roots, without trailing slash
	AvailabilityURL string `yaml:"availabilityURL"`
	WeatherURL      string `yaml:"weatherURL"`

	// Fixed query parameters of the weather request
	Language string `yaml:"language"`
	Timezone string `yaml:"timezone"`
	Units    string `yaml:"units"`

	Country         string        `yaml:"country"`         // availability hint
	DisplayTimezone string        `yaml:"displayTimezone"` // report timestamps
	Timeout         time.Duration `yaml:"timeout"`         // per HTTP request
	LogLevel        string        `yaml:"logLevel"`
}

// ConfigError lists the identity settings that are missing
type ConfigError struct {
	Missing []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("missing required configuration: %s", strings.Join(e.Missing, ", "))
}

// DefaultConfig creates a default configuration without identity
func DefaultConfig() *Config {
	return &Config{
		AvailabilityURL: "https://weatherkit.apple.com/api/v1/availability",
		WeatherURL:      "https://weatherkit.apple.com/api/v1/weather",
		Language:        "ja",
		Timezone:        "Asia/Tokyo",
		Units:           "metric",
		Country:         "JP",
		DisplayTimezone: "Asia/Tokyo",
		Timeout:         10 * time.Second,
		LogLevel:        "info",
	}
}

// LoadConfig builds the configuration from defaults, an optional YAML file
// and the environment, in that order of precedence (environment wins)
func LoadConfig(filename string) (*Config, error) {
	config := DefaultConfig()

	if filename != "" {
		data, err := os.ReadFile(filename)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", filename, err)
		}
	}

	if err := config.applyEnv(); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) applyEnv() error {
	setFromEnv(&c.Identity.TeamID, "TEAM_ID")
	setFromEnv(&c.Identity.KeyID, "KEY_ID")
	setFromEnv(&c.Identity.ServiceID, "SERVICE_ID")
	setFromEnv(&c.Identity.KeyFile, "KEY_FILE")

	// Developer portal keys are named after their key ID
	if c.Identity.KeyFile == "" && c.Identity.KeyID != "" {
		c.Identity.KeyFile = fmt.Sprintf("AuthKey_%s.p8", c.Identity.KeyID)
	}

	setFromEnv(&c.Language, "WEATHERKIT_LANGUAGE")
	setFromEnv(&c.Timezone, "WEATHERKIT_TIMEZONE")
	setFromEnv(&c.Units, "WEATHERKIT_UNITS")
	setFromEnv(&c.Country, "WEATHERKIT_COUNTRY")
	setFromEnv(&c.DisplayTimezone, "WEATHERKIT_DISPLAY_TIMEZONE")
	setFromEnv(&c.LogLevel, "LOG_LEVEL")

	if value := os.Getenv("WEATHERKIT_TIMEOUT"); value != "" {
		timeout, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid WEATHERKIT_TIMEOUT %q: %w", value, err)
		}
		c.Timeout = timeout
	}

	return nil
}

// Validate checks that every identity setting is present
func (c *Config) Validate() error {
	var missing []string
	if c.Identity.TeamID == "" {
		missing = append(missing, "TEAM_ID")
	}
	if c.Identity.KeyID == "" {
		missing = append(missing, "KEY_ID")
	}
	if c.Identity.ServiceID == "" {
		missing = append(missing, "SERVICE_ID")
	}
	if c.Identity.KeyFile == "" {
		missing = append(missing, "KEY_FILE")
	}

	if len(missing) > 0 {
		return &ConfigError{Missing: missing}
	}
	return nil
}

// setFromEnv overrides target only when key is set to a non-empty value
func setFromEnv(target *string, key string) {
	if value := os.Getenv(key); value != "" {
		*target = value
	}
}
