package models

import "time"

// Dataset names understood by the weather endpoint
const (
	DatasetCurrentWeather   = "currentWeather"
	DatasetForecastHourly   = "forecastHourly"
	DatasetForecastDaily    = "forecastDaily"
	DatasetForecastNextHour = "forecastNextHour"
)

// Bundle is the weather response, one entry per requested dataset
type Bundle struct {
	CurrentWeather   Optional[CurrentWeather]   `json:"currentWeather"`
	ForecastHourly   Optional[HourlyForecast]   `json:"forecastHourly"`
	ForecastDaily    Optional[DailyForecast]    `json:"forecastDaily"`
	ForecastNextHour Optional[NextHourForecast] `json:"forecastNextHour"`
}

// CurrentWeather represents the conditions at the requested location right now.
// Ratios (cloud cover, humidity) are in the range 0-1.
type CurrentWeather struct {
	AsOf                Optional[time.Time] `json:"asOf"`
	Temperature         Optional[float64]   `json:"temperature"`         // in Celsius
	TemperatureApparent Optional[float64]   `json:"temperatureApparent"` // in Celsius
	TemperatureDewPoint Optional[float64]   `json:"temperatureDewPoint"` // in Celsius
	ConditionCode       Optional[string]    `json:"conditionCode"`
	CloudCover          Optional[float64]   `json:"cloudCover"`
	Humidity            Optional[float64]   `json:"humidity"`
	WindSpeed           Optional[float64]   `json:"windSpeed"`
	WindDirection       Optional[int]       `json:"windDirection"` // degrees
	WindGust            Optional[float64]   `json:"windGust"`
	Pressure            Optional[float64]   `json:"pressure"` // in millibars
	PressureTrend       Optional[string]    `json:"pressureTrend"`
	UVIndex             Optional[int]       `json:"uvIndex"`
	Visibility          Optional[float64]   `json:"visibility"` // in meters
	Daylight            Optional[bool]      `json:"daylight"`
}

// Fields lists the documented fields of the current conditions in diagnostic order
func (c CurrentWeather) Fields() []Field {
	return []Field{
		field("asOf", true, c.AsOf),
		field("cloudCover", true, c.CloudCover),
		field("conditionCode", true, c.ConditionCode),
		field("humidity", true, c.Humidity),
		field("pressure", true, c.Pressure),
		field("pressureTrend", true, c.PressureTrend),
		field("temperature", true, c.Temperature),
		field("temperatureApparent", true, c.TemperatureApparent),
		field("temperatureDewPoint", true, c.TemperatureDewPoint),
		field("uvIndex", true, c.UVIndex),
		field("visibility", true, c.Visibility),
		field("windDirection", true, c.WindDirection),
		field("windSpeed", true, c.WindSpeed),
		field("daylight", false, c.Daylight),
		field("windGust", false, c.WindGust),
	}
}

// Field describes one field of a record for presence diagnostics
type Field struct {
	Name     string
	Required bool
	Present  bool
	Value    string
}

func field[T any](name string, required bool, o Optional[T]) Field {
	return Field{
		Name:     name,
		Required: required,
		Present:  o.Present(),
		Value:    o.String(),
	}
}

// nestedField hides the contents of nested objects
func nestedField[T any](name string, required bool, o Optional[T]) Field {
	f := field(name, required, o)
	if f.Present {
		f.Value = "{...}"
	}
	return f
}
