package models

import "time"

// HourlyForecast is the forecastHourly dataset
type HourlyForecast struct {
	Hours Optional[[]HourWeather] `json:"hours"`
}

// HourWeather represents the forecast for a single hour
type HourWeather struct {
	ForecastStart       Optional[time.Time] `json:"forecastStart"`
	CloudCover          Optional[float64]   `json:"cloudCover"` // 0-1
	ConditionCode       Optional[string]    `json:"conditionCode"`
	Humidity            Optional[float64]   `json:"humidity"` // 0-1
	PrecipitationChance Optional[float64]   `json:"precipitationChance"`
	PrecipitationType   Optional[string]    `json:"precipitationType"`
	Pressure            Optional[float64]   `json:"pressure"`
	Temperature         Optional[float64]   `json:"temperature"`
	TemperatureApparent Optional[float64]   `json:"temperatureApparent"`
	UVIndex             Optional[int]       `json:"uvIndex"`
	Visibility          Optional[float64]   `json:"visibility"`
	WindSpeed           Optional[float64]   `json:"windSpeed"`

	Daylight            Optional[bool]    `json:"daylight"`
	PressureTrend       Optional[string]  `json:"pressureTrend"`
	TemperatureDewPoint Optional[float64] `json:"temperatureDewPoint"`
	WindDirection       Optional[int]     `json:"windDirection"`
	WindGust            Optional[float64] `json:"windGust"`
	PrecipitationAmount Optional[float64] `json:"precipitationAmount"`
	SnowfallIntensity   Optional[float64] `json:"snowfallIntensity"`
}

// Fields lists the documented fields of an hour in diagnostic order
func (h HourWeather) Fields() []Field {
	return []Field{
		field("cloudCover", true, h.CloudCover),
		field("conditionCode", true, h.ConditionCode),
		field("forecastStart", true, h.ForecastStart),
		field("humidity", true, h.Humidity),
		field("precipitationChance", true, h.PrecipitationChance),
		field("precipitationType", true, h.PrecipitationType),
		field("pressure", true, h.Pressure),
		field("temperature", true, h.Temperature),
		field("temperatureApparent", true, h.TemperatureApparent),
		field("uvIndex", true, h.UVIndex),
		field("visibility", true, h.Visibility),
		field("windSpeed", true, h.WindSpeed),
		field("daylight", false, h.Daylight),
		field("pressureTrend", false, h.PressureTrend),
		field("temperatureDewPoint", false, h.TemperatureDewPoint),
		field("windDirection", false, h.WindDirection),
		field("windGust", false, h.WindGust),
		field("precipitationAmount", false, h.PrecipitationAmount),
		field("snowfallIntensity", false, h.SnowfallIntensity),
	}
}

// DailyForecast is the forecastDaily dataset
type DailyForecast struct {
	Days Optional[[]DayWeather] `json:"days"`
}

// DayPartForecast summarizes the daytime (7AM-7PM) or overnight (7PM-7AM) part of a day
type DayPartForecast struct {
	ForecastStart       Optional[time.Time] `json:"forecastStart"`
	ForecastEnd         Optional[time.Time] `json:"forecastEnd"`
	CloudCover          Optional[float64]   `json:"cloudCover"`
	ConditionCode       Optional[string]    `json:"conditionCode"`
	Humidity            Optional[float64]   `json:"humidity"`
	PrecipitationAmount Optional[float64]   `json:"precipitationAmount"`
	PrecipitationChance Optional[float64]   `json:"precipitationChance"`
	PrecipitationType   Optional[string]    `json:"precipitationType"`
	SnowfallAmount      Optional[float64]   `json:"snowfallAmount"`
	WindDirection       Optional[int]       `json:"windDirection"`
	WindSpeed           Optional[float64]   `json:"windSpeed"`
}

// Fields lists the fields of a day part; all of them are documented as required
func (d DayPartForecast) Fields() []Field {
	return []Field{
		field("cloudCover", true, d.CloudCover),
		field("conditionCode", true, d.ConditionCode),
		field("forecastEnd", true, d.ForecastEnd),
		field("forecastStart", true, d.ForecastStart),
		field("humidity", true, d.Humidity),
		field("precipitationAmount", true, d.PrecipitationAmount),
		field("precipitationChance", true, d.PrecipitationChance),
		field("precipitationType", true, d.PrecipitationType),
		field("snowfallAmount", true, d.SnowfallAmount),
		field("windDirection", true, d.WindDirection),
		field("windSpeed", true, d.WindSpeed),
	}
}

// DayWeather represents the forecast for a single day
type DayWeather struct {
	ConditionCode       Optional[string]    `json:"conditionCode"`
	ForecastEnd         Optional[time.Time] `json:"forecastEnd"`
	ForecastStart       Optional[time.Time] `json:"forecastStart"`
	MaxUVIndex          Optional[int]       `json:"maxUvIndex"`
	MoonPhase           Optional[string]    `json:"moonPhase"`
	PrecipitationAmount Optional[float64]   `json:"precipitationAmount"`
	PrecipitationChance Optional[float64]   `json:"precipitationChance"`
	PrecipitationType   Optional[string]    `json:"precipitationType"`
	SnowfallAmount      Optional[float64]   `json:"snowfallAmount"`
	TemperatureMax      Optional[float64]   `json:"temperatureMax"`
	TemperatureMin      Optional[float64]   `json:"temperatureMin"`

	DaytimeForecast     Optional[DayPartForecast] `json:"daytimeForecast"`
	OvernightForecast   Optional[DayPartForecast] `json:"overnightForecast"`
	Moonrise            Optional[time.Time]       `json:"moonrise"`
	Moonset             Optional[time.Time]       `json:"moonset"`
	SolarMidnight       Optional[time.Time]       `json:"solarMidnight"`
	SolarNoon           Optional[time.Time]       `json:"solarNoon"`
	Sunrise             Optional[time.Time]       `json:"sunrise"`
	Sunset              Optional[time.Time]       `json:"sunset"`
	SunriseAstronomical Optional[time.Time]       `json:"sunriseAstronomical"`
	SunriseCivil        Optional[time.Time]       `json:"sunriseCivil"`
	SunriseNautical     Optional[time.Time]       `json:"sunriseNautical"`
	SunsetAstronomical  Optional[time.Time]       `json:"sunsetAstronomical"`
	SunsetCivil         Optional[time.Time]       `json:"sunsetCivil"`
	SunsetNautical      Optional[time.Time]       `json:"sunsetNautical"`
}

// Fields lists the documented fields of a day in diagnostic order
func (d DayWeather) Fields() []Field {
	return []Field{
		field("conditionCode", true, d.ConditionCode),
		field("forecastEnd", true, d.ForecastEnd),
		field("forecastStart", true, d.ForecastStart),
		field("maxUvIndex", true, d.MaxUVIndex),
		field("moonPhase", true, d.MoonPhase),
		field("precipitationAmount", true, d.PrecipitationAmount),
		field("precipitationChance", true, d.PrecipitationChance),
		field("precipitationType", true, d.PrecipitationType),
		field("snowfallAmount", true, d.SnowfallAmount),
		field("temperatureMax", true, d.TemperatureMax),
		field("temperatureMin", true, d.TemperatureMin),
		nestedField("daytimeForecast", false, d.DaytimeForecast),
		nestedField("overnightForecast", false, d.OvernightForecast),
		field("moonrise", false, d.Moonrise),
		field("moonset", false, d.Moonset),
		field("solarMidnight", false, d.SolarMidnight),
		field("solarNoon", false, d.SolarNoon),
		field("sunrise", false, d.Sunrise),
		field("sunset", false, d.Sunset),
		field("sunriseAstronomical", false, d.SunriseAstronomical),
		field("sunriseCivil", false, d.SunriseCivil),
		field("sunriseNautical", false, d.SunriseNautical),
		field("sunsetAstronomical", false, d.SunsetAstronomical),
		field("sunsetCivil", false, d.SunsetCivil),
		field("sunsetNautical", false, d.SunsetNautical),
	}
}

// NextHourForecast is the forecastNextHour dataset, minute-by-minute precipitation
type NextHourForecast struct {
	ForecastStart Optional[time.Time]       `json:"forecastStart"`
	ForecastEnd   Optional[time.Time]       `json:"forecastEnd"`
	Minutes       Optional[[]MinuteWeather] `json:"minutes"`
}

// MinuteWeather represents the precipitation forecast for one minute
type MinuteWeather struct {
	StartTime              Optional[time.Time] `json:"startTime"`
	PrecipitationChance    Optional[float64]   `json:"precipitationChance"`
	PrecipitationIntensity Optional[float64]   `json:"precipitationIntensity"` // mm/h
}

func (m MinuteWeather) Fields() []Field {
	return []Field{
		field("startTime", true, m.StartTime),
		field("precipitationChance", true, m.PrecipitationChance),
		field("precipitationIntensity", true, m.PrecipitationIntensity),
	}
}
