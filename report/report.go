package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"weatherkit-report/datasource"
	"weatherkit-report/models"
)

const (
	hoursShown = 12
	daysShown  = 7
)

// Location is the coordinate the report was produced for
type Location struct {
	Latitude  float64
	Longitude float64
}

// Printer writes the console weather report
type Printer struct {
	out      io.Writer
	timezone *time.Location
}

// NewPrinter creates a printer that shows timestamps in timezone
func NewPrinter(out io.Writer, timezone *time.Location) *Printer {
	if timezone == nil {
		timezone = time.UTC
	}
	return &Printer{out: out, timezone: timezone}
}

// Print writes every section of the report
func (p *Printer) Print(location Location, plan datasource.DatasetPlan, bundle models.Bundle) {
	p.printAvailability(location, plan)
	p.printCurrent(bundle.CurrentWeather)
	p.printHourly(bundle.ForecastHourly)
	p.printDaily(bundle.ForecastDaily)
	p.printNextHour(bundle.ForecastNextHour)
}

func (p *Printer) printAvailability(location Location, plan datasource.DatasetPlan) {
	fmt.Fprintln(p.out, "=== Dataset availability ===")
	fmt.Fprintf(p.out, "Location: (%.6f, %.6f)\n", location.Latitude, location.Longitude)

	if plan.Fallback() {
		fmt.Fprintf(p.out, "Availability check failed: %v\n", plan.Err)
		fmt.Fprintf(p.out, "Using default datasets: %s\n\n", strings.Join(datasource.DefaultDatasets, ","))
		return
	}

	fmt.Fprintf(p.out, "Available datasets: %s\n\n", strings.Join(plan.Available, ", "))
}

func (p *Printer) printCurrent(dataset models.Optional[models.CurrentWeather]) {
	fmt.Fprintln(p.out, "=== Current weather ===")

	current, ok := dataset.Get()
	if !ok {
		fmt.Fprintln(p.out, "Current weather is not available.")
		return
	}

	fmt.Fprintf(p.out, "Temperature: %s°C\n", decimal(current.Temperature, 1))
	fmt.Fprintf(p.out, "Feels like: %s°C\n", decimal(current.TemperatureApparent, 1))
	fmt.Fprintf(p.out, "Condition: %s\n", current.ConditionCode)
	fmt.Fprintf(p.out, "Cloud cover: %s\n", percent(current.CloudCover))
	fmt.Fprintf(p.out, "Humidity: %s\n", percent(current.Humidity))
	fmt.Fprintf(p.out, "Wind speed: %s m/s\n", decimal(current.WindSpeed, 1))
	p.printFields("current weather", current.Fields())
}

func (p *Printer) printHourly(dataset models.Optional[models.HourlyForecast]) {
	fmt.Fprintf(p.out, "\n=== Next %d hours (%s) ===\n", hoursShown, p.timezone)

	hourly, ok := dataset.Get()
	if !ok || !hourly.Hours.Present() {
		fmt.Fprintln(p.out, "Hourly forecast is not available.")
		return
	}

	hours := hourly.Hours.OrElse(nil)
	if len(hours) > 0 {
		p.printFields("first hour", hours[0].Fields())
	}

	if len(hours) > hoursShown {
		hours = hours[:hoursShown]
	}
	for _, hour := range hours {
		fmt.Fprintf(p.out, "%s: %s°C, %s, cloud cover: %s\n",
			p.localTime(hour.ForecastStart, "01/02 15:04"),
			decimal(hour.Temperature, 1),
			hour.ConditionCode,
			percent(hour.CloudCover))
	}
}

func (p *Printer) printDaily(dataset models.Optional[models.DailyForecast]) {
	daily, ok := dataset.Get()
	if !ok || !daily.Days.Present() {
		return
	}

	fmt.Fprintf(p.out, "\n=== Next %d days ===\n", daysShown)

	days := daily.Days.OrElse(nil)
	if len(days) > 0 {
		p.printFields("first day", days[0].Fields())
	}

	if len(days) > daysShown {
		days = days[:daysShown]
	}
	for _, day := range days {
		fmt.Fprintf(p.out, "%s: %s°C / %s°C, %s\n",
			p.localTime(day.ForecastStart, "01/02 (Mon)"),
			decimal(day.TemperatureMax, 1),
			decimal(day.TemperatureMin, 1),
			day.ConditionCode)
	}
}

func (p *Printer) printNextHour(dataset models.Optional[models.NextHourForecast]) {
	nextHour, ok := dataset.Get()
	if !ok || !nextHour.Minutes.Present() {
		return
	}

	minutes := nextHour.Minutes.OrElse(nil)
	fmt.Fprintln(p.out, "\n=== Next hour ===")
	fmt.Fprintf(p.out, "Data points: %d minutes\n", len(minutes))
	if len(minutes) == 0 {
		return
	}

	first := minutes[0]
	fmt.Fprintf(p.out, "First minute: precipitation chance %.0f%%, intensity %.1f mm/h\n",
		first.PrecipitationChance.OrElse(0)*100,
		first.PrecipitationIntensity.OrElse(0))
}

// printFields lists which documented fields the API actually returned
func (p *Printer) printFields(record string, fields []models.Field) {
	fmt.Fprintf(p.out, "--- Field presence (%s) ---\n", record)

	for _, required := range []bool{true, false} {
		if required {
			fmt.Fprintln(p.out, "Required fields:")
		} else {
			fmt.Fprintln(p.out, "Optional fields:")
		}
		for _, f := range fields {
			if f.Required != required {
				continue
			}
			if f.Present {
				fmt.Fprintf(p.out, "  [x] %s: %s\n", f.Name, f.Value)
			} else {
				fmt.Fprintf(p.out, "  [ ] %s\n", f.Name)
			}
		}
	}
	fmt.Fprintln(p.out, strings.Repeat("-", 50))
}

func (p *Printer) localTime(t models.Optional[time.Time], layout string) string {
	value, ok := t.Get()
	if !ok {
		return "N/A"
	}
	return value.In(p.timezone).Format(layout)
}

func decimal(v models.Optional[float64], places int) string {
	value, ok := v.Get()
	if !ok {
		return "N/A"
	}
	return fmt.Sprintf("%.*f", places, value)
}

// percent renders a 0-1 ratio as a whole percentage
func percent(v models.Optional[float64]) string {
	value, ok := v.Get()
	if !ok {
		return "N/A"
	}
	return fmt.Sprintf("%.0f%%", value*100)
}
