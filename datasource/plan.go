package datasource

import "context"

// DatasetPlan is the outcome of an availability lookup. Exactly one of
// Available and Err is meaningful.
type DatasetPlan struct {
	Available []string
	Err       error
}

// PlanDatasets asks source which datasets exist at lat/lon.
// Any failure is kept in the plan rather than returned, so the weather
// request can go ahead with DefaultDatasets.
func PlanDatasets(ctx context.Context, source AvailabilitySource, lat, lon float64, country string) DatasetPlan {
	available, err := source.CheckAvailability(ctx, lat, lon, country)
	if err != nil {
		return DatasetPlan{Err: err}
	}
	return DatasetPlan{Available: available}
}

// Fallback reports whether the lookup failed
func (p DatasetPlan) Fallback() bool {
	return p.Err != nil
}

// Empty reports a successful lookup that found no datasets
func (p DatasetPlan) Empty() bool {
	return p.Err == nil && len(p.Available) == 0
}

// Datasets returns the list to pass to FetchWeather; nil selects the defaults
func (p DatasetPlan) Datasets() []string {
	if p.Fallback() {
		return nil
	}
	return p.Available
}
