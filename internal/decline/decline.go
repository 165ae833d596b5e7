// Package decline projects base-year financials forward under fixed-rate
// geometric decline scenarios.
package decline

import (
	"github.com/iwvelando/finance-dashboard/internal/financials"
	"github.com/iwvelando/finance-dashboard/pkg/constants"
)

// Scenario is one fixed decline-rate assumption applied to every tracked metric.
type Scenario struct {
	Name string  `json:"name"`
	Rate float64 `json:"rate"`
}

// DefaultScenarios returns the mild, moderate and severe scenarios.
func DefaultScenarios() []Scenario {
	return []Scenario{
		{Name: constants.MildScenarioName, Rate: constants.MildDeclineRate},
		{Name: constants.ModerateScenarioName, Rate: constants.ModerateDeclineRate},
		{Name: constants.SevereScenarioName, Rate: constants.SevereDeclineRate},
	}
}

// ScenarioResult holds the projected series of every tracked metric for one scenario.
type ScenarioResult struct {
	Scenario Scenario
	Series   map[financials.Metric]financials.PeriodSeries
}

// Simulate returns the base value followed by five years of decline at rate r:
// value[i] = b * (1 - r)^i. Each value is derived from the previous one so that
// consecutive years differ by exactly one factor of (1 - r).
//
// Rates outside [0, 1) are not rejected; they yield sign-flipping or growing
// sequences.
func Simulate(b, r float64) financials.PeriodSeries {
	values := make(financials.PeriodSeries, constants.ForecastPeriods)
	values[0] = b
	factor := 1 - r
	for i := 1; i < len(values); i++ {
		values[i] = values[i-1] * factor
	}
	return values
}

// Project applies Simulate independently to each forecast metric of the base snapshot.
// Metrics missing from the base are projected from zero.
func Project(base financials.MetricSnapshot, scenario Scenario) ScenarioResult {
	metrics := financials.ForecastMetrics()
	result := ScenarioResult{
		Scenario: scenario,
		Series:   make(map[financials.Metric]financials.PeriodSeries, len(metrics)),
	}
	for _, metric := range metrics {
		result.Series[metric] = Simulate(base.Get(metric), scenario.Rate)
	}
	return result
}

// ProjectAll runs Project once per scenario, preserving scenario order.
func ProjectAll(base financials.MetricSnapshot, scenarios []Scenario) []ScenarioResult {
	results := make([]ScenarioResult, 0, len(scenarios))
	for _, scenario := range scenarios {
		results = append(results, Project(base, scenario))
	}
	return results
}
