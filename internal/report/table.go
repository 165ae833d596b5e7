// Package report assembles the summary tables and chart series that the
// dashboards render.
package report

import (
	"fmt"

	"github.com/iwvelando/finance-dashboard/internal/decline"
	"github.com/iwvelando/finance-dashboard/internal/financials"
	"github.com/iwvelando/finance-dashboard/pkg/constants"
	"github.com/iwvelando/finance-dashboard/pkg/format"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Table is a summary table with metrics as rows and period labels as columns.
type Table struct {
	Title     string   `json:"title"`
	Columns   []string `json:"columns"`
	Rows      []Row    `json:"rows"`
	Precision int32    `json:"precision"`
}

// Row holds one metric's values, aligned with Table.Columns.
type Row struct {
	Metric financials.Metric       `json:"metric"`
	Values financials.PeriodSeries `json:"values"`
}

// Row returns the row of the given metric.
func (t Table) Row(metric financials.Metric) (Row, bool) {
	for _, row := range t.Rows {
		if row.Metric == metric {
			return row, true
		}
	}
	return Row{}, false
}

// Series returns a copy of the values of the given metric, or nil when absent.
func (t Table) Series(metric financials.Metric) financials.PeriodSeries {
	row, ok := t.Row(metric)
	if !ok {
		return nil
	}
	return row.Values.Clone()
}

// Metrics returns the row metrics in table order.
func (t Table) Metrics() []financials.Metric {
	metrics := make([]financials.Metric, 0, len(t.Rows))
	for _, row := range t.Rows {
		metrics = append(metrics, row.Metric)
	}
	return metrics
}

// Formatted returns the row values rendered at the table precision.
func (r Row) Formatted(precision int32) []string {
	cells := make([]string, len(r.Values))
	for i, v := range r.Values {
		cells[i] = format.Number(v, precision)
	}
	return cells
}

// BuildBalanceSheetTable lays the two period snapshots side by side in the
// declared seven-metric order.
func BuildBalanceSheetTable(previous, current financials.MetricSnapshot) Table {
	metrics := financials.BalanceSheetMetrics()
	table := Table{
		Title:     "Financial Summary Table",
		Columns:   financials.BalanceSheetPeriods(),
		Rows:      make([]Row, 0, len(metrics)),
		Precision: constants.BalanceSheetPrecision,
	}
	for _, metric := range metrics {
		table.Rows = append(table.Rows, Row{
			Metric: metric,
			Values: financials.PeriodSeries{previous.Get(metric), current.Get(metric)},
		})
	}
	return table
}

// BuildScenarioTable lays out one scenario's projected series with Year 0
// through Year 5 as columns.
func BuildScenarioTable(result decline.ScenarioResult) Table {
	metrics := financials.ForecastMetrics()
	table := Table{
		Title:     ScenarioTitle(result.Scenario),
		Columns:   financials.ForecastPeriods(),
		Rows:      make([]Row, 0, len(metrics)),
		Precision: constants.ForecastPrecision,
	}
	for _, metric := range metrics {
		table.Rows = append(table.Rows, Row{
			Metric: metric,
			Values: result.Series[metric].Clone(),
		})
	}
	return table
}

// ScenarioTitle names a scenario with its rate, e.g. "Mild Decline (10%)".
func ScenarioTitle(scenario decline.Scenario) string {
	name := cases.Title(language.English).String(scenario.Name)
	return fmt.Sprintf("%s Decline (%s)", name, format.Percent(scenario.Rate))
}
