// Package financials defines the metric names, snapshots and period series shared
// by both dashboards.
package financials

import (
	"fmt"

	"github.com/iwvelando/finance-dashboard/pkg/constants"
)

// Metric is the display name of a tracked financial metric.
type Metric string

const (
	TotalAssets        Metric = "Total Assets"
	TotalLiabilities   Metric = "Total Liabilities"
	StockholdersEquity Metric = "Stockholders' Equity"
	GrossRevenue       Metric = "Gross Revenue"
	GrossExpense       Metric = "Gross Expense"
	NetIncome          Metric = "Net Income"
	EarningsPerShare   Metric = "EPS"
)

// BalanceSheetMetrics returns the seven balance-sheet and income-statement metrics
// in their display order.
func BalanceSheetMetrics() []Metric {
	return []Metric{
		TotalAssets,
		TotalLiabilities,
		StockholdersEquity,
		GrossRevenue,
		GrossExpense,
		NetIncome,
		EarningsPerShare,
	}
}

// ForecastMetrics returns the four metrics projected by the decline forecast.
func ForecastMetrics() []Metric {
	return []Metric{
		TotalAssets,
		TotalLiabilities,
		GrossRevenue,
		NetIncome,
	}
}

// Period identifies the reporting period an input value belongs to.
type Period int

const (
	PreviousYear Period = iota
	CurrentYear
	// BaseYear is the starting point of a decline forecast.
	BaseYear
)

// Label returns the column label of the period.
func (p Period) Label() string {
	switch p {
	case PreviousYear:
		return constants.PreviousYearLabel
	case CurrentYear:
		return constants.CurrentYearLabel
	default:
		return YearLabel(0)
	}
}

// BalanceSheetPeriods returns the column labels of the balance-sheet dashboard.
func BalanceSheetPeriods() []string {
	return []string{PreviousYear.Label(), CurrentYear.Label()}
}

// ForecastPeriods returns the column labels "Year 0" through "Year 5".
func ForecastPeriods() []string {
	labels := make([]string, constants.ForecastPeriods)
	for i := range labels {
		labels[i] = YearLabel(i)
	}
	return labels
}

// YearLabel formats a forecast year index as a column label.
func YearLabel(year int) string {
	return fmt.Sprintf("Year %d", year)
}

// MetricSnapshot holds a single period's values across metrics. It is
// immutable once built; accessors never expose the backing map.
type MetricSnapshot struct {
	values map[Metric]float64
}

// NewMetricSnapshot copies values into a new snapshot.
func NewMetricSnapshot(values map[Metric]float64) MetricSnapshot {
	copied := make(map[Metric]float64, len(values))
	for metric, value := range values {
		copied[metric] = value
	}
	return MetricSnapshot{values: copied}
}

// Get returns the metric value, or zero when absent.
func (s MetricSnapshot) Get(metric Metric) float64 {
	return s.values[metric]
}

// Len returns the number of metrics in the snapshot.
func (s MetricSnapshot) Len() int {
	return len(s.values)
}

// Map returns a copy of the snapshot values.
func (s MetricSnapshot) Map() map[Metric]float64 {
	copied := make(map[Metric]float64, len(s.values))
	for metric, value := range s.values {
		copied[metric] = value
	}
	return copied
}

// PeriodSeries is the ordered sequence of one metric's values across periods.
type PeriodSeries []float64

// Clone returns an independent copy of the series.
func (p PeriodSeries) Clone() PeriodSeries {
	return append(PeriodSeries(nil), p...)
}
