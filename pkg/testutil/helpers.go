// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/finance-dashboard/internal/report"
)

// FindScenario finds a scenario section by scenario name.
// Returns a pointer to the section if found, nil otherwise.
func FindScenario(sections []report.ScenarioReport, name string) *report.ScenarioReport {
	for i := range sections {
		if sections[i].Scenario.Name == name {
			return &sections[i]
		}
	}
	return nil
}

// RowValues returns the values of the named metric row, or nil when the
// table has no such row.
func RowValues(table report.Table, metric string) []float64 {
	for _, row := range table.Rows {
		if string(row.Metric) == metric {
			return row.Values
		}
	}
	return nil
}
