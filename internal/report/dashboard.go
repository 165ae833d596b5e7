package report

import (
	"fmt"

	"github.com/iwvelando/finance-dashboard/internal/decline"
	"github.com/iwvelando/finance-dashboard/internal/financials"
	"github.com/iwvelando/finance-dashboard/pkg/constants"
)

// BalanceSheetReport is everything the balance-sheet dashboard renders.
type BalanceSheetReport struct {
	Table        Table `json:"table"`
	Trends       Chart `json:"trends"`
	IncomeVsCost Chart `json:"incomeVsExpenses"`
	EPS          Chart `json:"eps"`
}

// ScenarioReport is one scenario section of the forecast dashboard.
type ScenarioReport struct {
	Scenario decline.Scenario `json:"scenario"`
	Table    Table            `json:"table"`
	Decline  Chart            `json:"decline"`
	Trend    Chart            `json:"trend"`
}

// ForecastReport is everything the forecast dashboard renders.
type ForecastReport struct {
	Base      map[financials.Metric]float64 `json:"base"`
	Scenarios []ScenarioReport              `json:"scenarios"`
}

// BuildBalanceSheetReport assembles the summary table and the three charts of
// the balance-sheet dashboard.
func BuildBalanceSheetReport(previous, current financials.MetricSnapshot, currency string) BalanceSheetReport {
	table := BuildBalanceSheetTable(previous, current)
	yLabel := amountLabel(currency)

	eps := table.Series(financials.EarningsPerShare)

	report := BalanceSheetReport{
		Table: table,
		Trends: Chart{
			ID:     "balance-sheet-trends",
			Kind:   ChartLine,
			Title:  "Assets vs Liabilities vs Equity",
			YLabel: yLabel,
			Labels: table.Columns,
			Series: seriesFrom(table,
				[]financials.Metric{financials.TotalAssets, financials.TotalLiabilities, financials.StockholdersEquity},
				map[financials.Metric]string{financials.StockholdersEquity: "Equity"}),
		},
		IncomeVsCost: Chart{
			ID:     "income-vs-expenses",
			Kind:   ChartBar,
			Title:  "Income Statement Components",
			YLabel: yLabel,
			Labels: table.Columns,
			Series: seriesFrom(table,
				[]financials.Metric{financials.GrossRevenue, financials.GrossExpense, financials.NetIncome},
				nil),
			Grid: true,
		},
		EPS: Chart{
			ID:     "eps-comparison",
			Kind:   ChartBar,
			Title:  "EPS Comparison",
			YLabel: string(financials.EarningsPerShare),
			Labels: table.Columns,
			Series: []Series{{
				Name:        string(financials.EarningsPerShare),
				Values:      eps,
				Colors:      SignColors(eps),
				ValueLabels: ValueLabels(eps, constants.BalanceSheetPrecision),
			}},
		},
	}
	report.Trends = withAxis(report.Trends)
	report.IncomeVsCost = withAxis(report.IncomeVsCost)
	report.EPS = withAxis(report.EPS)
	return report
}

// BuildScenarioReport assembles the table and charts of one scenario.
func BuildScenarioReport(result decline.ScenarioResult, currency string) ScenarioReport {
	table := BuildScenarioTable(result)
	yLabel := amountLabel(currency)
	id := "scenario-" + result.Scenario.Name

	section := ScenarioReport{
		Scenario: result.Scenario,
		Table:    table,
		Decline: Chart{
			ID:     id + "-decline",
			Kind:   ChartLine,
			Title:  fmt.Sprintf("Assets & Liabilities Decline: %s", table.Title),
			YLabel: yLabel,
			Labels: table.Columns,
			Series: seriesFrom(table,
				[]financials.Metric{financials.TotalAssets, financials.TotalLiabilities}, nil),
		},
		Trend: Chart{
			ID:     id + "-trend",
			Kind:   ChartBar,
			Title:  fmt.Sprintf("Revenue & Net Income Trend: %s", table.Title),
			YLabel: yLabel,
			Labels: table.Columns,
			Series: seriesFrom(table,
				[]financials.Metric{financials.GrossRevenue, financials.NetIncome}, nil),
			Grid: true,
		},
	}
	section.Decline = withAxis(section.Decline)
	section.Trend = withAxis(section.Trend)
	return section
}

// BuildForecastReport projects base under every scenario and builds one
// independent section per scenario, in scenario order.
func BuildForecastReport(base financials.MetricSnapshot, scenarios []decline.Scenario, currency string) ForecastReport {
	results := decline.ProjectAll(base, scenarios)

	report := ForecastReport{
		Base:      base.Map(),
		Scenarios: make([]ScenarioReport, 0, len(results)),
	}
	for _, result := range results {
		report.Scenarios = append(report.Scenarios, BuildScenarioReport(result, currency))
	}
	return report
}
