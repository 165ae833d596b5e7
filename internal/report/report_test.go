package report

import (
	"testing"

	"github.com/iwvelando/finance-dashboard/internal/decline"
	"github.com/iwvelando/finance-dashboard/internal/financials"
	"github.com/iwvelando/finance-dashboard/internal/inputs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultBalanceSheet(t *testing.T) (financials.MetricSnapshot, financials.MetricSnapshot) {
	t.Helper()
	set := inputs.BalanceSheetFields()
	values := set.Defaults()
	return set.Snapshot(values, financials.PreviousYear), set.Snapshot(values, financials.CurrentYear)
}

func defaultBase() financials.MetricSnapshot {
	set := inputs.BaseYearFields()
	return set.Snapshot(set.Defaults(), financials.BaseYear)
}

func TestBuildBalanceSheetTableDefaults(t *testing.T) {
	previous, current := defaultBalanceSheet(t)

	table := BuildBalanceSheetTable(previous, current)

	assert.Equal(t, []string{"Previous Year", "Current Year"}, table.Columns)
	assert.Equal(t, financials.BalanceSheetMetrics(), table.Metrics())
	assert.Equal(t, int32(2), table.Precision)

	assert.Equal(t, financials.PeriodSeries{44699, 36675}, table.Series(financials.NetIncome))
	assert.Equal(t, financials.PeriodSeries{-2.51, -7.10}, table.Series(financials.EarningsPerShare))
	assert.Equal(t, financials.PeriodSeries{2459365, 2676930}, table.Series(financials.TotalAssets))
}

func TestBuildBalanceSheetTableOrderIgnoresValues(t *testing.T) {
	previous := financials.NewMetricSnapshot(map[financials.Metric]float64{
		financials.EarningsPerShare: 100,
		financials.TotalAssets:      -1,
	})
	current := financials.NewMetricSnapshot(nil)

	table := BuildBalanceSheetTable(previous, current)

	assert.Equal(t, financials.BalanceSheetMetrics(), table.Metrics())
	assert.Equal(t, financials.PeriodSeries{100, 0}, table.Series(financials.EarningsPerShare))
}

func TestTableSeriesIsCopy(t *testing.T) {
	previous, current := defaultBalanceSheet(t)
	table := BuildBalanceSheetTable(previous, current)

	series := table.Series(financials.NetIncome)
	series[0] = 0

	assert.Equal(t, financials.PeriodSeries{44699, 36675}, table.Series(financials.NetIncome))
	assert.Nil(t, table.Series(financials.Metric("Free Cash Flow")))
}

func TestRowFormatted(t *testing.T) {
	previous, current := defaultBalanceSheet(t)
	table := BuildBalanceSheetTable(previous, current)

	row, ok := table.Row(financials.EarningsPerShare)
	require.True(t, ok)
	assert.Equal(t, []string{"-2.51", "-7.10"}, row.Formatted(table.Precision))

	row, ok = table.Row(financials.TotalAssets)
	require.True(t, ok)
	assert.Equal(t, []string{"2,459,365.00", "2,676,930.00"}, row.Formatted(table.Precision))
}

func TestBuildScenarioTable(t *testing.T) {
	result := decline.Project(defaultBase(), decline.Scenario{Name: "severe", Rate: 0.30})

	table := BuildScenarioTable(result)

	assert.Equal(t, "Severe Decline (30%)", table.Title)
	assert.Equal(t, []string{"Year 0", "Year 1", "Year 2", "Year 3", "Year 4", "Year 5"}, table.Columns)
	assert.Equal(t, financials.ForecastMetrics(), table.Metrics())
	assert.Equal(t, int32(0), table.Precision)

	revenue, ok := table.Row(financials.GrossRevenue)
	require.True(t, ok)
	assert.Equal(t, []string{"1,575,379", "1,102,765", "771,936", "540,355", "378,248", "264,774"},
		revenue.Formatted(table.Precision))
}

func TestBalanceSheetReportDefaults(t *testing.T) {
	previous, current := defaultBalanceSheet(t)

	report := BuildBalanceSheetReport(previous, current, "PHP")

	assert.Equal(t, "Assets vs Liabilities vs Equity", report.Trends.Title)
	assert.Equal(t, ChartLine, report.Trends.Kind)
	assert.Equal(t, "Amount (PHP)", report.Trends.YLabel)
	require.Len(t, report.Trends.Series, 3)
	assert.Equal(t, "Equity", report.Trends.Series[2].Name)
	assert.Equal(t, financials.PeriodSeries{665166, 676441}, report.Trends.Series[2].Values)

	assert.Equal(t, ChartBar, report.IncomeVsCost.Kind)
	assert.True(t, report.IncomeVsCost.Grid)
	require.Len(t, report.IncomeVsCost.Series, 3)
	assert.Equal(t, "Net Income", report.IncomeVsCost.Series[2].Name)

	require.Len(t, report.EPS.Series, 1)
	eps := report.EPS.Series[0]
	assert.Equal(t, []string{ColorNegative, ColorNegative}, eps.Colors)
	assert.Equal(t, []string{"-2.51", "-7.10"}, eps.ValueLabels)
	assert.Equal(t, "EPS Comparison", report.EPS.Title)
}

func TestSignColors(t *testing.T) {
	assert.Equal(t, []string{"green", "red", "red"}, SignColors([]float64{1.25, 0, -3}))
	assert.Empty(t, SignColors(nil))
}

func TestAmountLabelWithoutCurrency(t *testing.T) {
	previous, current := defaultBalanceSheet(t)
	report := BuildBalanceSheetReport(previous, current, "")
	assert.Equal(t, "Amount", report.Trends.YLabel)
}

func TestBuildForecastReport(t *testing.T) {
	report := BuildForecastReport(defaultBase(), decline.DefaultScenarios(), "PHP")

	require.Len(t, report.Scenarios, 3)
	assert.Equal(t, 2_676_930.0, report.Base[financials.TotalAssets])

	titles := []string{"Mild Decline (10%)", "Moderate Decline (20%)", "Severe Decline (30%)"}
	for i, section := range report.Scenarios {
		assert.Equal(t, titles[i], section.Table.Title)
		assert.Len(t, section.Table.Columns, 6)
		require.Len(t, section.Table.Rows, 4)
		for _, row := range section.Table.Rows {
			assert.Len(t, row.Values, 6)
		}

		require.Len(t, section.Decline.Series, 2)
		assert.Equal(t, "Total Assets", section.Decline.Series[0].Name)
		assert.Equal(t, "Total Liabilities", section.Decline.Series[1].Name)
		require.Len(t, section.Trend.Series, 2)
		assert.Equal(t, "Gross Revenue", section.Trend.Series[0].Name)
		assert.Equal(t, "Net Income", section.Trend.Series[1].Name)
	}

	mild := report.Scenarios[0].Table.Series(financials.TotalAssets)
	assert.InDelta(t, 2409237.0, mild[1], 0.1)
	assert.InDelta(t, 1580700.4, mild[5], 0.1)
	assert.NotEqual(t, report.Scenarios[0].Decline.ID, report.Scenarios[1].Decline.ID)
}

func TestChartAxisIncludesZero(t *testing.T) {
	previous, current := defaultBalanceSheet(t)

	report := BuildBalanceSheetReport(previous, current, "PHP")

	assert.InDelta(t, -7.10, report.EPS.YMin, 1e-9)
	assert.Zero(t, report.EPS.YMax)
	assert.Zero(t, report.Trends.YMin)
	assert.Equal(t, 2_676_930.0, report.Trends.YMax)

	section := BuildScenarioReport(decline.Project(defaultBase(), decline.Scenario{Name: "severe", Rate: 0.3}), "PHP")
	assert.Zero(t, section.Decline.YMin)
	assert.Equal(t, 2_676_930.0, section.Decline.YMax)
}
