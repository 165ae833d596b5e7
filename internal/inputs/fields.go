package inputs

import (
	"github.com/iwvelando/finance-dashboard/internal/financials"
)

// Field set names, also used in URLs.
const (
	BalanceSheetSet = "balance-sheet"
	ForecastSet     = "forecast"
)

// BalanceSheetFields returns the 14 balance-sheet and income-statement inputs,
// metric by metric with the previous year first.
func BalanceSheetFields() FieldSet {
	return FieldSet{
		Name: BalanceSheetSet,
		Fields: []Field{
			slider("ta_prev", financials.TotalAssets, financials.PreviousYear, 1_000_000, 5_000_000, 2_459_365, 100_000),
			slider("ta_curr", financials.TotalAssets, financials.CurrentYear, 1_000_000, 5_000_000, 2_676_930, 100_000),
			slider("tl_prev", financials.TotalLiabilities, financials.PreviousYear, 1_000_000, 5_000_000, 1_794_199, 100_000),
			slider("tl_curr", financials.TotalLiabilities, financials.CurrentYear, 1_000_000, 5_000_000, 2_000_489, 100_000),
			slider("eq_prev", financials.StockholdersEquity, financials.PreviousYear, 500_000, 2_000_000, 665_166, 50_000),
			slider("eq_curr", financials.StockholdersEquity, financials.CurrentYear, 500_000, 2_000_000, 676_441, 50_000),
			slider("rev_prev", financials.GrossRevenue, financials.PreviousYear, 1_000_000, 3_000_000, 1_446_703, 50_000),
			slider("rev_curr", financials.GrossRevenue, financials.CurrentYear, 1_000_000, 3_000_000, 1_575_379, 50_000),
			slider("exp_prev", financials.GrossExpense, financials.PreviousYear, 1_000_000, 3_000_000, 1_302_218, 50_000),
			slider("exp_curr", financials.GrossExpense, financials.CurrentYear, 1_000_000, 3_000_000, 1_414_563, 50_000),
			slider("net_prev", financials.NetIncome, financials.PreviousYear, -50_000, 100_000, 44_699, 1_000),
			slider("net_curr", financials.NetIncome, financials.CurrentYear, -50_000, 100_000, 36_675, 1_000),
			number("eps_prev", financials.EarningsPerShare, financials.PreviousYear, -2.51, 0.1),
			number("eps_curr", financials.EarningsPerShare, financials.CurrentYear, -7.10, 0.1),
		},
	}
}

// BaseYearFields returns the four base-year inputs of the decline forecast.
func BaseYearFields() FieldSet {
	return FieldSet{
		Name: ForecastSet,
		Fields: []Field{
			{
				Key: "base_assets", Label: "Base Year Total Assets", Metric: financials.TotalAssets,
				Period: financials.BaseYear, Min: 1_000_000, Max: 10_000_000, Default: 2_676_930, Step: 50_000, Bounded: true,
			},
			{
				Key: "base_liabilities", Label: "Base Year Total Liabilities", Metric: financials.TotalLiabilities,
				Period: financials.BaseYear, Min: 500_000, Max: 10_000_000, Default: 2_000_489, Step: 50_000, Bounded: true,
			},
			{
				Key: "base_revenue", Label: "Base Year Gross Revenue", Metric: financials.GrossRevenue,
				Period: financials.BaseYear, Min: 1_000_000, Max: 10_000_000, Default: 1_575_379, Step: 50_000, Bounded: true,
			},
			{
				Key: "base_net_income", Label: "Base Year Net Income", Metric: financials.NetIncome,
				Period: financials.BaseYear, Min: -500_000, Max: 500_000, Default: 36_675, Step: 1_000, Bounded: true,
			},
		},
	}
}

// FieldSetByName returns the field set served under name.
func FieldSetByName(name string) (FieldSet, bool) {
	switch name {
	case BalanceSheetSet:
		return BalanceSheetFields(), true
	case ForecastSet:
		return BaseYearFields(), true
	default:
		return FieldSet{}, false
	}
}

func slider(key string, metric financials.Metric, period financials.Period, lo, hi, def, step float64) Field {
	return Field{
		Key:     key,
		Label:   string(metric) + " - " + period.Label(),
		Metric:  metric,
		Period:  period,
		Min:     lo,
		Max:     hi,
		Default: def,
		Step:    step,
		Bounded: true,
	}
}

func number(key string, metric financials.Metric, period financials.Period, def, step float64) Field {
	return Field{
		Key:     key,
		Label:   string(metric) + " - " + period.Label(),
		Metric:  metric,
		Period:  period,
		Default: def,
		Step:    step,
	}
}
