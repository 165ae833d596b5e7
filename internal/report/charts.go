package report

import (
	"github.com/iwvelando/finance-dashboard/internal/financials"
	"github.com/iwvelando/finance-dashboard/pkg/format"
	"github.com/iwvelando/finance-dashboard/pkg/mathutil"
)

// Chart kinds understood by the web renderer.
const (
	ChartLine = "line"
	ChartBar  = "bar"
)

// Bar colors for signed values.
const (
	ColorPositive = "green"
	ColorNegative = "red"
)

// Chart describes one chart; the browser only draws what is specified here.
type Chart struct {
	ID     string   `json:"id"`
	Kind   string   `json:"kind"`
	Title  string   `json:"title"`
	YLabel string   `json:"yLabel"`
	Labels []string `json:"labels"`
	Series []Series `json:"series"`

	// YMin and YMax span every series value and zero.
	YMin float64 `json:"yMin"`
	YMax float64 `json:"yMax"`

	// Grid draws horizontal grid lines.
	Grid bool `json:"grid,omitempty"`
}

// Series is one named line or bar group of a chart.
type Series struct {
	Name        string                  `json:"name"`
	Values      financials.PeriodSeries `json:"values"`
	Colors      []string                `json:"colors,omitempty"`
	ValueLabels []string                `json:"valueLabels,omitempty"`
}

// withAxis sets the value axis of c from its series.
func withAxis(c Chart) Chart {
	values := []float64{0}
	for _, series := range c.Series {
		values = append(values, series.Values...)
	}
	c.YMin = mathutil.Min(values...)
	c.YMax = mathutil.Max(values...)
	return c
}

// seriesFrom builds one series per metric from table rows.
func seriesFrom(table Table, metrics []financials.Metric, names map[financials.Metric]string) []Series {
	series := make([]Series, 0, len(metrics))
	for _, metric := range metrics {
		name := string(metric)
		if alias, ok := names[metric]; ok {
			name = alias
		}
		series = append(series, Series{Name: name, Values: table.Series(metric)})
	}
	return series
}

// SignColors returns ColorPositive for values above zero and ColorNegative otherwise.
func SignColors(values []float64) []string {
	colors := make([]string, len(values))
	for i, v := range values {
		if mathutil.IsPositive(v) {
			colors[i] = ColorPositive
		} else {
			colors[i] = ColorNegative
		}
	}
	return colors
}

// ValueLabels renders bar annotations at the given precision.
func ValueLabels(values []float64, places int32) []string {
	labels := make([]string, len(values))
	for i, v := range values {
		labels[i] = format.Fixed(v, places)
	}
	return labels
}

func amountLabel(currency string) string {
	if currency == "" {
		return "Amount"
	}
	return "Amount (" + currency + ")"
}
