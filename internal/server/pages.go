package server

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/iwvelando/finance-dashboard/internal/financials"
	"github.com/iwvelando/finance-dashboard/internal/inputs"
	"github.com/iwvelando/finance-dashboard/internal/report"
	"github.com/iwvelando/finance-dashboard/pkg/format"
)

//go:embed templates/*.gohtml
var templateFiles embed.FS

// Page names, one template set each.
const (
	pageIndex        = "index"
	pageBalanceSheet = "balance_sheet"
	pageForecast     = "forecast"
	pageHelp         = "help"
)

type pageBase struct {
	Title    string
	Version  string
	RenderID string
}

type fieldView struct {
	inputs.Field
	Value float64

	// Slider is false for free-form number inputs.
	Slider bool

	// Currency and Display label the slider read-out, e.g. "PHP 2,676,930".
	Currency string
	Display  string
}

type fieldGroup struct {
	Heading string
	Fields  []fieldView
}

type tableView struct {
	Title   string
	Columns []string
	Rows    []rowView
}

type rowView struct {
	Metric string
	Cells  []cellView
}

type cellView struct {
	Text     string
	Negative bool
}

type balanceSheetPage struct {
	pageBase
	Groups []fieldGroup

	// Submitted is set only after the form values were collected from an explicit submit.
	Submitted bool
	Error     string
	Table     tableView
	Charts    template.JS
}

type scenarioView struct {
	Heading string
	Table   tableView
	Decline string
	Trend   string
}

type forecastPage struct {
	pageBase
	Groups    []fieldGroup
	Error     string
	Scenarios []scenarioView
	Charts    template.JS
}

type helpPage struct {
	pageBase
	Body template.HTML
}

func parseTemplates() (map[string]*template.Template, error) {
	funcs := template.FuncMap{
		"plain": plain,
	}

	pages := []string{pageIndex, pageBalanceSheet, pageForecast, pageHelp}
	sets := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		tmpl, err := template.New(page).Funcs(funcs).ParseFS(templateFiles,
			"templates/layout.gohtml", "templates/"+page+".gohtml")
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", page, err)
		}
		sets[page] = tmpl
	}
	return sets, nil
}

// executePage renders into a buffer first so a template error never leaves a
// half-written page behind.
func executePage(tmpl *template.Template, data interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// plain formats v for input attributes without exponent notation.
func plain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func staticFS() (fs.FS, error) {
	return fs.Sub(staticFiles, "static")
}

func groupFields(set inputs.FieldSet, values inputs.Values, currency string, heading func(inputs.Field) string) []fieldGroup {
	var groups []fieldGroup
	for _, field := range set.Fields {
		title := heading(field)
		if len(groups) == 0 || groups[len(groups)-1].Heading != title {
			groups = append(groups, fieldGroup{Heading: title})
		}
		value, ok := values[field.Key]
		if !ok {
			value = field.Default
		}
		last := &groups[len(groups)-1]
		last.Fields = append(last.Fields, fieldView{
			Field:    field,
			Value:    value,
			Slider:   field.Bounded,
			Currency: currency,
			Display:  format.Currency(currency, value, 0),
		})
	}
	return groups
}

func balanceSheetHeading(field inputs.Field) string {
	switch field.Metric {
	case financials.TotalAssets, financials.TotalLiabilities, financials.StockholdersEquity:
		return "Balance Sheet"
	default:
		return "Income Statement"
	}
}

func baseYearHeading(inputs.Field) string {
	return "Base Year"
}

func newTableView(table report.Table) tableView {
	view := tableView{Title: table.Title, Columns: table.Columns}
	for _, row := range table.Rows {
		formatted := row.Formatted(table.Precision)
		cells := make([]cellView, len(formatted))
		for i, text := range formatted {
			cells[i] = cellView{Text: text, Negative: row.Values[i] < 0}
		}
		view.Rows = append(view.Rows, rowView{Metric: string(row.Metric), Cells: cells})
	}
	return view
}

// chartsJSON encodes chart specs for the page script. The encoder escapes
// '<', '>' and '&', so the result is safe inside a script element.
func chartsJSON(charts []report.Chart) (template.JS, error) {
	data, err := json.Marshal(charts)
	if err != nil {
		return "", err
	}
	return template.JS(data), nil
}
