package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/iwvelando/finance-dashboard/internal/decline"
	"github.com/iwvelando/finance-dashboard/internal/financials"
	"github.com/iwvelando/finance-dashboard/internal/report"
)

func balanceSheetTable() report.Table {
	previous := financials.NewMetricSnapshot(map[financials.Metric]float64{
		financials.TotalAssets:      2459365,
		financials.NetIncome:        44699,
		financials.EarningsPerShare: -2.51,
	})
	current := financials.NewMetricSnapshot(map[financials.Metric]float64{
		financials.TotalAssets:      2676930,
		financials.NetIncome:        36675,
		financials.EarningsPerShare: -7.1,
	})
	return report.BuildBalanceSheetTable(previous, current)
}

func TestPrettyFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := PrettyFormat(&buf, []report.Table{balanceSheetTable()}); err != nil {
		t.Fatalf("PrettyFormat() error = %v", err)
	}
	output := buf.String()

	if !strings.Contains(output, "--- Financial Summary Table ---") {
		t.Errorf("PrettyFormat missing table header, got:\n%s", output)
	}
	if !strings.Contains(output, "Previous Year | Current Year") {
		t.Errorf("PrettyFormat missing column header, got:\n%s", output)
	}
	if !strings.Contains(output, "2,676,930.00") {
		t.Errorf("PrettyFormat missing grouped total assets, got:\n%s", output)
	}
	if !strings.Contains(output, "-7.10") {
		t.Errorf("PrettyFormat missing EPS value, got:\n%s", output)
	}
	if !strings.Contains(output, "_____") {
		t.Errorf("PrettyFormat missing separator, got:\n%s", output)
	}
}

func TestPrettyFormatMultipleTables(t *testing.T) {
	base := financials.NewMetricSnapshot(map[financials.Metric]float64{financials.GrossRevenue: 1575379})
	var tables []report.Table
	for _, result := range decline.ProjectAll(base, decline.DefaultScenarios()) {
		tables = append(tables, report.BuildScenarioTable(result))
	}

	var buf bytes.Buffer
	if err := PrettyFormat(&buf, tables); err != nil {
		t.Fatalf("PrettyFormat() error = %v", err)
	}
	output := buf.String()

	for _, title := range []string{"Mild Decline (10%)", "Moderate Decline (20%)", "Severe Decline (30%)"} {
		if !strings.Contains(output, "--- "+title+" ---") {
			t.Errorf("PrettyFormat missing section %q", title)
		}
	}
	if !strings.Contains(output, "264,774") {
		t.Errorf("PrettyFormat missing severe year 5 revenue, got:\n%s", output)
	}
}

func TestCsvFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := CsvFormat(&buf, []report.Table{balanceSheetTable()}); err != nil {
		t.Fatalf("CsvFormat() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

	if len(lines) != 8 {
		t.Fatalf("expected header plus 7 rows, got %d lines:\n%s", len(lines), buf.String())
	}
	if lines[0] != "table,metric,Previous Year,Current Year" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if lines[1] != "Financial Summary Table,Total Assets,2459365.00,2676930.00" {
		t.Errorf("unexpected first row %q", lines[1])
	}
	if lines[7] != "Financial Summary Table,EPS,-2.51,-7.10" {
		t.Errorf("unexpected EPS row %q", lines[7])
	}
}

func TestCsvFormatEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := CsvFormat(&buf, nil); err != nil {
		t.Fatalf("CsvFormat() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := JSONFormat(&buf, []report.Table{balanceSheetTable()}); err != nil {
		t.Fatalf("JSONFormat() error = %v", err)
	}

	var decoded []report.Table
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode JSON output: %v", err)
	}
	if len(decoded) != 1 || len(decoded[0].Rows) != 7 {
		t.Fatalf("unexpected decoded tables: %+v", decoded)
	}
	if decoded[0].Rows[5].Metric != financials.NetIncome {
		t.Errorf("expected Net Income as sixth row, got %s", decoded[0].Rows[5].Metric)
	}
}

func TestWriteUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, "xml", nil); err == nil {
		t.Fatal("expected error for unsupported format")
	}
	if err := Write(&buf, "json", nil); err != nil {
		t.Fatalf("Write(json) error = %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("expected empty JSON array, got %q", buf.String())
	}
}
