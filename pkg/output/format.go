// Package output provides utilities for printing summary tables from the CLI.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/iwvelando/finance-dashboard/internal/report"
	"github.com/iwvelando/finance-dashboard/pkg/constants"
	"github.com/iwvelando/finance-dashboard/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Write prints tables in the named format (pretty, csv or json).
func Write(w io.Writer, outputFormat string, tables []report.Table) error {
	switch outputFormat {
	case constants.OutputFormatPretty:
		return PrettyFormat(w, tables)
	case constants.OutputFormatCSV:
		return CsvFormat(w, tables)
	case constants.OutputFormatJSON:
		return JSONFormat(w, tables)
	default:
		return fmt.Errorf("unsupported output format: %s", outputFormat)
	}
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, tables []report.Table) error {
	p := message.NewPrinter(language.English)
	for i, table := range tables {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		verb := fmt.Sprintf("%%.%df", table.Precision)
		cells := make([][]string, 0, len(table.Rows)+1)
		cells = append(cells, append([]string{"Metric"}, table.Columns...))
		for _, row := range table.Rows {
			line := make([]string, 0, len(row.Values)+1)
			line = append(line, string(row.Metric))
			for _, v := range row.Values {
				line = append(line, p.Sprintf(verb, v))
			}
			cells = append(cells, line)
		}

		widths := columnWidths(cells)
		if _, err := fmt.Fprintf(w, "--- %s ---\n", table.Title); err != nil {
			return err
		}
		for r, line := range cells {
			if err := writeAligned(w, line, widths); err != nil {
				return err
			}
			if r == 0 {
				rule := make([]string, len(widths))
				for c, width := range widths {
					rule[c] = strings.Repeat("_", width)
				}
				if err := writeAligned(w, rule, widths); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// CsvFormat outputs in comma-separated value format; each row is prefixed
// with its table title so several tables can share one file.
func CsvFormat(w io.Writer, tables []report.Table) error {
	writer := csv.NewWriter(w)
	if len(tables) == 0 {
		writer.Flush()
		return writer.Error()
	}

	header := append([]string{"table", "metric"}, tables[0].Columns...)
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, table := range tables {
		for _, row := range table.Rows {
			record := []string{table.Title, string(row.Metric)}
			for _, v := range row.Values {
				record = append(record, format.Fixed(v, table.Precision))
			}
			if err := writer.Write(record); err != nil {
				return err
			}
		}
	}
	writer.Flush()
	return writer.Error()
}

// JSONFormat outputs the tables as an indented JSON array.
func JSONFormat(w io.Writer, tables []report.Table) error {
	if tables == nil {
		tables = []report.Table{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(tables)
}

func columnWidths(cells [][]string) []int {
	var widths []int
	for _, line := range cells {
		for c, cell := range line {
			if c >= len(widths) {
				widths = append(widths, 0)
			}
			if n := len([]rune(cell)); n > widths[c] {
				widths[c] = n
			}
		}
	}
	return widths
}

func writeAligned(w io.Writer, line []string, widths []int) error {
	parts := make([]string, len(line))
	for c, cell := range line {
		pad := widths[c] - len([]rune(cell))
		if c == 0 {
			parts[c] = cell + strings.Repeat(" ", pad)
		} else {
			parts[c] = strings.Repeat(" ", pad) + cell
		}
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, " | "))
	return err
}
