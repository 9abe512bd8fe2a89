// Package output provides utilities for formatting and displaying salary estimates.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/iwvelando/salary-calculator/internal/form"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat writes a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, view form.View) error {
	p := message.NewPrinter(language.English)
	hourlyLabel := fmt.Sprintf("Hourly rate (%s hours per month)", view.Formatted.TotalHours)

	rows := [][2]string{
		{"Monthly salary (base + overtime)", view.Formatted.Monthly},
		{hourlyLabel, view.Formatted.Hourly},
		{"Annual salary (incl. bonus)", view.Formatted.Annual},
	}

	if _, err := p.Fprintf(w, "--- Salary estimate ---\n"); err != nil {
		return err
	}
	if _, err := p.Fprintf(w, "%-40s | %s\n", "Item", "Amount"); err != nil {
		return err
	}
	if _, err := p.Fprintf(w, "%-40s | %s\n", "____", "______"); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := p.Fprintf(w, "%-40s | %s\n", row[0], row[1]); err != nil {
			return err
		}
	}

	if len(view.Messages) > 0 {
		if _, err := p.Fprintf(w, "\nWarnings:\n"); err != nil {
			return err
		}
		for _, msg := range view.Messages {
			if _, err := p.Fprintf(w, "  - %s\n", msg); err != nil {
				return err
			}
		}
	}
	return nil
}

// CsvFormat writes one row per derived figure in comma-separated value format.
func CsvFormat(w io.Writer, view form.View) error {
	r := view.Result
	cw := csv.NewWriter(w)
	records := [][]string{
		{"item", "min", "max"},
		{"monthly", formatFloat(r.MonthlyMin), formatFloat(r.MonthlyMax)},
		{"hourly", formatFloat(r.HourlyMin), formatFloat(r.HourlyMax)},
		{"annual", formatFloat(r.AnnualMin), formatFloat(r.AnnualMax)},
		{"totalHours", formatFloat(r.TotalHours), formatFloat(r.TotalHours)},
	}
	for _, msg := range view.Messages {
		records = append(records, []string{"warning", msg, ""})
	}
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

// JSONFormat writes the whole view as indented JSON.
func JSONFormat(w io.Writer, view form.View) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(view); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
