package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/iwvelando/salary-calculator/internal/form"
	"github.com/iwvelando/salary-calculator/internal/salary"
)

func defaultView() form.View {
	return form.New(salary.DefaultInput()).View()
}

func TestPrettyFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := PrettyFormat(&buf, defaultView()); err != nil {
		t.Fatalf("PrettyFormat() error = %v", err)
	}
	output := buf.String()

	if !strings.Contains(output, "--- Salary estimate ---") {
		t.Errorf("PrettyFormat missing header")
	}
	if !strings.Contains(output, "Hourly rate (190.0 hours per month)") {
		t.Errorf("PrettyFormat missing hourly label with total hours")
	}
	if !strings.Contains(output, "4,820,000 〜 ") || !strings.Contains(output, "7,940,000") {
		t.Errorf("PrettyFormat missing annual range, got %q", output)
	}
	if strings.Contains(output, "Warnings:") {
		t.Errorf("PrettyFormat should not print warnings for valid input")
	}
}

func TestPrettyFormatWarnings(t *testing.T) {
	s := form.New(salary.DefaultInput())
	if err := s.Update(salary.PathBaseSalaryMin, "600000"); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	var buf bytes.Buffer
	if err := PrettyFormat(&buf, s.View()); err != nil {
		t.Fatalf("PrettyFormat() error = %v", err)
	}
	if !strings.Contains(buf.String(), "  - "+salary.MsgBaseSalaryRange) {
		t.Errorf("PrettyFormat missing warning, got %q", buf.String())
	}
}

func TestCsvFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := CsvFormat(&buf, defaultView()); err != nil {
		t.Fatalf("CsvFormat() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	expected := []string{
		"item,min,max",
		"monthly,360000.00,620000.00",
		"hourly,1894.74,3263.16",
		"annual,4820000.00,7940000.00",
		"totalHours,190.00,190.00",
	}
	if len(lines) != len(expected) {
		t.Fatalf("expected %d lines, got %d: %q", len(expected), len(lines), buf.String())
	}
	for i := range expected {
		if lines[i] != expected[i] {
			t.Errorf("line %d = %q, expected %q", i, lines[i], expected[i])
		}
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := JSONFormat(&buf, defaultView()); err != nil {
		t.Fatalf("JSONFormat() error = %v", err)
	}

	var decoded form.View
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode JSON output: %v", err)
	}
	if decoded.Result.AnnualMax != 7940000 {
		t.Errorf("AnnualMax = %v, expected 7940000", decoded.Result.AnnualMax)
	}
	if len(decoded.Fields) != len(salary.Fields()) {
		t.Errorf("expected %d fields, got %d", len(salary.Fields()), len(decoded.Fields))
	}
}
