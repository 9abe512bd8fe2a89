package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iwvelando/salary-calculator/internal/salary"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	tests := []struct {
		name       string
		configPath string
		wantError  bool
	}{
		{
			name:       "Non-existent config file",
			configPath: "nonexistent.yaml",
			wantError:  true,
		},
		{
			name:       "Empty path uses defaults",
			configPath: "",
			wantError:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := LoadConfiguration(tt.configPath)
			if tt.wantError {
				if err == nil {
					t.Errorf("LoadConfiguration() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Errorf("LoadConfiguration() error = %v", err)
				return
			}
			if config == nil {
				t.Errorf("LoadConfiguration() returned nil config")
			}
		})
	}
}

func TestLoadConfigurationDefaults(t *testing.T) {
	conf, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if conf.Defaults != salary.DefaultInput() {
		t.Errorf("Defaults = %+v, expected %+v", conf.Defaults, salary.DefaultInput())
	}
	if conf.Logging.Level != "" || conf.Output.Format != "" {
		t.Errorf("expected empty logging and output settings, got %+v %+v", conf.Logging, conf.Output)
	}
}

func TestLoadConfigurationOverrides(t *testing.T) {
	path := writeConfig(t, `defaults:
  baseSalaryMin: 250000
  baseSalaryMax: 450000
  overtimeFixed:
    hours: 30
  bonus: 0
logging:
  level: debug
  format: console
  outputFile: /tmp/salary.log
output:
  format: csv
`)

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if conf.Defaults.BaseSalaryMin != 250000 || conf.Defaults.BaseSalaryMax != 450000 {
		t.Errorf("base salary = %d-%d, expected 250000-450000", conf.Defaults.BaseSalaryMin, conf.Defaults.BaseSalaryMax)
	}
	if conf.Defaults.OvertimeFixed.Hours != 30 {
		t.Errorf("fixed overtime hours = %d, expected 30", conf.Defaults.OvertimeFixed.Hours)
	}
	if conf.Defaults.OvertimeFixed.AmountMax != 120000 {
		t.Errorf("expected unspecified fixed overtime amount to keep its default, got %d", conf.Defaults.OvertimeFixed.AmountMax)
	}
	if conf.Defaults.Bonus != 0 {
		t.Errorf("bonus = %d, expected explicit 0", conf.Defaults.Bonus)
	}
	if conf.Logging.Level != "debug" || conf.Logging.Format != "console" || conf.Logging.OutputFile != "/tmp/salary.log" {
		t.Errorf("unexpected logging config %+v", conf.Logging)
	}
	if conf.Output.Format != "csv" {
		t.Errorf("output format = %s, expected csv", conf.Output.Format)
	}
}

func TestLoadConfigurationEnvironmentOverride(t *testing.T) {
	t.Setenv("SALARY_CALCULATOR_DEFAULTS_BONUS", "1000000")
	t.Setenv("SALARY_CALCULATOR_LOGGING_LEVEL", "warn")

	conf, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if conf.Defaults.Bonus != 1000000 {
		t.Errorf("bonus = %d, expected environment override 1000000", conf.Defaults.Bonus)
	}
	if conf.Logging.Level != "warn" {
		t.Errorf("logging level = %s, expected warn", conf.Logging.Level)
	}
}

func TestLoadConfigurationFromReader(t *testing.T) {
	conf, err := LoadConfigurationFromReader(strings.NewReader("defaults:\n  overtimeAverage:\n    hours: 0\n"))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() error = %v", err)
	}
	if conf.Defaults.OvertimeAverage.Hours != 0 {
		t.Errorf("average overtime hours = %d, expected 0", conf.Defaults.OvertimeAverage.Hours)
	}
	if conf.Defaults.OvertimeFixed.Hours != 20 {
		t.Errorf("fixed overtime hours = %d, expected default 20", conf.Defaults.OvertimeFixed.Hours)
	}
}

func TestLoadConfigurationFromReaderInvalidYAML(t *testing.T) {
	if _, err := LoadConfigurationFromReader(strings.NewReader("defaults: [unclosed")); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestValidateConfiguration(t *testing.T) {
	conf := Default()
	if warnings := conf.ValidateConfiguration(); len(warnings) != 0 {
		t.Fatalf("expected no warnings for defaults, got %v", warnings)
	}

	conf.Defaults.BaseSalaryMin = 900000
	warnings := conf.ValidateConfiguration()
	if len(warnings) != 1 || warnings[0] != "defaults: "+salary.MsgBaseSalaryRange {
		t.Errorf("unexpected warnings %v", warnings)
	}
}
