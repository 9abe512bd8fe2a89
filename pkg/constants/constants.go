// Package constants provides shared constants for the salary-calculator application.
package constants

// Working time constants
const (
	// BaseWorkDaysPerMonth is the average number of working days in a month
	BaseWorkDaysPerMonth = 22.5

	// HoursPerWorkDay is the number of regular hours in one working day
	HoursPerWorkDay = 8

	// BaseWorkHoursPerMonth is the assumed regular working time excluding overtime
	BaseWorkHoursPerMonth = BaseWorkDaysPerMonth * HoursPerWorkDay

	// MaxOvertimeHours is the upper bound accepted for monthly overtime hours
	MaxOvertimeHours = 80
)

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// MaxSafeInteger is the largest whole yen amount accepted from a text field.
	// Every value up to it is exactly representable as a float64.
	MaxSafeInteger int64 = 1<<53 - 1

	// CurrencyCode is the ISO 4217 code used for every displayed amount
	CurrencyCode = "JPY"

	// RangeSeparator joins the lower and upper bound of a displayed range
	RangeSeparator = " 〜 "
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix prefixes environment variables that override configuration keys
	EnvPrefix = "SALARY_CALCULATOR"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size for calculation requests (64 KB)
	DefaultMaxBodySizeBytes int64 = 64 * 1024

	// DefaultShutdownTimeoutSeconds bounds graceful shutdown of the HTTP server
	DefaultShutdownTimeoutSeconds = 10
)
