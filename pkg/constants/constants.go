// Package constants provides shared constants for the finance-dashboard application.
package constants

// Reporting periods
const (
	// PreviousYearLabel is the column label of the earlier balance-sheet period
	PreviousYearLabel = "Previous Year"

	// CurrentYearLabel is the column label of the later balance-sheet period
	CurrentYearLabel = "Current Year"

	// ForecastYears is the number of projected years after the base year
	ForecastYears = 5

	// ForecastPeriods is the number of values in a projected series, base year included
	ForecastPeriods = ForecastYears + 1
)

// Display precision
const (
	// BalanceSheetPrecision is the number of decimals shown for balance-sheet tables
	BalanceSheetPrecision = 2

	// ForecastPrecision is the number of decimals shown for forecast tables
	ForecastPrecision = 0
)

// Decline scenarios
const (
	MildScenarioName     = "mild"
	ModerateScenarioName = "moderate"
	SevereScenarioName   = "severe"

	MildDeclineRate     = 0.10
	ModerateDeclineRate = 0.20
	SevereDeclineRate   = 0.30
)

// DefaultCurrency is shown in axis labels when nothing else is configured.
const DefaultCurrency = "PHP"

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
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestSizeBytes caps form and JSON request bodies (64 KB)
	DefaultMaxRequestSizeBytes int64 = 64 * 1024

	// DefaultShutdownTimeout is how long in-flight requests get on shutdown
	DefaultShutdownTimeout = "10s"
)
