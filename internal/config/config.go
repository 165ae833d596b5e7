// Package config defines the data structures related to configuration and
// includes functions for loading the config.
package config

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/iwvelando/finance-dashboard/internal/decline"
	"github.com/iwvelando/finance-dashboard/internal/inputs"
	"github.com/iwvelando/finance-dashboard/pkg/constants"
	"github.com/iwvelando/finance-dashboard/pkg/validation"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. FINANCE_DASHBOARD_LOGGING_LEVEL.
const EnvPrefix = "FINANCE_DASHBOARD"

// Configuration holds all configuration for finance-dashboard.
type Configuration struct {
	Logging   LoggingConfig   `yaml:"logging,omitempty"`
	Output    OutputConfig    `yaml:"output,omitempty"`
	Dashboard DashboardConfig `yaml:"dashboard,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// DashboardConfig holds the inputs used when the dashboards are printed from
// the CLI, plus presentation settings shared with the server.
type DashboardConfig struct {
	Currency  string           `yaml:"currency,omitempty"`
	Scenarios []ScenarioConfig `yaml:"scenarios,omitempty"`

	// BalanceSheet and Forecast override field defaults by field key.
	BalanceSheet map[string]float64 `yaml:"balanceSheet,omitempty"`
	Forecast     map[string]float64 `yaml:"forecast,omitempty"`
}

// ScenarioConfig names one decline scenario.
type ScenarioConfig struct {
	Name string  `yaml:"name"`
	Rate float64 `yaml:"rate"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %w", err)
	}

	return decode(v)
}

// LoadConfigurationFromReader loads YAML configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %w", err)
	}

	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Registered so that environment variables apply without a file entry.
	v.SetDefault("logging.level", "")
	v.SetDefault("logging.format", "")
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("output.format", "")
	v.SetDefault("dashboard.currency", constants.DefaultCurrency)
	return v
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}
	return &configuration, nil
}

// DeclineScenarios returns the configured scenarios, or the mild, moderate and
// severe defaults when none are configured.
func (c *Configuration) DeclineScenarios() []decline.Scenario {
	if len(c.Dashboard.Scenarios) == 0 {
		return decline.DefaultScenarios()
	}
	scenarios := make([]decline.Scenario, 0, len(c.Dashboard.Scenarios))
	for _, sc := range c.Dashboard.Scenarios {
		scenarios = append(scenarios, decline.Scenario{Name: strings.TrimSpace(sc.Name), Rate: sc.Rate})
	}
	return scenarios
}

// Currency returns the configured currency label.
func (c *Configuration) Currency() string {
	if currency := strings.TrimSpace(c.Dashboard.Currency); currency != "" {
		return currency
	}
	return constants.DefaultCurrency
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	seen := make(map[string]struct{})
	for _, sc := range c.Dashboard.Scenarios {
		name := strings.TrimSpace(sc.Name)
		if name == "" {
			warnings = append(warnings, fmt.Sprintf("Scenario with rate %v has no name", sc.Rate))
		}
		if _, dup := seen[name]; dup {
			warnings = append(warnings, fmt.Sprintf("Scenario %q is defined more than once", name))
		}
		seen[name] = struct{}{}
		if err := validation.ValidateDeclineRate(name, sc.Rate); err != nil {
			warnings = append(warnings, err.Error()+"; the projection will not be a decline")
		}
	}

	warnings = append(warnings, unknownFieldWarnings(inputs.BalanceSheetFields(), c.Dashboard.BalanceSheet)...)
	warnings = append(warnings, unknownFieldWarnings(inputs.BaseYearFields(), c.Dashboard.Forecast)...)

	return warnings
}

func unknownFieldWarnings(set inputs.FieldSet, values map[string]float64) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var warnings []string
	for _, key := range set.UnknownKeys(keys) {
		warnings = append(warnings, fmt.Sprintf("Unknown %s field %q is ignored", set.Name, key))
	}
	return warnings
}
