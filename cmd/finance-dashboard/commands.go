package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/iwvelando/finance-dashboard/internal/config"
	"github.com/iwvelando/finance-dashboard/internal/financials"
	"github.com/iwvelando/finance-dashboard/internal/inputs"
	"github.com/iwvelando/finance-dashboard/internal/report"
	"github.com/iwvelando/finance-dashboard/internal/server"
	"github.com/iwvelando/finance-dashboard/pkg/constants"
	"github.com/iwvelando/finance-dashboard/pkg/output"
	"github.com/iwvelando/finance-dashboard/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var serverConfigPath, maxRequestSize string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve both dashboards over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			serverCfg, err := server.LoadConfig(serverConfigPath)
			if err != nil {
				return err
			}
			if err := applyMaxRequestSize(serverCfg, maxRequestSize); err != nil {
				return err
			}

			logger, err := initializeLogger(serverCfg.Logging, opts.logLevel)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer func() {
				_ = logger.Sync()
			}()

			conf, err := loadConfiguration(opts.configPath)
			if err != nil {
				logger.Error("failed to load configuration",
					zap.String("op", "main.serve"),
					zap.String("path", opts.configPath),
					zap.Error(err),
				)
				return err
			}
			logWarnings(logger, "main.serve", conf.ValidateConfiguration())

			handler, err := server.NewHandler(logger, serveOptions(serverCfg, conf))
			if err != nil {
				logger.Error("failed to build handler",
					zap.String("op", "main.serve"),
					zap.Error(err),
				)
				return err
			}

			return server.Run(cmd.Context(), logger, serverCfg, handler)
		},
	}

	cmd.Flags().StringVar(&serverConfigPath, "server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	cmd.Flags().StringVar(&maxRequestSize, "max-request-size", "", "request body limit override, e.g. 128K")
	return cmd
}

// applyMaxRequestSize overrides the configured request body limit when size is set.
func applyMaxRequestSize(serverCfg *server.Config, size string) error {
	if strings.TrimSpace(size) == "" {
		return nil
	}
	bytes, err := server.ParseSize(size)
	if err != nil {
		return fmt.Errorf("invalid --max-request-size: %w", err)
	}
	serverCfg.SetRequestSizeBytes(bytes)
	return nil
}

// serveOptions combines the server and dashboard configuration. The server
// configuration's currency wins; the dashboard currency applies when it is unset.
func serveOptions(serverCfg *server.Config, conf *config.Configuration) server.Options {
	currency := serverCfg.Currency
	if currency == "" {
		currency = conf.Currency()
	}
	return server.Options{
		MaxRequestSize: serverCfg.RequestSizeBytes(),
		Version:        version,
		Currency:       currency,
		Scenarios:      conf.DeclineScenarios(),
	}
}

func newBalanceSheetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "balance-sheet",
		Short: "Print the balance-sheet summary table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDashboard(cmd, opts, func(conf *config.Configuration) ([]report.Table, error) {
				set := inputs.BalanceSheetFields()
				values, err := set.Collect(inputs.MapSource(conf.Dashboard.BalanceSheet))
				if err != nil {
					return nil, err
				}
				table := report.BuildBalanceSheetTable(
					set.Snapshot(values, financials.PreviousYear),
					set.Snapshot(values, financials.CurrentYear),
				)
				return []report.Table{table}, nil
			})
		},
	}
}

func newForecastCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "forecast",
		Short: "Print the 5-year decline forecast tables",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDashboard(cmd, opts, func(conf *config.Configuration) ([]report.Table, error) {
				set := inputs.BaseYearFields()
				values, err := set.Collect(inputs.MapSource(conf.Dashboard.Forecast))
				if err != nil {
					return nil, err
				}
				forecast := report.BuildForecastReport(set.Snapshot(values, financials.BaseYear), conf.DeclineScenarios(), conf.Currency())
				tables := make([]report.Table, 0, len(forecast.Scenarios))
				for _, section := range forecast.Scenarios {
					tables = append(tables, section.Table)
				}
				return tables, nil
			})
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version)
			return err
		},
	}
}

// runDashboard loads configuration and logging, then prints the tables built
// by build in the selected output format.
func runDashboard(cmd *cobra.Command, opts *rootOptions, build func(*config.Configuration) ([]report.Table, error)) error {
	conf, err := loadConfiguration(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration at %s: %w", opts.configPath, err)
	}

	logger, err := initializeLogger(conf.Logging, opts.logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// CLI override takes precedence over config
	outputFormat := conf.Output.Format
	if opts.outputFormat != "" {
		outputFormat = opts.outputFormat
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Error(err.Error(), zap.String("op", "main.runDashboard"))
		return err
	}

	logWarnings(logger, "main.runDashboard", conf.ValidateConfiguration())

	tables, err := build(conf)
	if err != nil {
		logger.Error("failed to build dashboard",
			zap.String("op", "main.runDashboard"),
			zap.String("command", cmd.Name()),
			zap.Error(err),
		)
		return err
	}

	logger.Debug("dashboard built",
		zap.String("op", "main.runDashboard"),
		zap.String("command", cmd.Name()),
		zap.Int("tables", len(tables)),
	)
	return output.Write(cmd.OutOrStdout(), outputFormat, tables)
}

// loadConfiguration reads the configuration file at path. A missing file at
// the default location yields the defaults plus any environment overrides.
func loadConfiguration(path string) (*config.Configuration, error) {
	conf, err := config.LoadConfiguration(path)
	if err == nil {
		return conf, nil
	}
	if path == constants.DefaultConfigFile {
		if _, statErr := os.Stat(path); errors.Is(statErr, fs.ErrNotExist) {
			return config.LoadConfigurationFromReader(strings.NewReader(""))
		}
	}
	return nil, err
}

func logWarnings(logger *zap.Logger, op string, warnings []string) {
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", op),
		)
	}
}
