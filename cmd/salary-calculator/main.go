package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/iwvelando/salary-calculator/internal/config"
	"github.com/iwvelando/salary-calculator/internal/form"
	"github.com/iwvelando/salary-calculator/internal/salary"
	"github.com/iwvelando/salary-calculator/internal/server"
	"github.com/iwvelando/salary-calculator/pkg/constants"
	"github.com/iwvelando/salary-calculator/pkg/output"
	"github.com/iwvelando/salary-calculator/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// stdinConfigPath makes --config read YAML from standard input.
const stdinConfigPath = "-"

type rootOptions struct {
	configPath string
	logLevel   string
}

// fieldFlags maps CLI flag names to form field paths.
var fieldFlags = []struct {
	flag  string
	path  string
	usage string
}{
	{"base-salary-min", salary.PathBaseSalaryMin, "minimum monthly base salary"},
	{"base-salary-max", salary.PathBaseSalaryMax, "maximum monthly base salary"},
	{"fixed-overtime-hours", salary.PathOvertimeFixedHours, "monthly hours covered by fixed overtime pay"},
	{"fixed-overtime-min", salary.PathOvertimeFixedAmountMin, "minimum monthly fixed overtime pay"},
	{"fixed-overtime-max", salary.PathOvertimeFixedAmountMax, "maximum monthly fixed overtime pay"},
	{"average-overtime-hours", salary.PathOvertimeAverageHours, "average monthly overtime hours"},
	{"average-overtime-min", salary.PathOvertimeAverageAmountMin, "minimum monthly average overtime pay"},
	{"average-overtime-max", salary.PathOvertimeAverageAmountMax, "maximum monthly average overtime pay"},
	{"bonus", salary.PathBonus, "annual bonus total"},
}

func main() {
	if err := newRootCommand(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(out io.Writer) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:          "salary-calculator",
		Short:        "Estimate monthly, hourly and annual salary ranges (CLI or web)",
		Version:      version,
		SilenceUsage: true,
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&opts.configPath, "config", constants.DefaultConfigFile, "path to configuration file (- for stdin)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	root.AddCommand(newCalcCommand(opts), newServeCommand(opts))
	return root
}

// loadConfiguration reads the configuration file, or standard input when
// the path is "-". A missing file is only an error when the path was given
// explicitly.
func loadConfiguration(cmd *cobra.Command, opts *rootOptions) (*config.Configuration, error) {
	path := opts.configPath
	if path == stdinConfigPath {
		conf, err := config.LoadConfigurationFromReader(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration from stdin: %w", err)
		}
		return conf, nil
	}
	if !cmd.Flags().Changed("config") {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			path = ""
		}
	}

	conf, err := config.LoadConfiguration(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration at %s: %w", opts.configPath, err)
	}
	return conf, nil
}

func newCalcCommand(opts *rootOptions) *cobra.Command {
	var outputFormatFlag string
	raw := make(map[string]*string, len(fieldFlags))

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Print the salary estimate for the given fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfiguration(cmd, opts)
			if err != nil {
				return err
			}

			logger, err := initializeLogger(conf.Logging, opts.logLevel)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer func() {
				_ = logger.Sync()
			}()

			// Determine output format (CLI override takes precedence over config)
			outputFormat := conf.Output.Format
			if outputFormatFlag != "" {
				outputFormat = outputFormatFlag
			}
			if outputFormat == "" {
				outputFormat = constants.OutputFormatPretty
			}
			if err := validation.ValidateOutputFormat(outputFormat); err != nil {
				return err
			}

			for _, warning := range conf.ValidateConfiguration() {
				logger.Warn("Configuration warning: "+warning,
					zap.String("op", "calc"),
				)
			}

			session := form.New(conf.Defaults)
			edited := false
			for _, ff := range fieldFlags {
				if !cmd.Flags().Changed(ff.flag) {
					continue
				}
				if err := session.Update(ff.path, *raw[ff.flag]); err != nil {
					return fmt.Errorf("--%s: %w", ff.flag, err)
				}
				edited = true
			}

			// Unedited defaults were already reported as configuration warnings.
			if edited && !session.Valid() {
				for _, msg := range session.Messages() {
					logger.Warn(msg, zap.String("op", "calc"))
				}
			}

			view := session.View()
			out := cmd.OutOrStdout()
			switch outputFormat {
			case constants.OutputFormatCSV:
				return output.CsvFormat(out, view)
			case constants.OutputFormatJSON:
				return output.JSONFormat(out, view)
			default:
				return output.PrettyFormat(out, view)
			}
		},
	}

	cmd.Flags().StringVar(&outputFormatFlag, "output-format", "", "type of output override: pretty, csv, json")
	for _, ff := range fieldFlags {
		raw[ff.flag] = cmd.Flags().String(ff.flag, "", ff.usage)
	}
	return cmd
}

func newServeCommand(opts *rootOptions) *cobra.Command {
	var (
		serverConfigPath string
		address          string
		maxBodySize      string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the salary form over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfiguration(cmd, opts)
			if err != nil {
				return err
			}

			serverConf, err := server.LoadConfig(serverConfigPath)
			if err != nil {
				return err
			}
			if address != "" {
				serverConf.Address = address
			}
			if maxBodySize != "" {
				size, err := server.ParseSize(maxBodySize)
				if err != nil {
					return err
				}
				serverConf.SetBodySizeBytes(size)
			}

			// Server logging settings win over the application file.
			loggingConf := conf.Logging
			if serverConf.Logging != (config.LoggingConfig{}) {
				loggingConf = serverConf.Logging
			}
			logger, err := initializeLogger(loggingConf, opts.logLevel)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer func() {
				_ = logger.Sync()
			}()

			for _, warning := range conf.ValidateConfiguration() {
				logger.Warn("Configuration warning: "+warning,
					zap.String("op", "serve"),
				)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, logger, conf.Defaults, serverConf)
		},
	}

	cmd.Flags().StringVar(&serverConfigPath, "server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	cmd.Flags().StringVar(&address, "address", "", "listen address override")
	cmd.Flags().StringVar(&maxBodySize, "max-body-size", "", "maximum request body size override (e.g. 64K)")
	return cmd
}

func serve(ctx context.Context, logger *zap.Logger, defaults salary.Input, serverConf *server.Config) error {
	srv := &http.Server{
		Addr:    serverConf.Address,
		Handler: server.NewHandler(logger, defaults, serverConf.BodySizeBytes(), version),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting HTTP server",
			zap.String("op", "serve"),
			zap.String("address", serverConf.Address),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverConf.ShutdownTimeoutDuration())
	defer cancel()

	logger.Info("shutting down HTTP server", zap.String("op", "serve"))
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down http server: %w", err)
	}
	return nil
}
