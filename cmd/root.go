package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"duogito/internal/adapters/config"
	"duogito/internal/adapters/env"
	"duogito/internal/adapters/output"
	"duogito/internal/domain/entity"
	"duogito/internal/domain/service"
	"duogito/internal/logging"
	"duogito/internal/ports"
)

// Version is set at build time with -ldflags "-X duogito/cmd.Version=..."
var Version = "0.1.0"

// app holds the services shared by all commands
type app struct {
	configDir string
	debug     bool

	settings *env.Settings
	logger   *zap.Logger
	configs  ports.ConfigService
}

// Execute runs the root command
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "duogito",
		Short: "A CLI tool to check GitHub contribution streaks and motivate daily coding",
		Long: `Duogito checks GitHub contribution streaks and motivates daily coding.

Settings are stored as JSON in the per-user configuration directory
(see "duogito config path"). Environment variables:
  GITHUB_TOKEN         token reported when none is stored
  DUOGITO_CONFIG_DIR   configuration directory (overridden by --config-dir)
  DUOGITO_DEBUG        enable debug logging
  NO_COLOR             disable coloured output`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printer(cmd, "").Welcome()
		},
	}

	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.Flags().BoolP("version", "v", false, "display version number")
	rootCmd.PersistentFlags().StringVar(&a.configDir, "config-dir", "", "configuration directory (default: per-user config dir)")
	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))

	return rootCmd
}

// init resolves settings with the precedence flag > environment > default
func (a *app) init() error {
	settings, err := env.FromEnviron()
	if err != nil {
		return err
	}
	a.settings = settings

	logger, err := logging.New(a.debug || settings.Debug)
	if err != nil {
		return err
	}
	a.logger = logger

	dir := a.configDir
	if dir == "" {
		dir = settings.ConfigDir
	}

	repo := config.NewRepository(dir)
	a.configs = service.NewConfigService(repo, logger)

	logger.Debug("configuration store ready",
		zap.String("dir", repo.Dir()),
		zap.String("path", repo.Path()))
	return nil
}

// outputOptions derives rendering options from the stored display settings.
// A non-empty format overrides the stored one.
func (a *app) outputOptions(format entity.OutputFormat) output.Options {
	opts := output.OptionsFromConfig(a.configs.Read())
	if format != "" {
		opts.Format = format
	}
	if a.settings != nil && a.settings.ColorDisabled() {
		opts.Color = false
	}
	return opts
}

func (a *app) printer(cmd *cobra.Command, format entity.OutputFormat) ports.Printer {
	return output.NewWriter(cmd.OutOrStdout(), a.outputOptions(format))
}

// parseFormat validates a --format flag value; empty means "use config"
func parseFormat(value string) (entity.OutputFormat, error) {
	format := entity.OutputFormat(value)
	if value != "" && !format.IsValid() {
		return "", fmt.Errorf("invalid format %q: must be %q or %q", value, entity.OutputFormatText, entity.OutputFormatJSON)
	}
	return format, nil
}
