package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"duogito/internal/adapters/output"
	"duogito/internal/domain/entity"
)

// configKey describes one settable configuration field
type configKey struct {
	get func(cfg *entity.Config) any
	set func(partial *entity.PartialConfig, value string) error
}

var configKeys = map[string]configKey{
	"github.username": {
		get: func(cfg *entity.Config) any {
			if cfg.GitHub == nil {
				return ""
			}
			return cfg.GitHub.Username
		},
		set: func(p *entity.PartialConfig, value string) error {
			p.GitHub = &entity.PartialGitHub{Username: &value}
			return nil
		},
	},
	"github.token": {
		get: func(cfg *entity.Config) any {
			if cfg.GitHub == nil {
				return ""
			}
			return output.MaskToken(cfg.GitHub.Token)
		},
		set: func(p *entity.PartialConfig, value string) error {
			p.GitHub = &entity.PartialGitHub{Token: &value}
			return nil
		},
	},
	"display.language": {
		get: func(cfg *entity.Config) any { return string(cfg.Display.Language) },
		set: func(p *entity.PartialConfig, value string) error {
			p.Display = &entity.PartialDisplay{Language: entity.Ptr(entity.Language(value))}
			return nil
		},
	},
	"display.colorOutput": {
		get: func(cfg *entity.Config) any { return cfg.Display.ColorOutput },
		set: func(p *entity.PartialConfig, value string) error {
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("display.colorOutput must be true or false: %w", err)
			}
			p.Display = &entity.PartialDisplay{ColorOutput: &b}
			return nil
		},
	},
	"display.format": {
		get: func(cfg *entity.Config) any { return string(cfg.Display.Format) },
		set: func(p *entity.PartialConfig, value string) error {
			p.Display = &entity.PartialDisplay{Format: entity.Ptr(entity.OutputFormat(value))}
			return nil
		},
	},
	"cache.enabled": {
		get: func(cfg *entity.Config) any { return cfg.Cache.Enabled },
		set: func(p *entity.PartialConfig, value string) error {
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("cache.enabled must be true or false: %w", err)
			}
			p.Cache = &entity.PartialCache{Enabled: &b}
			return nil
		},
	},
	"cache.ttl": {
		get: func(cfg *entity.Config) any { return cfg.Cache.TTL },
		set: func(p *entity.PartialConfig, value string) error {
			ttl, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return fmt.Errorf("cache.ttl must be a number of minutes: %w", err)
			}
			p.Cache = &entity.PartialCache{TTL: &ttl}
			return nil
		},
	},
}

func lookupConfigKey(name string) (configKey, error) {
	key, ok := configKeys[name]
	if !ok {
		return configKey{}, fmt.Errorf("unknown config key %q (valid keys: %s)", name, strings.Join(configKeyNames(), ", "))
	}
	return key, nil
}

func configKeyNames() []string {
	names := make([]string, 0, len(configKeys))
	for name := range configKeys {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newConfigCmd(a *app) *cobra.Command {
	var format string

	showConfig := func(cmd *cobra.Command, args []string) error {
		f, err := parseFormat(format)
		if err != nil {
			return err
		}
		cfg := a.configs.Read()
		if cfg.GitHub == nil && a.settings.GitHubToken != "" {
			// Report the token the environment would supply
			cfg.GitHub = &entity.GitHubConfig{Token: a.settings.GitHubToken}
		}
		return a.printer(cmd, f).Config(cfg, a.configs.StorePath())
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage duogito configuration",
		Long: `Manage duogito configuration.

Without a subcommand the current configuration is shown.
Valid keys: ` + strings.Join(configKeyNames(), ", "),
		Args: cobra.NoArgs,
		RunE: showConfig,
	}
	configCmd.Flags().StringVarP(&format, "format", "f", "", "output format (text|json)")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the current configuration",
		Args:  cobra.NoArgs,
		RunE:  showConfig,
	}
	showCmd.Flags().StringVarP(&format, "format", "f", "", "output format (text|json)")

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), a.configs.StorePath())
			return err
		},
	}

	getCmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Print a single configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := lookupConfigKey(args[0])
			if err != nil {
				return err
			}
			return a.printer(cmd, "").Value(args[0], key.get(a.configs.Read()))
		},
	}

	setCmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Update a single configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := lookupConfigKey(args[0])
			if err != nil {
				return err
			}

			var partial entity.PartialConfig
			if err := key.set(&partial, args[1]); err != nil {
				return err
			}

			if err := a.configs.Write(partial); err != nil {
				return fmt.Errorf("failed to update %s: %w", args[0], err)
			}

			a.logger.Debug("config updated", zap.String("key", args[0]))
			return a.printer(cmd, "").Updated(args[0])
		},
	}

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset the configuration to defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.configs.Reset(); err != nil {
				return err
			}
			return a.printer(cmd, "").ResetDone()
		},
	}

	configCmd.AddCommand(showCmd, pathCmd, getCmd, setCmd, resetCmd)
	return configCmd
}
