package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"duogito/internal/adapters/output"
	"duogito/internal/ports"
)

const statusNotImplemented = "not_implemented"

func newCheckCmd(a *app) *cobra.Command {
	var format string

	checkCmd := &cobra.Command{
		Use:   "check <username>",
		Short: "Check GitHub contribution streak for a user",
		Long: `Check the GitHub contribution streak for a user.

The output format defaults to display.format from the configuration.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseFormat(format)
			if err != nil {
				return err
			}

			opts := a.outputOptions(f)
			a.logger.Debug("check requested",
				zap.String("username", args[0]),
				zap.String("format", string(opts.Format)))

			var printer ports.Printer = output.NewWriter(cmd.OutOrStdout(), opts)
			return printer.Check(ports.CheckResult{
				Username: args[0],
				Format:   opts.Format,
				Status:   statusNotImplemented,
			})
		},
	}

	checkCmd.Flags().StringVarP(&format, "format", "f", "", "output format (text|json)")

	return checkCmd
}
