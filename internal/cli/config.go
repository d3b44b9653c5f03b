package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"trail.dev/trail/internal/cli/common"
	"trail.dev/trail/internal/config"
	"trail.dev/trail/internal/runtime"
)

// newConfigCmd creates the config command
func newConfigCmd(opts *common.GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Get and set repository configuration",
		Long: `Get and set repository configuration values, stored in trail.yml
inside the git directory.

Keys: ` + strings.Join(config.Keys(), ", ") + `

Examples:
  trail config get branchUpdateCommand
  trail config set impactWorkers 8
  trail config set commandTimeout 2m`,
	}

	cmd.AddCommand(newConfigGetCmd(opts))
	cmd.AddCommand(newConfigSetCmd(opts))

	return cmd
}

// newConfigGetCmd creates the config get command
func newConfigGetCmd(opts *common.GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "get <key>",
		Short:     "Get a configuration value",
		Args:      cobra.ExactArgs(1),
		ValidArgs: config.Keys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, opts, func(ctx *runtime.Context) error {
				value, err := config.Get(ctx.GitDir, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), value)
				return nil
			})
		},
	}
}

// newConfigSetCmd creates the config set command
func newConfigSetCmd(opts *common.GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "set <key> <value>",
		Short:     "Set a configuration value",
		Args:      cobra.ExactArgs(2),
		ValidArgs: config.Keys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, opts, func(ctx *runtime.Context) error {
				if err := config.Set(ctx.GitDir, args[0], args[1]); err != nil {
					return err
				}
				ctx.Splog.Info("Set %s to %s.", args[0], args[1])
				return nil
			})
		},
	}
}
