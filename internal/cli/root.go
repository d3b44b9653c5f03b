package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"trail.dev/trail/internal/cli/common"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	opts := &common.GlobalOptions{}

	rootCmd := &cobra.Command{
		Use:   "trail",
		Short: "Trail keeps stacks of dependent branches moving together",
		Long: `Trail keeps stacks of dependent branches moving together.

It plans and runs a single interactive rebase that replays every branch
built on a commit onto a new base, and answers questions about history
such as which commits touched a set of files.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.DryRun, "dry-run", "d", false, "Print what would be done without changing anything")
	rootCmd.PersistentFlags().BoolVar(&opts.Debug, "debug", false, "Print debug output")

	rootCmd.AddCommand(newEvolveCmd(opts))
	rootCmd.AddCommand(newImpactCmd(opts))
	rootCmd.AddCommand(newDescribeCmd(opts))
	rootCmd.AddCommand(newTrailersCmd(opts))
	rootCmd.AddCommand(newRangeDiffCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))

	return rootCmd
}
