package cli

import (
	"github.com/spf13/cobra"

	"trail.dev/trail/internal/actions"
	"trail.dev/trail/internal/cli/common"
	"trail.dev/trail/internal/runtime"
)

// newImpactCmd creates the impact command
func newImpactCmd(opts *common.GlobalOptions) *cobra.Command {
	var (
		workers int
		pick    bool
	)

	cmd := &cobra.Command{
		Use:   "impact <start> <end> <path>...",
		Short: "List the commits in <start>..<end> that touched any of the given paths",
		Long: `List the commits in <start>..<end> that touched any of the given paths.

Commits are checked in parallel and printed newest first. With --select
you choose one of them and its full id is printed instead.`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, opts, func(ctx *runtime.Context) error {
				return actions.ImpactAction(cmd.Context(), ctx, actions.ImpactOptions{
					Start:   args[0],
					End:     args[1],
					Paths:   args[2:],
					Workers: workers,
					Select:  pick,
					Out:     cmd.OutOrStdout(),
				})
			})
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "j", 0, "Number of commits to inspect at once (default: configured value or one per CPU)")
	cmd.Flags().BoolVarP(&pick, "select", "s", false, "Choose one of the matching commits interactively")

	return cmd
}
