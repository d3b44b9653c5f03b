package cli

import (
	"github.com/spf13/cobra"

	"trail.dev/trail/internal/actions"
	"trail.dev/trail/internal/cli/common"
	"trail.dev/trail/internal/runtime"
)

// newDescribeCmd creates the describe command
func newDescribeCmd(opts *common.GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "describe [rev]",
		Short: "Show identifying information about a commit",
		Long: `Show identifying information about a commit.

Prints the abbreviated hash, the nearest symbolic name, the patch id, the
subject and the branches whose tip is the commit. Defaults to HEAD.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: common.CompleteBranches,
		RunE: func(cmd *cobra.Command, args []string) error {
			rev := "HEAD"
			if len(args) == 1 {
				rev = args[0]
			}
			return common.Run(cmd, opts, func(ctx *runtime.Context) error {
				return actions.DescribeAction(cmd.Context(), ctx, actions.DescribeOptions{
					Revision: rev,
					Out:      cmd.OutOrStdout(),
				})
			})
		},
	}
}
