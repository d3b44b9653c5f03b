package cli

import (
	"github.com/spf13/cobra"

	"trail.dev/trail/internal/actions"
	"trail.dev/trail/internal/cli/common"
	"trail.dev/trail/internal/runtime"
)

// newEvolveCmd creates the evolve command
func newEvolveCmd(opts *common.GlobalOptions) *cobra.Command {
	var branchUpdateCommand string

	cmd := &cobra.Command{
		Use:   "evolve",
		Short: "Move every branch built on a commit onto a new base",
		Long: `Move every branch built on a commit onto a new base.

All branches that contain <base> but not <onto> are replayed on top of
<onto> in one interactive rebase, keeping forks between them intact, and
each branch is moved to its rewritten tip.`,
	}

	cmd.PersistentFlags().StringVar(&branchUpdateCommand, "branch-update-command", "",
		"Command used to move a branch to its new tip (default \"git branch -f\")")

	cmd.AddCommand(newEvolvePlanCmd(opts, &branchUpdateCommand))
	cmd.AddCommand(newEvolveExecuteCmd(opts, &branchUpdateCommand))

	return cmd
}

// newEvolvePlanCmd creates the evolve plan command. Git runs it as the
// sequence editor, passing the todo file as the last argument.
func newEvolvePlanCmd(opts *common.GlobalOptions, branchUpdateCommand *string) *cobra.Command {
	return &cobra.Command{
		Use:   "plan <onto> <base> <output>",
		Short: "Write the rebase todo list that moves the stack on <base> onto <onto>",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, opts, func(ctx *runtime.Context) error {
				return actions.EvolvePlanAction(cmd.Context(), ctx, actions.EvolveOptions{
					Onto:                args[0],
					Base:                args[1],
					BranchUpdateCommand: *branchUpdateCommand,
					Debug:               opts.Debug,
				}, args[2])
			})
		},
	}
}

// newEvolveExecuteCmd creates the evolve execute command
func newEvolveExecuteCmd(opts *common.GlobalOptions, branchUpdateCommand *string) *cobra.Command {
	return &cobra.Command{
		Use:   "execute <onto> <base>",
		Short: "Rebase the stack on <base> onto <onto>",
		Long: `Rebase the stack on <base> onto <onto>.

The plan is computed up front; nothing is changed if it cannot be built.
With --dry-run the todo list is printed instead of run. HEAD is left
detached at <onto>.`,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: common.CompleteBranches,
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, opts, func(ctx *runtime.Context) error {
				return actions.EvolveExecuteAction(cmd.Context(), ctx, actions.EvolveOptions{
					Onto:                args[0],
					Base:                args[1],
					BranchUpdateCommand: *branchUpdateCommand,
					DryRun:              opts.DryRun,
					Debug:               opts.Debug,
					Out:                 cmd.OutOrStdout(),
				})
			})
		},
	}
}
