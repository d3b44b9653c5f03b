package cli

import (
	"github.com/spf13/cobra"

	"trail.dev/trail/internal/cli/common"
	"trail.dev/trail/internal/runtime"
)

// newRangeDiffCmd creates the range-diff command
func newRangeDiffCmd(opts *common.GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "range-diff <base> <old> <new>",
		Short: "Compare two versions of a stack built on <base>",
		Long: `Compare two versions of a stack built on <base>.

Runs git range-diff between <base>..<old> and <base>..<new>, which is how
a stack looks before and after an evolve.`,
		Args:              cobra.ExactArgs(3),
		ValidArgsFunction: common.CompleteBranches,
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, opts, func(ctx *runtime.Context) error {
				base, err := ctx.Repo.Resolve(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				old, err := ctx.Repo.Resolve(cmd.Context(), args[1])
				if err != nil {
					return err
				}
				updated, err := ctx.Repo.Resolve(cmd.Context(), args[2])
				if err != nil {
					return err
				}
				return ctx.Repo.RangeDiff(cmd.Context(), base, old, updated)
			})
		},
	}
}
