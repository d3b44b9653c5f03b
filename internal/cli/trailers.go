package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"trail.dev/trail/internal/cli/common"
	"trail.dev/trail/internal/runtime"
)

// newTrailersCmd creates the trailers command
func newTrailersCmd(opts *common.GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trailers",
		Short: "Read and add commit message trailers",
	}

	cmd.AddCommand(newTrailersShowCmd(opts))
	cmd.AddCommand(newTrailersAddCmd(opts))

	return cmd
}

// newTrailersShowCmd creates the trailers show command
func newTrailersShowCmd(opts *common.GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show [rev]",
		Short: "Print the trailers of a commit, one \"key: value\" per line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rev := "HEAD"
			if len(args) == 1 {
				rev = args[0]
			}
			return common.Run(cmd, opts, func(ctx *runtime.Context) error {
				c, err := ctx.Repo.Resolve(cmd.Context(), rev)
				if err != nil {
					return err
				}
				trailers, err := ctx.Repo.Trailers(cmd.Context(), c)
				if err != nil {
					return err
				}
				for _, trailer := range trailers {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", trailer.Key, trailer.Value)
				}
				return nil
			})
		},
	}
}

// newTrailersAddCmd creates the trailers add command
func newTrailersAddCmd(opts *common.GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <key> <value>",
		Short: "Amend HEAD with an extra trailer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			return common.Run(cmd, opts, func(ctx *runtime.Context) error {
				if opts.DryRun {
					ctx.Splog.Info("Would add trailer %s: %s to HEAD.", key, value)
					return nil
				}
				return ctx.Repo.AddTrailer(cmd.Context(), key, value)
			})
		},
	}
}
