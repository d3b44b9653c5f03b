// Package common provides shared helper functions for CLI commands.
package common

import (
	"github.com/spf13/cobra"

	"trail.dev/trail/internal/git"
	"trail.dev/trail/internal/runtime"
)

// GlobalOptions holds the persistent flags of the root command
type GlobalOptions struct {
	DryRun bool
	Debug  bool
}

// Run is a helper that provides a runtime context to a command's execution function
func Run(cmd *cobra.Command, opts *GlobalOptions, fn func(ctx *runtime.Context) error) error {
	ctx, err := runtime.GetContext(cmd.Context(), runtime.Options{Debug: opts.Debug})
	if err != nil {
		return err
	}
	defer func() { _ = ctx.Close() }()
	return fn(ctx)
}

// CompleteBranches is a helper for cobra.ValidArgsFunction that returns all
// branch names in the repository.
func CompleteBranches(cmd *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	repo, err := git.OpenRepository(".")
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	branches, err := repo.BranchNames(cmd.Context())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return branches, cobra.ShellCompDirectiveNoFileComp
}
