package actions

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/kballard/go-shellquote"

	"trail.dev/trail/internal/evolve"
	"trail.dev/trail/internal/output"
	"trail.dev/trail/internal/runtime"
)

// EvolveOptions specifies options for the evolve commands
type EvolveOptions struct {
	Onto string
	Base string
	// BranchUpdateCommand overrides the configured command for this run
	BranchUpdateCommand string
	DryRun              bool
	Debug               bool
	// Executable is invoked by git as the sequence editor; empty means the running binary
	Executable string
	Out        io.Writer
}

// branchUpdateCommand picks the option, then the configured value, then the default
func (o EvolveOptions) branchUpdateCommand(rt *runtime.Context) string {
	if o.BranchUpdateCommand != "" {
		return o.BranchUpdateCommand
	}
	if rt.Settings.BranchUpdateCommand != "" {
		return rt.Settings.BranchUpdateCommand
	}
	return evolve.DefaultBranchUpdateCommand
}

// EvolvePlanAction writes the todo list for moving the stack on Base onto Onto to path
func EvolvePlanAction(ctx context.Context, rt *runtime.Context, opts EvolveOptions, path string) error {
	plan, err := evolve.NewPlanner(rt.Repo, rt.Splog).BuildFromRevisions(ctx, opts.Base, opts.Onto)
	if err != nil {
		return err
	}
	if err := plan.WriteFile(path, opts.branchUpdateCommand(rt)); err != nil {
		return fmt.Errorf("failed to write todo list: %w", err)
	}
	rt.Splog.Debug("evolve: wrote %d instruction(s) to %s", len(plan.Instructions), path)
	return nil
}

// EvolveExecuteAction moves the stack on Base onto Onto with one interactive rebase
func EvolveExecuteAction(ctx context.Context, rt *runtime.Context, opts EvolveOptions) error {
	plan, err := evolve.NewPlanner(rt.Repo, rt.Splog).BuildFromRevisions(ctx, opts.Base, opts.Onto)
	if err != nil {
		return err
	}

	if opts.DryRun {
		return output.NewScriptPrinter(opts.Out).Print(plan.Lines(opts.branchUpdateCommand(rt)))
	}

	if len(plan.Branches) == 0 {
		rt.Splog.Info("No branches contain %s without %s; nothing to do.", opts.Base, opts.Onto)
		return nil
	}

	if rt.Repo.IsRebaseInProgress(ctx) {
		return fmt.Errorf("a rebase is already in progress; finish or abort it first")
	}

	editor, err := sequenceEditor(opts, plan)
	if err != nil {
		return err
	}

	// start from base with no branch checked out: the rebase moves whatever
	// HEAD names, and git refuses to force-update a checked out branch
	current, err := rt.Repo.CurrentBranch()
	if err != nil {
		return err
	}
	if current != "" {
		rt.Splog.Info("Detaching HEAD from %s.", output.ColorBranchName(current))
	}
	if err := rt.Repo.DetachHead(ctx, plan.Base); err != nil {
		return err
	}

	rt.Splog.Info("Moving %s onto %s.", output.ColorBranchNames(plan.Branches), plan.Onto.Short())
	if err := rt.Repo.InteractiveRebase(ctx, plan.Onto, editor); err != nil {
		restoreBranch(ctx, rt, current)
		return err
	}
	rt.Splog.Info("Moved %d branch(es).", len(plan.Branches))
	return nil
}

// restoreBranch puts the user back on the branch they started from after a
// failed rebase. A stopped rebase is left alone so it can be continued.
func restoreBranch(ctx context.Context, rt *runtime.Context, branch string) {
	if branch == "" {
		return
	}
	if rt.Repo.IsRebaseInProgress(ctx) {
		rt.Splog.Tip("Run `git checkout %s` once the rebase is finished or aborted.", branch)
		return
	}
	if err := rt.Repo.CheckoutBranch(ctx, branch); err != nil {
		rt.Splog.Warn("Could not return to %s: %v", output.ColorBranchName(branch), err)
		rt.Splog.Tip("Run `git checkout %s` to get back.", branch)
		return
	}
	rt.Splog.Warn("Rebase failed; checked out %s again.", output.ColorBranchName(branch))
}

// sequenceEditor builds the shell command git runs to write the todo list.
// The resolved ids are passed so the plan is rebuilt against the same commits.
func sequenceEditor(opts EvolveOptions, plan *evolve.Plan) (string, error) {
	exe := opts.Executable
	if exe == "" {
		var err error
		if exe, err = os.Executable(); err != nil {
			return "", fmt.Errorf("failed to locate trail executable: %w", err)
		}
	}

	args := []string{exe, "evolve", "plan", plan.Onto.String(), plan.Base.String()}
	if opts.BranchUpdateCommand != "" {
		args = append(args, "--branch-update-command", opts.BranchUpdateCommand)
	}
	if opts.Debug {
		args = append(args, "--debug")
	}
	return shellquote.Join(args...), nil
}
