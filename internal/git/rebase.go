package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// InteractiveRebase runs `git rebase -i <onto>` attached to the terminal.
// sequenceEditor replaces the todo-list editor; git appends the todo file path
// to it before running it.
func (r *Repository) InteractiveRebase(ctx context.Context, onto CommitID, sequenceEditor string) error {
	var env []string
	if sequenceEditor != "" {
		env = append(env, "GIT_SEQUENCE_EDITOR="+sequenceEditor)
	}
	if err := r.runner.RunInteractive(ctx, env, "rebase", "-i", string(onto)); err != nil {
		if r.IsRebaseInProgress(ctx) {
			return fmt.Errorf("rebase stopped; resolve conflicts and run 'git rebase --continue': %w", err)
		}
		return fmt.Errorf("rebase onto %s failed: %w", onto, err)
	}
	return nil
}

// IsRebaseInProgress checks if a rebase is currently in progress
func (r *Repository) IsRebaseInProgress(ctx context.Context) bool {
	gitDir, err := r.GitDir(ctx)
	if err != nil {
		return false
	}
	// Check for interactive rebase
	if _, err := os.Stat(filepath.Join(gitDir, "rebase-merge")); err == nil {
		return true
	}
	// Check for non-interactive rebase
	if _, err := os.Stat(filepath.Join(gitDir, "rebase-apply")); err == nil {
		return true
	}
	return false
}

// RangeDiff shows `git range-diff <base> <old> <new>` on the terminal
func (r *Repository) RangeDiff(ctx context.Context, base, old, updated CommitID) error {
	if err := r.runner.RunInteractive(ctx, nil, "range-diff", string(base), string(old), string(updated)); err != nil {
		return fmt.Errorf("range-diff failed: %w", err)
	}
	return nil
}

// CheckoutBranch switches the working tree to a local branch
func (r *Repository) CheckoutBranch(ctx context.Context, branch string) error {
	if _, err := r.runner.Run(ctx, "checkout", "--quiet", branch, "--"); err != nil {
		return fmt.Errorf("failed to check out %s: %w", branch, err)
	}
	return nil
}

// DetachHead checks out the commit with a detached HEAD
func (r *Repository) DetachHead(ctx context.Context, at CommitID) error {
	if _, err := r.runner.Run(ctx, "checkout", "--quiet", "--detach", string(at)); err != nil {
		return fmt.Errorf("failed to detach HEAD: %w", err)
	}
	return nil
}
