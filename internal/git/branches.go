package git

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// BranchesPointingAt returns the local branches whose tip is exactly the commit
func (r *Repository) BranchesPointingAt(ctx context.Context, c CommitID) ([]string, error) {
	lines, err := r.runner.RunLines(ctx, "for-each-ref", "--points-at", string(c), "--format=%(refname:short)", "refs/heads/")
	if err != nil {
		return nil, fmt.Errorf("failed to list branches at %s: %w", c, err)
	}
	return branchNames(lines), nil
}

// BranchesContaining returns the local branches that have the commit in their history
func (r *Repository) BranchesContaining(ctx context.Context, c CommitID) ([]string, error) {
	lines, err := r.runner.RunLines(ctx, "for-each-ref", "--contains", string(c), "--format=%(refname:short)", "refs/heads/")
	if err != nil {
		return nil, fmt.Errorf("failed to list branches containing %s: %w", c, err)
	}
	return branchNames(lines), nil
}

// BranchNames returns all local branch names
func (r *Repository) BranchNames(ctx context.Context) ([]string, error) {
	lines, err := r.runner.RunLines(ctx, "for-each-ref", "--format=%(refname:short)", "refs/heads/")
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	return branchNames(lines), nil
}

// branchNames drops blank lines and the "(HEAD detached at ...)" pseudo-branch, then sorts.
func branchNames(lines []string) []string {
	names := make([]string, 0, len(lines))
	for _, line := range lines {
		name := strings.TrimSpace(line)
		if name == "" || strings.HasPrefix(name, "(") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CurrentBranch returns the checked out branch, or "" when HEAD is detached
func (r *Repository) CurrentBranch() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	head, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to read HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		return "", nil
	}
	return head.Name().Short(), nil
}
