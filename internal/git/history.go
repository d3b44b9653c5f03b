package git

import (
	"context"
	"fmt"
	"strings"

	trailerrors "trail.dev/trail/internal/errors"
)

// CommitNode is a commit paired with its first parent.
type CommitNode struct {
	Commit CommitID
	Parent CommitID
	// ParentCount is the number of parents git recorded; more than one means a merge.
	ParentCount int
}

// CollectHistory returns the commits reachable from any head but not from base,
// oldest first, in an order where no commit precedes its parent. Ties between
// unrelated commits follow git's own topological walk. A base that is not an
// ancestor of the heads simply bounds the walk; it is not an error.
func (r *Repository) CollectHistory(ctx context.Context, base CommitID, heads []CommitID) ([]CommitNode, error) {
	if len(heads) == 0 {
		return []CommitNode{}, nil
	}

	args := []string{"rev-list", "--reverse", "--topo-order", "--parents"}
	for _, head := range heads {
		args = append(args, string(head))
	}
	args = append(args, "^"+string(base))

	lines, err := r.runner.RunLines(ctx, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to collect history above %s: %w", base, err)
	}
	return ParseParentLines(lines)
}

// ParseParentLines parses `git rev-list --parents` output. Every line must name a
// commit followed by at least one parent.
func ParseParentLines(lines []string) ([]CommitNode, error) {
	nodes := make([]CommitNode, 0, len(lines))
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, trailerrors.NewInconsistentHistoryError(fields[0], "commit has no parent in the collected range")
		}
		nodes = append(nodes, CommitNode{
			Commit:      CommitID(fields[0]),
			Parent:      CommitID(fields[1]),
			ParentCount: len(fields) - 1,
		})
	}
	return nodes, nil
}

// CommitRange returns the commits in start..end, newest first
func (r *Repository) CommitRange(ctx context.Context, start, end CommitID) ([]CommitID, error) {
	lines, err := r.runner.RunLines(ctx, "rev-list", string(start)+".."+string(end))
	if err != nil {
		return nil, fmt.Errorf("failed to list commits %s..%s: %w", start, end, err)
	}
	commits := make([]CommitID, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			commits = append(commits, CommitID(line))
		}
	}
	return commits, nil
}
