package git

import (
	"context"
	"fmt"
	"strings"
)

// Trailer is a single "Key: value" line from a commit message trailer block
type Trailer struct {
	Key   string
	Value string
}

// Message returns the full commit message
func (r *Repository) Message(_ context.Context, c CommitID) (string, error) {
	commit, err := r.commitObject(c)
	if err != nil {
		return "", err
	}
	return commit.Message, nil
}

// Subject returns the one-line summary of a commit, the way `git log --format=%s` prints it
func (r *Repository) Subject(ctx context.Context, c CommitID) (string, error) {
	message, err := r.Message(ctx, c)
	if err != nil {
		return "", err
	}
	return subjectOf(message), nil
}

// subjectOf folds the first paragraph of a message onto a single line the
// way git's %s placeholder does: blank lines before it are skipped, trailing
// whitespace is dropped and leading indentation is kept.
func subjectOf(message string) string {
	var parts []string
	for _, line := range strings.Split(strings.ReplaceAll(message, "\r\n", "\n"), "\n") {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			if len(parts) > 0 {
				break
			}
			continue
		}
		parts = append(parts, line)
	}
	return strings.Join(parts, " ")
}

// ChangedFiles returns the paths touched by a commit relative to its first parent
func (r *Repository) ChangedFiles(ctx context.Context, c CommitID) ([]string, error) {
	lines, err := r.runner.RunLines(ctx, "diff-tree", "--root", "--no-commit-id", "--name-only", "-r", string(c))
	if err != nil {
		return nil, fmt.Errorf("failed to list files changed by %s: %w", c, err)
	}
	return lines, nil
}

// PatchID returns the stable-content id of the change a commit introduces.
// Commits without a diff have no patch id and return "".
func (r *Repository) PatchID(ctx context.Context, c CommitID) (string, error) {
	patch, err := r.runner.RunRaw(ctx, "show", string(c))
	if err != nil {
		return "", fmt.Errorf("failed to show %s: %w", c, err)
	}

	out, err := r.runner.RunWithInput(ctx, patch, "patch-id")
	if err != nil {
		return "", fmt.Errorf("failed to compute patch-id for %s: %w", c, err)
	}
	fields := strings.Fields(out)
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], nil
}

// Trailers parses the trailer block of a commit message
func (r *Repository) Trailers(ctx context.Context, c CommitID) ([]Trailer, error) {
	message, err := r.Message(ctx, c)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(message) == "" {
		return []Trailer{}, nil
	}

	out, err := r.runner.RunWithInput(ctx, message, "interpret-trailers", "--parse")
	if err != nil {
		return nil, fmt.Errorf("failed to parse trailers of %s: %w", c, err)
	}

	trailers := []Trailer{}
	for _, line := range strings.Split(out, "\n") {
		key, value, ok := strings.Cut(line, ": ")
		if !ok {
			continue
		}
		trailers = append(trailers, Trailer{Key: key, Value: value})
	}
	return trailers, nil
}

// AddTrailer amends HEAD, appending a trailer to its message
func (r *Repository) AddTrailer(ctx context.Context, key, value string) error {
	if key == "" {
		return fmt.Errorf("trailer key cannot be empty")
	}
	_, err := r.runner.Run(ctx, "commit", "--amend", "--no-edit", "--quiet", "--trailer", key+": "+value)
	if err != nil {
		return fmt.Errorf("failed to add trailer %s: %w", key, err)
	}
	return nil
}
