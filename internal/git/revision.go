package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	trailerrors "trail.dev/trail/internal/errors"
)

// Resolve maps a user-supplied revision to the full id of the commit it names.
// Unknown revisions return a RevisionNotFoundError and short ids matching several
// objects return an AmbiguousRevisionError; anything else is a GitCommandError.
func (r *Repository) Resolve(ctx context.Context, revision string) (CommitID, error) {
	if revision == "" || strings.HasPrefix(revision, "-") {
		return "", trailerrors.NewRevisionNotFoundError(revision)
	}

	out, err := r.runner.Run(ctx, "rev-parse", "--verify", revision+"^{commit}")
	if err != nil {
		return "", classifyResolveError(revision, err)
	}
	return CommitID(out), nil
}

// ResolveBranch resolves a local branch name, ignoring tags or remotes of the same name.
func (r *Repository) ResolveBranch(ctx context.Context, branch string) (CommitID, error) {
	if branch == "" {
		return "", trailerrors.NewRevisionNotFoundError(branch)
	}

	out, err := r.runner.Run(ctx, "rev-parse", "--verify", "refs/heads/"+branch+"^{commit}")
	if err != nil {
		return "", classifyResolveError(branch, err)
	}
	return CommitID(out), nil
}

func classifyResolveError(revision string, err error) error {
	var cmdErr *trailerrors.GitCommandError
	if !errors.As(err, &cmdErr) {
		return err
	}
	var exitErr *exec.ExitError
	if !errors.As(cmdErr.Err, &exitErr) {
		// git never ran or was killed; not a statement about the revision
		return err
	}
	if strings.Contains(cmdErr.Stderr, "ambiguous") {
		return trailerrors.NewAmbiguousRevisionError(revision, firstLine(cmdErr.Stderr))
	}
	return trailerrors.NewRevisionNotFoundError(revision)
}

// ShortHash returns git's abbreviated form of a commit id
func (r *Repository) ShortHash(ctx context.Context, c CommitID) (string, error) {
	out, err := r.runner.Run(ctx, "rev-parse", "--short", string(c))
	if err != nil {
		return "", fmt.Errorf("failed to abbreviate %s: %w", c, err)
	}
	return out, nil
}

// NameRev returns a symbolic name for the commit relative to the nearest ref
func (r *Repository) NameRev(ctx context.Context, c CommitID) (string, error) {
	out, err := r.runner.Run(ctx, "name-rev", "--name-only", string(c))
	if err != nil {
		return "", fmt.Errorf("failed to name %s: %w", c, err)
	}
	return out, nil
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	return line
}
