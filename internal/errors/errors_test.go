package errors_test

import (
	"errors"
	"fmt"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"

	trailerrors "trail.dev/trail/internal/errors"
)

func TestTypedErrorsMatchSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{
			name:     "not found",
			err:      trailerrors.NewRevisionNotFoundError("topic"),
			sentinel: trailerrors.ErrNotFound,
			message:  "revision topic does not exist",
		},
		{
			name:     "ambiguous",
			err:      trailerrors.NewAmbiguousRevisionError("abc", "short object ID abc is ambiguous"),
			sentinel: trailerrors.ErrAmbiguous,
			message:  "revision abc is ambiguous: short object ID abc is ambiguous",
		},
		{
			name:     "unlabeled parent",
			err:      trailerrors.NewUnlabeledParentError("c2", "x9"),
			sentinel: trailerrors.ErrInconsistentHistory,
			message:  "inconsistent history: commit c2 has parent x9 which was never labeled",
		},
		{
			name:     "merge commit",
			err:      trailerrors.NewMergeCommitError("m1", 2),
			sentinel: trailerrors.ErrMergeCommit,
			message:  "commit m1 has 2 parents; merge commits cannot be replayed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("failed to plan: %w", tt.err)
			require.ErrorIs(t, wrapped, tt.sentinel)
			require.Equal(t, tt.message, tt.err.Error())
		})
	}

	require.NotErrorIs(t, trailerrors.NewRevisionNotFoundError("x"), trailerrors.ErrAmbiguous)
}

func TestGitCommandErrorUnwraps(t *testing.T) {
	err := trailerrors.NewGitCommandError("git", []string{"rev-parse", "HEAD"}, "", "fatal: not a git repository", exec.ErrNotFound)

	require.ErrorIs(t, err, exec.ErrNotFound)
	require.Contains(t, err.Error(), "stderr: fatal: not a git repository")

	var cmdErr *trailerrors.GitCommandError
	require.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &cmdErr))
	require.Equal(t, []string{"rev-parse", "HEAD"}, cmdErr.Args)
}
