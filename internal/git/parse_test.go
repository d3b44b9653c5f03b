package git

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"

	trailerrors "trail.dev/trail/internal/errors"
)

func TestParseParentLines(t *testing.T) {
	t.Run("records first parent and parent count", func(t *testing.T) {
		nodes, err := ParseParentLines([]string{"c1 b", "m c1 x1", ""})
		require.NoError(t, err)
		require.Equal(t, []CommitNode{
			{Commit: "c1", Parent: "b", ParentCount: 1},
			{Commit: "m", Parent: "c1", ParentCount: 2},
		}, nodes)
	})

	t.Run("root commits are inconsistent", func(t *testing.T) {
		_, err := ParseParentLines([]string{"c1 b", "root"})
		require.ErrorIs(t, err, trailerrors.ErrInconsistentHistory)
	})
}

func TestBranchNames(t *testing.T) {
	names := branchNames([]string{"zeta", "", "(HEAD detached at 1234567)", "alpha", "  mid  "})
	require.Equal(t, []string{"alpha", "mid", "zeta"}, names)
}

func TestSubjectOf(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{name: "single line", message: "fix parser\n", want: "fix parser"},
		{name: "body is dropped", message: "fix parser\n\nLonger explanation.\n", want: "fix parser"},
		{name: "wrapped subject is folded", message: "fix parser\nfor nested input\n\nbody", want: "fix parser for nested input"},
		{name: "leading blank lines", message: "\n\nsubject", want: "subject"},
		{name: "empty", message: "", want: ""},
		{name: "indentation kept and trailing spaces dropped", message: "  indented   subject\n  wrapped", want: "  indented   subject   wrapped"},
		{name: "whitespace-only line ends the subject", message: "first\n \t\nsecond", want: "first"},
		{name: "whitespace-only lines before the subject", message: "  \n\t\nsubject  \n", want: "subject"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, subjectOf(tt.message))
		})
	}
}

func TestClassifyResolveError(t *testing.T) {
	exitErr := exec.Command("git", "rev-parse", "--verify", "--quiet", "refs/heads/does-not-exist").Run()
	require.Error(t, exitErr)

	t.Run("unknown revision", func(t *testing.T) {
		err := classifyResolveError("nope", trailerrors.NewGitCommandError("git", nil, "", "fatal: Needed a single revision", exitErr))
		require.ErrorIs(t, err, trailerrors.ErrNotFound)
	})

	t.Run("ambiguous short id", func(t *testing.T) {
		stderr := "error: short object ID 1234 is ambiguous\nhint: The candidates are:"
		err := classifyResolveError("1234", trailerrors.NewGitCommandError("git", nil, "", stderr, exitErr))
		require.ErrorIs(t, err, trailerrors.ErrAmbiguous)
		require.Contains(t, err.Error(), "short object ID 1234 is ambiguous")
		require.NotContains(t, err.Error(), "hint")
	})

	t.Run("git failing to start is passed through", func(t *testing.T) {
		cause := trailerrors.NewGitCommandError("git", nil, "", "", exec.ErrNotFound)
		err := classifyResolveError("main", cause)
		require.Same(t, cause, err)
	})
}
