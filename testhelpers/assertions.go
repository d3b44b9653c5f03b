// Package testhelpers provides testing utilities for trail, including a
// scene system, Git repository helpers, and assertions over branches and
// commit subjects.
package testhelpers

import (
	"os/exec"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Must panics if err is not nil, otherwise returns the value.
// Useful in setup code where errors are not expected.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// ExpectBranches asserts that the repository has exactly the expected branches.
func ExpectBranches(t *testing.T, repo *GitRepo, expected []string) {
	t.Helper()

	branches, err := repo.GetLocalBranches()
	require.NoError(t, err, "Failed to list branches")

	sort.Strings(branches)
	expected = append([]string(nil), expected...)
	sort.Strings(expected)

	require.Equal(t, expected, branches, "Branches do not match")
}

// ExpectCommits asserts that the newest subjects reachable from rev match
// expected, newest first. Only the first len(expected) subjects are compared.
func ExpectCommits(t *testing.T, repo *GitRepo, rev string, expected []string) {
	t.Helper()

	cmd := exec.Command("git", "-C", repo.Dir, "log", "--format=%s", rev)
	output, err := cmd.Output()
	require.NoError(t, err, "Failed to list commits")

	subjects := splitLines(string(output))
	if len(subjects) < len(expected) {
		require.Fail(t, "Not enough commits", "Expected %d commits, got %d", len(expected), len(subjects))
		return
	}

	require.Equal(t, expected, subjects[:len(expected)], "Commits do not match")
}

// ExpectAncestor asserts that ancestor is reachable from descendant.
func ExpectAncestor(t *testing.T, repo *GitRepo, ancestor, descendant string) {
	t.Helper()

	ok, err := repo.IsAncestor(ancestor, descendant)
	require.NoError(t, err)
	require.True(t, ok, "%s is not an ancestor of %s", ancestor, descendant)
}

// ExpectCommitsString asserts the newest subjects on the current branch as a
// comma-separated string.
func ExpectCommitsString(t *testing.T, repo *GitRepo, expected string) {
	t.Helper()

	subjects, err := repo.ListCurrentBranchCommitMessages()
	require.NoError(t, err, "Failed to list commit messages")

	expectedCount := len(strings.Split(expected, ","))
	if len(subjects) < expectedCount {
		require.Fail(t, "Not enough commits", "Expected %d commits, got %d", expectedCount, len(subjects))
		return
	}

	require.Equal(t, expected, strings.Join(subjects[:expectedCount], ", "), "Commits do not match")
}
