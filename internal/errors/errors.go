// Package errors provides sentinel errors and custom error types for the trail application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrNotFound indicates that a revision or branch does not resolve to any commit
	ErrNotFound = errors.New("revision not found")

	// ErrAmbiguous indicates that a revision matches more than one object
	ErrAmbiguous = errors.New("ambiguous revision")

	// ErrInconsistentHistory indicates that the collected commit graph references
	// a parent that was never replayed
	ErrInconsistentHistory = errors.New("inconsistent history")

	// ErrMergeCommit indicates that a merge commit was found in the range being replayed
	ErrMergeCommit = errors.New("merge commit in range")
)

// RevisionNotFoundError represents an error when a revision does not resolve
type RevisionNotFoundError struct {
	Revision string
}

func (e *RevisionNotFoundError) Error() string {
	return fmt.Sprintf("revision %s does not exist", e.Revision)
}

// Is returns true if the target error is ErrNotFound
func (e *RevisionNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewRevisionNotFoundError creates a new RevisionNotFoundError
func NewRevisionNotFoundError(revision string) *RevisionNotFoundError {
	return &RevisionNotFoundError{Revision: revision}
}

// AmbiguousRevisionError represents an error when a revision matches several objects
type AmbiguousRevisionError struct {
	Revision string
	Detail   string
}

func (e *AmbiguousRevisionError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("revision %s is ambiguous: %s", e.Revision, e.Detail)
	}
	return fmt.Sprintf("revision %s is ambiguous", e.Revision)
}

// Is returns true if the target error is ErrAmbiguous
func (e *AmbiguousRevisionError) Is(target error) bool {
	return target == ErrAmbiguous
}

// NewAmbiguousRevisionError creates a new AmbiguousRevisionError
func NewAmbiguousRevisionError(revision, detail string) *AmbiguousRevisionError {
	return &AmbiguousRevisionError{Revision: revision, Detail: detail}
}

// InconsistentHistoryError represents a commit graph that cannot be turned into a valid script
type InconsistentHistoryError struct {
	Commit  string
	Parent  string
	Message string
}

func (e *InconsistentHistoryError) Error() string {
	switch {
	case e.Parent != "":
		return fmt.Sprintf("inconsistent history: commit %s has parent %s which was never labeled", e.Commit, e.Parent)
	case e.Message != "":
		return fmt.Sprintf("inconsistent history: %s", e.Message)
	default:
		return fmt.Sprintf("inconsistent history at commit %s", e.Commit)
	}
}

// Is returns true if the target error is ErrInconsistentHistory
func (e *InconsistentHistoryError) Is(target error) bool {
	return target == ErrInconsistentHistory
}

// NewUnlabeledParentError creates an InconsistentHistoryError for a reset to an unknown parent
func NewUnlabeledParentError(commit, parent string) *InconsistentHistoryError {
	return &InconsistentHistoryError{Commit: commit, Parent: parent}
}

// NewInconsistentHistoryError creates an InconsistentHistoryError with a free-form message
func NewInconsistentHistoryError(commit, message string) *InconsistentHistoryError {
	return &InconsistentHistoryError{Commit: commit, Message: message}
}

// MergeCommitError represents a merge commit found among the commits to replay
type MergeCommitError struct {
	Commit  string
	Parents int
}

func (e *MergeCommitError) Error() string {
	return fmt.Sprintf("commit %s has %d parents; merge commits cannot be replayed", e.Commit, e.Parents)
}

// Is returns true if the target error is ErrMergeCommit
func (e *MergeCommitError) Is(target error) bool {
	return target == ErrMergeCommit
}

// NewMergeCommitError creates a new MergeCommitError
func NewMergeCommitError(commit string, parents int) *MergeCommitError {
	return &MergeCommitError{Commit: commit, Parents: parents}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
