package git

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// CommitID is a full, canonical commit hash as printed by git.
type CommitID string

func (c CommitID) String() string {
	return string(c)
}

// Short returns the first seven characters of the id.
func (c CommitID) Short() string {
	if len(c) <= 7 {
		return string(c)
	}
	return string(c[:7])
}

// Repository is the handle every query goes through. It wraps a go-git
// repository for object reads and a CommandRunner for porcelain commands.
type Repository struct {
	repo   *gogit.Repository
	runner *CommandRunner
	root   string

	// go-git packfile access is not safe for concurrent use
	mu sync.Mutex
}

// OpenRepository opens the git repository containing the given path
func OpenRepository(path string) (*Repository, error) {
	// Resolve to absolute path
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := gogit.PlainOpenWithOptions(absPath, &gogit.PlainOpenOptions{
		DetectDotGit: true,
		// linked worktrees keep their objects in the main repository's git dir
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}

	root := absPath
	if worktree, err := repo.Worktree(); err == nil {
		root = worktree.Filesystem.Root()
	}

	return &Repository{
		repo:   repo,
		runner: NewCommandRunner(root),
		root:   root,
	}, nil
}

// SetCommandTimeout sets the timeout for git subprocesses.
func (r *Repository) SetCommandTimeout(timeout time.Duration) {
	r.runner.SetTimeout(timeout)
}

// Root returns the root directory of the working tree
func (r *Repository) Root() string {
	return r.root
}

// GitDir returns the absolute path of the .git directory (or the worktree's git dir)
func (r *Repository) GitDir(ctx context.Context) (string, error) {
	dir, err := r.runner.Run(ctx, "rev-parse", "--absolute-git-dir")
	if err != nil {
		return "", fmt.Errorf("failed to locate git dir: %w", err)
	}
	return dir, nil
}

func (r *Repository) commitObject(c CommitID) (*object.Commit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	commit, err := r.repo.CommitObject(plumbing.NewHash(string(c)))
	if err != nil {
		return nil, fmt.Errorf("failed to get commit %s: %w", c, err)
	}
	return commit, nil
}
