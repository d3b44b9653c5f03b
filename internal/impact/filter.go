// Package impact finds the commits in a range that touched a given set of files.
package impact

import (
	"context"
	"fmt"
	"path"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"trail.dev/trail/internal/git"
)

// Repo is the subset of repository queries the filter needs
type Repo interface {
	CommitRange(ctx context.Context, start, end git.CommitID) ([]git.CommitID, error)
	ChangedFiles(ctx context.Context, c git.CommitID) ([]string, error)
}

// Logger receives per-commit failures, which are otherwise dropped
type Logger interface {
	Debug(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}

// Filter checks commits in parallel over a bounded pool of workers
type Filter struct {
	repo    Repo
	workers int
	log     Logger
}

// NewFilter creates a Filter. workers <= 0 uses one worker per CPU.
func NewFilter(repo Repo, workers int, log Logger) *Filter {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if log == nil {
		log = nopLogger{}
	}
	return &Filter{repo: repo, workers: workers, log: log}
}

// Workers returns the size of the worker pool
func (f *Filter) Workers() int {
	return f.workers
}

// Run returns the commits in start..end that touched any of paths, in the
// order git lists the range. A commit whose files cannot be listed is left out.
func (f *Filter) Run(ctx context.Context, start, end git.CommitID, paths []string) ([]git.CommitID, error) {
	commits, err := f.repo.CommitRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidate commits: %w", err)
	}

	wanted := make(map[string]bool, len(paths))
	for _, p := range paths {
		wanted[normalize(p)] = true
	}
	if len(wanted) == 0 || len(commits) == 0 {
		return []git.CommitID{}, nil
	}

	// one slot per commit keeps the result in range order
	touched := make([]bool, len(commits))

	var g errgroup.Group
	g.SetLimit(f.workers)
	for i, c := range commits {
		g.Go(func() error {
			files, err := f.repo.ChangedFiles(ctx, c)
			if err != nil {
				f.log.Debug("impact: skipping %s: %v", c.Short(), err)
				return nil
			}
			for _, file := range files {
				if wanted[normalize(file)] {
					touched[i] = true
					break
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	retained := make([]git.CommitID, 0, len(commits))
	for i, c := range commits {
		if touched[i] {
			retained = append(retained, c)
		}
	}
	return retained, nil
}

// normalize makes paths comparable with git's slash-separated, repo-relative output
func normalize(p string) string {
	p = strings.ReplaceAll(strings.TrimSpace(p), "\\", "/")
	if p == "" {
		return ""
	}
	return strings.TrimPrefix(path.Clean(p), "./")
}
