package impact_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"trail.dev/trail/internal/git"
	"trail.dev/trail/internal/impact"
)

type fakeRepo struct {
	commits  []git.CommitID
	files    map[git.CommitID][]string
	delays   map[git.CommitID]time.Duration
	failures map[git.CommitID]bool
	rangeErr error

	inFlight    atomic.Int32
	maxInFlight atomic.Int32
}

func (f *fakeRepo) CommitRange(_ context.Context, _, _ git.CommitID) ([]git.CommitID, error) {
	if f.rangeErr != nil {
		return nil, f.rangeErr
	}
	return f.commits, nil
}

func (f *fakeRepo) ChangedFiles(_ context.Context, c git.CommitID) ([]string, error) {
	n := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		peak := f.maxInFlight.Load()
		if n <= peak || f.maxInFlight.CompareAndSwap(peak, n) {
			break
		}
	}

	time.Sleep(f.delays[c])
	if f.failures[c] {
		return nil, errors.New("diff-tree exploded")
	}
	return f.files[c], nil
}

type lockedLogger struct {
	mu    sync.Mutex
	lines int
}

func (l *lockedLogger) Debug(string, ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines++
}

func TestFilterRun(t *testing.T) {
	t.Run("keeps range order regardless of completion order", func(t *testing.T) {
		repo := &fakeRepo{
			commits: []git.CommitID{"c4", "c3", "c2", "c1"},
			files: map[git.CommitID][]string{
				"c4": {"a.go"},
				"c3": {"docs/readme.md"},
				"c2": {"b.go", "a.go"},
				"c1": {"a.go"},
			},
			// earlier commits finish last
			delays: map[git.CommitID]time.Duration{
				"c4": 40 * time.Millisecond,
				"c3": 30 * time.Millisecond,
				"c2": 20 * time.Millisecond,
				"c1": 0,
			},
		}

		got, err := impact.NewFilter(repo, 4, nil).Run(context.Background(), "base", "head", []string{"a.go"})
		require.NoError(t, err)
		require.Equal(t, []git.CommitID{"c4", "c2", "c1"}, got)
	})

	t.Run("a failing commit is skipped without affecting the rest", func(t *testing.T) {
		repo := &fakeRepo{
			commits: []git.CommitID{"c3", "c2", "c1"},
			files: map[git.CommitID][]string{
				"c3": {"a.go"},
				"c2": {"a.go"},
				"c1": {"a.go"},
			},
			failures: map[git.CommitID]bool{"c2": true},
		}
		log := &lockedLogger{}

		got, err := impact.NewFilter(repo, 2, log).Run(context.Background(), "base", "head", []string{"a.go"})
		require.NoError(t, err)
		require.Equal(t, []git.CommitID{"c3", "c1"}, got)
		require.Equal(t, 1, log.lines)
	})

	t.Run("never runs more queries than workers", func(t *testing.T) {
		repo := &fakeRepo{files: map[git.CommitID][]string{}, delays: map[git.CommitID]time.Duration{}}
		for _, c := range []git.CommitID{"a", "b", "c", "d", "e", "f", "g", "h"} {
			repo.commits = append(repo.commits, c)
			repo.delays[c] = 10 * time.Millisecond
		}

		_, err := impact.NewFilter(repo, 3, nil).Run(context.Background(), "base", "head", []string{"x"})
		require.NoError(t, err)
		require.LessOrEqual(t, repo.maxInFlight.Load(), int32(3))
	})

	t.Run("paths are compared after cleaning", func(t *testing.T) {
		repo := &fakeRepo{
			commits: []git.CommitID{"c1"},
			files:   map[git.CommitID][]string{"c1": {"pkg/util/strings.go"}},
		}

		got, err := impact.NewFilter(repo, 1, nil).Run(context.Background(), "base", "head", []string{"./pkg/util/../util/strings.go"})
		require.NoError(t, err)
		require.Equal(t, []git.CommitID{"c1"}, got)
	})

	t.Run("failure to list the range is returned", func(t *testing.T) {
		repo := &fakeRepo{rangeErr: errors.New("bad range")}

		_, err := impact.NewFilter(repo, 1, nil).Run(context.Background(), "base", "head", []string{"a.go"})
		require.Error(t, err)
		require.Contains(t, err.Error(), "bad range")
	})

	t.Run("default pool size follows the CPU count", func(t *testing.T) {
		require.Positive(t, impact.NewFilter(&fakeRepo{}, 0, nil).Workers())
	})
}
