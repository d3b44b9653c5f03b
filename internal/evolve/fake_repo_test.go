package evolve_test

import (
	"context"
	"sort"

	trailerrors "trail.dev/trail/internal/errors"
	"trail.dev/trail/internal/git"
)

// fakeRepo is an in-memory commit graph. Commits must be added parents first,
// so insertion order is a valid topological (and chronological) order.
type fakeRepo struct {
	order    []git.CommitID
	parents  map[git.CommitID][]git.CommitID
	subjects map[git.CommitID]string
	branches map[string]git.CommitID

	// history, when set, replaces the computed CollectHistory result
	history []git.CommitNode
	calls   []string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		parents:  map[git.CommitID][]git.CommitID{},
		subjects: map[git.CommitID]string{},
		branches: map[string]git.CommitID{},
	}
}

func (f *fakeRepo) commit(id, subject string, parents ...string) *fakeRepo {
	c := git.CommitID(id)
	f.order = append(f.order, c)
	f.subjects[c] = subject
	for _, parent := range parents {
		f.parents[c] = append(f.parents[c], git.CommitID(parent))
	}
	return f
}

func (f *fakeRepo) branch(name, id string) *fakeRepo {
	f.branches[name] = git.CommitID(id)
	return f
}

func (f *fakeRepo) known(c git.CommitID) bool {
	_, ok := f.subjects[c]
	return ok
}

func (f *fakeRepo) ancestors(tip git.CommitID) map[git.CommitID]bool {
	seen := map[git.CommitID]bool{}
	queue := []git.CommitID{tip}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if seen[c] {
			continue
		}
		seen[c] = true
		queue = append(queue, f.parents[c]...)
	}
	return seen
}

func (f *fakeRepo) Resolve(_ context.Context, revision string) (git.CommitID, error) {
	f.calls = append(f.calls, "resolve "+revision)
	if tip, ok := f.branches[revision]; ok {
		return tip, nil
	}
	if f.known(git.CommitID(revision)) {
		return git.CommitID(revision), nil
	}
	return "", trailerrors.NewRevisionNotFoundError(revision)
}

func (f *fakeRepo) ResolveBranch(_ context.Context, branch string) (git.CommitID, error) {
	tip, ok := f.branches[branch]
	if !ok {
		return "", trailerrors.NewRevisionNotFoundError(branch)
	}
	return tip, nil
}

func (f *fakeRepo) BranchesPointingAt(_ context.Context, c git.CommitID) ([]string, error) {
	var names []string
	for name, tip := range f.branches {
		if tip == c {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (f *fakeRepo) BranchesContaining(_ context.Context, c git.CommitID) ([]string, error) {
	var names []string
	for name, tip := range f.branches {
		if f.ancestors(tip)[c] {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (f *fakeRepo) CollectHistory(_ context.Context, base git.CommitID, heads []git.CommitID) ([]git.CommitNode, error) {
	if f.history != nil {
		return f.history, nil
	}

	excluded := f.ancestors(base)
	reachable := map[git.CommitID]bool{}
	for _, head := range heads {
		for c := range f.ancestors(head) {
			reachable[c] = true
		}
	}

	nodes := []git.CommitNode{}
	for _, c := range f.order {
		if !reachable[c] || excluded[c] {
			continue
		}
		parents := f.parents[c]
		node := git.CommitNode{Commit: c, ParentCount: len(parents)}
		if len(parents) > 0 {
			node.Parent = parents[0]
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func (f *fakeRepo) Subject(_ context.Context, c git.CommitID) (string, error) {
	if !f.known(c) {
		return "", trailerrors.NewRevisionNotFoundError(string(c))
	}
	return f.subjects[c], nil
}
