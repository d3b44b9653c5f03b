package evolve

import (
	"context"
	"fmt"
	"sort"

	trailerrors "trail.dev/trail/internal/errors"
	"trail.dev/trail/internal/git"
)

// Repo is the subset of repository queries the planner needs.
// *git.Repository implements it; tests use an in-memory fake.
type Repo interface {
	Resolve(ctx context.Context, revision string) (git.CommitID, error)
	ResolveBranch(ctx context.Context, branch string) (git.CommitID, error)
	BranchesPointingAt(ctx context.Context, c git.CommitID) ([]string, error)
	BranchesContaining(ctx context.Context, c git.CommitID) ([]string, error)
	CollectHistory(ctx context.Context, base git.CommitID, heads []git.CommitID) ([]git.CommitNode, error)
	Subject(ctx context.Context, c git.CommitID) (string, error)
}

// Logger receives debug output while a plan is built
type Logger interface {
	Debug(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}

// Planner builds rebase todo lists for branch stacks
type Planner struct {
	repo Repo
	log  Logger
}

// NewPlanner creates a Planner. A nil logger discards debug output.
func NewPlanner(repo Repo, log Logger) *Planner {
	if log == nil {
		log = nopLogger{}
	}
	return &Planner{repo: repo, log: log}
}

// BuildFromRevisions resolves base and onto before building the plan
func (p *Planner) BuildFromRevisions(ctx context.Context, baseRev, ontoRev string) (*Plan, error) {
	onto, err := p.repo.Resolve(ctx, ontoRev)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve onto: %w", err)
	}
	base, err := p.repo.Resolve(ctx, baseRev)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve base: %w", err)
	}
	return p.Build(ctx, base, onto)
}

// BranchSet returns the branches that contain base but not onto, sorted by name.
// Branches already reachable from onto have nothing left to replay.
func (p *Planner) BranchSet(ctx context.Context, base, onto git.CommitID) ([]string, error) {
	containingBase, err := p.repo.BranchesContaining(ctx, base)
	if err != nil {
		return nil, err
	}
	containingOnto, err := p.repo.BranchesContaining(ctx, onto)
	if err != nil {
		return nil, err
	}

	excluded := make(map[string]bool, len(containingOnto))
	for _, branch := range containingOnto {
		excluded[branch] = true
	}

	seen := make(map[string]bool, len(containingBase))
	branches := make([]string, 0, len(containingBase))
	for _, branch := range containingBase {
		if excluded[branch] || seen[branch] {
			continue
		}
		seen[branch] = true
		branches = append(branches, branch)
	}
	sort.Strings(branches)
	return branches, nil
}

// Build computes the todo list that replays every branch containing base (and
// not onto) on top of onto. Nothing is returned unless the whole plan is valid.
func (p *Planner) Build(ctx context.Context, base, onto git.CommitID) (*Plan, error) {
	branches, err := p.BranchSet(ctx, base, onto)
	if err != nil {
		return nil, err
	}
	p.log.Debug("evolve: %d branch(es) to move off %s: %v", len(branches), base.Short(), branches)

	inSet := make(map[string]bool, len(branches))
	heads := make([]git.CommitID, 0, len(branches))
	seenHeads := make(map[git.CommitID]bool, len(branches))
	for _, branch := range branches {
		inSet[branch] = true
		head, err := p.repo.ResolveBranch(ctx, branch)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve branch %s: %w", branch, err)
		}
		if !seenHeads[head] {
			seenHeads[head] = true
			heads = append(heads, head)
		}
	}

	nodes, err := p.repo.CollectHistory(ctx, base, heads)
	if err != nil {
		return nil, err
	}
	p.log.Debug("evolve: %d commit(s) above %s", len(nodes), base.Short())

	plan := &Plan{Base: base, Onto: onto, Branches: branches}
	plan.add(Label(base))

	labeled := map[git.CommitID]bool{base: true}
	lastPicked := base
	for _, node := range nodes {
		if node.ParentCount > 1 {
			return nil, trailerrors.NewMergeCommitError(string(node.Commit), node.ParentCount)
		}
		if labeled[node.Commit] {
			return nil, trailerrors.NewInconsistentHistoryError(string(node.Commit), "commit listed more than once")
		}

		if node.Parent != lastPicked {
			if !labeled[node.Parent] {
				return nil, trailerrors.NewUnlabeledParentError(string(node.Commit), string(node.Parent))
			}
			p.log.Debug("evolve: %s forks from %s, resetting", node.Commit.Short(), node.Parent.Short())
			plan.add(Reset(node.Parent))
		}

		summary, err := p.repo.Subject(ctx, node.Commit)
		if err != nil {
			return nil, fmt.Errorf("failed to read subject of %s: %w", node.Commit, err)
		}
		plan.add(Pick(node.Commit, summary), Label(node.Commit))
		labeled[node.Commit] = true

		pointing, err := p.repo.BranchesPointingAt(ctx, node.Commit)
		if err != nil {
			return nil, err
		}
		sort.Strings(pointing)
		for _, branch := range pointing {
			if inSet[branch] {
				plan.add(BranchUpdate(branch))
			}
		}

		lastPicked = node.Commit
	}

	plan.add(Reset(base))
	return plan, nil
}
