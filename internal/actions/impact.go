package actions

import (
	"context"
	"fmt"
	"io"

	"trail.dev/trail/internal/impact"
	"trail.dev/trail/internal/output"
	"trail.dev/trail/internal/runtime"
)

// ImpactOptions specifies options for the impact command
type ImpactOptions struct {
	Start string
	End   string
	Paths []string
	// Workers bounds the parallel checks; zero falls back to the configured value
	Workers int
	Select  bool
	Out     io.Writer
}

// ImpactAction prints the commits in Start..End that touched any of Paths,
// or lets the user pick one and prints its full id.
func ImpactAction(ctx context.Context, rt *runtime.Context, opts ImpactOptions) error {
	start, err := rt.Repo.Resolve(ctx, opts.Start)
	if err != nil {
		return err
	}
	end, err := rt.Repo.Resolve(ctx, opts.End)
	if err != nil {
		return err
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = rt.Settings.ImpactWorkers
	}
	filter := impact.NewFilter(rt.Repo, workers, rt.Splog)
	rt.Splog.Debug("impact: checking %s..%s with %d worker(s)", start.Short(), end.Short(), filter.Workers())

	commits, err := filter.Run(ctx, start, end, opts.Paths)
	if err != nil {
		return err
	}

	lines := make([]string, 0, len(commits))
	for _, c := range commits {
		subject, err := rt.Repo.Subject(ctx, c)
		if err != nil {
			return err
		}
		lines = append(lines, fmt.Sprintf("%s %s", c.Short(), subject))
	}

	if !opts.Select {
		for _, line := range lines {
			fmt.Fprintln(opts.Out, line)
		}
		return nil
	}

	if len(commits) == 0 {
		rt.Splog.Info("No commits in %s..%s touched %v.", opts.Start, opts.End, opts.Paths)
		return nil
	}
	idx, err := output.SelectOne("Select a commit", lines)
	if err != nil {
		return err
	}
	fmt.Fprintln(opts.Out, commits[idx])
	return nil
}
