package actions

import (
	"context"
	"fmt"
	"io"
	"strings"

	"trail.dev/trail/internal/runtime"
)

// DescribeOptions specifies options for the describe command
type DescribeOptions struct {
	Revision string
	Out      io.Writer
}

// DescribeAction prints identifying information about a commit
func DescribeAction(ctx context.Context, rt *runtime.Context, opts DescribeOptions) error {
	c, err := rt.Repo.Resolve(ctx, opts.Revision)
	if err != nil {
		return err
	}

	short, err := rt.Repo.ShortHash(ctx, c)
	if err != nil {
		return err
	}
	name, err := rt.Repo.NameRev(ctx, c)
	if err != nil {
		return err
	}
	patchID, err := rt.Repo.PatchID(ctx, c)
	if err != nil {
		return err
	}
	subject, err := rt.Repo.Subject(ctx, c)
	if err != nil {
		return err
	}
	branches, err := rt.Repo.BranchesPointingAt(ctx, c)
	if err != nil {
		return err
	}

	fmt.Fprintf(opts.Out, "commit   %s\n", c)
	fmt.Fprintf(opts.Out, "short    %s\n", short)
	fmt.Fprintf(opts.Out, "name     %s\n", name)
	if patchID != "" {
		fmt.Fprintf(opts.Out, "patch-id %s\n", patchID)
	}
	fmt.Fprintf(opts.Out, "subject  %s\n", subject)
	if len(branches) > 0 {
		fmt.Fprintf(opts.Out, "branches %s\n", strings.Join(branches, ", "))
	}
	return nil
}
