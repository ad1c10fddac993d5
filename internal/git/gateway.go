package git

import (
	"context"
	"fmt"
	"strconv"

	"github.com/raphi011/git-recycle/internal/cmd"
)

// CLI runs repository operations through the git executable.
// It satisfies recycle.Gateway.
type CLI struct {
	dir string
}

// NewCLI returns a CLI operating on the repository containing dir.
// An empty dir means the current working directory.
func NewCLI(dir string) *CLI {
	return &CLI{dir: dir}
}

// ListHistory returns the last count HEAD reflog entries, newest first.
func (c *CLI) ListHistory(ctx context.Context, count int) (string, error) {
	out, err := outputGit(ctx, c.dir, "reflog", "-n", strconv.Itoa(count), "--no-color")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// ListRefs returns every ref in for-each-ref's default format.
func (c *CLI) ListRefs(ctx context.Context) (string, error) {
	out, err := outputGit(ctx, c.dir, "for-each-ref")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// IsAncestor reports whether candidate is reachable from target.
// Exit status 1 from merge-base means "no". A target that exists but does
// not peel to a commit (a tag of a tree or blob) has no ancestors, so it
// is "no" as well. Anything else is a failure.
func (c *CLI) IsAncestor(ctx context.Context, candidate, target string) (bool, error) {
	err := runGit(ctx, c.dir, "merge-base", "--is-ancestor", candidate, target)
	if err == nil {
		return true, nil
	}
	if cmd.ExitCode(err) == 1 {
		return false, nil
	}
	if ctx.Err() == nil && c.isNonCommit(ctx, target) {
		return false, nil
	}
	return false, fmt.Errorf("merge-base %s %s: %w", candidate, target, err)
}

// isNonCommit reports whether rev names an existing object that does not
// peel to a commit.
func (c *CLI) isNonCommit(ctx context.Context, rev string) bool {
	if runGit(ctx, c.dir, "rev-parse", "--verify", "-q", rev+"^{commit}") == nil {
		return false
	}
	return runGit(ctx, c.dir, "cat-file", "-e", rev) == nil
}

// CreateBranch creates branch name pointing at target.
func (c *CLI) CreateBranch(ctx context.Context, name, target string) error {
	return runGit(ctx, c.dir, "branch", name, target)
}

// DeleteBranches force-deletes the named branches with a single git call.
func (c *CLI) DeleteBranches(ctx context.Context, names []string) error {
	if len(names) == 0 {
		return nil
	}
	return runGit(ctx, c.dir, append([]string{"branch", "-D"}, names...)...)
}
