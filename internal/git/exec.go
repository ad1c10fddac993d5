package git

import (
	"context"

	"github.com/raphi011/git-recycle/internal/cmd"
)

// gitArgs prepends --no-pager and, if dir is non-empty, -C <dir> to args.
func gitArgs(dir string, args []string) []string {
	prefix := []string{"--no-pager"}
	if dir != "" {
		prefix = append(prefix, "-C", dir)
	}
	return append(prefix, args...)
}

// runGit executes a git command with context support and verbose logging.
func runGit(ctx context.Context, dir string, args ...string) error {
	return cmd.RunContext(ctx, "", "git", gitArgs(dir, args)...)
}

// outputGit executes a git command with context support and verbose logging,
// returning stdout.
func outputGit(ctx context.Context, dir string, args ...string) ([]byte, error) {
	return cmd.OutputContext(ctx, "", "git", gitArgs(dir, args)...)
}
