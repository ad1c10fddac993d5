package main

import (
	"context"
	"fmt"

	"github.com/raphi011/git-recycle/internal/config"
	"github.com/raphi011/git-recycle/internal/git"
	"github.com/raphi011/git-recycle/internal/gogit"
	"github.com/raphi011/git-recycle/internal/recycle"
)

// openGateway returns the repository backend named by backend for dir.
func openGateway(ctx context.Context, backend, dir string) (recycle.Gateway, error) {
	if dir == "" {
		dir = "."
	}
	if backend == config.BackendGoGit {
		return gogit.Open(dir)
	}
	if !git.IsInsideRepoPath(ctx, dir) {
		return nil, fmt.Errorf("not a git repository: %s", dir)
	}
	return git.NewCLI(dir), nil
}
