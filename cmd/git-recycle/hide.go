package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/git-recycle/internal/output"
	"github.com/raphi011/git-recycle/internal/recycle"
)

func newHideCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "hide",
		Short:   "Delete all _recycles_/ branches",
		Aliases: []string{"remove"},
		Long: `Force-delete every local branch whose name starts with _recycles_/.

This includes marker branches you created by hand. Commits only reachable
from them go back to being reflog-only and may be garbage-collected.`,
		Example: `  git-recycle hide       # Delete all marker branches
  git-recycle hide -n    # Preview which branches would be deleted`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			gw, err := openGateway(ctx, opts.cfg.Backend, opts.repoDir)
			if err != nil {
				return err
			}

			reporter := &terminalReporter{out: output.FromContext(ctx), dryRun: opts.dryRun}
			_, err = recycle.New(gw, reporter, recycle.Options{DryRun: opts.dryRun}).Remove(ctx)
			return err
		},
	}
}
