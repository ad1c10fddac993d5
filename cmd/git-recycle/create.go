package main

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/raphi011/git-recycle/internal/log"
	"github.com/raphi011/git-recycle/internal/output"
	"github.com/raphi011/git-recycle/internal/recycle"
	"github.com/raphi011/git-recycle/internal/ui/progress"
	"github.com/raphi011/git-recycle/internal/ui/styles"
)

// runCreate runs the create flow over the last count reflog entries.
func runCreate(ctx context.Context, opts *options, count int) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	gw, err := openGateway(ctx, opts.cfg.Backend, opts.repoDir)
	if err != nil {
		return err
	}

	reporter := &terminalReporter{out: out, dryRun: opts.dryRun}
	recOpts := recycle.Options{Workers: opts.cfg.Workers, DryRun: opts.dryRun}
	if opts.showSpinner() {
		sp := progress.NewSpinner(l.Writer(), "Analysis reflog")
		sp.Start()
		defer sp.Stop()
		reporter.spinner = sp
		recOpts.Progress = sp.Progress("Analysis reflog")
	}

	l.Debug("scanning reflog", "count", count, "backend", opts.cfg.Backend, "workers", opts.cfg.Workers)

	markers, err := recycle.New(gw, reporter, recOpts).Create(ctx, count)
	if err != nil {
		return err
	}
	if opts.dryRun {
		return nil
	}

	if opts.cfg.Copy && len(markers) > 0 {
		names := make([]string, len(markers))
		for i, m := range markers {
			names[i] = m.Name
		}
		if err := clipboard.WriteAll(strings.Join(names, "\n")); err != nil {
			l.Printf("Warning: failed to copy to clipboard: %v\n", err)
		}
	}

	out.Println()
	out.Styledln(styles.MutedStyle, "Use `git-recycle hide` to clean up.")
	return nil
}
