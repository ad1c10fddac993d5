package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/raphi011/git-recycle/internal/config"
	"github.com/raphi011/git-recycle/internal/git"
	"github.com/raphi011/git-recycle/internal/log"
	"github.com/raphi011/git-recycle/internal/output"
	"github.com/raphi011/git-recycle/internal/ui/styles"
)

// options holds the flags shared by all commands, merged with config.
type options struct {
	cfg     config.Config
	verbose bool
	quiet   bool
	repoDir string
	dryRun  bool
}

// Execute builds the root command and runs it.
func Execute() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Results go to stdout, colors downsampled to what the terminal supports
	ctx = output.WithPrinter(ctx, output.NewTerminal(os.Stdout))

	if err := newRootCmd(cfg).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, styles.DangerStyle.Render(err.Error()))
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'git-recycle -h' for help")
		cancel()
		os.Exit(1)
	}
}

func newRootCmd(cfg config.Config) *cobra.Command {
	opts := &options{cfg: cfg}

	cmd := &cobra.Command{
		Use:   "git-recycle [N]",
		Short: "Recover commits that only the reflog remembers",
		Long: `git-recycle scans the last N reflog entries (default 10) for commits that
no branch, tag or remote-tracking ref reaches anymore, and creates a branch
named _recycles_/<hash> for each, so lost work can be inspected or recovered
before git garbage-collects it.

Run 'git-recycle hide' to delete all _recycles_/ branches again.`,
		Example: `  git-recycle               # Scan the last 10 reflog entries
  git-recycle 50            # Scan the last 50 reflog entries
  git-recycle -n 50         # Preview without creating branches
  git-recycle --copy        # Copy created branch names to the clipboard
  git-recycle hide          # Delete all _recycles_/ branches`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.applyFlags(cmd); err != nil {
				return err
			}

			styles.Init(opts.cfg.Theme)
			cmd.SetContext(log.WithLogger(cmd.Context(), log.New(os.Stderr, opts.verbose, opts.quiet)))

			// Skip git check for completion and help commands
			if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
				return nil
			}
			if opts.cfg.Backend == config.BackendGit {
				return git.CheckGit()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			count, err := parseCount(ctx, args, opts.cfg.Count)
			if err != nil {
				return err
			}
			return runCreate(ctx, opts, count)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Show external commands being executed")
	cmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress all log output")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
	cmd.PersistentFlags().StringVarP(&opts.repoDir, "repo", "C", "", "Run as if started in this directory")
	cmd.PersistentFlags().BoolVarP(&opts.dryRun, "dry-run", "n", false, "Preview without creating or deleting branches")
	cmd.PersistentFlags().String("backend", cfg.Backend, "Repository backend: git or go-git")

	cmd.Flags().Int("workers", cfg.Workers, "Concurrent ancestry checks (1 keeps reflog order)")
	cmd.Flags().Bool("copy", cfg.Copy, "Copy created branch names to the clipboard")

	cmd.Version = versionString()
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.AddCommand(newHideCmd(opts))
	cmd.AddCommand(newCompletionCmd())

	return cmd
}

// applyFlags merges explicitly set flags over the loaded config.
func (o *options) applyFlags(cmd *cobra.Command) error {
	flags := cmd.Flags()
	if flags.Changed("backend") {
		backend, _ := flags.GetString("backend")
		if err := config.ValidateBackend(backend); err != nil {
			return err
		}
		o.cfg.Backend = backend
	}
	if flags.Changed("workers") {
		workers, _ := flags.GetInt("workers")
		if workers < 1 {
			return fmt.Errorf("--workers must be at least 1, got %d", workers)
		}
		o.cfg.Workers = workers
	}
	if flags.Changed("copy") {
		o.cfg.Copy, _ = flags.GetBool("copy")
	}
	if o.cfg.Backend == "" {
		o.cfg.Backend = config.BackendGit
	}
	return nil
}

// showSpinner reports whether progress should be animated on stderr.
func (o *options) showSpinner() bool {
	fd := os.Stderr.Fd()
	return !o.quiet && (isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd))
}
