// Package cmd provides helpers for executing external commands with proper error handling.
//
// Commands are bound to a [context.Context]: cancelling the context kills the
// process and the helper returns the context's error. Stderr is captured and
// becomes the error message when a command fails, so a failing
// "git branch" surfaces git's own explanation to the user.
//
// # Usage
//
//	if err := cmd.RunContext(ctx, repoDir, "git", "branch", name, hash); err != nil {
//	    return fmt.Errorf("create branch %s: %w", name, err)
//	}
//
//	out, err := cmd.OutputContext(ctx, repoDir, "git", "for-each-ref")
//
// The exit status of a failed command stays reachable through [ExitCode]
// (and [errors.As] with [*os/exec.ExitError]), which is how callers tell
// "git answered no" apart from "git broke".
//
// Every invocation is logged through the context logger when verbose output
// is enabled.
package cmd
