// Package git runs the repository operations git-recycle needs through the
// git executable.
//
// Shelling out keeps behavior identical to what the user sees on the
// command line: the same reflog, the same refs, the same ancestry rules.
//
// # Operations
//
//   - [CLI.ListHistory]: "git reflog -n N"
//   - [CLI.ListRefs]: "git for-each-ref"
//   - [CLI.IsAncestor]: "git merge-base --is-ancestor"
//   - [CLI.CreateBranch]: "git branch NAME HASH"
//   - [CLI.DeleteBranches]: "git branch -D NAME..."
//
// [CheckGit] verifies the executable is available before any of these run.
package git
