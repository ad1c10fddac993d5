// Package recycle finds commits that only the reflog still remembers and
// exposes them as marker branches.
//
// A commit is orphaned when it appears in the recent reflog window but is
// not an ancestor of any ref (local branch, tag or remote-tracking ref).
// Orphans are surfaced as branches named [BranchPrefix] followed by the
// first six characters of the commit hash, so they can be inspected or
// recovered before git garbage-collects them.
//
// # Flow
//
//   - [ParseHistory], [ParseRefs]: turn raw gateway output into records
//   - [Classify]: run the ancestry scan and return the orphaned hashes
//   - [Recycler.Create]: classify, name and create marker branches
//   - [Recycler.Remove]: force-delete every marker branch
//
// All repository access goes through [Gateway], so the git executable
// and the in-process go-git backend are interchangeable.
package recycle
