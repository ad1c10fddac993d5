package recycle

import (
	"context"
	"strings"
)

// BranchPrefix is the short-name prefix shared by all marker branches.
const BranchPrefix = "_recycles_/"

// markerHashLen is the number of hash characters in a marker branch name.
const markerHashLen = 6

// remotePrefix marks remote-tracking refs, relative to refs/.
const remotePrefix = "remotes/"

// HistoryEntry is one line of the reflog window.
type HistoryEntry struct {
	Hash        string
	Description string
}

// RefEntry is one ref as listed by the gateway.
type RefEntry struct {
	Hash       string
	ObjectType string
	FullPath   string // path below refs/, e.g. "heads/main"
	IsRemote   bool
	ShortName  string // FullPath without its first segment
}

// IsBranch reports whether the ref is a local branch (refs/heads/...).
func (r RefEntry) IsBranch() bool {
	return strings.HasPrefix(r.FullPath, "heads/")
}

// Marker is a marker branch for an orphaned commit.
type Marker struct {
	Name        string
	Hash        string
	Description string // reflog description of the first entry for Hash
}

// MarkerName returns the marker branch name for hash.
func MarkerName(hash string) string {
	if len(hash) > markerHashLen {
		hash = hash[:markerHashLen]
	}
	return BranchPrefix + hash
}

// IsMarker reports whether a branch short name belongs to a marker branch.
func IsMarker(shortName string) bool {
	return strings.HasPrefix(shortName, BranchPrefix)
}

// Gateway is the version-control backend.
// Listing operations return the raw text format documented on each method.
type Gateway interface {
	// ListHistory returns up to count reflog lines, most recent first,
	// each formatted as "<hash> <description>".
	ListHistory(ctx context.Context, count int) (string, error)

	// ListRefs returns one "<hash> <type>\trefs/<path>" line per ref.
	ListRefs(ctx context.Context) (string, error)

	// IsAncestor reports whether candidate is reachable from target
	// (equality included).
	IsAncestor(ctx context.Context, candidate, target string) (bool, error)

	// CreateBranch creates branch name at target. It fails if the branch exists.
	CreateBranch(ctx context.Context, name, target string) error

	// DeleteBranches force-deletes all named branches in one operation.
	DeleteBranches(ctx context.Context, names []string) error
}
