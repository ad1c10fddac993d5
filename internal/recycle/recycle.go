package recycle

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/raphi011/git-recycle/internal/log"
)

// ErrInvalidWindow is returned for a negative or unrepresentable reflog window.
var ErrInvalidWindow = errors.New("invalid reflog window")

// PrefixCollisionError reports orphaned commits whose hashes share the
// prefix used in marker branch names. No branch is created when it occurs.
type PrefixCollisionError struct {
	Branch string
	Hashes []string
}

func (e *PrefixCollisionError) Error() string {
	return fmt.Sprintf("marker branch %s is ambiguous: orphaned commits %s share its hash prefix",
		e.Branch, strings.Join(e.Hashes, ", "))
}

// Reporter receives the user-visible outcome of a run.
type Reporter interface {
	// Classified is called once with the markers about to be created.
	Classified(markers []Marker)
	// Created is called after each marker branch has been created.
	Created(m Marker)
	// Removing is called with the marker branches about to be deleted.
	// An empty slice means there is nothing to delete.
	Removing(names []string)
}

// Options configures a [Recycler].
type Options struct {
	Workers  int
	Progress ProgressFunc
	DryRun   bool // report only, never create or delete branches
}

// Recycler creates and removes marker branches through a [Gateway].
type Recycler struct {
	gw       Gateway
	reporter Reporter
	opts     Options
}

// New returns a Recycler. A nil reporter discards all reports.
func New(gw Gateway, reporter Reporter, opts Options) *Recycler {
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &Recycler{gw: gw, reporter: reporter, opts: opts}
}

// Create scans the last window reflog entries and creates a marker
// branch for every orphaned commit, in reflog order. An empty window
// reports zero markers without touching the repository.
//
// A gateway failure aborts the run; branches created before the failure
// are kept and returned.
func (r *Recycler) Create(ctx context.Context, window int) ([]Marker, error) {
	if window < 0 {
		return nil, ErrInvalidWindow
	}
	if window == 0 {
		r.reporter.Classified(nil)
		return nil, nil
	}
	l := log.FromContext(ctx)

	rawHistory, err := r.gw.ListHistory(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("list reflog: %w", err)
	}
	history := ParseHistory(rawHistory)

	refs, err := r.listRefs(ctx)
	if err != nil {
		return nil, err
	}

	hashes := UniqueHashes(history)
	l.Debug("classifying reflog", "entries", len(history), "candidates", len(hashes), "refs", len(refs))

	orphans, err := Classify(ctx, r.gw, hashes, refs, ClassifyOptions{
		Workers:  r.opts.Workers,
		Progress: r.opts.Progress,
	})
	if err != nil {
		return nil, fmt.Errorf("classify reflog: %w", err)
	}

	markers := buildMarkers(orphans, history)
	if err := checkCollisions(markers); err != nil {
		return nil, err
	}

	r.reporter.Classified(markers)
	if r.opts.DryRun {
		return markers, nil
	}

	created := make([]Marker, 0, len(markers))
	for _, m := range markers {
		l.Debug("creating marker", "branch", m.Name, "target", m.Hash)
		if err := r.gw.CreateBranch(ctx, m.Name, m.Hash); err != nil {
			return created, fmt.Errorf("create branch %s: %w", m.Name, err)
		}
		created = append(created, m)
		r.reporter.Created(m)
	}
	return created, nil
}

// Remove force-deletes every local branch whose name starts with
// [BranchPrefix], whoever created it. It returns the deleted names;
// none is not an error.
func (r *Recycler) Remove(ctx context.Context) ([]string, error) {
	refs, err := r.listRefs(ctx)
	if err != nil {
		return nil, err
	}

	var names []string
	seen := make(map[string]bool)
	for _, ref := range refs {
		if !ref.IsBranch() || !IsMarker(ref.ShortName) || seen[ref.ShortName] {
			continue
		}
		seen[ref.ShortName] = true
		names = append(names, ref.ShortName)
	}

	r.reporter.Removing(names)
	if len(names) == 0 || r.opts.DryRun {
		return names, nil
	}

	if err := r.gw.DeleteBranches(ctx, names); err != nil {
		return nil, fmt.Errorf("delete branches: %w", err)
	}
	return names, nil
}

func (r *Recycler) listRefs(ctx context.Context) ([]RefEntry, error) {
	raw, err := r.gw.ListRefs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list refs: %w", err)
	}
	return ParseRefs(raw), nil
}

// buildMarkers names each orphan and attaches the description of its
// most recent reflog entry.
func buildMarkers(orphans []string, history []HistoryEntry) []Marker {
	descriptions := make(map[string]string, len(history))
	for _, e := range history {
		if _, ok := descriptions[e.Hash]; !ok {
			descriptions[e.Hash] = e.Description
		}
	}

	markers := make([]Marker, 0, len(orphans))
	for _, hash := range orphans {
		markers = append(markers, Marker{
			Name:        MarkerName(hash),
			Hash:        hash,
			Description: descriptions[hash],
		})
	}
	return markers
}

func checkCollisions(markers []Marker) error {
	byName := make(map[string][]string, len(markers))
	for _, m := range markers {
		byName[m.Name] = append(byName[m.Name], m.Hash)
	}
	for _, m := range markers {
		if hashes := byName[m.Name]; len(hashes) > 1 {
			return &PrefixCollisionError{Branch: m.Name, Hashes: hashes}
		}
	}
	return nil
}

type nopReporter struct{}

func (nopReporter) Classified([]Marker) {}
func (nopReporter) Created(Marker)      {}
func (nopReporter) Removing([]string)   {}
