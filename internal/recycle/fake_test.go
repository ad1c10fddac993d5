package recycle

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// fakeGateway is an in-memory Gateway. Branches created through it show
// up in later ListRefs calls.
type fakeGateway struct {
	mu sync.Mutex

	history   string
	refs      []string // raw for-each-ref lines
	ancestors map[[2]string]bool

	ancestorErr error
	createErr   map[string]error
	listErr     error

	branches []Marker // created through CreateBranch, in order
	queries  [][2]string
	created  []string
	deleted  [][]string
}

func newFakeGateway(history string, refs ...string) *fakeGateway {
	return &fakeGateway{
		history:   history,
		refs:      refs,
		ancestors: make(map[[2]string]bool),
		createErr: make(map[string]error),
	}
}

// reach marks candidate as an ancestor of target.
func (f *fakeGateway) reach(candidate, target string) *fakeGateway {
	f.ancestors[[2]string{candidate, target}] = true
	return f
}

func (f *fakeGateway) ListHistory(_ context.Context, count int) (string, error) {
	lines := splitLines(f.history)
	if len(lines) > count {
		lines = lines[:count]
	}
	return strings.Join(lines, "\n"), nil
}

func (f *fakeGateway) ListRefs(context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return "", f.listErr
	}
	lines := append([]string(nil), f.refs...)
	for _, b := range f.branches {
		lines = append(lines, fmt.Sprintf("%s commit\trefs/heads/%s", b.Hash, b.Name))
	}
	return strings.Join(lines, "\n") + "\n", nil
}

func (f *fakeGateway) IsAncestor(_ context.Context, candidate, target string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, [2]string{candidate, target})
	if f.ancestorErr != nil {
		return false, f.ancestorErr
	}
	if candidate == target {
		return true, nil
	}
	return f.ancestors[[2]string{candidate, target}], nil
}

func (f *fakeGateway) CreateBranch(_ context.Context, name, target string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.createErr[name]; err != nil {
		return err
	}
	for _, b := range f.branches {
		if b.Name == name {
			return fmt.Errorf("fatal: a branch named '%s' already exists", name)
		}
	}
	f.branches = append(f.branches, Marker{Name: name, Hash: target})
	f.created = append(f.created, name)
	return nil
}

func (f *fakeGateway) DeleteBranches(_ context.Context, names []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, append([]string(nil), names...))
	remaining := f.branches[:0:0]
	for _, b := range f.branches {
		if !containsString(names, b.Name) {
			remaining = append(remaining, b)
		}
	}
	f.branches = remaining

	var kept []string
	for _, line := range f.refs {
		drop := false
		for _, n := range names {
			if strings.HasSuffix(line, "refs/heads/"+n) {
				drop = true
			}
		}
		if !drop {
			kept = append(kept, line)
		}
	}
	f.refs = kept
	return nil
}

func (f *fakeGateway) queryCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queries)
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// recordingReporter collects everything reported by a Recycler.
type recordingReporter struct {
	classified [][]Marker
	created    []Marker
	removing   [][]string
}

func (r *recordingReporter) Classified(m []Marker) { r.classified = append(r.classified, m) }
func (r *recordingReporter) Created(m Marker)      { r.created = append(r.created, m) }
func (r *recordingReporter) Removing(n []string)   { r.removing = append(r.removing, n) }
