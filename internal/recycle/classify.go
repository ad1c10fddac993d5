package recycle

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ProgressFunc observes the ancestry scan. It is called once per
// candidate with the number of completed candidates and the total.
// Completed counts are reported in increasing order, also when the scan
// runs concurrently.
type ProgressFunc func(done, total int)

// ClassifyOptions tunes [Classify].
type ClassifyOptions struct {
	// Workers bounds how many candidates are scanned concurrently.
	// Values below 2 scan strictly in order.
	Workers int

	// Progress, if set, is notified after each candidate.
	Progress ProgressFunc
}

// UniqueHashes returns the hashes of entries with duplicates removed,
// keeping first-seen order.
func UniqueHashes(entries []HistoryEntry) []string {
	hashes := make([]string, len(entries))
	for i, e := range entries {
		hashes[i] = e.Hash
	}
	return dedupe(hashes)
}

// UniqueRefs removes structurally identical refs, keeping first-seen order.
func UniqueRefs(refs []RefEntry) []RefEntry {
	seen := make(map[RefEntry]bool, len(refs))
	var unique []RefEntry
	for _, r := range refs {
		if seen[r] {
			continue
		}
		seen[r] = true
		unique = append(unique, r)
	}
	return unique
}

// Classify returns the hashes that are not an ancestor of any ref,
// in the order they first appear in hashes.
//
// Refs are tested in order and the scan for a candidate stops at the
// first ref that reaches it. With no refs every candidate is orphaned.
// The first gateway error aborts the scan.
func Classify(ctx context.Context, gw Gateway, hashes []string, refs []RefEntry, opts ClassifyOptions) ([]string, error) {
	candidates := dedupe(hashes)
	refs = UniqueRefs(refs)
	if len(candidates) == 0 {
		return nil, nil
	}

	orphaned := make([]bool, len(candidates))
	report := progressReporter(len(candidates), opts.Progress)

	if opts.Workers < 2 {
		for i, hash := range candidates {
			reachable, err := reachableFromAny(ctx, gw, hash, refs)
			if err != nil {
				return nil, err
			}
			orphaned[i] = !reachable
			report()
		}
		return collect(candidates, orphaned), nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i, hash := range candidates {
		g.Go(func() error {
			reachable, err := reachableFromAny(gctx, gw, hash, refs)
			if err != nil {
				return err
			}
			orphaned[i] = !reachable
			report()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return collect(candidates, orphaned), nil
}

// reachableFromAny reports whether hash is an ancestor of at least one ref.
func reachableFromAny(ctx context.Context, gw Gateway, hash string, refs []RefEntry) (bool, error) {
	for _, ref := range refs {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		ok, err := gw.IsAncestor(ctx, hash, ref.Hash)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// progressReporter returns a func that advances the completed count and
// notifies fn. Calls are serialized so fn sees counts in order.
func progressReporter(total int, fn ProgressFunc) func() {
	if fn == nil {
		return func() {}
	}
	var (
		mu   sync.Mutex
		done int
	)
	return func() {
		mu.Lock()
		defer mu.Unlock()
		done++
		fn(done, total)
	}
}

func dedupe(hashes []string) []string {
	seen := make(map[string]bool, len(hashes))
	var unique []string
	for _, h := range hashes {
		if seen[h] {
			continue
		}
		seen[h] = true
		unique = append(unique, h)
	}
	return unique
}

func collect(candidates []string, orphaned []bool) []string {
	var result []string
	for i, hash := range candidates {
		if orphaned[i] {
			result = append(result, hash)
		}
	}
	return result
}
