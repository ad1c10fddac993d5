// Package gogit implements the repository operations of git-recycle in
// process with go-git, without spawning git.
//
// go-git has no reflog API, so the HEAD reflog is read directly from
// logs/HEAD in the git directory. Branches created here get no reflog of
// their own. Linked worktrees are not supported; open the main checkout.
package gogit

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/filesystem"
)

const headLog = "logs/HEAD"

// Repository satisfies recycle.Gateway on top of a go-git repository.
type Repository struct {
	repo   *git.Repository
	gitDir billy.Filesystem
}

// Open opens the repository containing dir.
func Open(dir string) (*Repository, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repository %s: %w", dir, err)
	}
	st, ok := repo.Storer.(*filesystem.Storage)
	if !ok {
		return nil, fmt.Errorf("open repository %s: unsupported storage %T", dir, repo.Storer)
	}
	return &Repository{repo: repo, gitDir: st.Filesystem()}, nil
}

// ListHistory returns the last count entries of the HEAD reflog, newest
// first, formatted like "git reflog" but with full hashes.
func (r *Repository) ListHistory(ctx context.Context, count int) (string, error) {
	f, err := r.gitDir.Open(headLog)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read reflog: %w", err)
	}
	defer f.Close()

	// Entries are stored oldest first.
	var entries []reflogEntry
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if e, ok := parseReflogLine(scanner.Text()); ok {
			entries = append(entries, e)
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read reflog: %w", err)
	}

	var b strings.Builder
	emitted := 0
	for i := len(entries) - 1; i >= 0 && emitted < count; i-- {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		e := entries[i]
		if e.hash == plumbing.ZeroHash.String() {
			continue
		}
		fmt.Fprintf(&b, "%s HEAD@{%d}: %s\n", e.hash, emitted, e.message)
		emitted++
	}
	return b.String(), nil
}

type reflogEntry struct {
	hash    string
	message string
}

// parseReflogLine parses "<old> <new> <ident> <time> <tz>\t<message>".
func parseReflogLine(line string) (reflogEntry, bool) {
	head, message, _ := strings.Cut(line, "\t")
	fields := strings.Fields(head)
	if len(fields) < 2 || !plumbing.IsHash(fields[1]) {
		return reflogEntry{}, false
	}
	return reflogEntry{hash: fields[1], message: message}, true
}

// ListRefs lists all refs below refs/ sorted by name, in the default
// "git for-each-ref" format. Symbolic refs are listed with their target's
// object.
func (r *Repository) ListRefs(ctx context.Context) (string, error) {
	iter, err := r.repo.References()
	if err != nil {
		return "", fmt.Errorf("list refs: %w", err)
	}
	defer iter.Close()

	type line struct {
		name, text string
	}
	var lines []line
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		name := ref.Name()
		if !strings.HasPrefix(name.String(), "refs/") {
			return nil
		}
		hash := ref.Hash()
		if ref.Type() == plumbing.SymbolicReference {
			resolved, err := r.repo.Reference(name, true)
			if err != nil {
				return nil // dangling symref, git skips it too
			}
			hash = resolved.Hash()
		}
		obj, err := r.repo.Storer.EncodedObject(plumbing.AnyObject, hash)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		lines = append(lines, line{
			name: name.String(),
			text: fmt.Sprintf("%s %s\t%s\n", hash, obj.Type(), name),
		})
		return nil
	})
	if err != nil {
		return "", err
	}

	sort.Slice(lines, func(i, j int) bool { return lines[i].name < lines[j].name })
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l.text)
	}
	return b.String(), nil
}

// IsAncestor reports whether candidate is reachable from target.
// Annotated tags are peeled. A target that peels to a tree or blob has
// no ancestors, so the answer is false.
func (r *Repository) IsAncestor(ctx context.Context, candidate, target string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	c, err := r.peelCommit(candidate)
	if err != nil || c == nil {
		return false, err
	}
	t, err := r.peelCommit(target)
	if err != nil || t == nil {
		return false, err
	}
	return c.IsAncestor(t)
}

// CreateBranch creates refs/heads/<name> at target.
func (r *Repository) CreateBranch(ctx context.Context, name, target string) error {
	refName := plumbing.NewBranchReferenceName(name)
	if _, err := r.repo.Reference(refName, false); err == nil {
		return fmt.Errorf("a branch named '%s' already exists", name)
	} else if !errors.Is(err, plumbing.ErrReferenceNotFound) {
		return fmt.Errorf("lookup branch %s: %w", name, err)
	}

	hash, err := r.repo.ResolveRevision(plumbing.Revision(target))
	if err != nil {
		return fmt.Errorf("resolve %s: %w", target, err)
	}
	return r.repo.Storer.SetReference(plumbing.NewHashReference(refName, *hash))
}

// DeleteBranches deletes the named branches. Nothing is deleted if any
// of them does not exist.
func (r *Repository) DeleteBranches(ctx context.Context, names []string) error {
	refNames := make([]plumbing.ReferenceName, 0, len(names))
	for _, name := range names {
		refName := plumbing.NewBranchReferenceName(name)
		if _, err := r.repo.Reference(refName, false); err != nil {
			return fmt.Errorf("branch '%s' not found: %w", name, err)
		}
		refNames = append(refNames, refName)
	}
	for _, refName := range refNames {
		if err := r.repo.Storer.RemoveReference(refName); err != nil {
			return fmt.Errorf("delete %s: %w", refName.Short(), err)
		}
	}
	return nil
}

// peelCommit resolves rev and follows annotated tags down to a commit.
// It returns a nil commit and no error when rev names a tree or blob.
func (r *Repository) peelCommit(rev string) (*object.Commit, error) {
	hash, err := r.resolve(rev)
	if err != nil {
		return nil, err
	}
	for {
		obj, err := r.repo.Object(plumbing.AnyObject, hash)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", rev, err)
		}
		switch o := obj.(type) {
		case *object.Commit:
			return o, nil
		case *object.Tag:
			hash = o.Target
		default:
			return nil, nil
		}
	}
}

// resolve turns rev into an object hash. Full hashes are taken as is,
// since ResolveRevision only accepts hashes of commits and tags.
func (r *Repository) resolve(rev string) (plumbing.Hash, error) {
	if plumbing.IsHash(rev) {
		return plumbing.NewHash(rev), nil
	}
	hash, err := r.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("resolve %s: %w", rev, err)
	}
	return *hash, nil
}
