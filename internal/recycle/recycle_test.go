package recycle

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

const (
	hashA = "a1b2c3d4e5f60718293a4b5c6d7e8f9012345678"
	hashB = "b1b2c3d4e5f60718293a4b5c6d7e8f9012345678"
	hashM = "ffeeddccbbaa99887766554433221100ffeeddcc"
)

func TestRecycler_Create(t *testing.T) {
	t.Parallel()

	gw := newFakeGateway(
		hashA+" HEAD@{0}: commit: wip\n"+
			hashM+" HEAD@{1}: reset: moving to HEAD~1\n"+
			hashA+" HEAD@{2}: commit: wip\n",
		hashM+" commit\trefs/heads/main",
	)
	rep := &recordingReporter{}

	got, err := New(gw, rep, Options{}).Create(context.Background(), 10)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	want := []Marker{{Name: "_recycles_/a1b2c3", Hash: hashA, Description: "HEAD@{0}: commit: wip"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Create() = %+v, want %+v", got, want)
	}
	if !reflect.DeepEqual(gw.created, []string{"_recycles_/a1b2c3"}) {
		t.Errorf("created branches = %v", gw.created)
	}
	if len(rep.classified) != 1 || !reflect.DeepEqual(rep.classified[0], want) {
		t.Errorf("Classified reports = %+v, want one report of %+v", rep.classified, want)
	}
	if !reflect.DeepEqual(rep.created, want) {
		t.Errorf("Created reports = %+v, want %+v", rep.created, want)
	}
}

func TestRecycler_Create_EmptyWindow(t *testing.T) {
	t.Parallel()
	gw := newFakeGateway("", hashM+" commit\trefs/heads/main")
	rep := &recordingReporter{}

	got, err := New(gw, rep, Options{}).Create(context.Background(), 10)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Create() = %+v, want none", got)
	}
	if len(gw.created) != 0 {
		t.Errorf("created branches = %v, want none", gw.created)
	}
	if len(rep.classified) != 1 || len(rep.classified[0]) != 0 {
		t.Errorf("Classified reports = %+v, want one zero-count report", rep.classified)
	}
}

func TestRecycler_Create_InvalidWindow(t *testing.T) {
	t.Parallel()
	for _, window := range []int{-1, -3} {
		_, err := New(newFakeGateway(""), nil, Options{}).Create(context.Background(), window)
		if !errors.Is(err, ErrInvalidWindow) {
			t.Errorf("Create(%d) error = %v, want ErrInvalidWindow", window, err)
		}
	}
}

func TestRecycler_Create_ZeroWindow(t *testing.T) {
	t.Parallel()
	gw := newFakeGateway(hashA+" HEAD@{0}: commit: one\n", hashB+" commit\trefs/heads/main")
	rep := &recordingReporter{}

	got, err := New(gw, rep, Options{}).Create(context.Background(), 0)
	if err != nil {
		t.Fatalf("Create(0) error = %v, want nil", err)
	}
	if len(got) != 0 {
		t.Errorf("Create(0) = %+v, want no markers", got)
	}
	if len(rep.classified) != 1 || len(rep.classified[0]) != 0 {
		t.Errorf("Classified calls = %v, want one empty report", rep.classified)
	}
	if len(gw.queries) != 0 || len(gw.created) != 0 {
		t.Errorf("gateway used: queries=%v created=%v", gw.queries, gw.created)
	}
}

func TestRecycler_Create_WindowBounds(t *testing.T) {
	t.Parallel()
	gw := newFakeGateway(hashA + " HEAD@{0}: commit: one\n" + hashB + " HEAD@{1}: commit: two\n")

	got, err := New(gw, nil, Options{}).Create(context.Background(), 1)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if len(got) != 1 || got[0].Hash != hashA {
		t.Errorf("Create(1) = %+v, want only %s", got, hashA)
	}
}

func TestRecycler_Create_PrefixCollision(t *testing.T) {
	t.Parallel()
	h1 := "abcdef1111111111111111111111111111111111"
	h2 := "abcdef2222222222222222222222222222222222"
	gw := newFakeGateway(h1 + " HEAD@{0}: commit: one\n" + h2 + " HEAD@{1}: commit: two\n")
	rep := &recordingReporter{}

	_, err := New(gw, rep, Options{}).Create(context.Background(), 10)

	var collision *PrefixCollisionError
	if !errors.As(err, &collision) {
		t.Fatalf("Create() error = %v, want PrefixCollisionError", err)
	}
	if collision.Branch != "_recycles_/abcdef" {
		t.Errorf("collision branch = %q", collision.Branch)
	}
	if !reflect.DeepEqual(collision.Hashes, []string{h1, h2}) {
		t.Errorf("collision hashes = %v", collision.Hashes)
	}
	if len(gw.created) != 0 {
		t.Errorf("created branches = %v, want none", gw.created)
	}
	if len(rep.classified) != 0 {
		t.Errorf("Classified reported %+v before failing", rep.classified)
	}
}

func TestRecycler_Create_FailureKeepsEarlierBranches(t *testing.T) {
	t.Parallel()
	gw := newFakeGateway(hashA + " HEAD@{0}: commit: one\n" + hashB + " HEAD@{1}: commit: two\n")
	boom := errors.New("fatal: cannot lock ref")
	gw.createErr[MarkerName(hashB)] = boom

	got, err := New(gw, nil, Options{}).Create(context.Background(), 10)
	if !errors.Is(err, boom) {
		t.Fatalf("Create() error = %v, want %v", err, boom)
	}
	if len(got) != 1 || got[0].Hash != hashA {
		t.Errorf("Create() = %+v, want the branch created before the failure", got)
	}
	if !reflect.DeepEqual(gw.created, []string{MarkerName(hashA)}) {
		t.Errorf("created branches = %v", gw.created)
	}
}

func TestRecycler_Create_ListError(t *testing.T) {
	t.Parallel()
	gw := newFakeGateway(hashA + " HEAD@{0}: commit: one\n")
	gw.listErr = errors.New("fatal: not a git repository")

	if _, err := New(gw, nil, Options{}).Create(context.Background(), 10); !errors.Is(err, gw.listErr) {
		t.Errorf("Create() error = %v, want %v", err, gw.listErr)
	}
	if n := gw.queryCount(); n != 0 {
		t.Errorf("issued %d ancestry queries after failed ref listing", n)
	}
}

func TestRecycler_Create_DryRun(t *testing.T) {
	t.Parallel()
	gw := newFakeGateway(hashA + " HEAD@{0}: commit: one\n")
	rep := &recordingReporter{}

	got, err := New(gw, rep, Options{DryRun: true}).Create(context.Background(), 10)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if len(got) != 1 {
		t.Errorf("Create() = %+v, want one marker", got)
	}
	if len(gw.created) != 0 || len(rep.created) != 0 {
		t.Errorf("dry run created branches: %v", gw.created)
	}
}

func TestRecycler_Create_SecondRunFindsNothing(t *testing.T) {
	t.Parallel()
	gw := newFakeGateway(hashA + " HEAD@{0}: commit: one\n")
	r := New(gw, nil, Options{})

	if _, err := r.Create(context.Background(), 10); err != nil {
		t.Fatalf("first Create() error = %v", err)
	}
	got, err := r.Create(context.Background(), 10)
	if err != nil {
		t.Fatalf("second Create() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("second Create() = %+v, want none (marker branch reaches the commit)", got)
	}
}

func TestRecycler_Remove_RoundTrip(t *testing.T) {
	t.Parallel()
	gw := newFakeGateway(
		hashA+" HEAD@{0}: commit: one\n"+hashB+" HEAD@{1}: commit: two\n",
		hashM+" commit\trefs/heads/main",
		hashM+" commit\trefs/heads/_recycles_/handmade",
		hashM+" commit\trefs/remotes/origin/_recycles_/remote",
		hashM+" commit\trefs/tags/_recycles_/tagged",
	)
	rep := &recordingReporter{}
	r := New(gw, rep, Options{})

	created, err := r.Create(context.Background(), 10)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("Create() = %+v, want 2 markers", created)
	}

	removed, err := r.Remove(context.Background())
	if err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	want := []string{"_recycles_/handmade", MarkerName(hashA), MarkerName(hashB)}
	if !reflect.DeepEqual(removed, want) {
		t.Errorf("Remove() = %v, want %v", removed, want)
	}
	if len(gw.deleted) != 1 || !reflect.DeepEqual(gw.deleted[0], want) {
		t.Errorf("DeleteBranches calls = %v, want one batch of %v", gw.deleted, want)
	}
}

func TestRecycler_Remove_Idempotent(t *testing.T) {
	t.Parallel()
	gw := newFakeGateway("",
		hashM+" commit\trefs/heads/main",
		hashA+" commit\trefs/heads/_recycles_/a1b2c3",
	)
	rep := &recordingReporter{}
	r := New(gw, rep, Options{})

	if _, err := r.Remove(context.Background()); err != nil {
		t.Fatalf("first Remove() error = %v", err)
	}
	second, err := r.Remove(context.Background())
	if err != nil {
		t.Fatalf("second Remove() error = %v", err)
	}
	if len(second) != 0 {
		t.Errorf("second Remove() = %v, want nothing", second)
	}
	if len(gw.deleted) != 1 {
		t.Errorf("DeleteBranches called %d times, want 1", len(gw.deleted))
	}
	if len(rep.removing) != 2 || len(rep.removing[1]) != 0 {
		t.Errorf("Removing reports = %v, want second report empty", rep.removing)
	}
}

func TestRecycler_Remove_DryRun(t *testing.T) {
	t.Parallel()
	gw := newFakeGateway("", hashA+" commit\trefs/heads/_recycles_/a1b2c3")

	got, err := New(gw, nil, Options{DryRun: true}).Remove(context.Background())
	if err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if !reflect.DeepEqual(got, []string{"_recycles_/a1b2c3"}) {
		t.Errorf("Remove() = %v", got)
	}
	if len(gw.deleted) != 0 {
		t.Errorf("dry run deleted %v", gw.deleted)
	}
}
