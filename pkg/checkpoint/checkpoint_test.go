package checkpoint

import (
	"context"
	"slices"
	"testing"

	mgnerrors "github.com/matzehuels/mgn/pkg/errors"
	"github.com/matzehuels/mgn/pkg/generate"
)

func enumerated(t *testing.T, g, n int) []generate.LevelClasses {
	t.Helper()
	levels, err := generate.Graphs(context.Background(), g, n)
	if err != nil {
		t.Fatalf("Graphs(%d, %d): %v", g, n, err)
	}
	return levels
}

func TestSnapshotRoundTrip(t *testing.T) {
	levels := enumerated(t, 0, 3)
	snap := FromLevels(0, 3, levels)
	if snap.ID == "" {
		t.Fatal("snapshot must carry a run ID")
	}

	restored, err := snap.Restore()
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if len(restored) != len(levels) {
		t.Fatalf("restored %d levels, want %d", len(restored), len(levels))
	}
	for i, lc := range restored {
		if lc.Edges != levels[i].Edges || len(lc.Classes) != len(levels[i].Classes) {
			t.Errorf("level %d: %d classes at %d edges, want %d at %d",
				i, len(lc.Classes), lc.Edges, len(levels[i].Classes), levels[i].Edges)
		}
		for j, cls := range lc.Classes {
			if cls.String() != levels[i].Classes[j].String() {
				t.Errorf("level %d class %d: %s != %s",
					i, j, cls, levels[i].Classes[j])
			}
		}
	}
}

func TestSnapshotVerifyRejectsMismatch(t *testing.T) {
	snap := FromLevels(0, 3, enumerated(t, 0, 3))

	// Claiming a different surface type must fail verification.
	snap.Genus = 1
	err := snap.Verify()
	if err == nil {
		t.Fatal("mismatched snapshot passed verification")
	}
	if code := mgnerrors.GetCode(err); code != mgnerrors.ErrCodeCheckpointMismatch {
		t.Errorf("error code = %v, want %v", code, mgnerrors.ErrCodeCheckpointMismatch)
	}
}

func TestSnapshotVerifyRejectsCorruptClass(t *testing.T) {
	snap := FromLevels(0, 3, enumerated(t, 0, 3))
	snap.Levels[0].Classes[0][0] = []int{0, 0} // valence 2
	err := snap.Verify()
	if err == nil {
		t.Fatal("corrupt snapshot passed verification")
	}
	if code := mgnerrors.GetCode(err); code != mgnerrors.ErrCodeCheckpointMismatch {
		t.Errorf("error code = %v, want %v", code, mgnerrors.ErrCodeCheckpointMismatch)
	}
}

func testStore(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()
	snap := FromLevels(1, 1, enumerated(t, 1, 1))
	snap.Betti = []int{1, 0, 0}

	if _, err := store.Get(ctx, snap.ID); mgnerrors.GetCode(err) != mgnerrors.ErrCodeCheckpointNotFound {
		t.Errorf("missing snapshot: got %v, want CHECKPOINT_NOT_FOUND", err)
	}
	if err := store.Set(ctx, snap); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := store.Get(ctx, snap.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Genus != 1 || got.Punctures != 1 || !slices.Equal(got.Betti, snap.Betti) {
		t.Errorf("restored snapshot differs: %+v", got)
	}
	if err := got.Verify(); err != nil {
		t.Errorf("Verify after round-trip: %v", err)
	}

	ids, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if !slices.Contains(ids, snap.ID) {
		t.Errorf("List = %v, missing %s", ids, snap.ID)
	}

	if err := store.Delete(ctx, snap.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(ctx, snap.ID); mgnerrors.GetCode(err) != mgnerrors.ErrCodeCheckpointNotFound {
		t.Errorf("deleted snapshot still readable: %v", err)
	}
	if err := store.Delete(ctx, snap.ID); err != nil {
		t.Errorf("double delete must not fail: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	testStore(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	testStore(t, store)
}
