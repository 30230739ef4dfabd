package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	id, err := store.SaveRun(Run{GameID: "pong", Source: SourceSim, ArenaW: 800, ArenaH: 600})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.Run(id); err != nil {
		t.Errorf("run lost after reopen: %v", err)
	}
}

func TestSaveAndGetRun(t *testing.T) {
	store := openTestStore(t)

	in := Run{
		GameID: "pong",
		Source: SourceTUI,
		ArenaW: 800,
		ArenaH: 600,
		Ticks:  300,
		Left:   2,
		Bottom: 1,
		Digest: 0xfedcba9876543210,
	}
	id, err := store.SaveRun(in)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if len(id) != 36 {
		t.Errorf("expected a UUID, got %q", id)
	}

	got, err := store.Run(id)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if got.ID != id || got.GameID != "pong" || got.Source != SourceTUI {
		t.Errorf("unexpected identity fields: %+v", got)
	}
	if got.ArenaW != 800 || got.ArenaH != 600 || got.Ticks != 300 {
		t.Errorf("unexpected arena or ticks: %+v", got)
	}
	if got.Contacts() != 3 || got.Left != 2 || got.Bottom != 1 {
		t.Errorf("unexpected contacts: %+v", got)
	}
	if got.Digest != in.Digest {
		t.Errorf("digest round trip: expected %x, got %x", in.Digest, got.Digest)
	}
	if got.Created.IsZero() {
		t.Error("expected created time to be set")
	}
}

func TestSaveRunKeepsGivenID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{ID: "fixed-id", GameID: "pong", Source: SourceSSH})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id != "fixed-id" {
		t.Errorf("expected fixed-id, got %q", id)
	}

	if _, err := store.SaveRun(Run{ID: "fixed-id", GameID: "pong"}); err == nil {
		t.Error("expected duplicate ID to fail")
	}
}

func TestRunNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Run("missing")
	if !errors.Is(err, ErrRunNotFound) {
		t.Errorf("expected ErrRunNotFound, got %v", err)
	}
}

func TestRecentRunsOrderAndFilter(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i := range 5 {
		_, err := store.SaveRun(Run{
			GameID:  "pong",
			Source:  SourceSim,
			Ticks:   uint64(i * 100),
			Created: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	if _, err := store.SaveRun(Run{GameID: "other", Source: SourceSim, Created: base.Add(time.Hour)}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.RecentRuns("pong", 3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}
	for i, want := range []uint64{400, 300, 200} {
		if runs[i].Ticks != want {
			t.Errorf("runs[%d]: expected %d ticks, got %d", i, want, runs[i].Ticks)
		}
	}

	all, err := store.RecentRuns("", 0)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(all) != 6 {
		t.Errorf("expected 6 runs across games, got %d", len(all))
	}
	if all[0].GameID != "other" {
		t.Errorf("expected newest run first, got %q", all[0].GameID)
	}
}

func TestCountAndDeleteRuns(t *testing.T) {
	store := openTestStore(t)

	for range 3 {
		if _, err := store.SaveRun(Run{GameID: "pong", Source: SourceSim}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	n, err := store.CountRuns("pong")
	if err != nil {
		t.Fatalf("CountRuns() failed: %v", err)
	}
	if n != 3 {
		t.Errorf("expected 3 runs, got %d", n)
	}

	if err := store.DeleteRuns("pong"); err != nil {
		t.Fatalf("DeleteRuns() failed: %v", err)
	}
	n, _ = store.CountRuns("pong")
	if n != 0 {
		t.Errorf("expected 0 runs after delete, got %d", n)
	}
}

func TestSummarize(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Summarize("pong")
	if err != nil {
		t.Fatalf("Summarize() on empty failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("expected zero summary, got %+v", empty)
	}

	last := time.Date(2026, 5, 2, 8, 30, 0, 0, time.UTC)
	runs := []Run{
		{GameID: "pong", Ticks: 100, Left: 1, Created: last.Add(-time.Hour)},
		{GameID: "pong", Ticks: 250, Left: 2, Top: 1, Created: last},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	sum, err := store.Summarize("pong")
	if err != nil {
		t.Fatalf("Summarize() failed: %v", err)
	}
	if sum.Runs != 2 || sum.TotalTicks != 350 || sum.MaxTicks != 250 || sum.Contacts != 4 {
		t.Errorf("unexpected summary: %+v", sum)
	}
	if !sum.LastPlayed.Equal(last) {
		t.Errorf("expected last played %v, got %v", last, sum.LastPlayed)
	}
}
