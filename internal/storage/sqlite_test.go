package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-tiles/internal/highscore"
	"github.com/vovakirdan/tui-tiles/internal/tiles"
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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreKV(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.Get("missing"); !errors.Is(err, highscore.ErrNotFound) {
		t.Errorf("Get(missing) error = %v, expected ErrNotFound", err)
	}

	if err := store.Set("k", []byte("one")); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := store.Set("k", []byte("two")); err != nil {
		t.Fatalf("Set() upsert failed: %v", err)
	}

	got, err := store.Get("k")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if string(got) != "two" {
		t.Errorf("Get() = %q, expected %q", got, "two")
	}
}

func TestStoreBacksLedger(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	ledger := highscore.Open(store, nil)
	ledger.Record(tiles.ModeClassic, 18.75)
	ledger.Record(tiles.ModeArcade, 120)
	store.Close()

	// Reopen the database file: bests survive.
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	ledger = highscore.Open(store, nil)
	if v, ok := ledger.Best(tiles.ModeClassic); !ok || v != 18.75 {
		t.Errorf("classic = %v (ok=%v), expected 18.75", v, ok)
	}
	if v, ok := ledger.Best(tiles.ModeArcade); !ok || v != 120 {
		t.Errorf("arcade = %v (ok=%v), expected 120", v, ok)
	}
}

func TestStoreTopRunsTapModes(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveRun(Run{Mode: tiles.ModeArcade, Score: score, Elapsed: time.Second}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	// Different mode
	if _, err := store.SaveRun(Run{Mode: tiles.ModeZen, Score: 500}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.TopRuns(tiles.ModeArcade, 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	if runs[0].Score != 200 || runs[1].Score != 100 || runs[2].Score != 50 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
	if runs[0].Mode != tiles.ModeArcade || runs[0].Elapsed != time.Second {
		t.Errorf("run fields not round-tripped: %+v", runs[0])
	}

	zen, _ := store.TopRuns(tiles.ModeZen, 10)
	if len(zen) != 1 {
		t.Errorf("Expected 1 zen run, got %d", len(zen))
	}
}

func TestStoreTopRunsClassic(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{Mode: tiles.ModeClassic, Score: 50, Elapsed: 21 * time.Second, Success: true},
		{Mode: tiles.ModeClassic, Score: 12, Elapsed: 4 * time.Second, Success: false},
		{Mode: tiles.ModeClassic, Score: 50, Elapsed: 18500 * time.Millisecond, Success: true},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(tiles.ModeClassic, 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("Expected 2 successful runs, got %d", len(top))
	}
	if top[0].Elapsed != 18500*time.Millisecond || !top[0].Success {
		t.Errorf("fastest run = %+v, expected 18.5s", top[0])
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(Run{Mode: tiles.ModeRush, Score: (i + 1) * 10})
	}

	runs, err := store.TopRuns(tiles.ModeRush, 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 50 || runs[2].Score != 30 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{5, 9, 1} {
		store.SaveRun(Run{Mode: tiles.ModeZen, Score: score})
	}

	runs, err := store.RecentRuns(tiles.ModeZen, 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 || runs[0].Score != 1 || runs[1].Score != 9 {
		t.Errorf("recent runs = %v, expected newest first", runs)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Mode: tiles.ModeArcade, Score: 100})
	store.SaveRun(Run{Mode: tiles.ModeArcade, Score: 200})
	store.SaveRun(Run{Mode: tiles.ModeRush, Score: 300})

	if err := store.ClearRuns(tiles.ModeArcade); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	arcade, _ := store.TopRuns(tiles.ModeArcade, 10)
	if len(arcade) != 0 {
		t.Errorf("Expected 0 arcade runs after clear, got %d", len(arcade))
	}
	rush, _ := store.TopRuns(tiles.ModeRush, 10)
	if len(rush) != 1 {
		t.Errorf("Rush runs should not be affected by clearing arcade")
	}
}

func TestStoreModeStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetModeStats(tiles.ModeZen)
	if err != nil {
		t.Fatalf("GetModeStats() failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveRun(Run{Mode: tiles.ModeZen, Score: 10, Success: true})
	store.SaveRun(Run{Mode: tiles.ModeZen, Score: 30, Success: true})
	store.SaveRun(Run{Mode: tiles.ModeZen, Score: 20, Success: false})

	stats, err := store.GetModeStats(tiles.ModeZen)
	if err != nil {
		t.Fatalf("GetModeStats() failed: %v", err)
	}
	if stats.Runs != 3 || stats.Wins != 2 || stats.BestScore != 30 || stats.AvgScore != 20 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestRunFromResult(t *testing.T) {
	res := tiles.Result{Success: true, Score: 50, Elapsed: 20 * time.Second}
	run := RunFromResult(tiles.ModeClassic, res)
	if run.Mode != tiles.ModeClassic || run.Score != 50 || run.Elapsed != 20*time.Second || !run.Success {
		t.Errorf("RunFromResult = %+v", run)
	}
}
