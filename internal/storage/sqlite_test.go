package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
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

func TestStoreCreatesParentDirs(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	store.Close()
}

func TestStoreSaveAndRetrieveScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("trex", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	// A different game must not leak into trex results.
	if _, err := store.SaveScore("other", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("trex", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	// Sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %d, %d, %d",
			scores[0].Score, scores[1].Score, scores[2].Score)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		if _, err := store.SaveScore("trex", i*10); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("trex", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores with limit 5, got %d", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet: zero, not an error.
	high, err := store.HighScore("trex")
	if err != nil {
		t.Fatalf("HighScore() on empty table failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 high score on empty table, got %d", high)
	}

	store.SaveScore("trex", 120)
	store.SaveScore("trex", 340)
	store.SaveScore("trex", 90)

	high, err = store.HighScore("trex")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 340 {
		t.Errorf("Expected high score 340, got %d", high)
	}
}

func TestStoreSaveRunAndRecentRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []RunRecord{
		{GameID: "trex", Score: 150, DistancePx: 6000, DurationMs: 25000, MaxSpeed: 6.9, Jumps: 12, NightCycles: 0},
		{GameID: "trex", Score: 820, DistancePx: 32800, DurationMs: 110000, MaxSpeed: 9.2, Jumps: 48, NightCycles: 1},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	got, err := store.RecentRuns("trex", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(got))
	}

	// Most recent first
	if got[0].Score != 820 {
		t.Errorf("Expected most recent run first (score 820), got %d", got[0].Score)
	}
	if got[0].Jumps != 48 || got[0].NightCycles != 1 {
		t.Errorf("Run telemetry lost: jumps=%d nights=%d", got[0].Jumps, got[0].NightCycles)
	}

	// SaveRun also feeds the scores table.
	high, err := store.HighScore("trex")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 820 {
		t.Errorf("Expected high score 820 via SaveRun, got %d", high)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{GameID: "trex", Score: 100, DurationMs: 20000, Jumps: 10, NightCycles: 0})
	store.SaveRun(RunRecord{GameID: "trex", Score: 300, DurationMs: 50000, Jumps: 25, NightCycles: 1})

	stats, err := store.GetGameStats("trex")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, want 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
	if stats.BestRunMs != 50000 {
		t.Errorf("BestRunMs = %d, want 50000", stats.BestRunMs)
	}
	if stats.TotalJumps != 35 {
		t.Errorf("TotalJumps = %d, want 35", stats.TotalJumps)
	}
	if stats.NightCycles != 1 {
		t.Errorf("NightCycles = %d, want 1", stats.NightCycles)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{GameID: "trex", Score: 100})
	store.SaveScore("other", 50)

	if err := store.ClearScores("trex"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, err := store.TopScores("trex", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("Expected no trex scores after clear, got %d", len(scores))
	}

	runsList, err := store.RecentRuns("trex", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runsList) != 0 {
		t.Errorf("Expected no trex runs after clear, got %d", len(runsList))
	}

	// Other games untouched.
	otherScores, err := store.TopScores("other", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(otherScores) != 1 {
		t.Errorf("Expected 1 other score, got %d", len(otherScores))
	}
}
