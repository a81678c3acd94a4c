package storage

import (
	"os"
	"path/filepath"
	"testing"
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

func save(t *testing.T, store *Store, demoID string, scores ...int) {
	t.Helper()
	for _, s := range scores {
		if _, err := store.SaveScore(ScoreEntry{DemoID: demoID, Score: s}); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	save(t, store, "runner", 12)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("runner")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 12 {
		t.Errorf("Expected 12 after reopening, got %d", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveScore(ScoreEntry{DemoID: "runner", Player: "ann", Score: 7, Ticks: 900})
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("Expected a positive id, got %d", id)
	}
	save(t, store, "runner", 3, 11)
	save(t, store, "bounce", 1)

	scores, err := store.TopScores("runner", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	expected := []int{11, 7, 3}
	for i, want := range expected {
		if scores[i].Score != want {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, want)
		}
	}

	first := scores[1]
	if first.Player != "ann" || first.Ticks != 900 || first.DemoID != "runner" {
		t.Errorf("Round-tripped entry = %+v", first)
	}
	if first.CreatedAt.IsZero() {
		t.Error("CreatedAt should be filled by the database")
	}
}

func TestStoreRejectsMissingDemo(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveScore(ScoreEntry{Score: 5}); err == nil {
		t.Error("Expected error for a score without demo id")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)
	save(t, store, "runner", 1, 2, 3, 4, 5)

	scores, err := store.TopScores("runner", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 5 || scores[1].Score != 4 || scores[2].Score != 3 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limits fall back to 10.
	save(t, store, "runner", 6, 7, 8, 9, 10, 11, 12)
	scores, _ = store.TopScores("runner", 0)
	if len(scores) != 10 {
		t.Errorf("Expected default limit of 10, got %d", len(scores))
	}
}

func TestStoreTiesKeepInsertionOrder(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore(ScoreEntry{DemoID: "runner", Player: "first", Score: 4})
	store.SaveScore(ScoreEntry{DemoID: "runner", Player: "second", Score: 4})

	scores, _ := store.TopScores("runner", 2)
	if len(scores) != 2 || scores[0].Player != "first" {
		t.Errorf("Expected the earlier run first on a tie, got %+v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("runner")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty demo, got %d", high)
	}

	save(t, store, "runner", 10, 30, 20)
	high, err = store.HighScore("runner")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 30 {
		t.Errorf("Expected high score of 30, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)
	save(t, store, "runner", 1, 2)
	save(t, store, "bounce", 3)

	if err := store.ClearScores("runner"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	runner, _ := store.TopScores("runner", 10)
	if len(runner) != 0 {
		t.Errorf("Expected 0 runner scores after clear, got %d", len(runner))
	}
	bounce, _ := store.TopScores("bounce", 10)
	if len(bounce) != 1 {
		t.Errorf("Bounce scores should not be affected by clearing runner")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore(ScoreEntry{DemoID: "runner", Score: 2, Ticks: 100})
	store.SaveScore(ScoreEntry{DemoID: "runner", Score: 4, Ticks: 300})

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	st, ok := stats["runner"]
	if !ok {
		t.Fatal("Expected stats for runner")
	}
	if st.RunsCount != 2 || st.HighScore != 4 || st.AvgScore != 3 || st.TotalTicks != 400 {
		t.Errorf("Stats = %+v", st)
	}
	if _, ok := stats["bounce"]; ok {
		t.Error("Demos without runs should have no stats")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
