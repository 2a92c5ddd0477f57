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

func TestStoreOpenCreatesNestedFile(t *testing.T) {
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

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("classic", 120); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 120 {
		t.Errorf("Expected high score 120 after reopen, got %d", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("classic", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("tutorial", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	expected := []int{200, 100, 50}
	for i, want := range expected {
		if scores[i].Score != want {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, want)
		}
		if scores[i].PackID != "classic" {
			t.Errorf("scores[%d].PackID = %q", i, scores[i].PackID)
		}
		if scores[i].CreatedAt.IsZero() {
			t.Errorf("scores[%d].CreatedAt not parsed", i)
		}
	}

	tutorial, err := store.TopScores("tutorial", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(tutorial) != 1 {
		t.Errorf("Expected 1 tutorial score, got %d", len(tutorial))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limit falls back to 10
	for i := 0; i < 10; i++ {
		store.SaveScore("test", i)
	}
	scores, err = store.TopScores("test", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 10 {
		t.Errorf("Expected default limit of 10, got %d", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for unplayed pack, got %d", high)
	}

	store.SaveScore("classic", 100)
	store.SaveScore("classic", 300)
	store.SaveScore("classic", 200)

	high, err = store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("classic", 100)
	store.SaveScore("classic", 200)
	store.SaveScore("tutorial", 300)
	store.SaveLevelResult(LevelResult{PackID: "classic", Outcome: OutcomeWon})

	if err := store.ClearScores("classic"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	classic, _ := store.TopScores("classic", 10)
	if len(classic) != 0 {
		t.Errorf("Expected 0 classic scores after clear, got %d", len(classic))
	}
	results, _ := store.LevelResults("classic", 10)
	if len(results) != 0 {
		t.Errorf("Expected 0 classic level results after clear, got %d", len(results))
	}

	tutorial, _ := store.TopScores("tutorial", 10)
	if len(tutorial) != 1 {
		t.Errorf("Tutorial scores should not be affected by clearing classic")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStorePackStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetPackStats("classic")
	if err != nil {
		t.Fatalf("GetPackStats() failed: %v", err)
	}
	if stats.RunsCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveScore("classic", 100)
	store.SaveScore("classic", 300)
	store.SaveScore("tutorial", 40)

	stats, err = store.GetPackStats("classic")
	if err != nil {
		t.Fatalf("GetPackStats() failed: %v", err)
	}
	if stats.RunsCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 || stats.AvgScore != 200 {
		t.Errorf("Unexpected classic stats: %+v", stats)
	}

	all, err := store.GetAllPackStats()
	if err != nil {
		t.Fatalf("GetAllPackStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 packs, got %d", len(all))
	}
	if all["tutorial"].HighScore != 40 {
		t.Errorf("Tutorial high score = %d, expected 40", all["tutorial"].HighScore)
	}
}
