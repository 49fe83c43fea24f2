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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Fatal("database file was not created")
	}
	return store
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{7, 2, 12} {
		if _, err := store.SaveScore("chef", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("chef", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("expected 3 scores, got %d", len(scores))
	}

	// Sorted descending
	if scores[0].Score != 12 || scores[1].Score != 7 || scores[2].Score != 2 {
		t.Errorf("scores not in descending order: %v", scores)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("chef", i+1)
	}

	scores, err := store.TopScores("chef", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 5 || scores[1].Score != 4 || scores[2].Score != 3 {
		t.Errorf("scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("chef")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("chef", 4)
	store.SaveScore("chef", 9)
	store.SaveScore("chef", 6)

	high, err = store.HighScore("chef")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 9 {
		t.Errorf("expected high score of 9, got %d", high)
	}
}

func TestStoreScoresIsolatedPerGame(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("chef", 5)
	store.SaveScore("other", 50)

	scores, err := store.TopScores("chef", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 5 {
		t.Errorf("chef scores polluted by other game: %v", scores)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("chef", 1)
	store.SaveScore("chef", 2)
	store.SaveScore("other", 3)

	if err := store.ClearScores("chef"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	chefScores, _ := store.TopScores("chef", 10)
	if len(chefScores) != 0 {
		t.Errorf("expected 0 chef scores after clear, got %d", len(chefScores))
	}

	otherScores, _ := store.TopScores("other", 10)
	if len(otherScores) != 1 {
		t.Error("other game's scores should not be affected by clearing chef")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{2, 4, 6} {
		store.SaveScore("chef", score)
	}

	stats, err := store.GetGameStats("chef")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.GamesCount != 3 {
		t.Errorf("GamesCount = %d, want 3", stats.GamesCount)
	}
	if stats.HighScore != 6 {
		t.Errorf("HighScore = %d, want 6", stats.HighScore)
	}
	if stats.TotalScore != 12 {
		t.Errorf("TotalScore = %d, want 12", stats.TotalScore)
	}
	if stats.AvgScore != 4 {
		t.Errorf("AvgScore = %f, want 4", stats.AvgScore)
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
		t.Error("database file was not created in nested directory")
	}
}
