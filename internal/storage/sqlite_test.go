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

func save(t *testing.T, store *Store, player string, score int) {
	t.Helper()
	if _, err := store.SaveScore(GameResult{Player: player, Score: score, Length: score + 5, Ticks: 100, Reason: "hit the wall"}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file and its parents were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	save(t, store, "ann", 7)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore()
	if err != nil || high != 7 {
		t.Errorf("HighScore() after reopen = %d, %v; expected 7", high, err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "ann", 100)
	save(t, store, "ann", 50)
	save(t, store, "bob", 200)

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[0].Player != "bob" {
		t.Errorf("Expected bob's 200 first, got %+v", scores[0])
	}
	if scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	e := scores[0]
	if e.Length != 205 || e.Ticks != 100 || e.Reason != "hit the wall" {
		t.Errorf("entry fields not stored: %+v", e)
	}
	if e.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	annScores, err := store.PlayerScores("ann", 10)
	if err != nil {
		t.Fatalf("PlayerScores() failed: %v", err)
	}
	if len(annScores) != 2 {
		t.Errorf("Expected 2 scores for ann, got %d", len(annScores))
	}
}

func TestStoreSaveRequiresPlayer(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveScore(GameResult{Score: 3}); err == nil {
		t.Error("SaveScore without player should fail")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		save(t, store, "ann", (i+1)*100)
	}

	scores, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limit falls back to 10.
	all, err := store.TopScores(0)
	if err != nil || len(all) != 5 {
		t.Errorf("TopScores(0) = %d entries, %v; expected 5", len(all), err)
	}
}

func TestStoreRecentScores(t *testing.T) {
	store := openTestStore(t)
	save(t, store, "ann", 30)
	save(t, store, "ann", 10)
	save(t, store, "ann", 20)

	recent, err := store.RecentScores(2)
	if err != nil {
		t.Fatalf("RecentScores() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Score != 20 || recent[1].Score != 10 {
		t.Errorf("RecentScores() = %v, expected newest first [20 10]", recent)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty store, got %d", high)
	}

	save(t, store, "ann", 42)
	save(t, store, "bob", 17)

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 42 {
		t.Errorf("Expected high score 42, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)
	save(t, store, "ann", 1)
	save(t, store, "bob", 2)

	if err := store.ClearScores("ann"); err != nil {
		t.Fatalf("ClearScores(ann) failed: %v", err)
	}
	scores, _ := store.TopScores(10)
	if len(scores) != 1 || scores[0].Player != "bob" {
		t.Errorf("after clearing ann: %v", scores)
	}

	if err := store.ClearScores(""); err != nil {
		t.Fatalf("ClearScores(all) failed: %v", err)
	}
	scores, _ = store.TopScores(10)
	if len(scores) != 0 {
		t.Errorf("Expected no scores after clear, got %d", len(scores))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetStats("")
	if err != nil {
		t.Fatalf("GetStats() on empty store failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	save(t, store, "ann", 10)
	save(t, store, "ann", 20)
	save(t, store, "bob", 60)

	all, err := store.GetStats("")
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if all.GamesCount != 3 || all.HighScore != 60 || all.TotalScore != 90 || all.AvgScore != 30 {
		t.Errorf("overall stats = %+v", all)
	}
	if all.MaxLength != 65 {
		t.Errorf("MaxLength = %d, expected 65", all.MaxLength)
	}
	if all.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	ann, err := store.GetStats("ann")
	if err != nil {
		t.Fatalf("GetStats(ann) failed: %v", err)
	}
	if ann.GamesCount != 2 || ann.HighScore != 20 || ann.AvgScore != 15 {
		t.Errorf("ann stats = %+v", ann)
	}

	byPlayer, err := store.GetAllPlayersStats()
	if err != nil {
		t.Fatalf("GetAllPlayersStats() failed: %v", err)
	}
	if len(byPlayer) != 2 || byPlayer["bob"].HighScore != 60 {
		t.Errorf("per-player stats = %v", byPlayer)
	}
}

func TestStorePreferences(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.Preference("ann", "theme"); ok || err != nil {
		t.Errorf("unset preference = ok %v, err %v", ok, err)
	}

	if err := store.SetPreference("ann", "theme", "dark"); err != nil {
		t.Fatalf("SetPreference() failed: %v", err)
	}
	if err := store.SetPreference("ann", "theme", "light"); err != nil {
		t.Fatalf("SetPreference() overwrite failed: %v", err)
	}
	v, ok, err := store.Preference("ann", "theme")
	if err != nil || !ok || v != "light" {
		t.Errorf("Preference() = %q, %v, %v; expected light", v, ok, err)
	}

	if _, ok, _ := store.Preference("bob", "theme"); ok {
		t.Error("preferences should be per player")
	}
}

func TestStoreZoom(t *testing.T) {
	store := openTestStore(t)

	zoom, err := store.Zoom("ann", 2)
	if err != nil || zoom != 2 {
		t.Errorf("Zoom() default = %d, %v; expected 2", zoom, err)
	}

	if err := store.SetZoom("ann", 3); err != nil {
		t.Fatalf("SetZoom() failed: %v", err)
	}
	if zoom, _ := store.Zoom("ann", 1); zoom != 3 {
		t.Errorf("Zoom() = %d, expected 3", zoom)
	}

	store.SetPreference("ann", PrefZoom, "huge")
	if zoom, err := store.Zoom("ann", 1); zoom != 1 || err != nil {
		t.Errorf("Zoom() with garbage = %d, %v; expected default", zoom, err)
	}
}
