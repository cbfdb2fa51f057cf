package storage

import (
	"errors"
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

func mustSave(t *testing.T, store *Store, m MatchResult) int64 {
	t.Helper()
	id, err := store.SaveMatch(m)
	if err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	return id
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

func TestStoreReopenKeepsMatches(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveMatch(MatchResult{BoardID: "normal", Winner: "human"}); err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	matches, err := store.RecentMatches("normal", 10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(matches) != 1 {
		t.Errorf("expected 1 match after reopen, got %d", len(matches))
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	id := mustSave(t, store, MatchResult{
		BoardID:       "australia",
		Player:        "alice",
		HumanScore:    4,
		ComputerScore: 3,
		Winner:        "human",
		Moves:         4,
		Duration:      42,
	})
	if id <= 0 {
		t.Errorf("expected positive ID, got %d", id)
	}

	matches, err := store.RecentMatches("australia", 10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}

	m := matches[0]
	if m.MatchID == "" {
		t.Error("MatchID should be generated")
	}
	if m.Player != "alice" || m.HumanScore != 4 || m.ComputerScore != 3 {
		t.Errorf("unexpected match %+v", m)
	}
	if m.Winner != "human" || m.Moves != 4 || m.Duration != 42 {
		t.Errorf("unexpected match %+v", m)
	}
	if m.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	got, err := store.MatchByID(m.MatchID)
	if err != nil {
		t.Fatalf("MatchByID() failed: %v", err)
	}
	if got == nil || got.ID != id {
		t.Errorf("MatchByID() = %+v, want ID %d", got, id)
	}

	missing, err := store.MatchByID("no-such-match")
	if err != nil {
		t.Fatalf("MatchByID() failed: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown match, got %+v", missing)
	}
}

func TestStoreSaveMatchValidation(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveMatch(MatchResult{Winner: "draw"})
	if !errors.Is(err, ErrInvalidMatch) {
		t.Errorf("missing board: got %v, want ErrInvalidMatch", err)
	}
	_, err = store.SaveMatch(MatchResult{BoardID: "easy"})
	if !errors.Is(err, ErrInvalidMatch) {
		t.Errorf("missing winner: got %v, want ErrInvalidMatch", err)
	}

	mustSave(t, store, MatchResult{MatchID: "fixed", BoardID: "easy", Winner: "draw"})
	if _, err := store.SaveMatch(MatchResult{MatchID: "fixed", BoardID: "easy", Winner: "draw"}); err == nil {
		t.Error("duplicate match ID should fail")
	}
}

func TestStoreRecentMatchesOrder(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		mustSave(t, store, MatchResult{BoardID: "normal", HumanScore: i, Winner: "computer"})
	}
	mustSave(t, store, MatchResult{BoardID: "wheel", HumanScore: 9, Winner: "human"})

	matches, err := store.RecentMatches("normal", 3)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(matches))
	}
	for i, want := range []int{4, 3, 2} {
		if matches[i].HumanScore != want {
			t.Errorf("matches[%d].HumanScore = %d, want %d", i, matches[i].HumanScore, want)
		}
	}

	all, err := store.RecentMatches("", 0)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(all) != 6 {
		t.Errorf("expected 6 matches across boards, got %d", len(all))
	}
	if all[0].BoardID != "wheel" {
		t.Errorf("newest match should come first, got %s", all[0].BoardID)
	}
}

func TestStoreTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{3, -2, 7, 7, 5} {
		mustSave(t, store, MatchResult{BoardID: "hard", HumanScore: score, Winner: "draw"})
	}

	top, err := store.TopScores("hard", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("expected 3 scores, got %d", len(top))
	}
	if top[0].HumanScore != 7 || top[1].HumanScore != 7 || top[2].HumanScore != 5 {
		t.Errorf("unexpected order: %d %d %d", top[0].HumanScore, top[1].HumanScore, top[2].HumanScore)
	}
	if top[0].ID > top[1].ID {
		t.Error("ties should list the earlier match first")
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("easy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("expected 0 for empty board, got %d", high)
	}

	mustSave(t, store, MatchResult{BoardID: "easy", HumanScore: 6, Winner: "human"})
	mustSave(t, store, MatchResult{BoardID: "easy", HumanScore: 11, Winner: "human"})

	high, err = store.HighScore("easy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 11 {
		t.Errorf("expected high score 11, got %d", high)
	}
}

func TestStoreClearBoard(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, MatchResult{BoardID: "normal", Winner: "human"})
	mustSave(t, store, MatchResult{BoardID: "normal", Winner: "computer"})
	mustSave(t, store, MatchResult{BoardID: "wheel", Winner: "draw"})

	if err := store.ClearBoard("normal"); err != nil {
		t.Fatalf("ClearBoard() failed: %v", err)
	}

	normal, _ := store.RecentMatches("normal", 10)
	if len(normal) != 0 {
		t.Errorf("Expected 0 normal matches after clear, got %d", len(normal))
	}

	wheel, _ := store.RecentMatches("wheel", 10)
	if len(wheel) != 1 {
		t.Errorf("Wheel matches should not be affected by clearing normal")
	}
}

func TestStoreBoardStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetBoardStats("normal")
	if err != nil {
		t.Fatalf("GetBoardStats() failed: %v", err)
	}
	if empty.Played != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for empty board: %+v", empty)
	}

	mustSave(t, store, MatchResult{BoardID: "normal", HumanScore: 10, Winner: "human"})
	mustSave(t, store, MatchResult{BoardID: "normal", HumanScore: 4, Winner: "computer"})
	mustSave(t, store, MatchResult{BoardID: "normal", HumanScore: 7, Winner: "draw"})
	mustSave(t, store, MatchResult{BoardID: "normal", HumanScore: 3, Winner: "human"})
	mustSave(t, store, MatchResult{BoardID: "wheel", HumanScore: 2, Winner: "computer"})

	stats, err := store.GetBoardStats("normal")
	if err != nil {
		t.Fatalf("GetBoardStats() failed: %v", err)
	}
	if stats.Played != 4 || stats.HumanWins != 2 || stats.ComputerWins != 1 || stats.Draws != 1 {
		t.Errorf("unexpected counts: %+v", stats)
	}
	if stats.HighScore != 10 {
		t.Errorf("expected high score 10, got %d", stats.HighScore)
	}
	if stats.AvgScore != 6 {
		t.Errorf("expected average 6, got %f", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	all, err := store.GetAllBoardsStats()
	if err != nil {
		t.Fatalf("GetAllBoardsStats() failed: %v", err)
	}
	if len(all) != 2 || all["wheel"].ComputerWins != 1 {
		t.Errorf("unexpected all-board stats: %+v", all)
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

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.mapcolor/matches.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".mapcolor", "matches.db")); err != nil {
		t.Errorf("database not created under home: %v", err)
	}
}
