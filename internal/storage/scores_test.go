package storage

import (
	"database/sql"
	"errors"
	"testing"
)

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("2048", score, 64, 10); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("2048-5x5", 500, 128, 40); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("2048", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("TopScores() returned %d entries, want 3", len(scores))
	}

	// Should be sorted descending
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
		if scores[i].Variant != "2048" || scores[i].MaxTile != 64 || scores[i].Moves != 10 {
			t.Errorf("scores[%d] = %+v, want variant 2048 max tile 64 moves 10", i, scores[i])
		}
	}

	big, err := store.TopScores("2048-5x5", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(big) != 1 {
		t.Errorf("TopScores(5x5) returned %d entries, want 1", len(big))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveScore("2048", (i+1)*100, 8, i); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		limit int
		want  int
	}{
		{3, 3},
		{10, 5},
		{0, 5}, // falls back to the default of 10
	}

	for _, tt := range tests {
		scores, err := store.TopScores("2048", tt.limit)
		if err != nil {
			t.Fatalf("TopScores(%d) failed: %v", tt.limit, err)
		}
		if len(scores) != tt.want {
			t.Errorf("TopScores(%d) returned %d entries, want %d", tt.limit, len(scores), tt.want)
		}
		if len(scores) > 0 && scores[0].Score != 500 {
			t.Errorf("TopScores(%d)[0] = %d, want 500", tt.limit, scores[0].Score)
		}
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("2048")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() on empty = %d, want 0", high)
	}

	store.SaveScore("2048", 100, 16, 5)
	store.SaveScore("2048", 300, 32, 9)
	store.SaveScore("2048", 200, 16, 7)

	high, err = store.HighScore("2048")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("HighScore() = %d, want 300", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("2048", 100, 16, 5)
	store.SaveScore("2048-3x3", 40, 8, 5)

	if err := store.ClearScores("2048"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("2048", 10)
	if len(scores) != 0 {
		t.Errorf("TopScores() after clear returned %d entries, want 0", len(scores))
	}
	other, _ := store.TopScores("2048-3x3", 10)
	if len(other) != 1 {
		t.Errorf("ClearScores() touched another variant: %d entries left, want 1", len(other))
	}
}

func TestStoreStatsAndVariants(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("2048")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Stats() on empty = %+v", empty)
	}

	store.SaveScore("2048", 100, 16, 5)
	store.SaveScore("2048", 300, 64, 9)
	store.SaveScore("2048-5x5", 50, 8, 3)

	stats, err := store.Stats("2048")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.BestTile != 64 {
		t.Errorf("Stats() = %+v, want 2 games, high 300, best tile 64", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("Stats().AvgScore = %v, want 200", stats.AvgScore)
	}

	variants, err := store.Variants()
	if err != nil {
		t.Fatalf("Variants() failed: %v", err)
	}
	if len(variants) != 2 || variants[0] != "2048" || variants[1] != "2048-5x5" {
		t.Errorf("Variants() = %v, want [2048 2048-5x5]", variants)
	}
}

func TestStoreUpdateScore(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveScore("2048", 100, 64, 10)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if err := store.UpdateScore(id, 180, 128, 17); err != nil {
		t.Fatalf("UpdateScore() failed: %v", err)
	}

	scores, err := store.TopScores("2048", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("TopScores() = %d entries, want 1", len(scores))
	}
	if got := scores[0]; got.Score != 180 || got.MaxTile != 128 || got.Moves != 17 {
		t.Errorf("TopScores()[0] = %+v, want score 180 max tile 128 moves 17", got)
	}

	if err := store.UpdateScore(id+1, 1, 2, 3); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("UpdateScore(unknown) error = %v, want sql.ErrNoRows", err)
	}
}
