package engine

import "testing"

func TestIsGameOver(t *testing.T) {
	tests := []struct {
		name     string
		board    [][]int
		gameOver bool
	}{
		{
			name: "checkerboard with no merges",
			board: [][]int{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 4},
				{4, 2, 4, 2},
			},
			gameOver: true,
		},
		{
			name: "distinct values",
			board: [][]int{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
			gameOver: true,
		},
		{
			name: "horizontal pair",
			board: [][]int{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 4},
				{4, 2, 2, 8},
			},
			gameOver: false,
		},
		{
			name: "vertical pair",
			board: [][]int{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 8, 4},
				{4, 2, 8, 2},
			},
			gameOver: false,
		},
		{
			name: "one empty cell",
			board: [][]int{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 0, 4096},
				{8192, 16384, 32768, 65536},
			},
			gameOver: false,
		},
		{
			name: "empty board",
			board: [][]int{
				{0, 0},
				{0, 0},
			},
			gameOver: false,
		},
		{
			name: "full 2x2 without pairs",
			board: [][]int{
				{2, 4},
				{4, 2},
			},
			gameOver: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := MustGrid(tt.board)
			if got := IsGameOver(board); got != tt.gameOver {
				t.Errorf("IsGameOver() = %v, want %v\n%v", got, tt.gameOver, board)
			}
		})
	}
}

func TestGameOverAgreesWithSlide(t *testing.T) {
	// A full board is terminal exactly when no direction changes it.
	boards := [][][]int{
		{{2, 4, 2, 4}, {4, 2, 4, 2}, {2, 4, 2, 4}, {4, 2, 4, 2}},
		{{2, 4, 2, 4}, {4, 2, 4, 2}, {2, 4, 2, 4}, {4, 2, 2, 8}},
		{{8, 8}, {4, 2}},
		{{2, 4, 8}, {16, 32, 64}, {128, 256, 512}},
	}

	for _, rows := range boards {
		board := MustGrid(rows)
		anyChange := false
		for _, dir := range Directions {
			_, changed, _, err := ApplyMove(board, dir)
			if err != nil {
				t.Fatalf("ApplyMove(%s) error: %v", dir, err)
			}
			anyChange = anyChange || changed
		}
		if IsGameOver(board) == anyChange {
			t.Errorf("IsGameOver() = %v but some direction changed = %v\n%v", IsGameOver(board), anyChange, board)
		}
	}
}

func TestHasPossibleMergeAcrossGap(t *testing.T) {
	board := MustGrid([][]int{
		{2, 0, 2},
		{4, 8, 16},
		{32, 64, 128},
	})

	if !HasPossibleMerge(board) {
		t.Error("HasPossibleMerge() = false, want true for tiles separated by an empty cell")
	}
	if !canMergeIn(board, DirLeft) || !canMergeIn(board, DirRight) {
		t.Error("canMergeIn() should see the row merge from both sides")
	}
	if canMergeIn(board, DirUp) {
		t.Error("canMergeIn(up) = true, want false")
	}
}

func TestMaxTile(t *testing.T) {
	board := MustGrid([][]int{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4},
		{8, 16, 32, 64},
	})

	if got := MaxTile(board); got != 2048 {
		t.Errorf("MaxTile = %d, want 2048", got)
	}
	if got := MaxTile(NewGrid(4)); got != 0 {
		t.Errorf("MaxTile(empty) = %d, want 0", got)
	}
}
