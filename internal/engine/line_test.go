package engine

import (
	"slices"
	"testing"
)

func TestMergeLineTowardStart(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		expected []int
		score    int
	}{
		{
			name:     "empty line",
			input:    []int{},
			expected: []int{},
			score:    0,
		},
		{
			name:     "nil line",
			input:    nil,
			expected: []int{},
			score:    0,
		},
		{
			name:     "single tile",
			input:    []int{8},
			expected: []int{8},
			score:    0,
		},
		{
			name:     "simple merge",
			input:    []int{2, 2},
			expected: []int{4},
			score:    4,
		},
		{
			name:     "three equal merges first pair",
			input:    []int{2, 2, 2},
			expected: []int{4, 2},
			score:    4,
		},
		{
			name:     "double merge",
			input:    []int{2, 2, 2, 2},
			expected: []int{4, 4},
			score:    8,
		},
		{
			name:     "merge after leading tile",
			input:    []int{4, 2, 2},
			expected: []int{4, 4},
			score:    4,
		},
		{
			name:     "no chain after merge",
			input:    []int{4, 4, 8},
			expected: []int{8, 8},
			score:    8,
		},
		{
			name:     "no merge possible",
			input:    []int{2, 4, 8, 16},
			expected: []int{2, 4, 8, 16},
			score:    0,
		},
		{
			name:     "two different pairs",
			input:    []int{2, 2, 4, 4},
			expected: []int{4, 8},
			score:    12,
		},
		{
			name:     "long line",
			input:    []int{2, 2, 2, 2, 2},
			expected: []int{4, 4, 2},
			score:    8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, score := MergeLineTowardStart(tt.input)
			if !slices.Equal(result, tt.expected) {
				t.Errorf("MergeLineTowardStart(%v) = %v, want %v", tt.input, result, tt.expected)
			}
			if result == nil {
				t.Errorf("MergeLineTowardStart(%v) returned nil, want empty slice", tt.input)
			}
			if score != tt.score {
				t.Errorf("MergeLineTowardStart(%v) score = %d, want %d", tt.input, score, tt.score)
			}
		})
	}
}

func TestMergeLineConservesValue(t *testing.T) {
	lines := [][]int{
		{},
		{2},
		{2, 2, 2},
		{4, 4, 4, 4},
		{2, 4, 4, 2},
		{8, 8, 16, 16, 32},
		{1024, 1024, 2048},
	}

	for _, line := range lines {
		out, _ := MergeLineTowardStart(line)

		if len(out) > len(line) {
			t.Errorf("MergeLineTowardStart(%v) grew to %d values", line, len(out))
		}

		inSum, outSum := 0, 0
		for _, v := range line {
			inSum += v
		}
		for _, v := range out {
			outSum += v
		}
		if inSum != outSum {
			t.Errorf("MergeLineTowardStart(%v) sum = %d, want %d", line, outSum, inSum)
		}
	}
}

func TestOneMergePerTilePerMove(t *testing.T) {
	// [4, 4, 4, 4] should become [8, 8], not [16]
	line := []int{4, 4, 4, 4}
	tiles, score := mergeLineTracked(line)

	if len(tiles) != 2 || tiles[0].Value != 8 || tiles[1].Value != 8 {
		t.Errorf("mergeLineTracked(%v) = %+v, want two 8 tiles", line, tiles)
	}

	// Score should be 8+8 = 16, not 8+16 = 24
	if score != 16 {
		t.Errorf("mergeLineTracked(%v) score = %d, want 16", line, score)
	}

	used := make(map[int]int)
	for _, tile := range tiles {
		if len(tile.Sources) > 2 {
			t.Errorf("tile %d built from %d sources", tile.Value, len(tile.Sources))
		}
		for _, src := range tile.Sources {
			used[src]++
		}
	}
	for i := range line {
		if used[i] != 1 {
			t.Errorf("input %d consumed %d times, want 1", i, used[i])
		}
	}
}
