package engine

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(g Grid) bool {
	for _, v := range g.cells {
		if v == 0 {
			return true
		}
	}
	return false
}

// canMergeIn reports whether sliding in dir would merge at least one pair,
// i.e. two non-zero values are equal with only empties between them along a
// line. The grid is not modified.
func canMergeIn(g Grid, dir Direction) bool {
	for _, line := range lines(g.size, dir) {
		last := 0
		for _, p := range line {
			v := g.At(p)
			if v == 0 {
				continue
			}
			if v == last {
				return true
			}
			last = v
		}
	}
	return false
}

// HasPossibleMerge returns true if any direction would merge two tiles.
func HasPossibleMerge(g Grid) bool {
	for _, dir := range Directions {
		if canMergeIn(g, dir) {
			return true
		}
	}
	return false
}

// CanMove returns true if any move is possible.
func CanMove(g Grid) bool {
	return HasEmptyCell(g) || HasPossibleMerge(g)
}

// IsGameOver returns true when the grid is full and no row or column holds
// two adjacent equal tiles.
func IsGameOver(g Grid) bool {
	return !CanMove(g)
}

// MaxTile returns the maximum tile value on the grid.
func MaxTile(g Grid) int {
	maxVal := 0
	for _, v := range g.cells {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}
