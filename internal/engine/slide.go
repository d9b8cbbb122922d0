package engine

import "fmt"

// TileMove describes one tile travelling during a slide. A merge produces two
// moves with the same To and Merged set; Value is the tile's value before the
// merge.
type TileMove struct {
	From   Pos  `json:"from"`
	To     Pos  `json:"to"`
	Value  int  `json:"value"`
	Merged bool `json:"merged"`
}

// SlideResult is the outcome of sliding a grid in one direction.
type SlideResult struct {
	Grid    Grid
	Changed bool
	Score   int
	Moves   []TileMove
}

// lines returns the cells of every row (Left/Right) or column (Up/Down) in
// travel order: index 0 of each line is the edge tiles are pushed toward.
// It is the only place that knows how a direction maps onto the grid.
func lines(size int, dir Direction) [][]Pos {
	out := make([][]Pos, size)
	for i := range size {
		line := make([]Pos, size)
		for k := range size {
			switch dir {
			case DirLeft:
				line[k] = Pos{Row: i, Col: k}
			case DirRight:
				line[k] = Pos{Row: i, Col: size - 1 - k}
			case DirUp:
				line[k] = Pos{Row: k, Col: i}
			case DirDown:
				line[k] = Pos{Row: size - 1 - k, Col: i}
			}
		}
		out[i] = line
	}
	return out
}

// Slide slides and merges every line of g toward the edge named by dir.
// g is left untouched; the result holds a fresh grid.
func Slide(g Grid, dir Direction) (SlideResult, error) {
	if !dir.Valid() {
		return SlideResult{}, fmt.Errorf("engine: slide %s: %w", dir, ErrInvalidDirection)
	}

	res := SlideResult{Grid: g.Clone()}

	for _, line := range lines(g.size, dir) {
		// Extract non-zero values in travel order, remembering where each came from
		values := make([]int, 0, len(line))
		origins := make([]Pos, 0, len(line))
		for _, p := range line {
			if v := g.At(p); v != 0 {
				values = append(values, v)
				origins = append(origins, p)
			}
		}

		tiles, score := mergeLineTracked(values)
		res.Score += score

		// Write back toward the start of the line, padding with empties
		for k, p := range line {
			newVal := 0
			if k < len(tiles) {
				newVal = tiles[k].Value
			}
			if g.At(p) != newVal {
				res.Changed = true
			}
			res.Grid.cells[res.Grid.index(p)] = newVal
		}

		for k, t := range tiles {
			for _, src := range t.Sources {
				from := origins[src]
				if from == line[k] && !t.Merged() {
					continue
				}
				res.Moves = append(res.Moves, TileMove{
					From:   from,
					To:     line[k],
					Value:  values[src],
					Merged: t.Merged(),
				})
			}
		}
	}

	return res, nil
}

// ApplyMove slides g in dir and returns the new grid, whether any cell
// changed, and the score gained from merges.
func ApplyMove(g Grid, dir Direction) (Grid, bool, int, error) {
	res, err := Slide(g, dir)
	if err != nil {
		return g.Clone(), false, 0, err
	}
	return res.Grid, res.Changed, res.Score, nil
}
