// Package engine implements the rules of the 2048 sliding-tile puzzle:
// line merging, directional slides, tile spawning, terminal detection and a
// single-level undo. It has no terminal or rendering dependencies; front-ends
// drive an Engine and consume the changesets it returns.
package engine

import (
	"fmt"
	"strings"
)

// Pos is a zero-based cell coordinate.
type Pos struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// String returns "(row,col)".
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Grid is a square board of cell values. 0 is an empty cell, any other value
// is a power of two. Grid has value semantics through Clone and With; the
// zero Grid has size 0.
type Grid struct {
	size  int
	cells []int
}

// NewGrid returns an empty size x size grid.
func NewGrid(size int) Grid {
	if size < 0 {
		panic(fmt.Sprintf("engine: negative grid size %d", size))
	}
	return Grid{
		size:  size,
		cells: make([]int, size*size),
	}
}

// GridFromRows builds a grid from row-major values. All rows must have the
// same length as the number of rows.
func GridFromRows(rows [][]int) (Grid, error) {
	g := NewGrid(len(rows))
	for r, row := range rows {
		if len(row) != len(rows) {
			return Grid{}, fmt.Errorf("engine: row %d has %d cells, want %d: %w", r, len(row), len(rows), ErrInvalidGrid)
		}
		for c, v := range row {
			if !validCell(v) {
				return Grid{}, fmt.Errorf("engine: cell (%d,%d) = %d: %w", r, c, v, ErrInvalidGrid)
			}
			g.cells[r*g.size+c] = v
		}
	}
	return g, nil
}

// MustGrid is GridFromRows that panics on error. Intended for tests and
// literals.
func MustGrid(rows [][]int) Grid {
	g, err := GridFromRows(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// validCell reports whether v is 0 or a power of two >= 2.
func validCell(v int) bool {
	if v == 0 {
		return true
	}
	return v >= 2 && v&(v-1) == 0
}

// Size returns the side length.
func (g Grid) Size() int {
	return g.size
}

// InBounds reports whether p is a cell of the grid.
func (g Grid) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.size && p.Col >= 0 && p.Col < g.size
}

func (g Grid) index(p Pos) int {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("engine: position %s out of range for %dx%d grid", p, g.size, g.size))
	}
	return p.Row*g.size + p.Col
}

// At returns the value at p. Panics if p is out of range.
func (g Grid) At(p Pos) int {
	return g.cells[g.index(p)]
}

// With returns a copy of g with p set to v. Panics if p is out of range or v
// is not a valid cell value.
func (g Grid) With(p Pos, v int) Grid {
	if !validCell(v) {
		panic(fmt.Sprintf("engine: invalid cell value %d", v))
	}
	out := g.Clone()
	out.cells[out.index(p)] = v
	return out
}

// Clone returns a grid that shares no storage with g.
func (g Grid) Clone() Grid {
	out := Grid{size: g.size, cells: make([]int, len(g.cells))}
	copy(out.cells, g.cells)
	return out
}

// Equal reports whether both grids have the same size and values.
func (g Grid) Equal(other Grid) bool {
	if g.size != other.size {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Rows returns a row-major copy of the values.
func (g Grid) Rows() [][]int {
	rows := make([][]int, g.size)
	for r := range g.size {
		rows[r] = make([]int, g.size)
		copy(rows[r], g.cells[r*g.size:(r+1)*g.size])
	}
	return rows
}

// Sum returns the total of all cell values.
func (g Grid) Sum() int {
	total := 0
	for _, v := range g.cells {
		total += v
	}
	return total
}

// String renders the grid as right-aligned columns, one row per line.
func (g Grid) String() string {
	var sb strings.Builder
	for r := range g.size {
		for c := range g.size {
			if c > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%5d", g.cells[r*g.size+c])
		}
		if r < g.size-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
