package engine

import "math/rand"

// DefaultProbFour is the default probability of spawning a 4 instead of a 2.
const DefaultProbFour = 0.10

// Rand is the random source the spawn policy draws from. *rand.Rand
// satisfies it; tests supply scripted sequences.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// NewRand returns a deterministic source for the given seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Spawn records a tile placed by the spawn policy.
type Spawn struct {
	Pos   Pos `json:"pos"`
	Value int `json:"value"`
}

// EmptyCells returns coordinates of all empty cells in row-major order.
func EmptyCells(g Grid) []Pos {
	var cells []Pos
	for r := range g.size {
		for c := range g.size {
			if g.cells[r*g.size+c] == 0 {
				cells = append(cells, Pos{Row: r, Col: c})
			}
		}
	}
	return cells
}

// SpawnRandomTile places a 2 or a 4 in a uniformly chosen empty cell.
// The cell is drawn first, then the value: 4 with probability probFour.
// When the grid is full it returns g unchanged and ok == false.
func SpawnRandomTile(g Grid, rng Rand, probFour float64) (next Grid, spawned Spawn, ok bool) {
	emptyCells := EmptyCells(g)
	if len(emptyCells) == 0 {
		return g, Spawn{}, false
	}

	cell := emptyCells[rng.Intn(len(emptyCells))]

	value := 2
	if rng.Float64() < probFour {
		value = 4
	}

	return g.With(cell, value), Spawn{Pos: cell, Value: value}, true
}
