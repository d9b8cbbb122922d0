package engine

// GameStateType represents the current game state.
type GameStateType string

const (
	StateNotStarted GameStateType = "not_started"
	StatePlaying    GameStateType = "playing"
	StateWon        GameStateType = "won"
	StateGameOver   GameStateType = "game_over"
)

// Snapshot captures the visible game state for presentation, persistence of
// results and determinism checks.
type Snapshot struct {
	Size    int           `json:"size"`
	Board   [][]int       `json:"board"`
	Score   int           `json:"score"`
	Moves   int           `json:"moves"`
	MaxTile int           `json:"max_tile"`
	Target  int           `json:"target"`
	CanUndo bool          `json:"can_undo"`
	State   GameStateType `json:"state"`
}

// State returns the current game state. Game over takes precedence over won.
func (e *Engine) State() GameStateType {
	switch {
	case !e.started:
		return StateNotStarted
	case e.GameOver():
		return StateGameOver
	case e.Won():
		return StateWon
	default:
		return StatePlaying
	}
}

// Snapshot returns the current game snapshot.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Size:    e.grid.Size(),
		Board:   e.grid.Rows(),
		Score:   e.score,
		Moves:   e.moves,
		MaxTile: MaxTile(e.grid),
		Target:  e.cfg.Target,
		CanUndo: e.undo != nil,
		State:   e.State(),
	}
}
