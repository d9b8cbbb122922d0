package engine

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Size limits accepted by Config.Validate.
const (
	MinSize     = 2
	MaxSize     = 16
	DefaultSize = 4
)

// Config holds the parameters of one game.
type Config struct {
	Size       int     // Side length of the grid
	StartTiles int     // Tiles spawned by NewGame
	ProbFour   float64 // Probability of spawning a 4 instead of a 2
	Target     int     // Tile value that sets Won; 0 disables
	Seed       int64   // Seed for the built-in random source
}

// DefaultConfig returns the classic 4x4 rules.
func DefaultConfig() Config {
	return Config{
		Size:       DefaultSize,
		StartTiles: 2,
		ProbFour:   DefaultProbFour,
		Target:     2048,
	}
}

// Validate checks that the config describes a playable game.
func (c Config) Validate() error {
	if c.Size < MinSize || c.Size > MaxSize {
		return fmt.Errorf("engine: size %d outside [%d, %d]: %w", c.Size, MinSize, MaxSize, ErrInvalidConfig)
	}
	if c.StartTiles < 0 || c.StartTiles > c.Size*c.Size {
		return fmt.Errorf("engine: start tiles %d outside [0, %d]: %w", c.StartTiles, c.Size*c.Size, ErrInvalidConfig)
	}
	if c.ProbFour < 0 || c.ProbFour > 1 {
		return fmt.Errorf("engine: prob four %v outside [0, 1]: %w", c.ProbFour, ErrInvalidConfig)
	}
	if !validCell(c.Target) {
		return fmt.Errorf("engine: target %d is not a power of two: %w", c.Target, ErrInvalidConfig)
	}
	return nil
}

// MoveOutcome describes the result of one HandleMove call.
type MoveOutcome struct {
	Direction  Direction
	Changed    bool
	ScoreDelta int
	Score      int
	GameOver   bool
	Won        bool
	Spawned    *Spawn
	Moves      []TileMove   // Tiles that travelled or merged
	Changes    []CellChange // Per-cell diff against the pre-move grid
}

// undoSlot is the single retained pre-move state.
type undoSlot struct {
	grid  Grid
	score int
	moves int
}

// Engine owns the authoritative grid, score and undo slot of one game.
// It is not safe for concurrent use; callers serialise NewGame, HandleMove
// and Undo.
type Engine struct {
	cfg      Config
	rng      Rand
	fixedRng bool
	logger   *log.Logger

	started bool
	grid    Grid
	score   int
	moves   int
	undo    *undoSlot
	changes []CellChange
	history []byte // move codes since NewGame, see Record
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand injects the random source used for spawning. When set, NewGame
// keeps using it instead of reseeding from Config.Seed.
func WithRand(r Rand) Option {
	return func(e *Engine) {
		e.rng = r
		e.fixedRng = r != nil
	}
}

// WithLogger sets a logger for debug events. Nil disables logging.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// New creates an engine. No game is in progress until NewGame is called.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewGame validates cfg, clears the board, score and undo slot, and spawns
// cfg.StartTiles tiles.
func (e *Engine) NewGame(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	e.cfg = cfg
	if !e.fixedRng {
		e.rng = NewRand(cfg.Seed)
	}

	e.started = true
	e.grid = NewGrid(cfg.Size)
	e.score = 0
	e.moves = 0
	e.undo = nil
	e.history = e.history[:0]

	for range cfg.StartTiles {
		e.spawn()
	}

	e.changes = Diff(NewGrid(cfg.Size), e.grid)
	e.debug("new game", "size", cfg.Size, "start_tiles", cfg.StartTiles, "seed", cfg.Seed)
	return nil
}

// spawn places one random tile. Returns nil on a full board.
func (e *Engine) spawn() *Spawn {
	next, s, ok := SpawnRandomTile(e.grid, e.rng, e.cfg.ProbFour)
	if !ok {
		return nil
	}
	e.grid = next
	return &s
}

// HandleMove slides the board in dir. The pre-move state is stored in the
// undo slot whether or not anything changes. On a change the score is
// updated and exactly one tile is spawned if a cell is free.
// Moves are still evaluated after game over.
func (e *Engine) HandleMove(dir Direction) (MoveOutcome, error) {
	if !e.started {
		return MoveOutcome{}, fmt.Errorf("engine: move %s: %w", dir, ErrNotStarted)
	}
	if !dir.Valid() {
		return MoveOutcome{}, fmt.Errorf("engine: move %s: %w", dir, ErrInvalidDirection)
	}

	e.undo = &undoSlot{grid: e.grid.Clone(), score: e.score, moves: e.moves}
	e.history = append(e.history, dir.Code())

	res, err := Slide(e.grid, dir)
	if err != nil {
		return MoveOutcome{}, err
	}

	out := MoveOutcome{Direction: dir, Changed: res.Changed}

	if res.Changed {
		before := e.grid
		e.grid = res.Grid
		e.score += res.Score
		e.moves++
		out.ScoreDelta = res.Score
		out.Moves = res.Moves
		out.Spawned = e.spawn()
		e.changes = Diff(before, e.grid)
		if IsGameOver(e.grid) {
			e.debug("game over", "score", e.score, "max_tile", MaxTile(e.grid), "moves", e.moves)
		}
	} else {
		e.changes = nil
	}

	out.Changes = e.changes
	out.Score = e.score
	out.GameOver = e.GameOver()
	out.Won = e.Won()
	return out, nil
}

// MoveUp is HandleMove(DirUp).
func (e *Engine) MoveUp() (MoveOutcome, error) { return e.HandleMove(DirUp) }

// MoveDown is HandleMove(DirDown).
func (e *Engine) MoveDown() (MoveOutcome, error) { return e.HandleMove(DirDown) }

// MoveLeft is HandleMove(DirLeft).
func (e *Engine) MoveLeft() (MoveOutcome, error) { return e.HandleMove(DirLeft) }

// MoveRight is HandleMove(DirRight).
func (e *Engine) MoveRight() (MoveOutcome, error) { return e.HandleMove(DirRight) }

// Undo restores the grid and score stored by the last HandleMove.
// The slot is kept, so calling Undo again restores the same state.
// Returns false when no move has been attempted since NewGame.
func (e *Engine) Undo() bool {
	if e.undo == nil {
		return false
	}

	before := e.grid
	e.grid = e.undo.grid.Clone()
	e.score = e.undo.score
	e.moves = e.undo.moves
	e.changes = Diff(before, e.grid)
	e.history = append(e.history, UndoCode)
	return true
}

func (e *Engine) debug(msg string, keyvals ...any) {
	if e.logger != nil {
		e.logger.Debug(msg, keyvals...)
	}
}

// Started reports whether NewGame has succeeded at least once.
func (e *Engine) Started() bool {
	return e.started
}

// Config returns the config of the current game.
func (e *Engine) Config() Config {
	return e.cfg
}

// Grid returns a copy of the current grid.
func (e *Engine) Grid() Grid {
	return e.grid.Clone()
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// Moves returns the number of moves that changed the board.
func (e *Engine) Moves() int {
	return e.moves
}

// MaxTile returns the highest tile on the board.
func (e *Engine) MaxTile() int {
	return MaxTile(e.grid)
}

// GameOver reports whether no move can change the board.
func (e *Engine) GameOver() bool {
	return e.started && IsGameOver(e.grid)
}

// Won reports whether the target tile has been reached. It never blocks
// further moves.
func (e *Engine) Won() bool {
	return e.started && e.cfg.Target > 0 && MaxTile(e.grid) >= e.cfg.Target
}

// CanUndo reports whether the undo slot holds a state.
func (e *Engine) CanUndo() bool {
	return e.undo != nil
}

// LastChanges returns the per-cell diff produced by the last NewGame,
// changed HandleMove or Undo.
func (e *Engine) LastChanges() []CellChange {
	out := make([]CellChange, len(e.changes))
	copy(out, e.changes)
	return out
}
