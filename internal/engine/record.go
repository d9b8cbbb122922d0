package engine

import (
	"fmt"
)

// UndoCode marks a successful Undo in a record's move string.
const UndoCode = 'z'

// Record is enough to reproduce a game: the config (seed included) and the
// code of every evaluated move in order. Moves uses Direction.Code for
// moves and UndoCode for undos.
type Record struct {
	Config Config
	Moves  string
}

// Record returns the record of the current game.
func (e *Engine) Record() Record {
	return Record{Config: e.cfg, Moves: string(e.history)}
}

// Replay plays rec through a fresh engine built with opts. The result is
// only reproducible when no WithRand option overrides the seeded source.
func Replay(rec Record, opts ...Option) (*Engine, error) {
	e := New(opts...)
	if err := e.NewGame(rec.Config); err != nil {
		return nil, err
	}

	for i := 0; i < len(rec.Moves); i++ {
		c := rec.Moves[i]
		if c == UndoCode {
			if !e.Undo() {
				return nil, fmt.Errorf("engine: replay: undo at %d without a prior move: %w", i, ErrInvalidRecord)
			}
			continue
		}
		dir, err := ParseDirection(string(c))
		if err != nil || c != dir.Code() {
			return nil, fmt.Errorf("engine: replay: bad move code %q at %d: %w", c, i, ErrInvalidRecord)
		}
		if _, err := e.HandleMove(dir); err != nil {
			return nil, err
		}
	}
	return e, nil
}
