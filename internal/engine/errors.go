package engine

import "errors"

var (
	// ErrInvalidDirection is returned for a Direction outside Up/Down/Left/Right.
	ErrInvalidDirection = errors.New("invalid direction")

	// ErrInvalidConfig is returned by NewGame for an unusable Config.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrInvalidGrid is returned when building a grid from malformed rows.
	ErrInvalidGrid = errors.New("invalid grid")

	// ErrNotStarted is returned by HandleMove before the first NewGame.
	ErrNotStarted = errors.New("game not started")
)

// ErrInvalidRecord is returned by Replay for a move string it cannot decode.
var ErrInvalidRecord = errors.New("invalid record")
