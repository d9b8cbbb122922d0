package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

// ErrGameNotFound is returned by LoadGame for an unknown ID.
var ErrGameNotFound = errors.New("storage: game not found")

// GameRecord is a stored game that can be replayed from its seed.
type GameRecord struct {
	ID        uuid.UUID
	Variant   string
	Record    engine.Record
	Score     int
	MaxTile   int
	GameOver  bool
	CreatedAt time.Time
}

// SaveGame stores a game record. A zero ID is replaced with a fresh
// random UUID; the ID used is returned. Saving an existing ID overwrites
// the stored record but keeps its creation time.
func (s *Store) SaveGame(g GameRecord) (uuid.UUID, error) {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	cfg := g.Record.Config

	_, err := s.db.Exec(
		`INSERT INTO games
		 (id, variant, seed, size, start_tiles, prob_four, target, moves, score, max_tile, game_over)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   variant = excluded.variant,
		   seed = excluded.seed,
		   size = excluded.size,
		   start_tiles = excluded.start_tiles,
		   prob_four = excluded.prob_four,
		   target = excluded.target,
		   moves = excluded.moves,
		   score = excluded.score,
		   max_tile = excluded.max_tile,
		   game_over = excluded.game_over`,
		g.ID.String(),
		g.Variant,
		cfg.Seed,
		cfg.Size,
		cfg.StartTiles,
		cfg.ProbFour,
		cfg.Target,
		g.Record.Moves,
		g.Score,
		g.MaxTile,
		g.GameOver,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("storage: cannot save game: %w", err)
	}
	return g.ID, nil
}

const gameColumns = `id, variant, seed, size, start_tiles, prob_four, target, moves, score, max_tile, game_over, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGame(row rowScanner) (GameRecord, error) {
	var g GameRecord
	var id string
	var createdAt any
	cfg := &g.Record.Config

	if err := row.Scan(
		&id,
		&g.Variant,
		&cfg.Seed,
		&cfg.Size,
		&cfg.StartTiles,
		&cfg.ProbFour,
		&cfg.Target,
		&g.Record.Moves,
		&g.Score,
		&g.MaxTile,
		&g.GameOver,
		&createdAt,
	); err != nil {
		return g, err
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return g, fmt.Errorf("storage: bad game id %q: %w", id, err)
	}
	g.ID = parsed
	g.CreatedAt = parseTime(createdAt)
	return g, nil
}

// LoadGame retrieves a game record by ID.
func (s *Store) LoadGame(id uuid.UUID) (*GameRecord, error) {
	row := s.db.QueryRow(`SELECT `+gameColumns+` FROM games WHERE id = ?`, id.String())

	g, err := scanGame(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGameNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query game: %w", err)
	}
	return &g, nil
}

// RecentGames retrieves the most recently saved games.
func (s *Store) RecentGames(limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+gameColumns+` FROM games ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var games []GameRecord
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		games = append(games, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return games, nil
}
