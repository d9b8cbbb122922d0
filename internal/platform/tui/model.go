// Package tui provides the Bubble Tea front end for t2048: the game
// screen, the score table and the SSH server that hosts both.
package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// highlightDuration is how long changed tiles stay highlighted.
const highlightDuration = 250 * time.Millisecond

// GameOptions configures a GameModel.
type GameOptions struct {
	Board  config.BoardConfig
	Seed   int64          // Seed of the first game; 0 picks a time-based seed
	Store  *storage.Store // Optional; nil disables scores and records
	Logger *log.Logger    // Optional
	Theme  *Theme         // Optional; DefaultTheme when nil
	Width  int
	Height int
}

// clearHighlightMsg ends the highlight started by the move with the same id.
type clearHighlightMsg int

// GameModel is the Bubble Tea model for one player's game session.
type GameModel struct {
	opts   GameOptions
	engine *engine.Engine
	logger *log.Logger
	keys   KeyMap
	help   help.Model
	theme  Theme

	highlights  map[engine.Pos]highlight
	highlightID int
	lastDelta   int
	status      string
	best        int
	wonNotified bool
	saved       bool      // Nothing happened since the last save
	gameID      uuid.UUID // Row of the current game's record, Nil until first saved
	scoreID     int64     // Row of the current game's score, 0 until game over
	quitting    bool
	width       int
	height      int
}

// NewGameModel creates a game model and starts the first game.
func NewGameModel(opts GameOptions) (GameModel, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	theme := DefaultTheme()
	if opts.Theme != nil {
		theme = *opts.Theme
	}

	m := GameModel{
		opts:   opts,
		engine: engine.New(engine.WithLogger(logger)),
		logger: logger,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		theme:  theme,
		width:  opts.Width,
		height: opts.Height,
	}
	m.help.Width = opts.Width

	if opts.Store != nil {
		best, err := opts.Store.HighScore(opts.Board.Variant())
		if err != nil {
			logger.Warn("could not load high score", "error", err)
		}
		m.best = best
	}

	if err := m.startGame(opts.Seed); err != nil {
		return GameModel{}, err
	}
	return m, nil
}

// startGame begins a new game. A zero seed is replaced by the clock.
func (m *GameModel) startGame(seed int64) error {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if err := m.engine.NewGame(m.opts.Board.EngineConfig(seed)); err != nil {
		return fmt.Errorf("tui: cannot start game: %w", err)
	}

	m.highlights = highlightsForChanges(m.engine.LastChanges())
	m.lastDelta = 0
	m.status = ""
	m.wonNotified = false
	m.saved = false
	m.gameID = uuid.Nil
	m.scoreID = 0
	return nil
}

// Init starts the highlight timer for the start tiles.
func (m GameModel) Init() tea.Cmd {
	return clearHighlightAfter(m.highlightID)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case clearHighlightMsg:
		if int(msg) == m.highlightID {
			m.highlights = nil
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	switch action {
	case ActionQuit:
		m.saveGame()
		m.quitting = true
		return m, tea.Quit

	case ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case ActionNewGame:
		m.saveGame()
		if err := m.startGame(0); err != nil {
			m.status = err.Error()
			return m, nil
		}
		return m, m.flash()

	case ActionUndo:
		if !m.engine.Undo() {
			m.status = "Nothing to undo"
			return m, nil
		}
		m.highlights = nil
		m.lastDelta = 0
		m.saved = false
		m.status = "Move undone"
		return m, nil
	}

	dir, ok := action.Direction()
	if !ok {
		return m, nil
	}

	out, err := m.engine.HandleMove(dir)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.status = ""
	if !out.Changed {
		m.lastDelta = 0
		return m, nil
	}

	m.lastDelta = out.ScoreDelta
	m.highlights = highlightsForMove(out)
	if out.Score > m.best {
		m.best = out.Score
	}
	if out.Won && !m.wonNotified {
		m.wonNotified = true
		m.status = fmt.Sprintf("You reached %d! Keep going.", m.opts.Board.Target)
	}

	// Save on game over; undo reopens the game for another save
	if out.GameOver {
		m.saveGame()
	}

	return m, m.flash()
}

// flash restarts the highlight timer.
func (m *GameModel) flash() tea.Cmd {
	m.highlightID++
	return clearHighlightAfter(m.highlightID)
}

func clearHighlightAfter(id int) tea.Cmd {
	return tea.Tick(highlightDuration, func(time.Time) tea.Msg {
		return clearHighlightMsg(id)
	})
}

// saveGame stores the game record, and the score when the game is over.
// Later saves of the same game rewrite its rows. Games without a single
// changed move are not worth keeping.
func (m *GameModel) saveGame() {
	if m.saved || m.opts.Store == nil || m.engine.Moves() == 0 {
		return
	}
	m.saved = true

	variant := m.opts.Board.Variant()
	gameOver := m.engine.GameOver()

	if gameOver {
		m.saveScore(variant)
	}

	id, err := m.opts.Store.SaveGame(storage.GameRecord{
		ID:       m.gameID,
		Variant:  variant,
		Record:   m.engine.Record(),
		Score:    m.engine.Score(),
		MaxTile:  m.engine.MaxTile(),
		GameOver: gameOver,
	})
	if err != nil {
		m.logger.Warn("could not save game", "error", err)
		return
	}
	m.gameID = id
	m.logger.Debug("game saved", "id", id, "score", m.engine.Score(), "game_over", gameOver)
}

func (m *GameModel) saveScore(variant string) {
	score, maxTile, moves := m.engine.Score(), m.engine.MaxTile(), m.engine.Moves()
	if m.scoreID != 0 {
		if err := m.opts.Store.UpdateScore(m.scoreID, score, maxTile, moves); err != nil {
			m.logger.Warn("could not update score", "error", err)
		}
		return
	}

	id, err := m.opts.Store.SaveScore(variant, score, maxTile, moves)
	if err != nil {
		m.logger.Warn("could not save score", "error", err)
		return
	}
	m.scoreID = id
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderHUD())
	b.WriteString("\n")
	b.WriteString(RenderBoard(m.engine.Grid(), m.highlights, m.theme))
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n\n")
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))

	if m.width <= 0 {
		return b.String()
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, b.String())
}

// renderHUD draws the title, score and best score.
func (m GameModel) renderHUD() string {
	t := m.theme
	score := t.HUDValue.Render(fmt.Sprintf("%d", m.engine.Score()))
	if m.lastDelta > 0 {
		score += t.HUDLabel.Render(fmt.Sprintf(" +%d", m.lastDelta))
	}

	parts := []string{
		t.HUDTitle.Render("2048"),
		t.HUDLabel.Render("Score ") + score,
		t.HUDLabel.Render("Best ") + t.HUDValue.Render(fmt.Sprintf("%d", m.best)),
		t.HUDLabel.Render("Moves ") + t.HUDValue.Render(fmt.Sprintf("%d", m.engine.Moves())),
	}
	return strings.Join(parts, "   ")
}

// renderStatus draws the game-over overlay or the last status message.
func (m GameModel) renderStatus() string {
	if m.engine.GameOver() {
		title := m.theme.OverlayTitle.Render("GAME OVER")
		detail := m.theme.OverlayText.Render(fmt.Sprintf("Max tile %d. Press n for a new game or u to undo.", m.engine.MaxTile()))
		return title + "  " + detail
	}
	return m.theme.OverlayText.Render(m.status)
}

// Engine returns the engine driving this model.
func (m GameModel) Engine() *engine.Engine {
	return m.engine
}

// IsQuitting returns true if the user requested to quit.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for a local game.
func Run(opts GameOptions) error {
	model, err := NewGameModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
