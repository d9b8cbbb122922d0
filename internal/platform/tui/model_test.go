package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

func newTestModel(t *testing.T, board config.BoardConfig, store *storage.Store) GameModel {
	t.Helper()

	m, err := NewGameModel(GameOptions{Board: board, Seed: 7, Store: store, Width: 80, Height: 24})
	if err != nil {
		t.Fatalf("NewGameModel() failed: %v", err)
	}
	return m
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()

	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func press(t *testing.T, m GameModel, msg tea.KeyMsg) (GameModel, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update() returned %T, want GameModel", next)
	}
	return gm, cmd
}

// playUntilOver cycles through the directions until no move is left.
func playUntilOver(t *testing.T, m GameModel) GameModel {
	t.Helper()

	keys := []tea.KeyMsg{
		{Type: tea.KeyLeft},
		{Type: tea.KeyUp},
		{Type: tea.KeyRight},
		{Type: tea.KeyDown},
	}
	for i := 0; i < 10000 && !m.Engine().GameOver(); i++ {
		m, _ = press(t, m, keys[i%len(keys)])
	}
	if !m.Engine().GameOver() {
		t.Fatal("game did not end")
	}
	return m
}

func TestNewGameModelStartsGame(t *testing.T) {
	m := newTestModel(t, config.Default().Board, nil)

	e := m.Engine()
	if !e.Started() {
		t.Fatal("engine not started")
	}
	if got := 16 - len(engine.EmptyCells(e.Grid())); got != 2 {
		t.Errorf("start tiles = %d, want 2", got)
	}
	if e.Config().Seed != 7 {
		t.Errorf("seed = %d, want 7", e.Config().Seed)
	}
	if len(m.highlights) != 2 {
		t.Errorf("start tiles highlighted = %d, want 2", len(m.highlights))
	}
}

func TestNewGameModelRejectsBadBoard(t *testing.T) {
	board := config.Default().Board
	board.Size = 1

	if _, err := NewGameModel(GameOptions{Board: board}); err == nil {
		t.Error("NewGameModel(size 1) error = nil")
	}
}

func TestModelMoveAndUndo(t *testing.T) {
	m := newTestModel(t, config.Default().Board, nil)
	before := m.Engine().Grid()

	// Try directions until one changes the board.
	var moved bool
	for _, k := range []tea.KeyMsg{{Type: tea.KeyLeft}, {Type: tea.KeyRight}, {Type: tea.KeyUp}, {Type: tea.KeyDown}} {
		m, _ = press(t, m, k)
		if m.Engine().Moves() == 1 {
			moved = true
			break
		}
	}
	if !moved {
		t.Fatal("no direction changed a two-tile board")
	}

	m, _ = press(t, m, runeKey("u"))
	if !m.Engine().Grid().Equal(before) {
		t.Errorf("grid after undo:\n%v\nwant\n%v", m.Engine().Grid(), before)
	}
	if m.status != "Move undone" {
		t.Errorf("status = %q, want %q", m.status, "Move undone")
	}
	if !strings.HasSuffix(m.Engine().Record().Moves, "z") {
		t.Errorf("record %q does not end with an undo", m.Engine().Record().Moves)
	}
}

func TestModelUndoWithoutMove(t *testing.T) {
	m := newTestModel(t, config.Default().Board, nil)

	m, _ = press(t, m, runeKey("z"))
	if m.status != "Nothing to undo" {
		t.Errorf("status = %q, want %q", m.status, "Nothing to undo")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, config.Default().Board, nil)

	m, cmd := press(t, m, runeKey("q"))
	if !m.IsQuitting() {
		t.Error("IsQuitting() = false after q")
	}
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command did not produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("View() after quit should be empty")
	}
}

func TestModelSavesOnceOnGameOver(t *testing.T) {
	store := openTestStore(t)
	board := config.Default().Board
	board.Size = 2

	m := newTestModel(t, board, store)
	m = playUntilOver(t, m)

	// Further key presses after game over must not save again.
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = press(t, m, runeKey("q"))

	scores, err := store.TopScores(board.Variant(), 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, want 1", len(scores))
	}
	if scores[0].Score != m.Engine().Score() || scores[0].MaxTile != m.Engine().MaxTile() {
		t.Errorf("saved score = %+v, want score %d max tile %d", scores[0], m.Engine().Score(), m.Engine().MaxTile())
	}

	games, err := store.RecentGames(10)
	if err != nil {
		t.Fatalf("RecentGames() failed: %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("saved %d games, want 1", len(games))
	}
	if !games[0].GameOver || games[0].Variant != "2048-2x2" {
		t.Errorf("saved game = %+v", games[0])
	}

	// The stored record replays to the same final state.
	replayed, err := engine.Replay(games[0].Record)
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	if replayed.Score() != games[0].Score || replayed.MaxTile() != games[0].MaxTile {
		t.Errorf("replay score/max = %d/%d, want %d/%d", replayed.Score(), replayed.MaxTile(), games[0].Score, games[0].MaxTile)
	}
}

func TestModelSavesGameContinuedAfterUndo(t *testing.T) {
	store := openTestStore(t)
	board := config.Default().Board
	board.Size = 3

	m := newTestModel(t, board, store)
	m = playUntilOver(t, m)
	firstMoves := m.Engine().Record().Moves

	m, _ = press(t, m, runeKey("u"))
	if m.Engine().GameOver() {
		t.Fatal("undo did not leave the game over state")
	}
	m = playUntilOver(t, m)
	m, _ = press(t, m, runeKey("q"))

	final := m.Engine().Record().Moves
	if len(final) <= len(firstMoves) {
		t.Fatalf("record did not grow after undo: %q then %q", firstMoves, final)
	}

	games, err := store.RecentGames(10)
	if err != nil {
		t.Fatalf("RecentGames() failed: %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("saved %d games, want 1", len(games))
	}
	got := games[0]
	if got.Record.Moves != final || !got.GameOver {
		t.Errorf("saved record = %q game over %v, want %q game over", got.Record.Moves, got.GameOver, final)
	}
	if got.Score != m.Engine().Score() || got.MaxTile != m.Engine().MaxTile() {
		t.Errorf("saved game score/max = %d/%d, want %d/%d", got.Score, got.MaxTile, m.Engine().Score(), m.Engine().MaxTile())
	}

	scores, err := store.TopScores(board.Variant(), 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, want 1", len(scores))
	}
	if scores[0].Score != m.Engine().Score() || scores[0].Moves != m.Engine().Moves() {
		t.Errorf("saved score = %+v, want score %d moves %d", scores[0], m.Engine().Score(), m.Engine().Moves())
	}

	replayed, err := engine.Replay(got.Record)
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	if replayed.Score() != got.Score {
		t.Errorf("replay score = %d, want %d", replayed.Score(), got.Score)
	}
}

func TestModelNewGameSavesUnfinishedRecord(t *testing.T) {
	store := openTestStore(t)
	m := newTestModel(t, config.Default().Board, store)

	for _, k := range []tea.KeyMsg{{Type: tea.KeyLeft}, {Type: tea.KeyRight}, {Type: tea.KeyUp}, {Type: tea.KeyDown}} {
		m, _ = press(t, m, k)
	}
	if m.Engine().Moves() == 0 {
		t.Fatal("no move changed the board")
	}

	m, _ = press(t, m, runeKey("n"))
	if m.Engine().Moves() != 0 || m.Engine().Record().Moves != "" {
		t.Error("new game did not reset the engine")
	}

	games, err := store.RecentGames(10)
	if err != nil {
		t.Fatalf("RecentGames() failed: %v", err)
	}
	if len(games) != 1 || games[0].GameOver {
		t.Fatalf("saved games = %+v, want one unfinished game", games)
	}
	scores, _ := store.TopScores("2048", 10)
	if len(scores) != 0 {
		t.Errorf("unfinished game saved %d scores, want 0", len(scores))
	}
}

func TestModelViewShowsScoreAndGameOver(t *testing.T) {
	board := config.Default().Board
	board.Size = 2
	m := newTestModel(t, board, nil)

	view := m.View()
	if !strings.Contains(view, "Score") || !strings.Contains(view, "Best") {
		t.Errorf("View() missing HUD:\n%s", view)
	}

	m = playUntilOver(t, m)
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Errorf("View() after game over missing overlay:\n%s", m.View())
	}
}

func TestClearHighlightIgnoresStaleTimer(t *testing.T) {
	m := newTestModel(t, config.Default().Board, nil)
	m.highlightID = 3
	m.highlights = map[engine.Pos]highlight{{Row: 0, Col: 0}: highlightSpawned}

	next, _ := m.Update(clearHighlightMsg(2))
	m = next.(GameModel)
	if m.highlights == nil {
		t.Error("stale timer cleared current highlights")
	}

	next, _ = m.Update(clearHighlightMsg(3))
	m = next.(GameModel)
	if m.highlights != nil {
		t.Error("current timer did not clear highlights")
	}
}
