package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

// highlight marks a cell touched by the last change.
type highlight int

const (
	highlightNone highlight = iota
	highlightSpawned
	highlightMerged
)

const (
	minCellWidth = 6
	cellHeight   = 3
)

// highlightsForMove marks merge destinations and the spawned tile of a move.
func highlightsForMove(out engine.MoveOutcome) map[engine.Pos]highlight {
	hl := make(map[engine.Pos]highlight)
	for _, mv := range out.Moves {
		if mv.Merged {
			hl[mv.To] = highlightMerged
		}
	}
	if out.Spawned != nil {
		hl[out.Spawned.Pos] = highlightSpawned
	}
	return hl
}

// highlightsForChanges marks every cell that gained a tile, e.g. the start
// tiles of a new game.
func highlightsForChanges(changes []engine.CellChange) map[engine.Pos]highlight {
	hl := make(map[engine.Pos]highlight)
	for _, c := range changes {
		if c.Kind == engine.ChangeAdded {
			hl[c.Pos] = highlightSpawned
		}
	}
	return hl
}

// cellWidth fits the widest tile on the board with one column of padding
// on each side.
func cellWidth(g engine.Grid) int {
	w := len(strconv.Itoa(engine.MaxTile(g))) + 2
	if w < minCellWidth {
		w = minCellWidth
	}
	return w
}

// RenderBoard draws the grid as a framed block of colored tiles.
func RenderBoard(g engine.Grid, hl map[engine.Pos]highlight, theme Theme) string {
	width := cellWidth(g)
	rows := make([]string, 0, g.Size())

	for r := range g.Size() {
		cells := make([]string, 0, g.Size())
		for c := range g.Size() {
			pos := engine.Pos{Row: r, Col: c}
			v := g.At(pos)

			style := theme.TileStyle(v).
				Width(width).
				Height(cellHeight).
				Align(lipgloss.Center, lipgloss.Center)
			switch hl[pos] {
			case highlightSpawned:
				style = style.Inherit(theme.Spawned)
			case highlightMerged:
				style = style.Inherit(theme.Merged)
			}

			label := "·"
			if v != 0 {
				label = strconv.Itoa(v)
			}
			cells = append(cells, style.Render(label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	board := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(board)
}

// centerText pads text to be centered within the given width.
func centerText(text string, width int) string {
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}
