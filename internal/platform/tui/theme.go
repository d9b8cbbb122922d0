package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the visual styles of the game screen.
type Theme struct {
	// Tile colors by value, 2 through 2048. Larger tiles use Super.
	Tiles map[int]lipgloss.Style
	Super lipgloss.Style
	Empty lipgloss.Style

	// Changeset highlights
	Spawned lipgloss.Style
	Merged  lipgloss.Style

	Border lipgloss.Color

	// HUD styles
	HUDTitle lipgloss.Style
	HUDLabel lipgloss.Style
	HUDValue lipgloss.Style

	// Overlay styles
	OverlayTitle lipgloss.Style
	OverlayText  lipgloss.Style
	Help         lipgloss.Style
}

func tile(fg, bg string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg)).
		Bold(true)
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Tiles: map[int]lipgloss.Style{
			2:    tile("235", "255"),
			4:    tile("235", "230"),
			8:    tile("255", "215"),
			16:   tile("255", "209"),
			32:   tile("255", "203"),
			64:   tile("255", "196"),
			128:  tile("235", "227"),
			256:  tile("235", "226"),
			512:  tile("235", "220"),
			1024: tile("235", "214"),
			2048: tile("235", "178"),
		},
		Super: tile("255", "57"),
		Empty: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),

		Spawned: lipgloss.NewStyle().Underline(true),
		Merged:  lipgloss.NewStyle().Blink(true),

		Border: lipgloss.Color("240"),

		HUDTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		HUDLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		HUDValue: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),

		OverlayTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		OverlayText:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Help:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// MonochromeTheme returns a theme without background colors, for
// terminals with a limited palette.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	plain := lipgloss.NewStyle().Bold(true)
	for v := range theme.Tiles {
		theme.Tiles[v] = plain
	}
	theme.Super = plain.Reverse(true)
	return theme
}

// TileStyle returns the style for a tile value.
func (t Theme) TileStyle(v int) lipgloss.Style {
	if v == 0 {
		return t.Empty
	}
	if s, ok := t.Tiles[v]; ok {
		return s
	}
	return t.Super
}
