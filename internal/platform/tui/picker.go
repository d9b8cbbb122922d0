package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
)

// PickerEntry is one board choice offered by the picker.
type PickerEntry struct {
	Name        string
	Description string
	Board       config.BoardConfig
}

// PickerEntries lists the given board first, followed by every preset
// applied on top of it.
func PickerEntries(base config.BoardConfig) []PickerEntry {
	entries := []PickerEntry{{
		Name:        "default",
		Description: fmt.Sprintf("%dx%d, target %d", base.Size, base.Size, base.Target),
		Board:       base,
	}}
	for _, name := range config.PresetNames() {
		cfg := config.Config{Board: base}
		//nolint:errcheck // Names come from PresetNames
		config.ApplyPreset(&cfg, name)
		entries = append(entries, PickerEntry{
			Name:        name,
			Description: config.Presets[name].Description,
			Board:       cfg.Board,
		})
	}
	return entries
}

// pickerKeyMap defines the key bindings of the picker.
type pickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

func defaultPickerKeyMap() pickerKeyMap {
	return pickerKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "w", "k")),
		Down:   key.NewBinding(key.WithKeys("down", "s", "j")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

// PickerModel lets users choose the board rules before a game.
type PickerModel struct {
	entries      []PickerEntry
	cursor       int
	keys         pickerKeyMap
	width        int
	height       int
	quitOnSelect bool
	selected     *PickerEntry
	quitting     bool
}

// NewPickerModel creates a picker over entries.
func NewPickerModel(entries []PickerEntry, width, height int) PickerModel {
	return PickerModel{
		entries: entries,
		keys:    defaultPickerKeyMap(),
		width:   width,
		height:  height,
	}
}

// Init initializes the model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			if len(m.entries) == 0 {
				return m, nil
			}
			entry := m.entries[m.cursor]
			m.selected = &entry
			if m.quitOnSelect {
				return m, tea.Quit
			}
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// View renders the board choices.
func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	active := lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	b.WriteString("\n")
	b.WriteString(centerText(title.Render("2 0 4 8"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select board:", m.width))
	b.WriteString("\n\n")

	for i, e := range m.entries {
		line := fmt.Sprintf("  %-8s %s", e.Name, dim.Render(e.Description))
		if i == m.cursor {
			line = active.Render("> "+fmt.Sprintf("%-8s", e.Name)) + " " + dim.Render(e.Description)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dim.Render("Enter: Select  |  Q: Quit"), m.width))

	return b.String()
}

// Selected returns the chosen entry, or nil if still choosing.
func (m PickerModel) Selected() *PickerEntry {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m PickerModel) IsQuitting() bool {
	return m.quitting
}

// RunPicker runs the picker on its own and returns the chosen board.
// ok is false when the user quit without choosing.
func RunPicker(base config.BoardConfig, width, height int) (board config.BoardConfig, ok bool, err error) {
	model := NewPickerModel(PickerEntries(base), width, height)
	model.quitOnSelect = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return base, false, err
	}

	m, isPicker := finalModel.(PickerModel)
	if !isPicker || m.Selected() == nil {
		return base, false, nil
	}
	return m.Selected().Board, true, nil
}

// SessionModel manages one SSH session: picker first, then the game.
type SessionModel struct {
	picker   PickerModel
	game     *GameModel
	opts     GameOptions
	quitting bool
}

// NewSessionModel creates a session that offers presets on top of
// opts.Board before starting the game.
func NewSessionModel(opts GameOptions) SessionModel {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return SessionModel{
		picker: NewPickerModel(PickerEntries(opts.Board), opts.Width, opts.Height),
		opts:   opts,
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.picker.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Width = wsm.Width
		m.opts.Height = wsm.Height
	}

	if m.game != nil {
		next, cmd := m.game.Update(msg)
		if gm, ok := next.(GameModel); ok {
			m.game = &gm
		}
		if m.game.IsQuitting() {
			m.quitting = true
		}
		return m, cmd
	}

	next, cmd := m.picker.Update(msg)
	if pm, ok := next.(PickerModel); ok {
		m.picker = pm
	}
	if m.picker.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if selected := m.picker.Selected(); selected != nil {
		opts := m.opts
		opts.Board = selected.Board
		gm, err := NewGameModel(opts)
		if err != nil {
			m.opts.Logger.Error("cannot start game", "error", err)
			m.quitting = true
			return m, tea.Quit
		}
		m.game = &gm
		return m, m.game.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.game != nil {
		return m.game.View()
	}
	return m.picker.View()
}
