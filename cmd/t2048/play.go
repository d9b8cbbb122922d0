package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of 2048 in the terminal.

Controls:
  Arrows/WASD/HJKL  - Slide tiles
  U/Z               - Undo the last move
  N/R               - New game
  ?                 - Show all keys
  Q/Esc/Ctrl+C      - Quit

The score is saved when the game ends. Every game with at least one move
is saved as a record that 't2048 replay' can play back.

Examples:
  t2048 play
  t2048 play --preset hard
  t2048 play --size 5 --seed 42
  t2048 play --pick                # Choose a preset from a menu
  t2048 play --mono                # No colours
  t2048 play --config ./my-t2048.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

var (
	flagPick bool
	flagMono bool
)

func init() {
	playCmd.Flags().BoolVar(&flagPick, "pick", false, "Choose the board from a preset menu before playing")
	playCmd.Flags().BoolVar(&flagMono, "mono", os.Getenv("NO_COLOR") != "", "Render without colours (default when NO_COLOR is set)")
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg := mustLoadSettings(cmd)
	logger := newLogger(cfg.Log.Level)

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: play needs an interactive terminal")
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	board := cfg.Board
	if flagPick {
		picked, ok, pickErr := tui.RunPicker(board, width, height)
		if pickErr != nil {
			fmt.Fprintf(os.Stderr, "Error running picker: %v\n", pickErr)
			os.Exit(1)
		}
		if !ok {
			return
		}
		board = picked
	}

	// Open score storage
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "error", err)
	} else {
		defer store.Close()
	}

	var theme *tui.Theme
	if flagMono {
		mono := tui.MonochromeTheme()
		theme = &mono
	}

	err = tui.Run(tui.GameOptions{
		Board:  board,
		Seed:   flagSeed,
		Store:  store,
		Logger: logger,
		Theme:  theme,
		Width:  width,
		Height: height,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
