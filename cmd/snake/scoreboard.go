package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var flagBoardPlayer string

var scoreboardCmd = &cobra.Command{
	Use:   "scoreboard",
	Short: "Browse scores interactively",
	Long: `Open the interactive scoreboard.

Controls:
  Tab/Right    - Next list
  Shift+Tab    - Previous list
  Up/Down      - Scroll
  Q/Esc        - Quit

Examples:
  snake scoreboard
  snake scoreboard --player ann`,
	Args: cobra.NoArgs,
	Run:  runScoreboard,
}

func init() {
	scoreboardCmd.Flags().StringVar(&flagBoardPlayer, "player", "", "Player for the \"my best\" list (default: $USER)")
}

func runScoreboard(_ *cobra.Command, _ []string) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	player := flagBoardPlayer
	if player == "" {
		player = currentPlayer()
	}

	// The scoreboard shows its own message when the database is missing
	var reader tui.ScoreReader
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
	} else {
		defer store.Close()
		reader = store
	}

	if err := tui.RunScoreboard(reader, player, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
		os.Exit(1)
	}
}
