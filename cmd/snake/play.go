package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tcellhost"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/session"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

const (
	frontendTUI   = "tui"
	frontendTcell = "tcell"
)

var (
	flagFrontend string
	flagPlayer   string
	flagTickRate int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in this terminal",
	Long: `Start a game of snake in this terminal.

Controls:
  Arrows/WASD/HJKL  - Steer
  +/-               - Zoom in/out
  R                 - Restart (after game over)
  Ctrl+S            - Save a screenshot
  Q/Esc/Ctrl+C      - Quit

Frontends:
  tui    - Bubble Tea renderer (default)
  tcell  - Direct tcell screen

Examples:
  snake play
  snake play --frontend tcell
  snake play --tick-rate 10
  snake play --seed 42 --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagFrontend, "frontend", frontendTUI, "Renderer: tui or tcell")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Player name for scores (default: $USER)")
	playCmd.Flags().IntVar(&flagTickRate, "tick-rate", 0, "Game ticks per second (0 = from config)")
}

func runPlay(_ *cobra.Command, _ []string) {
	if flagFrontend != frontendTUI && flagFrontend != frontendTcell {
		fmt.Fprintf(os.Stderr, "Error: unknown frontend %q (use %s or %s)\n", flagFrontend, frontendTUI, frontendTcell)
		os.Exit(1)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagTickRate > 0 {
		cfg.Timing.TickRate = flagTickRate
	}

	logger, closeLog, err := openLogger("snake")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	player := flagPlayer
	if player == "" {
		player = currentPlayer()
	}

	opts := session.Options{
		Config: cfg,
		Player: player,
		Seed:   flagSeed,
		Logger: logger,
		Width:  width,
		Height: height,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without scores", "error", err)
		// Continue without storage - game still works
	} else {
		defer store.Close()
		opts.Store = store
	}

	s, err := session.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting game: %v\n", err)
		os.Exit(1)
	}

	var runErr error
	switch flagFrontend {
	case frontendTcell:
		runErr = tcellhost.Play(s)
	default:
		runErr = tui.Run(s)
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
