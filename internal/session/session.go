// Package session runs one player's snake games for a terminal host. It owns
// the engine, the tick scheduler and the screen buffer, and turns host input
// into game actions. Hosts only supply frames, key names and a way to show the
// screen.
package session

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/scheduler"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// DefaultPlayer names the player when a host does not know one.
const DefaultPlayer = "player"

// ScoreStore is the persistence a session needs. *storage.Store satisfies it.
type ScoreStore interface {
	SaveScore(r storage.GameResult) (int64, error)
	Zoom(player string, def int) (int, error)
	SetZoom(player string, zoom int) error
}

// Options configure a session.
type Options struct {
	Config        config.SnakeConfig
	Player        string
	Seed          int64       // Fixed seed for the first game; 0 uses the clock
	Store         ScoreStore  // Optional
	Logger        *log.Logger // Optional; nil discards
	ScreenshotDir string      // Defaults to ~/.snake/screenshots
	Width         int
	Height        int
}

// Outcome tells the host what to do after an action.
type Outcome int

const (
	// Continue needs nothing beyond a redraw.
	Continue Outcome = iota
	// Restarted means a new game began and the host must resume its frames.
	Restarted
	// Quit means the player asked to leave.
	Quit
)

// Session plays consecutive games for one player.
type Session struct {
	opts     Options
	keys     KeyMap
	logger   *log.Logger
	renderer *snake.Renderer
	screen   *core.Screen
	game     *snake.Game
	sched    *scheduler.Scheduler
	seed     int64
	games    int
	saved    bool
}

// New validates the configuration and starts the first game.
func New(opts Options) (*Session, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}
	palette, err := opts.Config.Palette()
	if err != nil {
		return nil, err
	}
	if opts.Player == "" {
		opts.Player = DefaultPlayer
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	zoom := opts.Config.Display.Zoom
	if opts.Store != nil {
		saved, err := opts.Store.Zoom(opts.Player, zoom)
		if err != nil {
			logger.Warn("could not load zoom preference", "player", opts.Player, "error", err)
		}
		zoom = saved
	}

	s := &Session{
		opts:     opts,
		keys:     DefaultKeyMap(),
		logger:   logger,
		renderer: snake.NewRenderer(palette, zoom),
		screen:   core.NewScreen(opts.Width, opts.Height),
	}
	s.renderer.Help = s.keys.HelpLine()

	if err := s.newGame(); err != nil {
		return nil, err
	}
	s.Draw()
	return s, nil
}

func (s *Session) newGame() error {
	seed := time.Now().UnixNano()
	if s.opts.Seed != 0 {
		seed = s.opts.Seed + int64(s.games)
	}

	cfg, err := s.opts.Config.GameConfig(seed)
	if err != nil {
		return err
	}
	game, err := snake.NewGame(cfg)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	sched, err := scheduler.New(s.opts.Config.Timing.TickRate, s)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}

	s.game = game
	s.sched = sched
	s.seed = seed
	s.saved = false
	s.games++

	s.logger.Info("game started",
		"player", s.opts.Player,
		"game", s.games,
		"seed", seed,
		"grid", fmt.Sprintf("%dx%d", cfg.Grid.Width, cfg.Grid.Height),
	)
	return nil
}

// Update runs one simulation tick. It implements scheduler.Driver.
func (s *Session) Update() bool {
	result := s.game.Step()
	for _, ev := range result.Events {
		switch ev := ev.(type) {
		case snake.AteEvent:
			s.logger.Debug("food eaten", "player", s.opts.Player, "tick", ev.Tick, "at", ev.At.String(), "score", ev.Score)
		case snake.GameOverEvent:
			s.logger.Info("game over",
				"player", s.opts.Player,
				"reason", ev.Reason.String(),
				"score", ev.Score,
				"ticks", ev.Tick,
			)
			s.recordScore(ev)
		}
	}
	return !s.game.Over()
}

// Draw renders the current game into the screen buffer. It implements
// scheduler.Driver.
func (s *Session) Draw() {
	s.renderer.Render(s.screen, s.game.Snapshot())
}

// recordScore saves the finished game once. Scoreless games are not kept.
func (s *Session) recordScore(ev snake.GameOverEvent) {
	if s.saved {
		return
	}
	s.saved = true
	if s.opts.Store == nil || ev.Score <= 0 {
		return
	}

	_, err := s.opts.Store.SaveScore(storage.GameResult{
		Player: s.opts.Player,
		Score:  ev.Score,
		Length: s.game.Snapshot().Body.Len(),
		Ticks:  ev.Tick,
		Reason: ev.Reason.String(),
	})
	if err != nil {
		s.logger.Warn("could not save score", "player", s.opts.Player, "error", err)
	}
}

// Frame is the host's per-frame callback.
func (s *Session) Frame(now time.Time) scheduler.Result {
	return s.sched.Frame(now)
}

// HandleKey maps a host key name and applies the resulting action.
func (s *Session) HandleKey(name fmt.Stringer) Outcome {
	return s.Handle(s.keys.Action(name))
}

// Handle applies one action.
func (s *Session) Handle(a core.Action) Outcome {
	switch a {
	case core.ActionQuit:
		return Quit

	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		// Reversals are dropped by the engine; nothing to report.
		_, _ = s.game.SetDirection(directionFor(a))

	case core.ActionZoomIn, core.ActionZoomOut:
		before := s.renderer.Zoom
		if a == core.ActionZoomIn {
			s.renderer.ZoomIn()
		} else {
			s.renderer.ZoomOut()
		}
		if s.renderer.Zoom != before {
			s.saveZoom()
			s.Draw()
		}

	case core.ActionRestart:
		if !s.game.Over() {
			return Continue
		}
		if err := s.newGame(); err != nil {
			s.logger.Error("could not restart", "error", err)
			return Continue
		}
		s.Draw()
		return Restarted

	case core.ActionScreenshot:
		path, err := s.Screenshot()
		if err != nil {
			s.logger.Warn("screenshot failed", "error", err)
		} else {
			s.logger.Info("screenshot saved", "path", path)
		}
	}
	return Continue
}

func (s *Session) saveZoom() {
	if s.opts.Store == nil {
		return
	}
	if err := s.opts.Store.SetZoom(s.opts.Player, s.renderer.Zoom); err != nil {
		s.logger.Warn("could not save zoom preference", "player", s.opts.Player, "error", err)
	}
}

func directionFor(a core.Action) snake.Direction {
	switch a {
	case core.ActionUp:
		return snake.DirUp
	case core.ActionDown:
		return snake.DirDown
	case core.ActionLeft:
		return snake.DirLeft
	default:
		return snake.DirRight
	}
}

// Resize changes the screen size and redraws.
func (s *Session) Resize(width, height int) {
	s.screen.Resize(width, height)
	s.Draw()
}

// Screenshot writes the current screen as text and returns the file path.
func (s *Session) Screenshot() (string, error) {
	dir := s.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("session: cannot find home directory: %w", err)
		}
		dir = filepath.Join(home, ".snake", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("session: cannot create %s: %w", dir, err)
	}

	s.Draw()
	timestamp := time.Now().Format("20060102_150405.000")
	path := filepath.Join(dir, fmt.Sprintf("snake_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(s.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("session: cannot write screenshot: %w", err)
	}
	return path, nil
}

// Screen returns the screen buffer the session draws into.
func (s *Session) Screen() *core.Screen {
	return s.screen
}

// Snapshot returns the current game state.
func (s *Session) Snapshot() snake.Snapshot {
	return s.game.Snapshot()
}

// Over reports whether the current game has ended.
func (s *Session) Over() bool {
	return s.game.Over()
}

// Zoom returns the current zoom level.
func (s *Session) Zoom() int {
	return s.renderer.Zoom
}

// Keys returns the session key bindings.
func (s *Session) Keys() KeyMap {
	return s.keys
}

// Seed returns the seed of the current game.
func (s *Session) Seed() int64 {
	return s.seed
}

// FrameInterval returns how often the host should deliver frames.
func (s *Session) FrameInterval() time.Duration {
	return time.Second / time.Duration(s.opts.Config.Timing.FrameRate)
}
