package session

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

type fakeStore struct {
	results []storage.GameResult
	zoom    map[string]int
	saveErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{zoom: make(map[string]int)}
}

func (f *fakeStore) SaveScore(r storage.GameResult) (int64, error) {
	if f.saveErr != nil {
		return 0, f.saveErr
	}
	f.results = append(f.results, r)
	return int64(len(f.results)), nil
}

func (f *fakeStore) Zoom(player string, def int) (int, error) {
	if z, ok := f.zoom[player]; ok {
		return z, nil
	}
	return def, nil
}

func (f *fakeStore) SetZoom(player string, zoom int) error {
	f.zoom[player] = zoom
	return nil
}

// tinyConfig is a 3x1 board: the snake eats the only food on the first tick
// and fills the board.
func tinyConfig() config.SnakeConfig {
	cfg := config.DefaultSnakeConfig()
	cfg.Grid = config.GridConfig{Width: 3, Height: 1}
	cfg.Snake.Start = []config.Point{{X: 1, Y: 0}, {X: 0, Y: 0}}
	cfg.Snake.Direction = "right"
	return cfg
}

func newTestSession(t *testing.T, opts Options) *Session {
	t.Helper()
	if opts.Width == 0 {
		opts.Width, opts.Height = 80, 24
	}
	if opts.Seed == 0 {
		opts.Seed = 42
	}
	s, err := New(opts)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return s
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Timing.TickRate = 0
	if _, err := New(Options{Config: cfg}); err == nil {
		t.Error("New() should fail on invalid config")
	}
}

func TestNewDrawsInitialScreen(t *testing.T) {
	s := newTestSession(t, Options{Config: config.DefaultSnakeConfig()})

	if !strings.Contains(s.Screen().String(), "Score: 0") {
		t.Errorf("initial screen missing HUD:\n%s", s.Screen().String())
	}
	if !strings.Contains(s.Screen().String(), "q quit") {
		t.Errorf("initial screen missing help line:\n%s", s.Screen().String())
	}
	if s.Seed() != 42 {
		t.Errorf("Seed() = %d, expected 42", s.Seed())
	}
}

func TestFramesDriveTheGame(t *testing.T) {
	s := newTestSession(t, Options{Config: config.DefaultSnakeConfig()})
	now := time.Unix(0, 0)

	if res := s.Frame(now); !res.Ticked {
		t.Fatal("first frame should tick")
	}
	if s.Snapshot().Tick != 1 {
		t.Errorf("Tick = %d, expected 1", s.Snapshot().Tick)
	}

	// 60 fps frames against a 20 tps simulation: only every third ticks.
	ticked := 0
	for i := 1; i <= 6; i++ {
		if s.Frame(now.Add(time.Duration(i) * time.Second / 60)).Ticked {
			ticked++
		}
	}
	if ticked != 2 {
		t.Errorf("ticked %d of 6 frames, expected 2", ticked)
	}
	if s.FrameInterval() != time.Second/60 {
		t.Errorf("FrameInterval() = %v", s.FrameInterval())
	}
}

func TestKeysSteerTheSnake(t *testing.T) {
	s := newTestSession(t, Options{Config: config.DefaultSnakeConfig()})

	if out := s.HandleKey(KeyName("down")); out != Continue {
		t.Errorf("HandleKey(down) = %v, expected Continue", out)
	}
	if s.Snapshot().Intended != snake.DirDown {
		t.Errorf("Intended = %v, expected down", s.Snapshot().Intended)
	}

	// Reversal of the active direction is dropped.
	s.HandleKey(KeyName("a"))
	if s.Snapshot().Intended != snake.DirDown {
		t.Errorf("reversal changed intended direction to %v", s.Snapshot().Intended)
	}

	s.Frame(time.Unix(0, 0))
	if s.Snapshot().Direction != snake.DirDown {
		t.Errorf("Direction = %v after tick, expected down", s.Snapshot().Direction)
	}

	if out := s.HandleKey(KeyName("q")); out != Quit {
		t.Errorf("HandleKey(q) = %v, expected Quit", out)
	}
}

func TestGameOverSavesScoreOnce(t *testing.T) {
	store := newFakeStore()
	s := newTestSession(t, Options{Config: tinyConfig(), Store: store, Player: "ann"})

	res := s.Frame(time.Unix(0, 0))
	if !res.Ticked || res.Reschedule {
		t.Fatalf("Frame() = %+v, expected final tick without reschedule", res)
	}
	if !s.Over() {
		t.Fatal("board full should end the game")
	}

	for i := 1; i < 5; i++ {
		s.Frame(time.Unix(int64(i), 0))
	}

	if len(store.results) != 1 {
		t.Fatalf("saved %d results, expected 1", len(store.results))
	}
	got := store.results[0]
	if got.Player != "ann" || got.Score != 1 || got.Length != 3 || got.Reason != "board full" || got.Ticks != 1 {
		t.Errorf("saved result = %+v", got)
	}
	if !strings.Contains(s.Screen().String(), "Game Over: board full") {
		t.Errorf("screen missing game over overlay:\n%s", s.Screen().String())
	}
}

func TestScorelessGameIsNotSaved(t *testing.T) {
	store := newFakeStore()
	cfg := config.DefaultSnakeConfig()
	cfg.Snake.Start = []config.Point{{X: 99, Y: 0}}
	s := newTestSession(t, Options{Config: cfg, Store: store})

	s.Frame(time.Unix(0, 0))
	if !s.Over() {
		t.Fatal("snake at the right edge should hit the wall")
	}
	if len(store.results) != 0 {
		t.Errorf("scoreless game saved: %+v", store.results)
	}
}

func TestSaveErrorDoesNotStopSession(t *testing.T) {
	store := newFakeStore()
	store.saveErr = errors.New("disk full")
	s := newTestSession(t, Options{Config: tinyConfig(), Store: store})

	s.Frame(time.Unix(0, 0))
	if !s.Over() {
		t.Fatal("expected game over")
	}
	if out := s.HandleKey(KeyName("r")); out != Restarted {
		t.Errorf("restart after failed save = %v", out)
	}
}

func TestRestartOnlyAfterGameOver(t *testing.T) {
	s := newTestSession(t, Options{Config: tinyConfig()})

	// Running game: restart is ignored.
	s2 := newTestSession(t, Options{Config: config.DefaultSnakeConfig()})
	if out := s2.Handle(core.ActionRestart); out != Continue {
		t.Errorf("restart while running = %v, expected Continue", out)
	}

	s.Frame(time.Unix(0, 0))
	firstSeed := s.Seed()

	if out := s.Handle(core.ActionRestart); out != Restarted {
		t.Fatalf("restart after game over = %v, expected Restarted", out)
	}
	if s.Over() {
		t.Error("restarted game should be running")
	}
	if s.Snapshot().Tick != 0 || s.Snapshot().Score != 0 {
		t.Errorf("restarted snapshot = tick %d score %d", s.Snapshot().Tick, s.Snapshot().Score)
	}
	if s.Seed() == firstSeed {
		t.Error("restart should use a new seed")
	}
	if res := s.Frame(time.Unix(0, 0)); !res.Ticked {
		t.Error("new game should tick on its first frame")
	}
}

func TestZoomIsPersisted(t *testing.T) {
	store := newFakeStore()
	store.zoom["ann"] = 3
	s := newTestSession(t, Options{Config: config.DefaultSnakeConfig(), Store: store, Player: "ann"})

	if s.Zoom() != 3 {
		t.Fatalf("Zoom() = %d, expected saved 3", s.Zoom())
	}

	s.HandleKey(KeyName("+"))
	if s.Zoom() != 4 || store.zoom["ann"] != 4 {
		t.Errorf("zoom = %d, stored %d; expected 4", s.Zoom(), store.zoom["ann"])
	}

	// At the limit nothing changes.
	s.HandleKey(KeyName("="))
	if s.Zoom() != snake.MaxZoom {
		t.Errorf("zoom past max = %d", s.Zoom())
	}

	s.HandleKey(KeyName("-"))
	if store.zoom["ann"] != 3 {
		t.Errorf("stored zoom = %d, expected 3", store.zoom["ann"])
	}
}

func TestScreenshot(t *testing.T) {
	dir := t.TempDir()
	s := newTestSession(t, Options{Config: config.DefaultSnakeConfig(), ScreenshotDir: dir})

	path, err := s.Screenshot()
	if err != nil {
		t.Fatalf("Screenshot() failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read screenshot: %v", err)
	}
	if !strings.Contains(string(data), "Snake") {
		t.Errorf("screenshot content:\n%s", data)
	}

	if out := s.HandleKey(KeyName("ctrl+s")); out != Continue {
		t.Errorf("screenshot key = %v, expected Continue", out)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) < 1 {
		t.Error("screenshot key wrote no file")
	}
}

func TestResize(t *testing.T) {
	s := newTestSession(t, Options{Config: config.DefaultSnakeConfig()})
	s.Resize(20, 4)

	if s.Screen().Width() != 20 || s.Screen().Height() != 4 {
		t.Errorf("screen = %dx%d, expected 20x4", s.Screen().Width(), s.Screen().Height())
	}
	if !strings.Contains(s.Screen().String(), "Window too small") {
		t.Errorf("expected too-small notice:\n%s", s.Screen().String())
	}
}

func TestKeyMapActions(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		key  string
		want core.Action
	}{
		{"up", core.ActionUp},
		{"w", core.ActionUp},
		{"j", core.ActionDown},
		{"left", core.ActionLeft},
		{"d", core.ActionRight},
		{"+", core.ActionZoomIn},
		{"_", core.ActionZoomOut},
		{"r", core.ActionRestart},
		{"ctrl+s", core.ActionScreenshot},
		{"ctrl+c", core.ActionQuit},
		{"x", core.ActionNone},
	}
	for _, tc := range tests {
		if got := km.Action(KeyName(tc.key)); got != tc.want {
			t.Errorf("Action(%q) = %v, expected %v", tc.key, got, tc.want)
		}
	}

	if line := km.HelpLine(); !strings.Contains(line, "↑/w up") || !strings.Contains(line, "q quit") {
		t.Errorf("HelpLine() = %q", line)
	}
}
