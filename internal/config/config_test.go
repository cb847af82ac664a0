package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "snake.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(defaultSnakeYAML)
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultSnakeConfig()) {
		t.Errorf("embedded defaults differ from DefaultSnakeConfig():\n%+v\n%+v", cfg, DefaultSnakeConfig())
	}
}

func TestDefaultGameConfig(t *testing.T) {
	game, err := DefaultSnakeConfig().GameConfig(9)
	if err != nil {
		t.Fatalf("GameConfig() failed: %v", err)
	}
	want := snake.DefaultConfig()
	want.Seed = 9
	if !reflect.DeepEqual(game, want) {
		t.Errorf("GameConfig() = %+v, expected %+v", game, want)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	dir := t.TempDir()
	first := writeConfig(t, filepath.Join(dir), "grid: {width: 30, height: 20}\n")
	missing := filepath.Join(dir, "missing.yaml")

	cfg, err := load("", []string{missing, first})
	if err != nil {
		t.Fatalf("load() failed: %v", err)
	}
	if cfg.Grid.Width != 30 || cfg.Grid.Height != 20 {
		t.Errorf("grid = %+v, expected 30x20 from search path", cfg.Grid)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Timing.TickRate != 20 || cfg.Display.Zoom != 1 {
		t.Errorf("timing/zoom = %+v/%d, expected defaults", cfg.Timing, cfg.Display.Zoom)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	cfg, err := load("", []string{filepath.Join(t.TempDir(), "none.yaml")})
	if err != nil {
		t.Fatalf("load() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultSnakeConfig()) {
		t.Errorf("expected embedded defaults, got %+v", cfg)
	}
}

func TestLoadSkipsBrokenSearchFile(t *testing.T) {
	dir := t.TempDir()
	broken := writeConfig(t, dir, "grid: [not, a, map\n")

	cfg, err := load("", []string{broken})
	if err != nil {
		t.Fatalf("load() failed: %v", err)
	}
	if cfg.Grid.Width != 100 {
		t.Errorf("broken search file should be skipped, got grid %+v", cfg.Grid)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := load(filepath.Join(t.TempDir(), "nope.yaml"), nil); err == nil {
		t.Error("missing custom path should fail")
	}

	broken := writeConfig(t, t.TempDir(), "timing: {tick_rate: fast}\n")
	if _, err := load(broken, nil); err == nil {
		t.Error("unparsable custom path should fail")
	}
}

func TestLoadCustomPathOverrides(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
grid: {width: 40, height: 12}
timing: {tick_rate: 10}
snake:
  start: [{x: 5, y: 5}, {x: 5, y: 6}]
  direction: up
display:
  zoom: 2
  colors: {food: red}
`)
	other := writeConfig(t, t.TempDir(), "grid: {width: 7, height: 7}\n")

	cfg, err := load(path, []string{other})
	if err != nil {
		t.Fatalf("load() failed: %v", err)
	}
	game, err := cfg.GameConfig(1)
	if err != nil {
		t.Fatalf("GameConfig() failed: %v", err)
	}
	if game.Grid != core.NewGrid(40, 12) || game.Direction != snake.DirUp {
		t.Errorf("game config = %+v", game)
	}
	if len(game.Start) != 2 || game.Start[0] != (core.Cell{X: 5, Y: 5}) {
		t.Errorf("start = %v, expected [(5,5) (5,6)]", game.Start)
	}

	p, err := cfg.Palette()
	if err != nil {
		t.Fatalf("Palette() failed: %v", err)
	}
	if p.Food != core.ColorRed || p.Head != core.ColorBrightGreen {
		t.Errorf("palette = %+v, expected red food with default head", p)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SnakeConfig)
		errSub string
	}{
		{"zero tick rate", func(c *SnakeConfig) { c.Timing.TickRate = 0 }, "tick_rate"},
		{"zero frame rate", func(c *SnakeConfig) { c.Timing.FrameRate = 0 }, "frame_rate"},
		{"zoom too large", func(c *SnakeConfig) { c.Display.Zoom = 5 }, "zoom"},
		{"bad color", func(c *SnakeConfig) { c.Display.Colors.Head = "chartreuse" }, "colors.head"},
		{"bad direction", func(c *SnakeConfig) { c.Snake.Direction = "sideways" }, "direction"},
		{"empty start", func(c *SnakeConfig) { c.Snake.Start = nil }, "start"},
		{"start off grid", func(c *SnakeConfig) { c.Grid.Width = 10 }, "outside"},
		{"negative grid", func(c *SnakeConfig) { c.Grid.Height = -1 }, "grid"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.errSub) {
				t.Errorf("error %q does not mention %q", err, tc.errSub)
			}
		})
	}

	if err := DefaultSnakeConfig().Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestMarshalRoundTripsThroughParse(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.Grid.Width = 64
	cfg.Snake.Direction = "down"

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "tick_rate: 20") {
		t.Errorf("marshalled YAML missing tick_rate:\n%s", data)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if !reflect.DeepEqual(back, cfg) {
		t.Errorf("round trip changed config:\n%+v\n%+v", back, cfg)
	}
}
