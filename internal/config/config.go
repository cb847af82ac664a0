// Package config provides YAML-based configuration loading for the snake
// game: grid size, timing, starting snake and display settings.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// SnakeConfig contains all configuration for a snake session.
type SnakeConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Timing  TimingConfig  `yaml:"timing"`
	Snake   StartConfig   `yaml:"snake"`
	Display DisplayConfig `yaml:"display"`
}

// GridConfig defines the playfield size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines simulation and host frame rates.
type TimingConfig struct {
	TickRate  int `yaml:"tick_rate"`  // Simulation ticks per second
	FrameRate int `yaml:"frame_rate"` // Host frames per second
}

// StartConfig defines the snake at the start of every game.
type StartConfig struct {
	Start     []Point `yaml:"start,flow"` // Head first
	Direction string  `yaml:"direction"`
}

// Point is a grid cell in YAML form.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// DisplayConfig defines presentation settings.
type DisplayConfig struct {
	Zoom   int          `yaml:"zoom"`
	Colors ColorsConfig `yaml:"colors"`
}

// ColorsConfig names the colors used for each element.
type ColorsConfig struct {
	Head   string `yaml:"head"`
	Body   string `yaml:"body"`
	Food   string `yaml:"food"`
	Border string `yaml:"border"`
}

// Validate checks that the configuration can start a game.
func (c SnakeConfig) Validate() error {
	if c.Timing.TickRate <= 0 {
		return fmt.Errorf("config: timing.tick_rate must be positive, got %d", c.Timing.TickRate)
	}
	if c.Timing.FrameRate <= 0 {
		return fmt.Errorf("config: timing.frame_rate must be positive, got %d", c.Timing.FrameRate)
	}
	if c.Display.Zoom < snake.MinZoom || c.Display.Zoom > snake.MaxZoom {
		return fmt.Errorf("config: display.zoom must be in [%d, %d], got %d", snake.MinZoom, snake.MaxZoom, c.Display.Zoom)
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	game, err := c.GameConfig(0)
	if err != nil {
		return err
	}
	if err := game.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// GameConfig converts the YAML settings into an engine configuration.
func (c SnakeConfig) GameConfig(seed int64) (snake.Config, error) {
	dir, err := snake.ParseDirection(c.Snake.Direction)
	if err != nil {
		return snake.Config{}, fmt.Errorf("config: snake.direction: %w", err)
	}
	if len(c.Snake.Start) == 0 {
		return snake.Config{}, errors.New("config: snake.start is empty")
	}

	start := make([]core.Cell, len(c.Snake.Start))
	for i, p := range c.Snake.Start {
		start[i] = core.Cell{X: p.X, Y: p.Y}
	}
	return snake.Config{
		Grid:      core.NewGrid(c.Grid.Width, c.Grid.Height),
		Start:     start,
		Direction: dir,
		Seed:      seed,
	}, nil
}

// Palette resolves the configured color names. Empty names keep the default.
func (c SnakeConfig) Palette() (snake.Palette, error) {
	p := snake.DefaultPalette()
	fields := []struct {
		key  string
		name string
		dst  *core.Color
	}{
		{"head", c.Display.Colors.Head, &p.Head},
		{"body", c.Display.Colors.Body, &p.Body},
		{"food", c.Display.Colors.Food, &p.Food},
		{"border", c.Display.Colors.Border, &p.Border},
	}
	for _, f := range fields {
		if f.name == "" {
			continue
		}
		color, err := core.ParseColor(f.name)
		if err != nil {
			return p, fmt.Errorf("config: display.colors.%s: %w", f.key, err)
		}
		*f.dst = color
	}
	return p, nil
}
