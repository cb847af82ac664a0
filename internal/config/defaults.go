package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration: a 100x100 grid at 20
// ticks per second with a five-segment snake heading right.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:  100,
			Height: 100,
		},
		Timing: TimingConfig{
			TickRate:  20,
			FrameRate: 60,
		},
		Snake: StartConfig{
			Start: []Point{
				{X: 14, Y: 10},
				{X: 13, Y: 10},
				{X: 12, Y: 10},
				{X: 11, Y: 10},
				{X: 10, Y: 10},
			},
			Direction: "right",
		},
		Display: DisplayConfig{
			Zoom: 1,
			Colors: ColorsConfig{
				Head:   "bright_green",
				Body:   "green",
				Food:   "bright_yellow",
				Border: "gray",
			},
		},
	}
}
