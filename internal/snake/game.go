// Package snake implements the grid snake simulation: direction queueing,
// advancing and growing the body, collision and eating checks, and food
// placement. It holds no I/O; hosts drive it one tick at a time and render
// from snapshots.
package snake

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Status is the lifecycle state of a game.
type Status int

const (
	StatusRunning Status = iota
	StatusOver
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusOver:
		return "over"
	default:
		return "unknown"
	}
}

// Config describes a new game. It is fixed for the lifetime of a Game.
type Config struct {
	Grid      core.Grid
	Start     []core.Cell // Initial segments, head first
	Direction Direction   // Initial active direction
	Seed      int64       // Seed for food placement
}

// DefaultConfig returns a 100x100 grid with a five-segment snake heading right.
func DefaultConfig() Config {
	return Config{
		Grid: core.NewGrid(100, 100),
		Start: []core.Cell{
			{X: 14, Y: 10},
			{X: 13, Y: 10},
			{X: 12, Y: 10},
			{X: 11, Y: 10},
			{X: 10, Y: 10},
		},
		Direction: DirRight,
	}
}

// Validate checks that a game can be built from c.
func (c Config) Validate() error {
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("snake: grid must be positive, got %dx%d", c.Grid.Width, c.Grid.Height)
	}
	if len(c.Start) == 0 {
		return errors.New("snake: start body is empty")
	}
	for i, seg := range c.Start {
		if !c.Grid.Contains(seg) {
			return fmt.Errorf("snake: start segment %d %v is outside the %dx%d grid", i, seg, c.Grid.Width, c.Grid.Height)
		}
	}
	if len(c.Start) >= c.Grid.Area() {
		return fmt.Errorf("snake: start body of %d segments leaves no room for food", len(c.Start))
	}
	if !c.Direction.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidDirection, int(c.Direction))
	}
	return nil
}

// Game owns the whole state of one snake game. All mutation goes through
// SetDirection (input) and Step (one tick). A Game is not safe for concurrent
// use; each host owns its own instance.
type Game struct {
	grid   core.Grid
	rng    *rand.Rand
	body   Body
	food   core.Cell
	queue  *DirectionQueue
	status Status
	reason EndReason
	score  int
	tick   uint64
}

// NewGame builds a running game from cfg and places the first food.
func NewGame(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	body, err := NewBody(cfg.Start)
	if err != nil {
		return nil, err
	}
	queue, err := NewDirectionQueue(cfg.Direction)
	if err != nil {
		return nil, err
	}

	g := &Game{
		grid:   cfg.Grid,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		body:   body,
		queue:  queue,
		status: StatusRunning,
	}
	g.food = PlaceFood(g.rng, g.body, g.grid)
	return g, nil
}

// SetDirection queues d for the next tick. Reversals of the active direction
// are ignored (accepted=false). After game over all input is ignored.
func (g *Game) SetDirection(d Direction) (accepted bool, err error) {
	if g.status == StatusOver {
		if !d.Valid() {
			return false, fmt.Errorf("%w: %d", ErrInvalidDirection, int(d))
		}
		return false, nil
	}
	return g.queue.SetIntended(d)
}

// Step runs one tick: consume the queued direction, advance, resolve
// collisions and eating, and place new food on an eat. A collided tick leaves
// body, food and score as they were and ends the game. Once the game is over
// Step does nothing.
func (g *Game) Step() StepResult {
	if g.status == StatusOver {
		return StepResult{}
	}
	g.tick++

	dir := g.queue.Consume()
	next := g.body.Advance(dir, false)
	res := Resolve(next, g.food, g.grid)

	if res.Collided {
		g.reason = EndReasonSelf
		if !g.grid.Contains(next.Head()) {
			g.reason = EndReasonWall
		}
		return g.end()
	}

	if !res.Ate {
		g.body = next
		return StepResult{Ticked: true}
	}

	eaten := g.food
	g.body = g.body.Advance(dir, true)
	g.score++
	result := StepResult{
		Ticked: true,
		Events: []Event{AteEvent{Tick: g.tick, At: eaten, Score: g.score}},
	}

	if g.body.Len() >= g.grid.Area() {
		g.reason = EndReasonBoardFull
		over := g.end()
		result.Events = append(result.Events, over.Events...)
		return result
	}

	g.food = PlaceFood(g.rng, g.body, g.grid)
	return result
}

func (g *Game) end() StepResult {
	g.status = StatusOver
	return StepResult{
		Ticked: true,
		Events: []Event{GameOverEvent{Tick: g.tick, Reason: g.reason, Score: g.score}},
	}
}

// Status returns whether the game is running or over.
func (g *Game) Status() Status {
	return g.status
}

// Over reports whether the game has ended.
func (g *Game) Over() bool {
	return g.status == StatusOver
}

// Score returns the number of food items eaten.
func (g *Game) Score() int {
	return g.score
}

// Grid returns the playing field bounds.
func (g *Game) Grid() core.Grid {
	return g.grid
}

// Tick returns the number of ticks processed.
func (g *Game) Tick() uint64 {
	return g.tick
}
