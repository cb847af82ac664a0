package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Event is something a tick reports to collaborators (score display, game
// over message, logging).
type Event interface {
	event()
}

// AteEvent is emitted once per food eaten.
type AteEvent struct {
	Tick  uint64
	At    core.Cell // Where the food was
	Score int       // Score after this eat
}

func (AteEvent) event() {}

// GameOverEvent is emitted on the tick the game ends.
type GameOverEvent struct {
	Tick   uint64
	Reason EndReason
	Score  int
}

func (GameOverEvent) event() {}

// EndReason describes why a game ended.
type EndReason int

const (
	EndReasonNone      EndReason = iota
	EndReasonWall                // Head left the grid
	EndReasonSelf                // Head hit the body
	EndReasonBoardFull           // Body covers every cell; no room for food
)

func (r EndReason) String() string {
	switch r {
	case EndReasonNone:
		return "none"
	case EndReasonWall:
		return "hit the wall"
	case EndReasonSelf:
		return "hit itself"
	case EndReasonBoardFull:
		return "board full"
	default:
		return "unknown"
	}
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	Ticked bool // False when the game was already over
	Events []Event
}

// Ate reports whether the tick included an eat event.
func (r StepResult) Ate() bool {
	for _, e := range r.Events {
		if _, ok := e.(AteEvent); ok {
			return true
		}
	}
	return false
}

// GameOver returns the game-over event of the tick, if any.
func (r StepResult) GameOver() (GameOverEvent, bool) {
	for _, e := range r.Events {
		if over, ok := e.(GameOverEvent); ok {
			return over, true
		}
	}
	return GameOverEvent{}, false
}
