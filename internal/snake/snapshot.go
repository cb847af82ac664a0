package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snapshot is a read-only copy of the game state for rendering, logging and
// determinism tests. Mutating it does not affect the game.
type Snapshot struct {
	Tick      uint64
	Grid      core.Grid
	Body      Body
	Food      core.Cell
	Direction Direction // Active direction
	Intended  Direction // Queued for the next tick
	Score     int
	Status    Status
	Reason    EndReason
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Grid:      g.grid,
		Body:      g.body.Clone(),
		Food:      g.food,
		Direction: g.queue.Active(),
		Intended:  g.queue.Intended(),
		Score:     g.score,
		Status:    g.status,
		Reason:    g.reason,
	}
}

// Head returns the head cell of the snapshot body.
func (s Snapshot) Head() core.Cell {
	return s.Body.Head()
}

// DebugString returns a multi-line description of the snapshot.
func (s Snapshot) DebugString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, Status: %s\n", s.Tick, s.Score, s.Status)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s, Intended: %s\n", s.Body.Len(), s.Direction, s.Intended)
	fmt.Fprintf(&b, "Head: %v, Food: %v\n", s.Head(), s.Food)
	if s.Status == StatusOver {
		fmt.Fprintf(&b, "Ended: %s\n", s.Reason)
	}
	return b.String()
}
