package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// PlaceFood draws uniformly random cells from grid until one is not occupied
// by body.
//
// There is no fallback scan of free cells: on a nearly full grid the number of
// retries is unbounded, and on a completely full grid this never returns.
// NewGame rejects configurations where the starting body fills the grid.
func PlaceFood(rng *rand.Rand, body Body, grid core.Grid) core.Cell {
	for {
		c := core.Cell{
			X: rng.Intn(grid.Width),
			Y: rng.Intn(grid.Height),
		}
		if !body.Occupies(c) {
			return c
		}
	}
}
