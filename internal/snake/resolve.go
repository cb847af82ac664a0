package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// selfCollisionStart is the first body index the head can collide with.
// After a single-cell move the head can never land on segment 1.
const selfCollisionStart = 2

// Resolution is the outcome of checking one advanced body.
type Resolution struct {
	Collided bool
	Ate      bool
}

// Resolve checks an advanced body against the grid bounds, itself and the food.
// Ate is computed even when Collided is set; callers must not apply eat side
// effects on a collided tick.
func Resolve(body Body, food core.Cell, grid core.Grid) Resolution {
	head := body.Head()
	return Resolution{
		Collided: !grid.Contains(head) || hitsSelf(body),
		Ate:      head == food,
	}
}

func hitsSelf(body Body) bool {
	head := body.Head()
	for i := selfCollisionStart; i < len(body); i++ {
		if body[i] == head {
			return true
		}
	}
	return false
}
