package snake

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Body is the ordered list of cells occupied by the snake, head at index 0.
type Body []core.Cell

// NewBody copies segments into a new Body. At least one segment is required.
func NewBody(segments []core.Cell) (Body, error) {
	if len(segments) == 0 {
		return nil, fmt.Errorf("snake: body needs at least one segment")
	}
	return Body(slices.Clone(segments)), nil
}

// Head returns the first segment.
func (b Body) Head() core.Cell {
	return b[0]
}

// Tail returns the last segment.
func (b Body) Tail() core.Cell {
	return b[len(b)-1]
}

// Len returns the number of segments.
func (b Body) Len() int {
	return len(b)
}

// Occupies reports whether any segment sits on c.
func (b Body) Occupies(c core.Cell) bool {
	return slices.Contains(b, c)
}

// Clone returns an independent copy of the body.
func (b Body) Clone() Body {
	return slices.Clone(b)
}

// Advance returns the body after one step in dir. Every segment takes the
// position of its predecessor and the head moves one cell. With grow set, a
// segment is appended at the cell the old tail vacated. The receiver is not
// modified. An invalid dir panics.
func (b Body) Advance(dir Direction, grow bool) Body {
	if !dir.Valid() {
		panic(fmt.Sprintf("snake: Advance with invalid direction %d", int(dir)))
	}
	dx, dy := dir.Delta()

	n := len(b)
	if grow {
		n++
	}
	next := make(Body, n)
	next[0] = b[0].Add(dx, dy)
	copy(next[1:], b[:len(b)-1])
	if grow {
		next[n-1] = b.Tail()
	}
	return next
}
