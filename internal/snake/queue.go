package snake

import "fmt"

// DirectionQueue holds the active direction and the single intended-direction
// slot written by input between ticks.
type DirectionQueue struct {
	active   Direction
	intended Direction
}

// NewDirectionQueue creates a queue whose active and intended directions are
// both start.
func NewDirectionQueue(start Direction) (*DirectionQueue, error) {
	if !start.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDirection, int(start))
	}
	return &DirectionQueue{active: start, intended: start}, nil
}

// SetIntended records d for the next tick. Reversals of the active direction
// are ignored and reported as not accepted. The last accepted call wins.
func (q *DirectionQueue) SetIntended(d Direction) (bool, error) {
	if !d.Valid() {
		return false, fmt.Errorf("%w: %d", ErrInvalidDirection, int(d))
	}
	if d == q.active.Opposite() {
		return false, nil
	}
	q.intended = d
	return true, nil
}

// Consume promotes the intended direction to active and returns it.
// Called once per tick at the start of update.
func (q *DirectionQueue) Consume() Direction {
	q.active = q.intended
	return q.active
}

// Active returns the direction applied on the most recent tick.
func (q *DirectionQueue) Active() Direction {
	return q.active
}

// Intended returns the direction queued for the next tick.
func (q *DirectionQueue) Intended() Direction {
	return q.intended
}
