// Package scheduler throttles a host's variable-rate frame callbacks down to a
// fixed simulation tick rate.
//
// It uses frame skipping, not an accumulator: a frame either runs exactly one
// tick or nothing. A host that falls behind does not get catch-up ticks, so
// sustained slow frames slow the game down instead of bursting.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrStopped is returned by Run when the driver ended the game.
var ErrStopped = errors.New("scheduler: game over")

// Driver is the game side of the scheduler: one simulation update followed by
// one draw per tick.
type Driver interface {
	// Update advances the simulation one tick and reports whether it is still
	// running. Returning false stops all further scheduling.
	Update() bool
	// Draw renders the state produced by the preceding Update.
	Draw()
}

// Result tells the host what happened during one frame.
type Result struct {
	Ticked     bool // Update and Draw ran this frame
	Reschedule bool // Host should request another frame
}

// Scheduler decides on every host frame whether a tick is due.
type Scheduler struct {
	interval time.Duration
	driver   Driver
	lastTick time.Time
	started  bool
	stopped  bool
	ticks    uint64
}

// New creates a scheduler running driver at rate ticks per second.
func New(rate int, driver Driver) (*Scheduler, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("scheduler: tick rate must be positive, got %d", rate)
	}
	if driver == nil {
		return nil, errors.New("scheduler: nil driver")
	}
	return &Scheduler{
		interval: time.Second / time.Duration(rate),
		driver:   driver,
	}, nil
}

// Frame is the host's per-frame callback. The first frame always ticks; later
// frames tick only when at least one interval has passed since the last tick.
// Skipped frames mutate nothing. Once the driver reports the game over, Frame
// never ticks again and always returns Reschedule=false.
func (s *Scheduler) Frame(now time.Time) Result {
	if s.stopped {
		return Result{}
	}

	if s.started && now.Sub(s.lastTick) < s.interval {
		return Result{Reschedule: true}
	}
	s.started = true
	s.lastTick = now
	s.ticks++

	running := s.driver.Update()
	s.driver.Draw()
	if !running {
		s.stopped = true
	}
	return Result{Ticked: true, Reschedule: running}
}

// Run feeds frames from the host's frame source into Frame until the game
// ends (ErrStopped), ctx is cancelled (ctx.Err()), or frames is closed (nil).
func (s *Scheduler) Run(ctx context.Context, frames <-chan time.Time) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now, ok := <-frames:
			if !ok {
				return nil
			}
			if !s.Frame(now).Reschedule {
				return ErrStopped
			}
		}
	}
}

// Stopped reports whether the driver has ended the game.
func (s *Scheduler) Stopped() bool {
	return s.stopped
}

// Ticks returns how many ticks have run.
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}

// Interval returns the minimum time between ticks.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}
