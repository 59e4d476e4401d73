package game

import (
	"fmt"
	"time"
)

type Clock interface {
	Now() time.Time
}

// WallClock reads the system clock
type WallClock struct{}

func (WallClock) Now() time.Time {
	return time.Now()
}

// Timer counts whole seconds since the start of a game against a fixed budget
type Timer struct {
	clock  Clock
	start  time.Time
	budget time.Duration

	stopped bool
	stopAt  time.Time

	// highest reading handed out so far
	lastElapsed int
}

// NewTimer starts a timer immediately
func NewTimer(clock Clock, budget time.Duration) *Timer {
	if clock == nil {
		clock = WallClock{}
	}
	return &Timer{
		clock:  clock,
		start:  clock.Now(),
		budget: budget,
	}
}

func (timer *Timer) now() time.Time {
	if timer.stopped {
		return timer.stopAt
	}
	return timer.clock.Now()
}

// Elapsed returns whole seconds since the timer started, rounded down. It never
// decreases, even if the underlying clock steps backwards.
func (timer *Timer) Elapsed() int {
	elapsed := int(timer.now().Sub(timer.start) / time.Second)
	if elapsed > timer.lastElapsed {
		timer.lastElapsed = elapsed
	}
	return timer.lastElapsed
}

// Remaining returns budget minus elapsed seconds. It is not clamped, and goes
// negative once the budget has run out.
func (timer *Timer) Remaining() int {
	return int(timer.budget/time.Second) - timer.Elapsed()
}

func (timer *Timer) Budget() time.Duration {
	return timer.budget
}

// Stop freezes the timer at its current reading
func (timer *Timer) Stop() {
	if !timer.stopped {
		timer.stopAt = timer.clock.Now()
		timer.stopped = true
	}
}

func (timer *Timer) IsStopped() bool {
	return timer.stopped
}

// FormatCountdown renders seconds as MM:SS; negative values show as 00:00
func FormatCountdown(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
