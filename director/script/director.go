// Package script replays a fixed list of events, one per frame.
package script

import (
	"github.com/they4kman/sweepcore/game"
)

type Director struct {
	Events []game.Event

	next int
}

func New(events []game.Event) *Director {
	return &Director{Events: events}
}

// Init rewinds the script, so every round replays it from the start
func (director *Director) Init(*game.Game) {
	director.next = 0
}

func (director *Director) Act(*game.Snapshot) []game.Event {
	if director.next >= len(director.Events) {
		return nil
	}
	event := director.Events[director.next]
	director.next++
	return []game.Event{event}
}

func (director *Director) Done() bool {
	return director.next >= len(director.Events)
}
