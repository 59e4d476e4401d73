package game

import (
	"fmt"

	"github.com/gammazero/deque"
)

// Event is one input from the shell, already mapped to board coordinates.
// Coordinates are not checked here; the board rejects those off the grid.
type Event struct {
	Action Action
	X, Y   int
}

func (event Event) String() string {
	return fmt.Sprintf("%v(%d, %d)", event.Action, event.X, event.Y)
}

func RevealAt(x, y int) Event {
	return Event{Action: Reveal, X: x, Y: y}
}

func FlagAt(x, y int) Event {
	return Event{Action: ToggleFlag, X: x, Y: y}
}

// EventQueue buffers events between frames, in arrival order
type EventQueue struct {
	events deque.Deque
}

func (queue *EventQueue) Push(event Event) {
	queue.events.PushBack(event)
}

func (queue *EventQueue) Len() int {
	return queue.events.Len()
}

// Pop removes the oldest event; ok is false when the queue is empty
func (queue *EventQueue) Pop() (event Event, ok bool) {
	if queue.events.Len() == 0 {
		return Event{}, false
	}
	return queue.events.PopFront().(Event), true
}

// Clear drops every pending event and returns how many were dropped
func (queue *EventQueue) Clear() int {
	n := queue.events.Len()
	for queue.events.Len() > 0 {
		queue.events.PopFront()
	}
	return n
}
