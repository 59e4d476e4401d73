package game

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Board owns a layout, the state of every cell and the game clock. They are
// created together and thrown away together.
type Board struct {
	layout *Layout
	states StateGrid
	timer  *Timer

	// First terminal status seen by Evaluate; Continue while the game is on
	status Status
}

// NewBoard starts a board over layout, with every cell closed and the timer
// running
func NewBoard(layout *Layout, clock Clock, budget time.Duration) *Board {
	return &Board{
		layout: layout,
		timer:  NewTimer(clock, budget),
		status: Continue,
	}
}

func (board *Board) Layout() *Layout {
	return board.layout
}

func (board *Board) Timer() *Timer {
	return board.timer
}

// States returns a copy of the cell state grid
func (board *Board) States() StateGrid {
	return board.states
}

// CellAt returns the cell at (x, y), and false if it is off the board
func (board *Board) CellAt(x, y int) (Cell, bool) {
	if !InBounds(x, y) {
		return Cell{}, false
	}
	return Cell{
		X:     x,
		Y:     y,
		State: board.states.At(x, y),
		Value: board.layout.At(x, y),
	}, true
}

func (board *Board) canPlay() bool {
	return !board.status.IsTerminal()
}

// IsOver reports whether Evaluate has already ended the game
func (board *Board) IsOver() bool {
	return !board.canPlay()
}

func (board *Board) NumFlags() int {
	return board.states.Count(Flagged)
}

// MinesLeft is the number of mines minus the number of flags, as shown on a
// mine counter. It may go negative.
func (board *Board) MinesLeft() int {
	return board.layout.NumMines() - board.NumFlags()
}

// ApplyAction runs action against the cell at (x, y). Nothing changes unless
// the result is Applied.
func (board *Board) ApplyAction(x, y int, action Action) Result {
	fields := logrus.Fields{"x": x, "y": y, "action": action}

	if !board.canPlay() {
		log.WithFields(fields).Debug("game over; ignoring action")
		return IgnoredGameOver
	}
	if !InBounds(x, y) {
		log.WithFields(fields).Debug("out of bounds; ignoring action")
		return IgnoredOutOfBounds
	}
	if action != Reveal && action != ToggleFlag {
		log.WithFields(fields).Debug("unknown action; ignoring")
		return IgnoredUnknownAction
	}

	state, ok := next(board.states[y][x], action)
	if !ok {
		fields["state"] = board.states[y][x]
		log.WithFields(fields).Debug("invalid transition; ignoring action")
		return IgnoredInvalidTransition
	}

	board.states[y][x] = state
	return Applied
}

// Evaluate returns the status of the board with the time left on its timer.
// The first terminal status is kept: afterwards Evaluate keeps returning it,
// the timer is stopped, and ApplyAction rejects everything.
func (board *Board) Evaluate() Status {
	if !board.canPlay() {
		return board.status
	}

	status := Evaluate(&board.states, board.layout, board.timer.Remaining())
	switch status {
	case Win:
		board.win()
	case Lose:
		board.lose()
	}
	return status
}

func (board *Board) win() {
	board.status = Win
	board.endGame()
}

func (board *Board) lose() {
	board.status = Lose
	board.endGame()
	board.revealAll()
}

func (board *Board) endGame() {
	board.timer.Stop()

	log.WithFields(logrus.Fields{
		"status":  board.status,
		"elapsed": board.timer.Elapsed(),
		"flags":   board.NumFlags(),
		"mines":   board.layout.NumMines(),
	}).Info("game ended")
}

// revealAll exposes the whole layout, once the game is lost
func (board *Board) revealAll() {
	for y := range board.states {
		for x := range board.states[y] {
			board.states[y][x] = Revealed
		}
	}
}

// Status returns the status latched by Evaluate, without evaluating again
func (board *Board) Status() Status {
	return board.status
}
