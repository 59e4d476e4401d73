package game

import (
	"math/rand"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Game runs rounds of minesweeper one frame at a time. It is not safe for
// concurrent use: the shell's loop owns it.
type Game struct {
	config GameConfig
	rand   *rand.Rand
	board  *Board
	events EventQueue
	round  int
}

func NewGame(config GameConfig) (*Game, error) {
	game := &Game{config: config}
	if err := game.resetBoard(); err != nil {
		return nil, err
	}
	return game, nil
}

func (config GameConfig) createBoard(rng *rand.Rand) (*Board, error) {
	if config.Snapshot == nil {
		layout := Generate(rng, config.Generator)
		return NewBoard(layout, config.Clock, config.Budget), nil
	}

	layout, err := config.Snapshot.Layout()
	if err != nil {
		return nil, errors.Wrap(err, "creating board from snapshot")
	}
	states, err := config.Snapshot.States(config.LoadSnapshotFresh)
	if err != nil {
		return nil, errors.Wrap(err, "creating board from snapshot")
	}

	board := NewBoard(layout, config.Clock, config.Budget)
	board.states = states
	return board, nil
}

func (game *Game) resetBoard() error {
	rng := rand.New(rand.NewSource(game.config.Seed))

	board, err := game.config.createBoard(rng)
	if err != nil {
		return err
	}

	game.rand = rng
	game.board = board
	game.events.Clear()
	game.round++

	log.WithFields(logrus.Fields{
		"round": game.round,
		"seed":  game.config.Seed,
		"mines": board.layout.NumMines(),
	}).Info("round started")

	if game.config.Director != nil {
		game.config.Director.Init(game)
	}
	return nil
}

// NewRound throws away the board and any pending input, and starts over with
// the next seed from the game's random source
func (game *Game) NewRound() error {
	game.config.Seed = game.rand.Int63()
	return game.resetBoard()
}

func (game *Game) Board() *Board {
	return game.board
}

func (game *Game) Rand() *rand.Rand {
	return game.rand
}

func (game *Game) Seed() int64 {
	return game.config.Seed
}

func (game *Game) Round() int {
	return game.round
}

// Push queues an event for the next frame
func (game *Game) Push(event Event) {
	game.events.Push(event)
}

func (game *Game) Pending() int {
	return game.events.Len()
}

func (game *Game) apply(event Event) Result {
	result := game.board.ApplyAction(event.X, event.Y, event.Action)
	if result.Applied() {
		// A losing reveal ends the game on the spot, so the rest of the
		// frame's input is discarded
		game.board.Evaluate()
	}
	return result
}

// Frame drains every pending event in order, then evaluates the board once
// and returns what to draw. Events still queued after the game ends are
// discarded.
func (game *Game) Frame() Snapshot {
	for {
		event, ok := game.events.Pop()
		if !ok {
			break
		}
		if game.board.IsOver() {
			discarded := game.events.Clear() + 1
			log.WithField("events", discarded).Debug("game over; discarding input")
			break
		}
		game.apply(event)
	}

	game.board.Evaluate()
	return game.Snapshot()
}

// Step lets the configured director pick events for this frame, then runs the
// frame. acted is false if there is no director or it had nothing to do.
func (game *Game) Step() (snapshot Snapshot, acted bool) {
	if game.config.Director != nil && !game.board.IsOver() {
		current := game.Snapshot()
		for _, event := range game.config.Director.Act(&current) {
			game.Push(event)
			acted = true
		}
	}
	return game.Frame(), acted
}

// Snapshot returns the current state of the board without processing input
func (game *Game) Snapshot() Snapshot {
	return game.board.snapshot(game.config.Seed)
}
