package game

import (
	"fmt"
	"time"
)

// BoardSize is the side length of the (square) board, in cells
const BoardSize = 10

const (
	DefaultBudget     = 600 * time.Second
	DefaultMineChance = 5
)

// Value is the ground truth of a cell: a neighbor mine count 0-8, or Mine
type Value int8

// Mine doubles as the sprite index of a mine in the classic sprite sheet
const Mine Value = 9

func (value Value) IsMine() bool {
	return value == Mine
}

type CellState int

const (
	Closed CellState = iota
	Flagged
	Revealed
)

var cellStateNames = map[CellState]string{
	Closed:   "closed",
	Flagged:  "flagged",
	Revealed: "revealed",
}

func (state CellState) String() string {
	if name, ok := cellStateNames[state]; ok {
		return name
	}
	return fmt.Sprintf("CellState(%d)", int(state))
}

type Status int

const (
	Continue Status = iota
	Win
	Lose
)

func (status Status) IsTerminal() bool {
	return status == Win || status == Lose
}

func (status Status) String() string {
	switch status {
	case Continue:
		return "continue"
	case Win:
		return "win"
	case Lose:
		return "lose"
	default:
		return fmt.Sprintf("Status(%d)", int(status))
	}
}

type Action int

const (
	Reveal Action = iota
	ToggleFlag
)

var actionNames = map[string]Action{
	"reveal": Reveal,
	"flag":   ToggleFlag,
}

func (action Action) String() string {
	for name, a := range actionNames {
		if a == action {
			return name
		}
	}
	return fmt.Sprintf("Action(%d)", int(action))
}

// ParseAction accepts the names used by event scripts: "reveal" and "flag"
func ParseAction(name string) (Action, error) {
	if action, ok := actionNames[name]; ok {
		return action, nil
	}
	return 0, fmt.Errorf("unknown action %q", name)
}

// Result reports what ApplyAction did with an action
type Result int

const (
	Applied Result = iota
	IgnoredOutOfBounds
	IgnoredGameOver
	IgnoredInvalidTransition
	IgnoredUnknownAction
)

func (result Result) Applied() bool {
	return result == Applied
}

func (result Result) String() string {
	switch result {
	case Applied:
		return "applied"
	case IgnoredOutOfBounds:
		return "ignored: out of bounds"
	case IgnoredGameOver:
		return "ignored: game over"
	case IgnoredInvalidTransition:
		return "ignored: invalid transition"
	case IgnoredUnknownAction:
		return "ignored: unknown action"
	default:
		return fmt.Sprintf("Result(%d)", int(result))
	}
}

// Sprite indexes of non-revealed cells in the classic sprite sheet. Revealed
// cells use their Value as index.
const (
	SpriteClosed  = 10
	SpriteFlagged = 11
)
