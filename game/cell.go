package game

import "fmt"

// StateGrid holds the display state of every cell, indexed [y][x]. The zero
// value is an all-Closed grid.
type StateGrid [BoardSize][BoardSize]CellState

func (grid *StateGrid) At(x, y int) CellState {
	return grid[y][x]
}

func (grid *StateGrid) Count(state CellState) int {
	n := 0
	for y := range grid {
		for x := range grid[y] {
			if grid[y][x] == state {
				n++
			}
		}
	}
	return n
}

// next returns the state a cell in the given state moves to under action, and
// whether the transition is allowed at all
func next(state CellState, action Action) (CellState, bool) {
	switch action {
	case Reveal:
		// Flagged cells have to be unflagged before they can be revealed
		if state == Closed {
			return Revealed, true
		}
	case ToggleFlag:
		switch state {
		case Closed:
			return Flagged, true
		case Flagged:
			return Closed, true
		}
	}
	return state, false
}

// Cell is a read-only view of a single position on the board
type Cell struct {
	X, Y  int
	State CellState
	Value Value
}

func (cell Cell) String() string {
	return fmt.Sprintf("Cell(%v, %v)", cell.X, cell.Y)
}

func (cell Cell) IsRevealed() bool {
	return cell.State == Revealed
}

func (cell Cell) IsFlagged() bool {
	return cell.State == Flagged
}

func (cell Cell) IsClosed() bool {
	return cell.State == Closed
}

// Displayed returns the layout value if the cell has been revealed
func (cell Cell) Displayed() (Value, bool) {
	if cell.State != Revealed {
		return 0, false
	}
	return cell.Value, true
}

// Sprite returns the index of the tile to draw for this cell: 0-8 for revealed
// counts, 9 for a revealed mine, then SpriteClosed and SpriteFlagged
func (cell Cell) Sprite() int {
	switch cell.State {
	case Revealed:
		return int(cell.Value)
	case Flagged:
		return SpriteFlagged
	default:
		return SpriteClosed
	}
}
